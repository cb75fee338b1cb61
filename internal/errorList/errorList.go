// Package errorList collects per-file errors raised while a sequence of files
// moves through the pipeline, so that one bad file doesn't hide the others.
package errorList

import "fmt"

// ErrorList wraps multiple errors as a single error.
type ErrorList []error

func (errs ErrorList) Error() string {
	if len(errs) == 0 {
		return "<no errors>"
	}
	if len(errs) == 1 {
		return errs[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", errs[0].Error(), len(errs[1:]))
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (errs ErrorList) Unwrap() []error {
	return errs
}

// ErrOrNil returns nil if ErrorList is empty, or the error otherwise.
func (errs ErrorList) ErrOrNil() error {
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// Append an error to the list. If err is itself an ErrorList the lists are
// concatenated. A nil err leaves the list unmodified.
func (errs ErrorList) Append(err error) ErrorList {
	if err == nil {
		return errs
	}
	if err, ok := err.(ErrorList); ok {
		return append(errs, err...)
	}
	return append(errs, err)
}

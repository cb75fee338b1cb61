package pipeline

import (
	"fmt"

	"github.com/gargakshite7/gulp-sourcemapsq/internal/errorList"
)

// Stage is a single processing step. Transform consumes one file and returns
// the files it emits in exchange: usually the same file mutated in place,
// sometimes additional ones (an external map file, for example). A stage
// receives the next file only after the previous one has been fully emitted.
type Stage interface {
	// Name identifies the stage in diagnostics.
	Name() string
	Transform(f *File) ([]*File, error)
}

// Run pushes each file through the chain of stages in order and returns every
// file emitted by the last stage. A file that errors in some stage produces an
// error event instead of an emission; the remaining files are unaffected and
// all per-file errors are combined into the returned error.
func Run(files []*File, stages ...Stage) ([]*File, error) {
	var out []*File
	var errs errorList.ErrorList
	for _, f := range files {
		emitted, err := runOne(f, stages)
		if err != nil {
			errs = errs.Append(err)
			continue
		}
		out = append(out, emitted...)
	}
	return out, errs.ErrOrNil()
}

func runOne(f *File, stages []Stage) ([]*File, error) {
	current := []*File{f}
	for _, stage := range stages {
		var next []*File
		for _, cf := range current {
			emitted, err := stage.Transform(cf)
			if err != nil {
				return nil, fmt.Errorf("%s: %s: %w", stage.Name(), cf.Path, err)
			}
			next = append(next, emitted...)
		}
		current = next
	}
	return current, nil
}

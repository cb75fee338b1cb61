// Package pathx provides the path normalization helpers shared by the source
// map stages. Every path-shaped field in a source map uses forward slashes
// irrespective of the host path separator, so the helpers here always hand
// back slash form.
package pathx

import (
	"path/filepath"
	"regexp"
)

var schemeRx = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.-]*://`)

// IsURL reports whether p is a URL-scheme identifier (scheme://...) rather
// than a file path. URL sources never have their content read from disk.
func IsURL(p string) bool {
	return schemeRx.MatchString(p)
}

// Rel returns to relative to the directory from, in forward-slash form. When
// no relative path exists (different volumes, for example) it falls back to to
// in forward-slash form.
func Rel(from, to string) string {
	rel, err := filepath.Rel(from, to)
	if err != nil {
		return filepath.ToSlash(to)
	}
	return filepath.ToSlash(rel)
}

// Resolve joins slash-form path elements below the directory base using the
// host separator, skipping empty elements. The result is a host path suitable
// for disk access.
func Resolve(base string, elems ...string) string {
	parts := []string{base}
	for _, e := range elems {
		if e == "" {
			continue
		}
		parts = append(parts, filepath.FromSlash(e))
	}
	return filepath.Join(parts...)
}

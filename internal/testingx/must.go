// Package testingx provides helpers for use with the testing package.
package testingx

import (
	"os"
	"path/filepath"
	"testing"
)

// Must provides a concise way to handle returned errors in test setup that
// "should never happen". It MUST NOT be used to check for test case
// conditions themselves because it produces a generic, nondescript message.
//
//	mustMarshal := testingx.Must[[]byte](t)
//	data := mustMarshal(json.Marshal(m))
func Must[T any](t *testing.T) func(v T, err error) T {
	return func(v T, err error) T {
		if err != nil {
			t.Fatalf("Got: unexpected error: %s. Want: no error.", err)
		}
		return v
	}
}

// WriteFile creates a fixture file with the given content under dir, creating
// intermediate directories as needed, and returns its absolute path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(p), 0777); err != nil {
		t.Fatalf("Got: unexpected error creating fixture dir: %s. Want: no error.", err)
	}
	if err := os.WriteFile(p, []byte(content), 0666); err != nil {
		t.Fatalf("Got: unexpected error writing fixture %q: %s. Want: no error.", name, err)
	}
	return p
}

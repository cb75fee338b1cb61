// Package pipeline defines the file and source map model shared by the
// processing stages, and a minimal runner that pushes files through a chain of
// stages one at a time.
package pipeline

import (
	"path/filepath"
)

// Contents is the payload of a File. A file either carries fully buffered
// bytes (Buffer), a non-bufferable streaming body (Stream), or no content at
// all (a nil Contents).
type Contents interface {
	contents()
}

// Buffer is fully buffered file content.
type Buffer []byte

func (Buffer) contents() {}

// Stream marks content that is only available as a non-bufferable stream.
// The source map stages do not support streamed content and fail when they
// encounter it.
type Stream struct{}

func (Stream) contents() {}

// File is a single unit of work flowing through the pipeline. Stages mutate
// it in place and re-emit it, or emit additional files alongside it.
type File struct {
	// Path is the absolute path of the file.
	Path string
	// Base is the directory the relative display path is computed against.
	Base string
	// Contents is nil when the file carries no content.
	Contents Contents
	// SourceMap is the map attached to the file, if any.
	SourceMap *SourceMap
}

// Relative returns the file's path relative to its base directory, in
// forward-slash form. If the path cannot be made relative, the path itself is
// returned in forward-slash form.
func (f *File) Relative() string {
	rel, err := filepath.Rel(f.Base, f.Path)
	if err != nil {
		return filepath.ToSlash(f.Path)
	}
	return filepath.ToSlash(rel)
}

// Dir returns the directory containing the file.
func (f *File) Dir() string {
	return filepath.Dir(f.Path)
}

// Buffered returns the buffered content bytes and true, or nil and false if
// the content is absent or streamed.
func (f *File) Buffered() ([]byte, bool) {
	b, ok := f.Contents.(Buffer)
	return b, ok
}

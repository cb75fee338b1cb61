// Package sourcemaps implements the two pipeline stages that attach and
// re-emit source maps for files flowing through a build pipeline: the Loader
// discovers or synthesizes a map early, the Writer serializes the final map
// inline or into a sibling .map file late. The stages never call each other;
// they agree only on the file and map model of package pipeline.
package sourcemaps

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"

	"github.com/gargakshite7/gulp-sourcemapsq/pipeline"
)

// ErrStreamNotSupported is returned by both stages when a file's content is a
// non-bufferable stream. It is the only failure that escapes a stage as an
// error; every path or content resolution failure degrades to null or omitted
// data instead.
var ErrStreamNotSupported = errors.New("streaming not supported")

// StringFunc produces a per-file string for options that accept either a
// literal or a function of the file.
type StringFunc func(f *pipeline.File) string

// Literal returns a StringFunc that ignores the file and always yields s.
func Literal(s string) StringFunc {
	return func(*pipeline.File) string { return s }
}

// marshalMap serializes a map to JSON the way it goes onto the wire: no HTML
// escaping, no trailing newline, nil sources/names normalized to empty arrays.
func marshalMap(m *pipeline.SourceMap) ([]byte, error) {
	c := *m
	if c.Sources == nil {
		c.Sources = []string{}
	}
	if c.Names == nil {
		c.Names = []string{}
	}
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(&c); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// parseMap decodes JSON into a SourceMap. Anything that is not a valid
// version 3 map is treated as no map at all.
func parseMap(data []byte) *pipeline.SourceMap {
	var m pipeline.SourceMap
	if err := json.Unmarshal(data, &m); err != nil {
		return nil
	}
	if m.Version != 3 {
		return nil
	}
	return &m
}

// readMapFile loads and parses an external map file. An unreadable or
// malformed file is reported as no map found, never as an error.
func readMapFile(path string) *pipeline.SourceMap {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	return parseMap(data)
}

package sourcemaps

import (
	"encoding/base64"
	"path"
	"path/filepath"
	"strings"

	"github.com/gargakshite7/gulp-sourcemapsq/internal/diag"
	"github.com/gargakshite7/gulp-sourcemapsq/internal/pathx"
	"github.com/gargakshite7/gulp-sourcemapsq/pipeline"
)

// WriteOptions configures the Writer. DefaultWriteOptions supplies the
// defaults; a zero WriteOptions disables both the comment and the content.
type WriteOptions struct {
	// AddComment inserts the sourceMappingURL comment into the file content.
	AddComment bool
	// IncludeContent keeps sourcesContent in the serialized map, backfilling
	// it from disk if absent. When false the field is removed entirely.
	IncludeContent bool
	// SourceRoot, when set, is assigned onto the map before serializing.
	SourceRoot StringFunc
	// SourceMappingURLPrefix, when set, is prepended to the comment value in
	// external mode.
	SourceMappingURLPrefix StringFunc
	// Debug enables the diagnostics side channel.
	Debug bool
}

// DefaultWriteOptions returns the standard configuration: comment and content
// both on.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{AddComment: true, IncludeContent: true}
}

// Writer serializes the map attached to a file. With an empty destination the
// map goes inline as a base64 data URI comment; with a destination directory
// it goes to a sibling .map file emitted alongside the original.
type Writer struct {
	dest string
	opts WriteOptions
	diag *diag.Logger
}

// NewWriter returns a Writer. dest is the map destination directory relative
// to each file's own directory; empty means inline mode.
func NewWriter(dest string, opts WriteOptions) *Writer {
	return &Writer{dest: dest, opts: opts, diag: diag.New("write", opts.Debug)}
}

func (w *Writer) Name() string { return "write" }

func (w *Writer) Transform(f *pipeline.File) ([]*pipeline.File, error) {
	switch f.Contents.(type) {
	case pipeline.Stream:
		return nil, ErrStreamNotSupported
	case nil:
		return []*pipeline.File{f}, nil
	}
	m := f.SourceMap
	if m == nil {
		return []*pipeline.File{f}, nil
	}

	if !w.opts.IncludeContent {
		m.SourcesContent = nil
	} else if m.SourcesContent == nil {
		// Unlike the Loader, the Writer drops entries that fail to resolve
		// instead of keeping nulls. Longstanding framework behavior;
		// downstream consumers rely on it.
		backfill(m, f.Dir(), w.diag)
		m.SourcesContent = dropNulls(m.SourcesContent)
	}

	if w.opts.SourceRoot != nil {
		m.SourceRoot = w.opts.SourceRoot(f)
	}

	if w.dest == "" {
		return w.writeInline(f, m)
	}
	return w.writeExternal(f, m)
}

func (w *Writer) writeInline(f *pipeline.File, m *pipeline.SourceMap) ([]*pipeline.File, error) {
	m.File = pathx.Rel(f.Dir(), f.Path)
	data, err := marshalMap(m)
	if err != nil {
		return nil, err
	}
	url := "data:application/json;base64," + base64.StdEncoding.EncodeToString(data)
	w.appendComment(f, url)
	return []*pipeline.File{f}, nil
}

func (w *Writer) writeExternal(f *pipeline.File, m *pipeline.SourceMap) ([]*pipeline.File, error) {
	mapName := filepath.Base(f.Path) + ".map"
	mapPath := pathx.Resolve(f.Dir(), w.dest, mapName)
	m.File = pathx.Rel(filepath.Dir(mapPath), f.Path)
	data, err := marshalMap(m)
	if err != nil {
		return nil, err
	}

	prefix := ""
	if w.opts.SourceMappingURLPrefix != nil {
		prefix = w.opts.SourceMappingURLPrefix(f)
	}
	w.appendComment(f, prefix+path.Join(filepath.ToSlash(w.dest), mapName))

	mapFile := &pipeline.File{
		Path:     mapPath,
		Base:     f.Base,
		Contents: pipeline.Buffer(data),
	}
	return []*pipeline.File{mapFile, f}, nil
}

// appendComment adds the syntax-appropriate reference comment to the file's
// content. Files whose extension has no known comment syntax are left
// byte-identical to their input.
func (w *Writer) appendComment(f *pipeline.File, url string) {
	if !w.opts.AddComment {
		return
	}
	comment, ok := commentFor(f.Path, url)
	if !ok {
		return
	}
	content, _ := f.Buffered()
	f.Contents = pipeline.Buffer(append(content, comment...))
}

// commentFor picks the comment syntax by extension: block style for
// stylesheets, line style for script-like files (the default kind), none for
// anything else.
func commentFor(p, url string) (string, bool) {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".css":
		return "\n/*# sourceMappingURL=" + url + " */\n", true
	case ".js", ".mjs", ".cjs", ".jsx", "":
		return "\n//# sourceMappingURL=" + url + "\n", true
	}
	return "", false
}

// dropNulls compacts a backfilled content list, discarding entries that could
// not be resolved.
func dropNulls(sc []*string) []*string {
	out := make([]*string, 0, len(sc))
	for _, c := range sc {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}

package sourcemaps

import (
	"path/filepath"

	"github.com/gargakshite7/gulp-sourcemapsq/internal/diag"
	"github.com/gargakshite7/gulp-sourcemapsq/internal/identitymap"
	"github.com/gargakshite7/gulp-sourcemapsq/internal/pathx"
	"github.com/gargakshite7/gulp-sourcemapsq/pipeline"
)

// InitOptions configures the Loader.
type InitOptions struct {
	// LoadMaps attempts to discover an existing map (inline comment, external
	// reference, or the <path>.map convention) before synthesizing one.
	LoadMaps bool
	// IdentityMap synthesizes a syntax-aware identity map instead of an empty
	// skeleton when no existing map is found.
	IdentityMap bool
	// AddComment is carried for downstream consistency; the Loader itself
	// never inserts comments.
	AddComment bool
	// Debug enables the diagnostics side channel.
	Debug bool
}

// Loader attaches a source map to every buffered file that passes through it.
// A file that already carries a map passes through untouched.
type Loader struct {
	opts InitOptions
	diag *diag.Logger
}

func NewLoader(opts InitOptions) *Loader {
	return &Loader{opts: opts, diag: diag.New("init", opts.Debug)}
}

func (l *Loader) Name() string { return "init" }

func (l *Loader) Transform(f *pipeline.File) ([]*pipeline.File, error) {
	switch f.Contents.(type) {
	case pipeline.Stream:
		return nil, ErrStreamNotSupported
	case nil:
		return []*pipeline.File{f}, nil
	}
	if f.SourceMap != nil {
		return []*pipeline.File{f}, nil
	}

	content, _ := f.Buffered()
	text, decodable := decodeText(content)

	if l.opts.LoadMaps {
		if m, stripped, ok := l.loadMap(f, text, decodable); ok {
			if decodable {
				f.Contents = pipeline.Buffer(stripped)
			}
			f.SourceMap = m
			return []*pipeline.File{f}, nil
		}
	}

	rel := f.Relative()
	m := &pipeline.SourceMap{
		Version:        3,
		File:           rel,
		Sources:        []string{rel},
		SourcesContent: make([]*string, 1),
		Names:          []string{},
	}
	if decodable {
		t := text
		m.SourcesContent[0] = &t
	}
	if l.opts.IdentityMap {
		m.Mappings, m.Names = identitymap.Generate(text, rel, identitymap.KindForPath(f.Path))
	}
	f.SourceMap = m
	return []*pipeline.File{f}, nil
}

// loadMap tries the three discovery routes in order: an inline data URI
// comment, an external file referenced by comment, and the <path>.map sibling
// convention. The comment is stripped from content only when its map actually
// loads; a reference to a missing or malformed map is left in place and the
// caller falls through to synthesis.
func (l *Loader) loadMap(f *pipeline.File, text string, decodable bool) (*pipeline.SourceMap, string, bool) {
	value, rest, found := ScanComment([]byte(text))
	stripped := string(rest)
	if found {
		if data, isDataURI := decodeDataURI(value); isDataURI {
			m := parseMap(data)
			if m == nil {
				return nil, "", false
			}
			l.adoptMap(m, f.Dir(), f, stripped, decodable)
			return m, stripped, true
		}
		mapPath := pathx.Resolve(f.Dir(), value)
		m := readMapFile(mapPath)
		if m == nil {
			return nil, "", false
		}
		l.adoptMap(m, filepath.Dir(mapPath), f, stripped, decodable)
		return m, stripped, true
	}

	m := readMapFile(f.Path + ".map")
	if m == nil {
		return nil, "", false
	}
	l.adoptMap(m, f.Dir(), f, text, decodable)
	return m, text, true
}

// adoptMap normalizes a loaded map for the file it now belongs to: sources
// are re-expressed relative to the file's directory (sourceRoot and entry
// joined at the map's own location first) and missing content is backfilled
// from disk. A source that resolves to the file itself reuses the file's text
// without a disk read. The sourceRoot is folded into the rewritten entries
// and cleared so it is not applied a second time downstream.
func (l *Loader) adoptMap(m *pipeline.SourceMap, mapDir string, f *pipeline.File, text string, decodable bool) {
	fill := m.SourcesContent == nil
	if fill {
		m.SourcesContent = make([]*string, len(m.Sources))
	}
	for len(m.SourcesContent) < len(m.Sources) {
		m.SourcesContent = append(m.SourcesContent, nil)
	}

	rootIsURL := pathx.IsURL(m.SourceRoot)
	fileDir := f.Dir()
	for i, src := range m.Sources {
		if pathx.IsURL(src) || rootIsURL {
			// Not disk-resolvable. The entry keeps its literal form and its
			// content stays null.
			continue
		}
		abs := pathx.Resolve(mapDir, m.SourceRoot, src)
		m.Sources[i] = pathx.Rel(fileDir, abs)
		if fill && m.SourcesContent[i] == nil {
			if abs == f.Path {
				if decodable {
					t := text
					m.SourcesContent[i] = &t
				}
				continue
			}
			m.SourcesContent[i] = readSource(src, abs, l.diag)
		}
	}
	if !rootIsURL {
		m.SourceRoot = ""
	}
}

package sourcemaps

import (
	"os"
	"unicode/utf8"

	"github.com/gargakshite7/gulp-sourcemapsq/internal/diag"
	"github.com/gargakshite7/gulp-sourcemapsq/internal/pathx"
	"github.com/gargakshite7/gulp-sourcemapsq/pipeline"
)

// backfill fills the gaps in a map's sourcesContent by reading the listed
// sources from disk, resolving relative entries below base and honoring the
// map's sourceRoot. A URL-scheme source, or any source under a URL-scheme
// sourceRoot, gets a null entry without any disk access. A source that cannot
// be read gets a null entry and a diagnostic. Entries that already hold
// content are left alone, so repeated invocation is a no-op per filled entry.
func backfill(m *pipeline.SourceMap, base string, d *diag.Logger) {
	if m.SourcesContent == nil {
		m.SourcesContent = make([]*string, len(m.Sources))
	}
	for len(m.SourcesContent) < len(m.Sources) {
		m.SourcesContent = append(m.SourcesContent, nil)
	}
	rootIsURL := pathx.IsURL(m.SourceRoot)
	for i, src := range m.Sources {
		if m.SourcesContent[i] != nil {
			continue
		}
		if pathx.IsURL(src) || rootIsURL {
			continue
		}
		resolved := pathx.Resolve(base, m.SourceRoot, src)
		m.SourcesContent[i] = readSource(src, resolved, d)
	}
}

// readSource reads one original source as text. nil means the content is not
// resolvable.
func readSource(source, resolved string, d *diag.Logger) *string {
	data, err := os.ReadFile(resolved)
	if err != nil {
		d.MissingSource(source, resolved)
		return nil
	}
	text := string(data)
	return &text
}

// decodeText interprets buffered bytes as text. Content that is not valid
// UTF-8 has no decoded text: scanning and generation see an empty string and
// the file's own content entry stays null.
func decodeText(b []byte) (text string, ok bool) {
	if !utf8.Valid(b) {
		return "", false
	}
	return string(b), true
}

// Package identitymap generates identity source maps: maps asserting a file
// is (close to) its own original, built by tokenizing the file itself rather
// than tracking a separate transformation. Each token becomes a mapping whose
// original and generated positions coincide; identifier tokens additionally
// capture their symbol name.
package identitymap

import (
	"path/filepath"
	"strings"

	"github.com/neelance/sourcemap"
)

// Kind selects the tokenizer used for a file. Unrecognized is an explicit
// no-op variant: it yields an empty mapping and no names.
type Kind int

const (
	Unrecognized Kind = iota
	JS
	CSS
)

// KindForPath derives the syntax kind from the file extension.
func KindForPath(p string) Kind {
	switch strings.ToLower(filepath.Ext(p)) {
	case ".js", ".mjs", ".cjs", ".jsx":
		return JS
	case ".css":
		return CSS
	}
	return Unrecognized
}

// Generate tokenizes text and returns the encoded mappings string plus the
// identifier names captured along the way, in order of first appearance.
// source is the original-file identifier recorded for every mapping.
func Generate(text, source string, kind Kind) (mappings string, names []string) {
	var tokens []token
	switch kind {
	case JS:
		tokens = tokenizeJS(text)
	case CSS:
		tokens = tokenizeCSS(text)
	default:
		return "", []string{}
	}

	m := &sourcemap.Map{Version: 3}
	for _, tok := range tokens {
		m.AddMapping(&sourcemap.Mapping{
			GeneratedLine:   tok.line,
			GeneratedColumn: tok.col,
			OriginalFile:    source,
			OriginalLine:    tok.line,
			OriginalColumn:  tok.col,
			OriginalName:    tok.name,
		})
	}
	m.EncodeMappings()
	if m.Names == nil {
		return m.Mappings, []string{}
	}
	return m.Mappings, m.Names
}

// token is a single mapped position. name is empty for everything except
// identifiers.
type token struct {
	line int // 1-based
	col  int // 0-based
	name string
}

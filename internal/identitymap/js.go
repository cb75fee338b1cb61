package identitymap

// jsKeywords are not captured as names; only genuine identifiers are.
var jsKeywords = map[string]bool{
	"await": true, "break": true, "case": true, "catch": true, "class": true,
	"const": true, "continue": true, "debugger": true, "default": true,
	"delete": true, "do": true, "else": true, "enum": true, "export": true,
	"extends": true, "false": true, "finally": true, "for": true,
	"function": true, "if": true, "import": true, "in": true,
	"instanceof": true, "let": true, "new": true, "null": true, "of": true,
	"return": true, "static": true, "super": true, "switch": true,
	"this": true, "throw": true, "true": true, "try": true, "typeof": true,
	"var": true, "void": true, "while": true, "with": true, "yield": true,
}

func isJSIdentStart(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		c >= 0x80
}

func isJSIdentPart(c byte) bool {
	return isJSIdentStart(c) || (c >= '0' && c <= '9')
}

// tokenizeJS produces one token per lexical element of JavaScript-ish source:
// identifiers (named), keywords, numbers, string and template literals, and
// punctuation. Comments and whitespace are skipped. Regular expression
// literals are not recognized and scan as punctuation, which is good enough
// for an identity mapping.
func tokenizeJS(text string) []token {
	s := newScanner(text)
	var toks []token
	for {
		s.skipSpace()
		if s.eof() {
			return toks
		}
		line, col := s.line, s.col
		c := s.peek()
		switch {
		case c == '/' && s.peekAt(1) == '/':
			s.skipLineComment()
		case c == '/' && s.peekAt(1) == '*':
			s.skipBlockComment()
		case c == '\'' || c == '"' || c == '`':
			s.skipString(c)
			toks = append(toks, token{line: line, col: col})
		case isJSIdentStart(c):
			start := s.pos
			for !s.eof() && isJSIdentPart(s.peek()) {
				s.next()
			}
			word := text[start:s.pos]
			tok := token{line: line, col: col}
			if !jsKeywords[word] {
				tok.name = word
			}
			toks = append(toks, tok)
		case c >= '0' && c <= '9':
			for !s.eof() && isNumberPart(s.peek()) {
				s.next()
			}
			toks = append(toks, token{line: line, col: col})
		default:
			s.next()
			toks = append(toks, token{line: line, col: col})
		}
	}
}

func isNumberPart(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') ||
		(c >= 'A' && c <= 'F') || c == '.' || c == 'x' || c == 'X' || c == '_'
}

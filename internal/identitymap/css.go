package identitymap

func isCSSIdentStart(c byte) bool {
	return c == '_' || c == '-' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		c >= 0x80
}

func isCSSIdentPart(c byte) bool {
	return isCSSIdentStart(c) || (c >= '0' && c <= '9')
}

// tokenizeCSS produces one token per lexical element of a stylesheet:
// identifiers, at-words, hash-words, numbers, strings, and punctuation. CSS
// has no symbol names in the source map sense, so no token carries a name.
func tokenizeCSS(text string) []token {
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
		case c == '/' && s.peekAt(1) == '*':
			s.skipBlockComment()
		case c == '\'' || c == '"':
			s.skipString(c)
			toks = append(toks, token{line: line, col: col})
		case c == '@' || c == '#' || c == '.':
			s.next()
			for !s.eof() && isCSSIdentPart(s.peek()) {
				s.next()
			}
			toks = append(toks, token{line: line, col: col})
		case isCSSIdentStart(c):
			for !s.eof() && isCSSIdentPart(s.peek()) {
				s.next()
			}
			toks = append(toks, token{line: line, col: col})
		case c >= '0' && c <= '9':
			for !s.eof() && (s.peek() >= '0' && s.peek() <= '9' || s.peek() == '.' || s.peek() == '%' || isCSSIdentPart(s.peek())) {
				s.next()
			}
			toks = append(toks, token{line: line, col: col})
		default:
			s.next()
			toks = append(toks, token{line: line, col: col})
		}
	}
}

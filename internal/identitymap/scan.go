package identitymap

// scanner is a minimal cursor over source text that tracks the 1-based line
// and 0-based column of the current position. Columns count bytes, which
// matches the positions recorded by the mapping encoder.
type scanner struct {
	src  string
	pos  int
	line int
	col  int
}

func newScanner(src string) *scanner {
	return &scanner{src: src, line: 1}
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.src)
}

func (s *scanner) peek() byte {
	return s.src[s.pos]
}

// peekAt returns the byte at the given offset from the current position, or 0
// past the end.
func (s *scanner) peekAt(off int) byte {
	if s.pos+off >= len(s.src) {
		return 0
	}
	return s.src[s.pos+off]
}

func (s *scanner) next() byte {
	c := s.src[s.pos]
	s.pos++
	if c == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return c
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.peek() {
		case ' ', '\t', '\r', '\n', '\f':
			s.next()
		default:
			return
		}
	}
}

func (s *scanner) skipLineComment() {
	for !s.eof() && s.peek() != '\n' {
		s.next()
	}
}

func (s *scanner) skipBlockComment() {
	s.next() // '/'
	s.next() // '*'
	for !s.eof() {
		if s.peek() == '*' && s.peekAt(1) == '/' {
			s.next()
			s.next()
			return
		}
		s.next()
	}
}

// skipString consumes a string literal delimited by quote, honoring backslash
// escapes. Template literals may span lines; the line counter keeps up via
// next.
func (s *scanner) skipString(quote byte) {
	s.next() // opening quote
	for !s.eof() {
		c := s.next()
		if c == '\\' && !s.eof() {
			s.next()
			continue
		}
		if c == quote {
			return
		}
	}
}

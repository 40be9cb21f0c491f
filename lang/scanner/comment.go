package scanner

// skipWhitespaceAndComments consumes spaces, tabs, carriage returns, line
// comments and nested block comments. It does not consume newlines, which
// are significant and produce their own token. If a block comment is left
// unterminated, the returned message and positions describe the error and
// scanning is left at end of input.
func (s *Scanner) skipWhitespaceAndComments() (msg string, off, line, col int) {
	for {
		switch s.cur {
		case ' ', '\t', '\r':
			s.advance()

		case '/':
			switch s.peek() {
			case '/':
				// line comment, the terminating newline is not consumed
				s.advance()
				s.advance()
				for s.cur != '\n' && s.cur != -1 {
					s.advance()
				}

			case '*':
				startOff, startLine, startCol := s.off, s.line, s.col
				s.advance()
				s.advance()
				if !s.blockComment() {
					return "block comment not terminated", startOff, startLine, startCol
				}

			default:
				// a plain SLASH token
				return "", 0, 0, 0
			}

		default:
			return "", 0, 0, 0
		}
	}
}

// blockComment consumes a block comment, tracking the nesting depth so that
// /* /* */ */ closes correctly. The opening /* must already be consumed. It
// reports whether the comment was terminated before end of input.
func (s *Scanner) blockComment() bool {
	nesting := 1
	for nesting > 0 {
		switch {
		case s.cur == -1:
			return false
		case s.cur == '/' && s.peek() == '*':
			s.advance()
			s.advance()
			nesting++
		case s.cur == '*' && s.peek() == '/':
			s.advance()
			s.advance()
			nesting--
		default:
			s.advance()
		}
	}
	return true
}

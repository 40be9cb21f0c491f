package scanner

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/mna/roitelet/lang/token"
)

// stringSegment scans a string literal, or the portion of one that follows
// an interpolated expression, decoding escape sequences as it goes. The
// opening '"' (or the ')' that closed the interpolation) must already be
// consumed. It produces STRING when the segment ends at the closing quote
// and INTERP when it ends at "%(", in which case the interpolation nesting
// state is pushed and the enclosing string resumes at the matching ')'.
// Strings may span multiple lines; an unterminated literal consumes the
// rest of the input.
func (s *Scanner) stringSegment(tokVal *token.Value, startOff, startLine, startCol int) token.Token {
	s.sb.Reset()

	var msg string
	tok := token.STRING
loop:
	for {
		cur := s.cur
		if cur == -1 {
			if msg == "" {
				msg = "string literal not terminated"
			}
			break
		}
		s.advance()
		switch cur {
		case '"':
			break loop

		case '%':
			if s.numParens < MaxInterpolationNesting {
				if s.cur != '(' {
					if msg == "" {
						msg = "expect '(' after '%' in string literal"
					}
					continue
				}
				s.advance()
				s.parens[s.numParens] = 1
				s.numParens++
				tok = token.INTERP
				break loop
			}
			if msg == "" {
				msg = fmt.Sprintf("string interpolation may only nest %d levels deep", MaxInterpolationNesting)
			}

		case '\\':
			if emsg := s.escape(); emsg != "" && msg == "" {
				msg = emsg
			}

		default:
			s.sb.WriteRune(cur)
		}
	}

	if msg != "" {
		return s.illegal(tokVal, startOff, startLine, startCol, msg)
	}
	*tokVal = token.Value{
		Raw:    string(s.src[startOff:s.off]),
		String: s.sb.String(),
		Off:    startOff,
		Pos:    makeSafePos(startLine, startCol),
	}
	return tok
}

// rawString scans a """-delimited raw string literal: no escape sequences,
// no interpolation. The first '"' must already be consumed and the scanner
// positioned on the second. If the line holding the opening delimiter has
// only whitespace after it, that first line is dropped from the value, and
// likewise for the line holding the closing delimiter.
func (s *Scanner) rawString(tokVal *token.Value, startOff, startLine, startCol int) token.Token {
	// consume the second and third '"'
	s.advance()
	s.advance()

	contentStart := s.off
	for {
		if s.cur == -1 {
			return s.illegal(tokVal, startOff, startLine, startCol, "raw string literal not terminated")
		}
		if s.cur == '"' && s.peek() == '"' && s.peekNext() == '"' {
			break
		}
		s.advance()
	}
	content := string(s.src[contentStart:s.off])

	// consume the closing delimiter
	s.advance()
	s.advance()
	s.advance()

	*tokVal = token.Value{
		Raw:    string(s.src[startOff:s.off]),
		String: trimRawString(content),
		Off:    startOff,
		Pos:    makeSafePos(startLine, startCol),
	}
	return token.STRING
}

func trimRawString(content string) string {
	v := strings.ReplaceAll(content, "\r", "")
	if i := strings.IndexByte(v, '\n'); i >= 0 && strings.TrimLeft(v[:i], " \t") == "" {
		v = v[i+1:]
	}
	if i := strings.LastIndexByte(v, '\n'); i >= 0 && strings.TrimLeft(v[i+1:], " \t") == "" {
		v = v[:i]
	}
	return v
}

var simpleEscapes = [...]byte{
	'0':  0,
	'a':  '\a',
	'b':  '\b',
	'e':  0x1b,
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
	'v':  '\v',
	'\\': '\\',
	'"':  '"',
	'%':  '%',
}

// escape parses an escape sequence, consuming it and writing its decoded
// value. The leading backslash must already be consumed. In case of a
// lexical error it returns the diagnostic message and stops at the
// offending character without consuming it, so an unterminated string is
// still detected by the caller.
func (s *Scanner) escape() (msg string) {
	if cur := s.cur; s.advanceIf('0', 'a', 'b', 'e', 'f', 'n', 'r', 't', 'v', '\\', '"', '%') {
		s.sb.WriteByte(simpleEscapes[cur])
		return ""
	}

	switch s.cur {
	case 'x':
		// \xhh - exactly 2 hexadecimal digits, to encode a byte
		s.advance()
		v, ok := s.hexDigits(2)
		if !ok {
			return "invalid byte escape sequence"
		}
		s.sb.WriteByte(byte(v))

	case 'u':
		// \uhhhh - exactly 4 hexadecimal digits, to encode a code point
		s.advance()
		v, ok := s.hexDigits(4)
		if !ok {
			return "invalid Unicode escape sequence"
		}
		s.sb.WriteRune(rune(v))

	case 'U':
		// \Uhhhhhhhh - exactly 8 hexadecimal digits, to encode a code point
		s.advance()
		v, ok := s.hexDigits(8)
		if !ok {
			return "invalid Unicode escape sequence"
		}
		if v > unicode.MaxRune {
			return "escape sequence is invalid Unicode code point"
		}
		s.sb.WriteRune(rune(v))

	case -1:
		return "escape sequence not terminated"

	default:
		return fmt.Sprintf("unknown escape character %#U", s.cur)
	}
	return ""
}

// hexDigits consumes exactly n hexadecimal digits and returns their value.
// It stops without consuming the first non-hex character.
func (s *Scanner) hexDigits(n int) (v uint32, ok bool) {
	for i := 0; i < n; i++ {
		if !isHexadecimal(s.cur) {
			return 0, false
		}
		v = v*16 + digitVal(s.cur)
		s.advance()
	}
	return v, true
}

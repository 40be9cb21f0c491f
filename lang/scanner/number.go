package scanner

import (
	"errors"
	"strconv"

	"github.com/mna/roitelet/lang/token"
)

// number scans a number literal and decodes its value eagerly. The grammar
// is: decimal integers, decimal floats with a fractional part (a digit must
// follow the '.', so method calls on number literals are not swallowed)
// and/or an e/E exponent with optional sign, and 0x hexadecimal integers.
// All values decode into a 64-bit float.
func (s *Scanner) number(tokVal *token.Value) token.Token {
	startOff, startLine, startCol := s.off, s.line, s.col

	var msg string
	if s.cur == '0' && lower(rune(s.peek())) == 'x' {
		s.advance()
		s.advance()
		var digits int
		for isHexadecimal(s.cur) {
			s.advance()
			digits++
		}
		if digits == 0 {
			msg = "hexadecimal literal has no digits"
		}
	} else {
		for isDecimal(s.cur) {
			s.advance()
		}

		// fractional part, only if a digit follows the '.'
		if s.cur == '.' && isDecimal(rune(s.peek())) {
			s.advance()
			for isDecimal(s.cur) {
				s.advance()
			}
		}

		// exponent
		if lower(s.cur) == 'e' {
			s.advance()
			s.advanceIf('+', '-')
			if !isDecimal(s.cur) {
				msg = "exponent has no digits"
			}
			for isDecimal(s.cur) {
				s.advance()
			}
		}
	}

	lit := string(s.src[startOff:s.off])
	if msg == "" {
		var err error
		var val float64
		if len(lit) > 2 && lower(rune(lit[1])) == 'x' {
			var u uint64
			u, err = strconv.ParseUint(lit[2:], 16, 64)
			val = float64(u)
		} else {
			val, err = strconv.ParseFloat(lit, 64)
		}
		switch {
		case errors.Is(err, strconv.ErrRange):
			msg = "number literal is too large"
		case err != nil:
			msg = "invalid number literal"
		default:
			*tokVal = token.Value{Raw: lit, Num: val, Off: startOff, Pos: makeSafePos(startLine, startCol)}
			return token.NUMBER
		}
	}
	return s.illegal(tokVal, startOff, startLine, startCol, msg)
}

func isDecimal(rn rune) bool {
	return '0' <= rn && rn <= '9'
}

func isHexadecimal(rn rune) bool {
	return isDecimal(rn) ||
		'a' <= rn && rn <= 'f' ||
		'A' <= rn && rn <= 'F'
}

func digitVal(rn rune) uint32 {
	switch {
	case '0' <= rn && rn <= '9':
		return uint32(rn - '0')
	case 'a' <= rn && rn <= 'f':
		return uint32(rn - 'a' + 10)
	case 'A' <= rn && rn <= 'F':
		return uint32(rn - 'A' + 10)
	}
	return 16 // larger than any legal digit val
}

func lower(ch rune) rune {
	return ('a' - 'A') | ch // returns lower-case ch iff ch is ASCII letter
}

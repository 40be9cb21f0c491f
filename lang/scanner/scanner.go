// Some of the scanner package is adapted from the Go source code:
// https://cs.opensource.google/go/go/+/refs/tags/go1.22.1:src/go/scanner/scanner.go
//
// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scanner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mna/roitelet/lang/token"
)

// MaxInterpolationNesting is the maximum depth of nested string
// interpolations, e.g. this string has three levels:
//
//	"outside %(one + "%(two + "%(three)")")"
const MaxInterpolationNesting = 8

// TokenAndValue combines the token type with the token value type in the same
// struct.
type TokenAndValue struct {
	Token token.Token
	Value token.Value
}

// ScanFiles is a helper function that tokenizes the source files and returns
// the list of tokens, grouped by the file at the same index, and produces any
// error encountered. The error, if non-nil, is guaranteed to implement
// Unwrap() []error.
func ScanFiles(ctx context.Context, files ...string) ([][]TokenAndValue, error) {
	if len(files) == 0 {
		return nil, nil
	}

	var (
		s      Scanner
		tokVal token.Value
		errs   []error
	)

	tokensByFile := make([][]TokenAndValue, len(files))
	for i, file := range files {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		b, err := os.ReadFile(file)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", token.MakePosition(file, 0, 0), err))
			continue
		}

		s.Init(file, b, func(pos token.Position, msg string) {
			errs = append(errs, fmt.Errorf("%s: %s", pos, msg))
		})
		for {
			tok := s.Scan(&tokVal)
			tokensByFile[i] = append(tokensByFile[i], TokenAndValue{
				Token: tok,
				Value: tokVal,
			})
			if tok == token.EOF {
				break
			}
		}
	}
	return tokensByFile, errors.Join(errs...)
}

// PrintError prints the list of errors wrapped in err to w, one per line.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}
	if wrap, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range wrap.Unwrap() {
			fmt.Fprintf(w, "%s\n", e)
		}
		return
	}
	fmt.Fprintf(w, "%s\n", err)
}

// Scanner tokenizes source files for the parser to consume. Scanning never
// aborts: lexical errors are reported through the Init error handler, an
// ILLEGAL token carrying the diagnostic is produced and scanning resumes at
// the next plausible position.
type Scanner struct {
	// immutable state after Init
	filename string
	src      []byte
	err      func(pos token.Position, msg string) // error handler for scanning errors

	// mutable scanning state
	sb          strings.Builder // writes to Builder never fail, so errors are ignored
	invalidByte byte            // when cur==RuneError due to failed utf8 decode, this is the invalid byte
	cur         rune            // current character
	line, col   int             // line/col position of cur
	off         int             // character offset in bytes of cur
	roff        int             // reading offset in bytes (position after current character)

	nlEmitted bool // a NEWLINE was emitted for the current run of line breaks

	// string interpolation is not strictly regular: a ')' either closes an
	// interpolated expression and resumes the enclosing string, or is a
	// plain RPAREN. One unmatched-parens counter per nesting level tracks
	// which.
	parens    [MaxInterpolationNesting]int
	numParens int
}

var (
	// UTF-8 byte order mark, only permitted as very first characters
	bom = [3]byte{0xEF, 0xBB, 0xBF}
	// hashbang line, only permitted as very first line (or immediately after
	// bom)
	hashBang = [2]byte{'#', '!'}
)

// Init initializes the scanner to tokenize a new file.
func (s *Scanner) Init(filename string, src []byte, errHandler func(token.Position, string)) {
	s.filename = filename
	s.src = src
	s.err = errHandler

	s.sb.Reset()
	s.invalidByte = 0
	s.cur = ' '
	s.line, s.col = 1, 0
	s.off = 0
	s.roff = 0
	s.nlEmitted = false
	s.numParens = 0

	// skip initial BOM if present
	if len(src) >= len(bom) && bytes.Equal(src[:len(bom)], bom[:]) {
		s.off += len(bom)
		s.roff += len(bom)
	}
	// skip initial hashbang line if present
	if len(src)-s.roff >= len(hashBang) && bytes.Equal(src[s.roff:s.roff+len(hashBang)], hashBang[:]) {
		for s.cur != '\n' && s.cur != -1 {
			s.advance()
		}
	}
	s.advance()
}

// peek returns the byte following the most recently read character without
// advancing the scanner. If the scanner is at EOF, peek returns 0.
func (s *Scanner) peek() byte {
	if s.roff < len(s.src) {
		return s.src[s.roff]
	}
	return 0
}

// peekNext returns the second byte following the most recently read
// character without advancing the scanner, or 0 past EOF.
func (s *Scanner) peekNext() byte {
	if s.roff+1 < len(s.src) {
		return s.src[s.roff+1]
	}
	return 0
}

// read the next Unicode char into s.cur; s.cur < 0 means end-of-file.
func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		if s.cur == '\n' {
			s.line++
			s.col = 0
		}
		s.cur = -1
		return
	}

	s.off = s.roff
	if s.cur == '\n' {
		s.line++
		s.col = 0
	}

	// fast path if the rune is an ASCII char, no decoding necessary
	s.invalidByte = 0
	r, w := rune(s.src[s.roff]), 1
	if r >= utf8.RuneSelf {
		// not ASCII
		r, w = utf8.DecodeRune(s.src[s.roff:])
		if r == utf8.RuneError && w == 1 {
			s.error(s.roff, s.line, s.col, "illegal UTF-8 encoding")
			// store the actual invalid byte
			s.invalidByte = s.src[s.roff]
		}
	}
	s.roff += w
	s.cur = r
	s.col++
}

func (s *Scanner) error(off, line, col int, msg string) {
	if s.err != nil {
		line, col = clampPos(line, col)
		s.err(token.MakePosition(s.filename, off, token.MakePos(line, col)), msg)
	}
}

func (s *Scanner) errorf(off, line, col int, msg string, args ...any) {
	s.error(off, line, col, fmt.Sprintf(msg, args...))
}

// clampPos saturates line and col at the maximum values a Pos can encode.
// Minified or generated sources routinely exceed the column limit on a
// single line; saturating keeps scanning going with the byte offsets still
// exact, the way go/token handles position overflow.
func clampPos(line, col int) (int, int) {
	if line > token.MaxLines {
		line = token.MaxLines
	}
	if col > token.MaxCols {
		col = token.MaxCols
	}
	return line, col
}

func makeSafePos(line, col int) token.Pos {
	if col == 0 {
		col = 1 // can happen at EOF right after a newline
	}
	line, col = clampPos(line, col)
	return token.MakePos(line, col)
}

// advance only if the current char matches any of the specified ones.
func (s *Scanner) advanceIf(matches ...byte) bool {
	if bytes.ContainsRune(matches, s.cur) {
		s.advance()
		return true
	}
	return false
}

// illegal emits the diagnostic through the error handler and builds the
// corresponding ILLEGAL token, spanning [startOff, s.off).
func (s *Scanner) illegal(tokVal *token.Value, startOff, startLine, startCol int, msg string) token.Token {
	s.error(startOff, startLine, startCol, msg)
	*tokVal = token.Value{
		Raw:    string(s.src[startOff:s.off]),
		String: msg,
		Off:    startOff,
		Pos:    makeSafePos(startLine, startCol),
	}
	return token.ILLEGAL
}

// Scan returns the next token in the source file. Once the source is
// exhausted it returns EOF on every call.
func (s *Scanner) Scan(tokVal *token.Value) (tok token.Token) {
	for {
		if msg, off, line, col := s.skipWhitespaceAndComments(); msg != "" {
			// an unterminated block comment consumes the rest of the input
			return s.illegal(tokVal, off, line, col, msg)
		}
		if s.cur != '\n' {
			break
		}

		// a run of line breaks, blank lines and comment-only lines included,
		// collapses into a single NEWLINE token at the first break.
		nlOff, nlLine, nlCol := s.off, s.line, s.col
		s.advance()
		if !s.nlEmitted {
			s.nlEmitted = true
			*tokVal = token.Value{Raw: "\n", Off: nlOff, Pos: makeSafePos(nlLine, nlCol)}
			return token.NEWLINE
		}
	}
	s.nlEmitted = false

	// current token start
	startOff, startLine, startCol := s.off, s.line, s.col

	switch cur := s.cur; {
	case isLetter(cur):
		// keywords and identifiers
		lit := s.ident()
		tok = token.IDENT
		if len(lit) > 1 {
			// keywords are longer than one letter - avoid lookup otherwise
			tok = token.LookupKw(lit)
		}
		*tokVal = token.Value{Raw: lit, Off: startOff, Pos: makeSafePos(startLine, startCol)}
		return tok

	case isDecimal(cur):
		return s.number(tokVal)

	default:
		s.advance() // always make progress
		switch cur {
		case '"':
			if s.cur == '"' && s.peek() == '"' {
				return s.rawString(tokVal, startOff, startLine, startCol)
			}
			return s.stringSegment(tokVal, startOff, startLine, startCol)

		case '(':
			if s.numParens > 0 {
				s.parens[s.numParens-1]++
			}
			tok = token.LPAREN

		case ')':
			if s.numParens > 0 {
				s.parens[s.numParens-1]--
				if s.parens[s.numParens-1] == 0 {
					// this ')' closes an interpolated expression, resume
					// scanning the enclosing string literal
					s.numParens--
					return s.stringSegment(tokVal, startOff, startLine, startCol)
				}
			}
			tok = token.RPAREN

		case '[', ']', '{', '}', ':', ',', '#', '+', '-', '*', '/', '%', '^', '~', '?':
			// unambiguous single-char punctuation ('/' because comments were
			// already skipped)
			tok = token.LookupPunct(string(cur))

		case '.':
			tok = token.DOT
			if s.advanceIf('.') {
				tok = token.DOTDOT
				if s.advanceIf('.') {
					tok = token.DOTDOTDOT
				}
			}

		case '<':
			switch {
			case s.advanceIf('<'):
				tok = token.LTLT
			case s.advanceIf('='):
				tok = token.LE
			default:
				tok = token.LT
			}

		case '>':
			switch {
			case s.advanceIf('>'):
				tok = token.GTGT
			case s.advanceIf('='):
				tok = token.GE
			default:
				tok = token.GT
			}

		case '=':
			tok = token.EQ
			if s.advanceIf('=') {
				tok = token.EQEQ
			}

		case '!':
			tok = token.BANG
			if s.advanceIf('=') {
				tok = token.BANGEQ
			}

		case '&':
			tok = token.AMPERSAND
			if s.advanceIf('&') {
				tok = token.AMPAMP
			}

		case '|':
			tok = token.PIPE
			if s.advanceIf('|') {
				tok = token.PIPEPIPE
			}

		case -1:
			*tokVal = token.Value{Off: startOff, Pos: makeSafePos(startLine, startCol)}
			return token.EOF

		default:
			// scanning resumes at the next byte
			if cur == utf8.RuneError && s.invalidByte > 0 {
				cur = rune(s.invalidByte)
				s.invalidByte = 0
			}
			return s.illegal(tokVal, startOff, startLine, startCol,
				fmt.Sprintf("illegal character %#U", cur))
		}

		*tokVal = token.Value{Raw: tok.String(), Off: startOff, Pos: makeSafePos(startLine, startCol)}
		return tok
	}
}

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

func isLetter(rn rune) bool {
	return 'a' <= rn && rn <= 'z' ||
		'A' <= rn && rn <= 'Z' ||
		rn == '_' ||
		rn >= utf8.RuneSelf && unicode.IsLetter(rn)
}

func isDigit(rn rune) bool {
	return '0' <= rn && rn <= '9' ||
		rn >= utf8.RuneSelf && unicode.IsDigit(rn)
}

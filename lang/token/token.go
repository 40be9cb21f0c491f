// Package token defines the lexical tokens of the roitelet language and the
// position types used to locate them in source files.
package token

import "strconv"

// A Token represents a lexical token.
type Token int8

//nolint:revive
const (
	ILLEGAL Token = iota // scan error, Value.String holds the diagnostic
	EOF
	NEWLINE // logical line break, consecutive breaks collapse into one

	// Tokens with values
	IDENT  // x
	NUMBER // 123, 0x1a, 1.23e4
	STRING // "foo" or """foo"""
	INTERP // "foo %( - string segment preceding an interpolated expression

	// Punctuation
	LPAREN     // (
	RPAREN     // )
	LBRACK     // [
	RBRACK     // ]
	LBRACE     // {
	RBRACE     // }
	COLON      // :
	COMMA      // ,
	DOT        // .
	DOTDOT     // ..
	DOTDOTDOT  // ...
	STAR       // *
	SLASH      // /
	PERCENT    // %
	POUND      // #
	PLUS       // +
	MINUS      // -
	LTLT       // <<
	GTGT       // >>
	PIPE       // |
	PIPEPIPE   // ||
	CIRCUMFLEX // ^
	AMPERSAND  // &
	AMPAMP     // &&
	BANG       // !
	BANGEQ     // !=
	TILDE      // ~
	QUESTION   // ?
	EQ         // =
	EQEQ       // ==
	LT         // <
	LE         // <=
	GT         // >
	GE         // >=

	// Keywords
	AS
	BREAK
	CLASS
	CONSTRUCT
	CONTINUE
	ELSE
	FALSE
	FOR
	FOREIGN
	FUN
	IF
	IMPORT
	IN
	IS
	NULL
	RETURN
	STATIC
	SUPER
	THIS
	TRUE
	VAR
	WHILE

	maxToken             = WHILE
	litStart, litEnd     = IDENT, INTERP
	punctStart, punctEnd = LPAREN, GE
	kwStart, kwEnd       = AS, WHILE
)

func (tok Token) String() string { return tokenNames[tok] }

// GoString is like String but quotes punctuation tokens. Use Sprintf("%#v",
// tok) when constructing error messages.
func (tok Token) GoString() string {
	if tok >= punctStart && tok <= punctEnd {
		return "'" + tokenNames[tok] + "'"
	}
	return tokenNames[tok]
}

// IsKeyword returns true if the token is a reserved word.
func (tok Token) IsKeyword() bool { return tok >= kwStart && tok <= kwEnd }

// HasValue returns true if the token carries a decoded literal value in its
// associated Value struct.
func (tok Token) HasValue() bool { return tok >= litStart && tok <= litEnd }

var tokenNames = [...]string{
	ILLEGAL: "illegal token",
	EOF:     "end of file",
	NEWLINE: "newline",

	IDENT:  "identifier",
	NUMBER: "number literal",
	STRING: "string literal",
	INTERP: "string interpolation",

	LPAREN:     "(",
	RPAREN:     ")",
	LBRACK:     "[",
	RBRACK:     "]",
	LBRACE:     "{",
	RBRACE:     "}",
	COLON:      ":",
	COMMA:      ",",
	DOT:        ".",
	DOTDOT:     "..",
	DOTDOTDOT:  "...",
	STAR:       "*",
	SLASH:      "/",
	PERCENT:    "%",
	POUND:      "#",
	PLUS:       "+",
	MINUS:      "-",
	LTLT:       "<<",
	GTGT:       ">>",
	PIPE:       "|",
	PIPEPIPE:   "||",
	CIRCUMFLEX: "^",
	AMPERSAND:  "&",
	AMPAMP:     "&&",
	BANG:       "!",
	BANGEQ:     "!=",
	TILDE:      "~",
	QUESTION:   "?",
	EQ:         "=",
	EQEQ:       "==",
	LT:         "<",
	LE:         "<=",
	GT:         ">",
	GE:         ">=",

	AS:        "as",
	BREAK:     "break",
	CLASS:     "class",
	CONSTRUCT: "construct",
	CONTINUE:  "continue",
	ELSE:      "else",
	FALSE:     "false",
	FOR:       "for",
	FOREIGN:   "foreign",
	FUN:       "fun",
	IF:        "if",
	IMPORT:    "import",
	IN:        "in",
	IS:        "is",
	NULL:      "null",
	RETURN:    "return",
	STATIC:    "static",
	SUPER:     "super",
	THIS:      "this",
	TRUE:      "true",
	VAR:       "var",
	WHILE:     "while",
}

var (
	keywords = func() map[string]Token {
		kw := make(map[string]Token)
		for i := kwStart; i <= kwEnd; i++ {
			kw[tokenNames[i]] = i
		}
		return kw
	}()
	punctuations = func() map[string]Token {
		puncts := make(map[string]Token)
		for i := punctStart; i <= punctEnd; i++ {
			puncts[tokenNames[i]] = i
		}
		return puncts
	}()
)

// LookupKw maps an identifier to its keyword token or IDENT (if not a
// keyword). The reserved-word set is fixed at build time, identifiers do
// not need to be interned before classification.
func LookupKw(ident string) Token {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// LookupPunct maps a punctuation to its token or ILLEGAL (if not a valid
// punctuation).
func LookupPunct(punct string) Token {
	if tok, ok := punctuations[punct]; ok {
		return tok
	}
	return ILLEGAL
}

// Value records the raw text, position and decoded value associated with
// each token. The raw text is the lexeme exactly as it appears in the
// source: the token spans bytes [Off, Off+len(Raw)) of the source buffer.
type Value struct {
	Raw    string  // raw text of token
	Num    float64 // decoded number
	String string  // decoded string segment, or diagnostic message for ILLEGAL
	Off    int     // byte offset of the start of the token
	Pos    Pos     // start position of token
}

// Literal returns the string representation of the literal value of the
// token from its associated Value struct. If tok carries no value, it
// returns an empty string.
func (tok Token) Literal(v Value) string {
	switch tok {
	case IDENT:
		return v.Raw
	case STRING, INTERP:
		return strconv.Quote(v.String)
	case NUMBER:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case ILLEGAL:
		return v.String
	default:
		return ""
	}
}

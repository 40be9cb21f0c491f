package token

import "fmt"

const (
	lineBits = 18
	colBits  = 32 - lineBits

	// MaxLines is the maximum 1-based line number value that can be encoded in
	// Pos.
	MaxLines = (1 << lineBits) - 1
	// MaxCols is the maximum 1-based column number value that can be encoded in
	// Pos.
	MaxCols = (1 << colBits) - 1

	lineMask = MaxLines
	colMask  = MaxCols
)

// Pos is an efficient encoding of a 1-based line and column position in a
// 32-bit unsigned integer. A value of 0 for either line or column should be
// interpreted as "unknown".
type Pos uint32

// MakePos creates a Pos value encoding the provided line and col. It is the
// caller's responsibility to ensure the values are > 0 and <= the maximum
// allowed.
func MakePos(line, col int) Pos {
	return Pos(col<<lineBits | line)
}

// LineCol returns the line and column values encoded in Pos.
func (p Pos) LineCol() (int, int) {
	l := p & lineMask
	c := (p >> lineBits) & colMask
	return int(l), int(c)
}

// Line returns the line value encoded in Pos.
func (p Pos) Line() int {
	l, _ := p.LineCol()
	return l
}

// Unknown returns true if either line or column value is unknown.
func (p Pos) Unknown() bool {
	l, c := p.LineCol()
	return l == 0 || c == 0
}

// PosMode controls how positions are rendered by Position.Format.
type PosMode int

//nolint:revive
const (
	PosNone    PosMode = iota // filename only
	PosOffsets                // filename:#offset
	PosLineCol                // filename:line:col
)

// A Position is a full position description: the filename, the byte offset
// in that file and the corresponding 1-based line and column. It is more
// expensive to carry around than a Pos and is built on demand for display.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Col      int
}

// MakePosition creates a Position for the provided filename, offset and
// encoded line/col pair.
func MakePosition(filename string, offset int, pos Pos) Position {
	line, col := pos.LineCol()
	return Position{Filename: filename, Offset: offset, Line: line, Col: col}
}

// String renders the position as filename:line:col, omitting unknown parts.
func (p Position) String() string {
	if p.Line == 0 || p.Col == 0 {
		return p.Filename
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// Format renders the position according to the requested mode.
func (p Position) Format(mode PosMode) string {
	switch mode {
	case PosOffsets:
		return fmt.Sprintf("%s:#%d", p.Filename, p.Offset)
	case PosLineCol:
		return p.String()
	default:
		return p.Filename
	}
}

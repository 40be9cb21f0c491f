package types

import "strconv"

// Number is the numeric type of the language, a 64-bit float. Integer
// literals are represented exactly up to 2^53.
type Number float64

var _ Value = Number(0)

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (n Number) Type() string { return "number" }
func (n Number) Truth() Bool  { return True }

package types

// Bool is the type of boolean values.
type Bool bool

const (
	False Bool = false
	True  Bool = true
)

// Bool is a Value.
var _ Value = True

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func (b Bool) Type() string { return "bool" }
func (b Bool) Truth() Bool  { return b }

package types

import "fmt"

// ErrUnhashableKey is returned when a value that is not content-hashable is
// used where a map key is required.
var ErrUnhashableKey = fmt.Errorf("map: unhashable key type")

type keyKind uint8

const (
	kindNil keyKind = iota
	kindBool
	kindNumber
	kindString
	kindRange
)

// mapKey is the canonical comparable form of a hashable Value. Two values
// that compare equal by Equals reduce to identical mapKeys, so Go equality
// on mapKey matches the language's key equality. NaN numbers produce a
// mapKey that is never equal to any key, including itself.
type mapKey struct {
	kind      keyKind
	num, num2 float64
	flag      bool
	str       string
}

// keyOf reduces v to its canonical key form, or fails with
// ErrUnhashableKey for lists, maps, functions, closures, classes and
// instances, which only have identity equality.
func keyOf(v Value) (mapKey, error) {
	switch vv := v.(type) {
	case NilType:
		return mapKey{kind: kindNil}, nil
	case Bool:
		return mapKey{kind: kindBool, flag: bool(vv)}, nil
	case Number:
		return mapKey{kind: kindNumber, num: float64(vv)}, nil
	case *String:
		return mapKey{kind: kindString, str: vv.s}, nil
	case *Range:
		return mapKey{kind: kindRange, num: vv.from, num2: vv.to, flag: vv.inclusive}, nil
	default:
		return mapKey{}, fmt.Errorf("%w: %s", ErrUnhashableKey, v.Type())
	}
}

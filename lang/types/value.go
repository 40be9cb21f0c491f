// Package types defines the runtime representation of every roitelet value:
// the inline scalars (nil, booleans, numbers) and the heap objects (strings,
// lists, maps, ranges, functions, closures, classes and instances) allocated
// from a Heap. The bytecode interpreter and the reclamation strategy are the
// consumers of this package; neither is implemented here.
package types

// Value is the interface implemented by any value manipulated by the
// machine.
type Value interface {
	// String returns the string representation of the value.
	String() string

	// Type returns a short string describing the value's type.
	Type() string

	// Truth returns the truth value of the value. Only Nil and False are
	// falsy, every other value including zero is truthy.
	Truth() Bool
}

// Equals reports whether two values are equal. Numbers compare by IEEE-754
// value (NaN is never equal to itself), strings by byte content, ranges by
// their from/to/inclusive triple, and every other variant by identity.
func Equals(x, y Value) bool {
	switch xv := x.(type) {
	case NilType:
		_, ok := y.(NilType)
		return ok
	case Bool:
		yv, ok := y.(Bool)
		return ok && xv == yv
	case Number:
		yv, ok := y.(Number)
		return ok && xv == yv
	case *String:
		yv, ok := y.(*String)
		return ok && xv.s == yv.s
	case *Range:
		yv, ok := y.(*Range)
		return ok && xv.from == yv.from && xv.to == yv.to && xv.inclusive == yv.inclusive
	default:
		return x == y
	}
}

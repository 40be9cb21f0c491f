package types

import "fmt"

// A Range is an immutable numeric interval from From to To, inclusive of To
// when Inclusive is true.
type Range struct {
	object
	from, to  float64
	inclusive bool
}

var _ Object = (*Range)(nil)

// NewRange returns a range over [from, to] or [from, to) depending on
// inclusive.
func (h *Heap) NewRange(from, to float64, inclusive bool) *Range {
	r := &Range{from: from, to: to, inclusive: inclusive}
	r.class = h.RangeClass
	h.register(r)
	return r
}

func (r *Range) String() string {
	op := ".."
	if !r.inclusive {
		op = "..."
	}
	return fmt.Sprintf("%v%s%v", r.from, op, r.to)
}

func (r *Range) Type() string { return "range" }

// From returns the lower bound of the range.
func (r *Range) From() float64 { return r.from }

// To returns the upper bound of the range.
func (r *Range) To() float64 { return r.to }

// Inclusive reports whether To is part of the range.
func (r *Range) Inclusive() bool { return r.inclusive }

package types

import (
	"fmt"

	"github.com/mna/roitelet/lang/buffer"
)

// A List is a mutable growable sequence of values.
type List struct {
	object
	elems buffer.Buffer[Value]
}

var _ Object = (*List)(nil)

// NewList returns a list with capacity preallocated for at least size
// elements.
func (h *Heap) NewList(size int) *List {
	l := &List{}
	if size > 0 {
		l.elems = *buffer.New[Value](size)
	}
	l.class = h.ListClass
	h.register(l)
	return l
}

func (l *List) String() string { return fmt.Sprintf("list(%p)", l) }
func (l *List) Type() string   { return "list" }

// Len returns the number of elements in the list.
func (l *List) Len() int { return l.elems.Len() }

// Append adds v at the end of the list.
func (l *List) Append(v Value) { l.elems.Push(v) }

// Index returns the element at index i, or buffer.ErrOutOfRange if i is
// not in [0, Len).
func (l *List) Index(i int) (Value, error) { return l.elems.At(i) }

// SetIndex replaces the element at index i, or returns
// buffer.ErrOutOfRange if i is not in [0, Len).
func (l *List) SetIndex(i int, v Value) error { return l.elems.Set(i, v) }

// Clear removes all elements, keeping the backing storage.
func (l *List) Clear() { l.elems.Clear() }

// Elems returns the elements as a slice sharing the list's storage. The
// slice is invalidated by the next Append or Clear.
func (l *List) Elems() []Value { return l.elems.Values() }

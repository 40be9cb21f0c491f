// Package symbol implements the deduplicating string interner used by the
// compiler to number identifiers and method names. Comparing symbol ids is
// much cheaper than comparing identifier text on every variable or method
// dispatch.
package symbol

import (
	"fmt"

	"github.com/dolthub/swiss"
	"github.com/mna/roitelet/lang/buffer"
)

// ErrUnknownID is returned by Name when the id was never assigned by the
// table.
var ErrUnknownID = fmt.Errorf("symbol: unknown id")

// A Table assigns a stable integer id to each distinct string, in
// first-seen order starting at 0. Ids are never reused or reassigned for
// the lifetime of the table. A Table must not be shared between VM contexts
// without external synchronization.
type Table struct {
	names buffer.Buffer[string] // id -> name, insertion-ordered
	index *swiss.Map[string, uint32]
}

// NewTable returns an empty symbol table with capacity preallocated for at
// least size symbols.
func NewTable(size int) *Table {
	return &Table{index: swiss.NewMap[string, uint32](uint32(size))}
}

// Len returns the number of distinct symbols interned so far.
func (t *Table) Len() int { return t.names.Len() }

// Intern returns the id of name, assigning the next free id if name was
// never seen before.
func (t *Table) Intern(name string) uint32 {
	if id, ok := t.index.Get(name); ok {
		return id
	}
	id := uint32(t.names.Len())
	t.names.Push(name)
	t.index.Put(name, id)
	return id
}

// Lookup returns the id of name if it was interned. It never mutates the
// table.
func (t *Table) Lookup(name string) (uint32, bool) {
	return t.index.Get(name)
}

// Name returns the string that was interned under id, or ErrUnknownID if no
// symbol has that id.
func (t *Table) Name(id uint32) (string, error) {
	name, err := t.names.At(int(id))
	if err != nil {
		return "", fmt.Errorf("%w: %d", ErrUnknownID, id)
	}
	return name, nil
}

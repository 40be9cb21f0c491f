package types

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// A Map is a mutable hash table from values to values. Keys must be
// content-hashable: nil, bool, number, string or range. Inserting any other
// key kind fails with ErrUnhashableKey.
type Map struct {
	object
	m *swiss.Map[mapKey, mapEntry]
}

// mapEntry keeps the original key Value alongside the stored value so that
// iteration can yield it back.
type mapEntry struct {
	key Value
	val Value
}

var _ Object = (*Map)(nil)

// NewMap returns a map with initial capacity for at least size entries.
func (h *Heap) NewMap(size int) *Map {
	m := &Map{m: swiss.NewMap[mapKey, mapEntry](uint32(size))}
	m.class = h.MapClass
	h.register(m)
	return m
}

func (m *Map) String() string { return fmt.Sprintf("map(%p)", m) }
func (m *Map) Type() string   { return "map" }

// Len returns the number of entries in the map.
func (m *Map) Len() int { return m.m.Count() }

// Get returns the value stored under k. It reports found=false when the
// map has no such key, and fails if k is not a hashable kind. A NaN key is
// never found, mirroring its equality.
func (m *Map) Get(k Value) (v Value, found bool, err error) {
	mk, err := keyOf(k)
	if err != nil {
		return nil, false, err
	}
	e, ok := m.m.Get(mk)
	if !ok {
		return nil, false, nil
	}
	return e.val, true, nil
}

// SetKey stores v under k, replacing any existing entry, or fails if k is
// not a hashable kind.
func (m *Map) SetKey(k, v Value) error {
	mk, err := keyOf(k)
	if err != nil {
		return err
	}
	m.m.Put(mk, mapEntry{key: k, val: v})
	return nil
}

// Delete removes the entry stored under k and reports whether one existed.
// It fails if k is not a hashable kind.
func (m *Map) Delete(k Value) (bool, error) {
	mk, err := keyOf(k)
	if err != nil {
		return false, err
	}
	return m.m.Delete(mk), nil
}

// Iter calls f for each entry of the map until f returns true (stop). The
// map must not be mutated during iteration.
func (m *Map) Iter(f func(k, v Value) (stop bool)) {
	m.m.Iter(func(_ mapKey, e mapEntry) bool {
		return f(e.key, e.val)
	})
}

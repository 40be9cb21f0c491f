package types

import "strconv"

// String is an immutable sequence of bytes with its content hash cached at
// construction.
type String struct {
	object
	s    string
	hash uint64
}

var _ Object = (*String)(nil)

// NewString returns a string object holding s.
func (h *Heap) NewString(s string) *String {
	str := &String{s: s, hash: h.hasher.Hash(mapKey{kind: kindString, str: s})}
	str.class = h.StringClass
	h.register(str)
	return str
}

func (s *String) String() string { return strconv.Quote(s.s) }
func (s *String) Type() string   { return "string" }

// Str returns the byte content of the string.
func (s *String) Str() string { return s.s }

// Len returns the length of the string in bytes.
func (s *String) Len() int { return len(s.s) }

// Hash returns the cached content hash of the string.
func (s *String) Hash() uint64 { return s.hash }

// Package buffer implements the growable contiguous container that backs
// the runtime's strings, lists, constant pools and symbol table. A single
// type-parameterized implementation replaces the per-element-kind copies
// that such runtimes typically accumulate.
package buffer

import "fmt"

// ErrOutOfRange is returned by At when the index is outside [0, Len).
// Callers that have already validated the index can use MustAt.
var ErrOutOfRange = fmt.Errorf("buffer: index out of range")

// minCapacity is the capacity allocated on the first push into an empty
// buffer.
const minCapacity = 4

// A Buffer is a growable contiguous sequence of T with amortized O(1)
// append. The zero value is an empty buffer ready for use. Buffers are not
// copy-on-write: every reference to the same Buffer observes its mutations.
type Buffer[T any] struct {
	data  []T
	count int
}

// New returns a buffer with capacity preallocated for at least n elements.
func New[T any](n int) *Buffer[T] {
	var b Buffer[T]
	if n > 0 {
		b.data = make([]T, n)
	}
	return &b
}

// Len returns the number of elements in the buffer.
func (b *Buffer[T]) Len() int { return b.count }

// Cap returns the current capacity of the backing storage.
func (b *Buffer[T]) Cap() int { return len(b.data) }

// Push appends v to the buffer, growing the backing storage if required.
// Growth doubles the capacity, starting at 4.
func (b *Buffer[T]) Push(v T) {
	if b.count == len(b.data) {
		newCap := 2 * len(b.data)
		if newCap < minCapacity {
			newCap = minCapacity
		}
		data := make([]T, newCap)
		copy(data, b.data)
		b.data = data
	}
	b.data[b.count] = v
	b.count++
}

// At returns the element at index i, or ErrOutOfRange if i is not in
// [0, Len).
func (b *Buffer[T]) At(i int) (T, error) {
	if i < 0 || i >= b.count {
		var zero T
		return zero, fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, b.count)
	}
	return b.data[i], nil
}

// MustAt is like At but panics on an out-of-range index. It is meant for
// callers that have already bounds-checked i.
func (b *Buffer[T]) MustAt(i int) T {
	if i < 0 || i >= b.count {
		panic(fmt.Sprintf("buffer: index %d out of range (len %d)", i, b.count))
	}
	return b.data[i]
}

// Set replaces the element at index i, or returns ErrOutOfRange if i is not
// in [0, Len).
func (b *Buffer[T]) Set(i int, v T) error {
	if i < 0 || i >= b.count {
		return fmt.Errorf("%w: %d (len %d)", ErrOutOfRange, i, b.count)
	}
	b.data[i] = v
	return nil
}

// Clear resets the length to zero while keeping the backing storage, so a
// buffer can be reused without reallocating.
func (b *Buffer[T]) Clear() {
	var zero T
	for i := 0; i < b.count; i++ {
		b.data[i] = zero // drop references so values can be collected
	}
	b.count = 0
}

// Release frees the backing storage. The buffer must not be used again
// except to call Release or Clear, which are no-ops on a released buffer.
func (b *Buffer[T]) Release() {
	b.data = nil
	b.count = 0
}

// Values returns the live elements as a slice sharing the backing storage.
// The slice is invalidated by the next Push, Clear or Release.
func (b *Buffer[T]) Values() []T { return b.data[:b.count] }

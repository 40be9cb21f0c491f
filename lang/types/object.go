package types

// An Object is a heap-resident, class-bearing value, as opposed to an
// inline scalar. Every object, including classes themselves, has a runtime
// class.
type Object interface {
	Value

	// Class returns the runtime class of the object.
	Class() *Class

	// Mark returns the reclamation bookkeeping field. Its meaning is opaque
	// to this layer, only the collector reads and writes it.
	Mark() uint32

	// SetMark sets the reclamation bookkeeping field.
	SetMark(uint32)
}

// object is the common header embedded in every heap object variant.
type object struct {
	class *Class
	mark  uint32
}

func (o *object) Class() *Class    { return o.class }
func (o *object) Mark() uint32     { return o.mark }
func (o *object) SetMark(m uint32) { o.mark = m }
func (o *object) Truth() Bool      { return True }

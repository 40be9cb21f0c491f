package types

import (
	"fmt"

	"github.com/mna/roitelet/lang/buffer"
)

// An Instance is a user-defined object: a class reference and one mutable
// value slot per declared field, nil-initialized.
type Instance struct {
	object
	fields buffer.Buffer[Value]
}

var _ Object = (*Instance)(nil)

// NewInstance returns an instance of cls with every field slot set to Nil.
func (h *Heap) NewInstance(cls *Class) *Instance {
	inst := &Instance{}
	if n := cls.NumFields(); n > 0 {
		inst.fields = *buffer.New[Value](n)
		for i := 0; i < n; i++ {
			inst.fields.Push(Nil)
		}
	}
	inst.class = cls
	h.register(inst)
	return inst
}

func (inst *Instance) String() string {
	return fmt.Sprintf("instance(%p %s)", inst, inst.class.Name().Str())
}

func (inst *Instance) Type() string { return inst.class.Name().Str() }

// NumFields returns the number of field slots.
func (inst *Instance) NumFields() int { return inst.fields.Len() }

// Field returns the value in slot i, or buffer.ErrOutOfRange.
func (inst *Instance) Field(i int) (Value, error) { return inst.fields.At(i) }

// SetField replaces the value in slot i, or returns buffer.ErrOutOfRange.
func (inst *Instance) SetField(i int, v Value) error { return inst.fields.Set(i, v) }

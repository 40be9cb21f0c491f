package types

import (
	"fmt"

	"github.com/dolthub/swiss"
)

// MaxFields is the maximum number of fields a class can have, including
// inherited fields. The limit is explicit in the bytecode, which addresses
// fields with a single byte.
const MaxFields = 255

var (
	// ErrFrozenClass is returned when adding a method to a class after its
	// construction completed.
	ErrFrozenClass = fmt.Errorf("class: frozen")

	// ErrTooManyFields is returned when a class declaration exceeds
	// MaxFields, counting inherited fields.
	ErrTooManyFields = fmt.Errorf("class: too many fields")

	// ErrNoMethod is returned by ResolveMethod when no class in the
	// superclass chain defines the requested symbol.
	ErrNoMethod = fmt.Errorf("class: method not found")
)

// A Class describes the shape and behavior of its instances: a field count
// and a method table keyed by symbol id. Classes are mutable only while
// they are built, then frozen; a frozen class rejects further method
// binding.
type Class struct {
	object
	name      *String
	super     *Class
	methods   *swiss.Map[uint32, Value]
	numFields int
	frozen    bool
}

var _ Object = (*Class)(nil)

// NewClass returns a class named name with the given superclass and number
// of declared fields. The superclass may only be nil for the heap's root
// Object class. The class's metaclass is created along with it, so that
// the class itself is an object whose class is the metaclass. The total
// field count, declared plus inherited, must not exceed MaxFields.
func (h *Heap) NewClass(name *String, super *Class, numFields int) (*Class, error) {
	total := numFields
	if super != nil {
		total += super.numFields
	}
	if total > MaxFields {
		return nil, fmt.Errorf("%w: %d (max %d)", ErrTooManyFields, total, MaxFields)
	}

	meta := &Class{
		name:    h.NewString(name.Str() + " metaclass"),
		super:   h.ClassClass,
		methods: swiss.NewMap[uint32, Value](8),
	}
	meta.class = h.ClassClass

	cls := &Class{
		name:      name,
		super:     super,
		methods:   swiss.NewMap[uint32, Value](8),
		numFields: total,
	}
	cls.class = meta
	h.register(meta, cls)
	return cls, nil
}

func (c *Class) String() string { return fmt.Sprintf("class(%s)", c.name.Str()) }
func (c *Class) Type() string   { return "class" }

// Name returns the class name.
func (c *Class) Name() *String { return c.name }

// Super returns the superclass, nil only for the root Object class.
func (c *Class) Super() *Class { return c.super }

// NumFields returns the number of instance fields, inherited fields
// included.
func (c *Class) NumFields() int { return c.numFields }

// Frozen reports whether class construction has completed.
func (c *Class) Frozen() bool { return c.frozen }

// AddMethod binds method under the symbol id, replacing any previous
// binding on this class. The method must be a function or a closure. It
// fails with ErrFrozenClass once the class is frozen.
func (c *Class) AddMethod(id uint32, method Value) error {
	if c.frozen {
		return fmt.Errorf("%w: %s", ErrFrozenClass, c.name.Str())
	}
	switch method.(type) {
	case *Function, *Closure:
	default:
		return fmt.Errorf("class: method must be a function, not %s", method.Type())
	}
	c.methods.Put(id, method)
	return nil
}

// Freeze completes class construction. Freezing is not reversible.
func (c *Class) Freeze() { c.frozen = true }

// NumMethods returns the number of methods bound directly on the class,
// not counting inherited ones.
func (c *Class) NumMethods() int { return c.methods.Count() }

// ResolveMethod walks the superclass chain from c upward and returns the
// first binding of the symbol id. Absence after reaching the root is
// reported as ErrNoMethod, it is the interpreter's job to turn it into a
// runtime error.
func (c *Class) ResolveMethod(id uint32) (Value, error) {
	for cls := c; cls != nil; cls = cls.super {
		if m, ok := cls.methods.Get(id); ok {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: symbol %d on class %s", ErrNoMethod, id, c.name.Str())
}

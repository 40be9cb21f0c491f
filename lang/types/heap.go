package types

import (
	"github.com/dolthub/maphash"
	"github.com/dolthub/swiss"
)

// A Heap is the allocation context for every object of a VM instance. It
// keeps the registry of live objects for the collector, the seeded hasher
// used for content hashing, and the bootstrapped core classes. A Heap and
// the objects allocated from it must not be shared between VM contexts
// without external synchronization.
type Heap struct {
	// Core classes. Every object allocated from this heap has its class
	// rooted, directly or through a metaclass, in ObjectClass and ClassClass.
	ObjectClass *Class
	ClassClass  *Class
	StringClass *Class
	ListClass   *Class
	MapClass    *Class
	RangeClass  *Class
	FnClass     *Class

	hasher  maphash.Hasher[mapKey]
	objects []Object
}

// NewHeap returns a heap with the core class hierarchy bootstrapped: a
// class's class is its metaclass, a metaclass's class is Class, Class's
// class is itself and Object is the root superclass.
func NewHeap() *Heap {
	h := &Heap{hasher: maphash.NewHasher[mapKey]()}

	// the root of the hierarchy is cyclic and must be wired by hand
	h.ClassClass = &Class{methods: swiss.NewMap[uint32, Value](8)}
	h.ClassClass.class = h.ClassClass
	h.ObjectClass = &Class{methods: swiss.NewMap[uint32, Value](8)}
	objectMeta := &Class{methods: swiss.NewMap[uint32, Value](8), super: h.ClassClass}
	objectMeta.class = h.ClassClass
	h.ObjectClass.class = objectMeta
	h.ClassClass.super = h.ObjectClass
	h.register(h.ObjectClass, objectMeta, h.ClassClass)

	h.StringClass = h.coreClass()
	h.ListClass = h.coreClass()
	h.MapClass = h.coreClass()
	h.RangeClass = h.coreClass()
	h.FnClass = h.coreClass()

	// names can only be allocated once StringClass exists
	h.ObjectClass.name = h.NewString("Object")
	objectMeta.name = h.NewString("Object metaclass")
	h.ClassClass.name = h.NewString("Class")
	h.StringClass.name = h.NewString("String")
	h.ListClass.name = h.NewString("List")
	h.MapClass.name = h.NewString("Map")
	h.RangeClass.name = h.NewString("Range")
	h.FnClass.name = h.NewString("Fn")
	return h
}

// coreClass allocates an unnamed built-in class with Object as superclass
// and a regular metaclass.
func (h *Heap) coreClass() *Class {
	meta := &Class{methods: swiss.NewMap[uint32, Value](8), super: h.ClassClass}
	meta.class = h.ClassClass
	cls := &Class{methods: swiss.NewMap[uint32, Value](8), super: h.ObjectClass}
	cls.class = meta
	h.register(meta, cls)
	return cls
}

func (h *Heap) register(objs ...Object) {
	h.objects = append(h.objects, objs...)
}

// Objects returns the registry of every object allocated from the heap, in
// allocation order. The collector walks this slice; other callers must
// treat it as read-only.
func (h *Heap) Objects() []Object { return h.objects }

// Hash returns the content hash of v, or ErrUnhashableKey if v is not one
// of the hashable kinds (nil, bool, number, string, range). Values that
// compare equal hash identically; NaN is hashable but, like any NaN
// comparison, never equal to itself.
func (h *Heap) Hash(v Value) (uint64, error) {
	if s, ok := v.(*String); ok {
		return s.hash, nil
	}
	k, err := keyOf(v)
	if err != nil {
		return 0, err
	}
	return h.hasher.Hash(k), nil
}

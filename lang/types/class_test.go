package types_test

import (
	"testing"

	"github.com/mna/roitelet/lang/buffer"
	"github.com/mna/roitelet/lang/symbol"
	"github.com/mna/roitelet/lang/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoreHierarchy(t *testing.T) {
	h := types.NewHeap()

	// Object is the root
	require.Nil(t, h.ObjectClass.Super())
	require.Equal(t, h.ObjectClass, h.ClassClass.Super())

	// a class's class is its metaclass, a metaclass's class is Class and
	// Class's class is itself
	objectMeta := h.ObjectClass.Class()
	require.Equal(t, "Object metaclass", objectMeta.Name().Str())
	require.Equal(t, h.ClassClass, objectMeta.Class())
	require.Equal(t, h.ClassClass, h.ClassClass.Class())

	for _, cls := range []*types.Class{h.StringClass, h.ListClass, h.MapClass, h.RangeClass, h.FnClass} {
		require.Equal(t, h.ObjectClass, cls.Super(), cls.Name().Str())
		require.Equal(t, h.ClassClass, cls.Class().Class(), cls.Name().Str())
	}

	// every built-in object reports its core class
	assert.Equal(t, h.StringClass, h.NewString("x").Class())
	assert.Equal(t, h.ListClass, h.NewList(0).Class())
	assert.Equal(t, h.MapClass, h.NewMap(0).Class())
	assert.Equal(t, h.RangeClass, h.NewRange(0, 1, true).Class())
}

func TestNewClassMetaclass(t *testing.T) {
	h := types.NewHeap()

	cls, err := h.NewClass(h.NewString("Point"), h.ObjectClass, 2)
	require.NoError(t, err)
	require.Equal(t, "Point", cls.Name().Str())
	require.Equal(t, 2, cls.NumFields())

	meta := cls.Class()
	require.Equal(t, "Point metaclass", meta.Name().Str())
	require.Equal(t, h.ClassClass, meta.Super())
	require.Equal(t, h.ClassClass, meta.Class())
}

func TestNewClassInheritedFields(t *testing.T) {
	h := types.NewHeap()

	base, err := h.NewClass(h.NewString("Base"), h.ObjectClass, 3)
	require.NoError(t, err)
	derived, err := h.NewClass(h.NewString("Derived"), base, 2)
	require.NoError(t, err)
	require.Equal(t, 5, derived.NumFields())

	_, err = h.NewClass(h.NewString("TooBig"), base, types.MaxFields)
	require.ErrorIs(t, err, types.ErrTooManyFields)
}

func TestMethodResolution(t *testing.T) {
	h := types.NewHeap()
	st := symbol.NewTable(0)
	idArea, idPerim, idMissing := st.Intern("area"), st.Intern("perimeter"), st.Intern("missing")

	area := h.NewFunction("area", []byte{1}, nil, 0, 0)
	perim := h.NewFunction("perimeter", []byte{2}, nil, 0, 0)
	override := h.NewFunction("area2", []byte{3}, nil, 0, 0)

	base, err := h.NewClass(h.NewString("Shape"), h.ObjectClass, 0)
	require.NoError(t, err)
	require.NoError(t, base.AddMethod(idArea, area))
	require.NoError(t, base.AddMethod(idPerim, perim))
	base.Freeze()

	derived, err := h.NewClass(h.NewString("Square"), base, 1)
	require.NoError(t, err)
	require.NoError(t, derived.AddMethod(idArea, override))
	derived.Freeze()

	// the first match walking from the instance's class upward wins
	m, err := derived.ResolveMethod(idArea)
	require.NoError(t, err)
	assert.Equal(t, types.Value(override), m)

	m, err = derived.ResolveMethod(idPerim)
	require.NoError(t, err)
	assert.Equal(t, types.Value(perim), m)

	_, err = derived.ResolveMethod(idMissing)
	require.ErrorIs(t, err, types.ErrNoMethod)
}

func TestAddMethodFrozen(t *testing.T) {
	h := types.NewHeap()
	st := symbol.NewTable(0)

	cls, err := h.NewClass(h.NewString("C"), h.ObjectClass, 0)
	require.NoError(t, err)
	require.False(t, cls.Frozen())

	fn := h.NewFunction("m", nil, nil, 0, 0)
	require.NoError(t, cls.AddMethod(st.Intern("m"), fn))
	cls.Freeze()
	require.True(t, cls.Frozen())
	require.ErrorIs(t, cls.AddMethod(st.Intern("n"), fn), types.ErrFrozenClass)
	require.Equal(t, 1, cls.NumMethods())
}

func TestAddMethodKind(t *testing.T) {
	h := types.NewHeap()
	cls, err := h.NewClass(h.NewString("C"), h.ObjectClass, 0)
	require.NoError(t, err)

	err = cls.AddMethod(0, types.Number(1))
	require.Error(t, err)

	clo := h.NewClosure(h.NewFunction("m", nil, nil, 0, 1))
	require.NoError(t, cls.AddMethod(0, clo))
}

func TestInstanceFields(t *testing.T) {
	h := types.NewHeap()
	cls, err := h.NewClass(h.NewString("Point"), h.ObjectClass, 2)
	require.NoError(t, err)
	cls.Freeze()

	inst := h.NewInstance(cls)
	require.Equal(t, cls, inst.Class())
	require.Equal(t, 2, inst.NumFields())

	// fields start as nil
	for i := 0; i < 2; i++ {
		v, err := inst.Field(i)
		require.NoError(t, err)
		assert.Equal(t, types.Value(types.Nil), v)
	}

	require.NoError(t, inst.SetField(1, types.Number(4)))
	v, err := inst.Field(1)
	require.NoError(t, err)
	require.Equal(t, types.Number(4), v)

	_, err = inst.Field(2)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)
	require.ErrorIs(t, inst.SetField(-1, types.Nil), buffer.ErrOutOfRange)
}

func TestFunctionShape(t *testing.T) {
	h := types.NewHeap()

	consts := buffer.New[types.Value](0)
	consts.Push(types.Number(1))
	consts.Push(h.NewString("s"))

	fn := h.NewFunction("f", []byte{1, 2, 3}, consts, 2, 1)
	require.Equal(t, "f", fn.Name())
	require.Equal(t, []byte{1, 2, 3}, fn.Code())
	require.Equal(t, 2, fn.Arity())
	require.Equal(t, 1, fn.NumUpvalues())
	require.Equal(t, 2, fn.NumConstants())

	c, err := fn.Constant(1)
	require.NoError(t, err)
	require.Equal(t, "s", c.(*types.String).Str())
	_, err = fn.Constant(2)
	require.ErrorIs(t, err, buffer.ErrOutOfRange)

	anon := h.NewFunction("", nil, nil, 0, 0)
	require.Equal(t, "unknown", anon.Name())
}

func TestClosureUpvalues(t *testing.T) {
	h := types.NewHeap()
	fn := h.NewFunction("f", nil, nil, 0, 2)
	clo := h.NewClosure(fn)
	require.Equal(t, fn, clo.Fn())
	require.Equal(t, 2, clo.NumUpvalues())

	// two closures sharing a cell observe each other's writes
	cell := types.NewCell(types.Number(1))
	clo2 := h.NewClosure(fn)
	clo.SetUpvalue(0, cell)
	clo2.SetUpvalue(0, cell)
	clo.Upvalue(0).V = types.Number(9)
	require.Equal(t, types.Number(9), clo2.Upvalue(0).V)
}

func TestHeapRegistry(t *testing.T) {
	h := types.NewHeap()
	n := len(h.Objects())
	require.NotZero(t, n) // core classes are registered

	s := h.NewString("x")
	l := h.NewList(0)
	require.Len(t, h.Objects(), n+2)

	// the mark field is writable bookkeeping for the collector
	s.SetMark(7)
	require.EqualValues(t, 7, s.Mark())
	require.EqualValues(t, 0, l.Mark())
}

package types

import (
	"fmt"

	"github.com/mna/roitelet/lang/buffer"
)

// A Function is the compiled shape of a function: its bytecode, constant
// pool, parameter arity and the number of upvalues its closures capture. It
// is immutable once built by the compiler; the interpreter only reads it.
type Function struct {
	object
	name        string
	code        []byte
	constants   *buffer.Buffer[Value]
	arity       int
	numUpvalues int
}

var _ Object = (*Function)(nil)

// NewFunction returns the function object for a compiled function. Callers
// must not subsequently modify code or constants.
func (h *Heap) NewFunction(name string, code []byte, constants *buffer.Buffer[Value], arity, numUpvalues int) *Function {
	if constants == nil {
		constants = buffer.New[Value](0)
	}
	fn := &Function{
		name:        name,
		code:        code,
		constants:   constants,
		arity:       arity,
		numUpvalues: numUpvalues,
	}
	fn.class = h.FnClass
	h.register(fn)
	return fn
}

func (fn *Function) String() string { return fmt.Sprintf("fn(%p %s)", fn, fn.Name()) }
func (fn *Function) Type() string   { return "function" }

// Name returns the function's name, or "unknown" for anonymous functions.
func (fn *Function) Name() string {
	if fn.name == "" {
		return "unknown"
	}
	return fn.name
}

// Code returns the bytecode blob. Callers must not modify it.
func (fn *Function) Code() []byte { return fn.code }

// Constant returns the constant pool entry at index i, or
// buffer.ErrOutOfRange.
func (fn *Function) Constant(i int) (Value, error) { return fn.constants.At(i) }

// NumConstants returns the size of the constant pool.
func (fn *Function) NumConstants() int { return fn.constants.Len() }

// Arity returns the number of declared parameters.
func (fn *Function) Arity() int { return fn.arity }

// NumUpvalues returns the number of upvalues closures over this function
// capture.
func (fn *Function) NumUpvalues() int { return fn.numUpvalues }

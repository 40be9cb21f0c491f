package types

import "fmt"

// A Cell is a box containing a Value. Variables captured as upvalues hold
// their value indirectly through a cell so that the defining scope and
// every closure capturing them observe the same mutations.
type Cell struct {
	V Value
}

var _ Value = (*Cell)(nil)

// NewCell returns a cell holding v.
func NewCell(v Value) *Cell { return &Cell{V: v} }

func (c *Cell) String() string { return fmt.Sprintf("cell(%v)", c.V) }
func (c *Cell) Type() string   { return "cell" }
func (c *Cell) Truth() Bool    { return True }

// A Closure pairs a function with the cells of the variables it captured.
// The sequence of cells is fixed at construction, the cells themselves are
// mutable.
type Closure struct {
	object
	fn       *Function
	upvalues []*Cell
}

var _ Object = (*Closure)(nil)

// NewClosure returns a closure over fn with one unset upvalue cell slot per
// upvalue the function captures. The interpreter fills the slots with
// SetUpvalue when it executes the closure-creating instruction.
func (h *Heap) NewClosure(fn *Function) *Closure {
	c := &Closure{fn: fn, upvalues: make([]*Cell, fn.NumUpvalues())}
	c.class = h.FnClass
	h.register(c)
	return c
}

func (c *Closure) String() string { return fmt.Sprintf("closure(%p %s)", c, c.fn.Name()) }
func (c *Closure) Type() string   { return "function" }

// Fn returns the compiled function the closure executes.
func (c *Closure) Fn() *Function { return c.fn }

// NumUpvalues returns the number of upvalue slots.
func (c *Closure) NumUpvalues() int { return len(c.upvalues) }

// Upvalue returns the cell at slot i; the slot must be in range and filled.
func (c *Closure) Upvalue(i int) *Cell { return c.upvalues[i] }

// SetUpvalue fills slot i with cell. The shape of the closure is fixed,
// only the slots' contents may be set.
func (c *Closure) SetUpvalue(i int, cell *Cell) { c.upvalues[i] = cell }

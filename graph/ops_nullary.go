package graph

import (
	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

// Constant is a nullary operator that returns a stored Array unchanged.
// Its shape and Hardware are taken from that Array at construction time.
type Constant struct {
	value *array.Array
}

// NewConstant wraps value in a Constant operator.
func NewConstant(value *array.Array) *Constant {
	return &Constant{value: value}
}

func (c *Constant) Name() string { return "Constant" }
func (c *Constant) Arity() int   { return 0 }

func (c *Constant) InferShape([]shape.Shape) (shape.Shape, error) {
	return c.value.Shape(), nil
}

func (c *Constant) InferHardware([]hardware.Hardware) (hardware.Hardware, error) {
	return c.value.Hardware(), nil
}

func (c *Constant) Forward(inputs []*array.Array) (*array.Array, error) {
	return c.value, nil
}

// GradientBuilder returns nil: a Constant is a backprop leaf.
func (c *Constant) GradientBuilder() GradientBuilder { return nil }

// Fill is a nullary operator that lazily produces a constant-valued
// Array of a given shape at evaluation time, cheaper than Constant
// because it allocates no Array up front.
type Fill struct {
	hw    hardware.Hardware
	shape shape.Shape
	value float32
}

// NewFill builds a Fill operator for the given Hardware, shape and value.
func NewFill(hw hardware.Hardware, s shape.Shape, value float32) *Fill {
	if hw == nil {
		panic("graph: Fill requires a non-nil Hardware")
	}

	return &Fill{hw: hw, shape: s, value: value}
}

func (f *Fill) Name() string { return "Fill" }
func (f *Fill) Arity() int   { return 0 }

func (f *Fill) InferShape([]shape.Shape) (shape.Shape, error) {
	return f.shape, nil
}

func (f *Fill) InferHardware([]hardware.Hardware) (hardware.Hardware, error) {
	return f.hw, nil
}

func (f *Fill) Forward(inputs []*array.Array) (*array.Array, error) {
	return array.Fill(f.hw, f.shape, f.value), nil
}

// GradientBuilder returns nil: a Fill is a backprop leaf.
func (f *Fill) GradientBuilder() GradientBuilder { return nil }

// checkArity returns InvalidLength unless len(inputs) == want.
func checkArity(name string, inputs []*array.Array, want int) error {
	if len(inputs) != want {
		return errs.New(errs.InvalidLength, "%s requires %d input(s), got %d", name, want, len(inputs))
	}

	return nil
}

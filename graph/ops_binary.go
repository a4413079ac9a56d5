package graph

import (
	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

func binaryInferShape(inputShapes []shape.Shape) (shape.Shape, error) {
	return inputShapes[0].Elementwise(inputShapes[1])
}

// Add is the elementwise binary addition operator. Its gradient w.r.t.
// each input is the upstream gradient unchanged: (gy, gy).
type Add struct{}

func NewAdd() *Add { return &Add{} }

func (a *Add) Name() string { return "Add" }
func (a *Add) Arity() int   { return 2 }

func (a *Add) InferShape(inputShapes []shape.Shape) (shape.Shape, error) {
	return binaryInferShape(inputShapes)
}

func (a *Add) InferHardware(inputHardwares []hardware.Hardware) (hardware.Hardware, error) {
	return DefaultInferHardware(inputHardwares)
}

func (a *Add) Forward(inputs []*array.Array) (*array.Array, error) {
	if err := checkArity(a.Name(), inputs, 2); err != nil {
		return nil, err
	}

	return inputs[0].Add(inputs[1])
}

func (a *Add) GradientBuilder() GradientBuilder {
	return GradientBuilderFunc(func(xs []Node, y Node, gy Node) []Node {
		return []Node{gy, gy}
	})
}

// Sub is the elementwise binary subtraction operator. Its gradient is
// (gy, -gy).
type Sub struct{}

func NewSub() *Sub { return &Sub{} }

func (s *Sub) Name() string { return "Sub" }
func (s *Sub) Arity() int   { return 2 }

func (s *Sub) InferShape(inputShapes []shape.Shape) (shape.Shape, error) {
	return binaryInferShape(inputShapes)
}

func (s *Sub) InferHardware(inputHardwares []hardware.Hardware) (hardware.Hardware, error) {
	return DefaultInferHardware(inputHardwares)
}

func (s *Sub) Forward(inputs []*array.Array) (*array.Array, error) {
	if err := checkArity(s.Name(), inputs, 2); err != nil {
		return nil, err
	}

	return inputs[0].Sub(inputs[1])
}

func (s *Sub) GradientBuilder() GradientBuilder {
	return GradientBuilderFunc(func(xs []Node, y Node, gy Node) []Node {
		return []Node{gy, gy.Neg()}
	})
}

// Mul is the elementwise binary multiplication operator. Its gradient is
// (gy*x1, gy*x0).
type Mul struct{}

func NewMul() *Mul { return &Mul{} }

func (m *Mul) Name() string { return "Mul" }
func (m *Mul) Arity() int   { return 2 }

func (m *Mul) InferShape(inputShapes []shape.Shape) (shape.Shape, error) {
	return binaryInferShape(inputShapes)
}

func (m *Mul) InferHardware(inputHardwares []hardware.Hardware) (hardware.Hardware, error) {
	return DefaultInferHardware(inputHardwares)
}

func (m *Mul) Forward(inputs []*array.Array) (*array.Array, error) {
	if err := checkArity(m.Name(), inputs, 2); err != nil {
		return nil, err
	}

	return inputs[0].Mul(inputs[1])
}

func (m *Mul) GradientBuilder() GradientBuilder {
	return GradientBuilderFunc(func(xs []Node, y Node, gy Node) []Node {
		x0, x1 := xs[0], xs[1]
		return []Node{gy.Mul(x1), gy.Mul(x0)}
	})
}

// Div is the elementwise binary division operator. Its gradient is
// (gy/x1, -y*gy/x1); the second term reuses the already-computed output y
// rather than recomputing x0/x1^2, so backprop itself stays symbolic.
type Div struct{}

func NewDiv() *Div { return &Div{} }

func (d *Div) Name() string { return "Div" }
func (d *Div) Arity() int   { return 2 }

func (d *Div) InferShape(inputShapes []shape.Shape) (shape.Shape, error) {
	return binaryInferShape(inputShapes)
}

func (d *Div) InferHardware(inputHardwares []hardware.Hardware) (hardware.Hardware, error) {
	return DefaultInferHardware(inputHardwares)
}

func (d *Div) Forward(inputs []*array.Array) (*array.Array, error) {
	if err := checkArity(d.Name(), inputs, 2); err != nil {
		return nil, err
	}

	return inputs[0].Div(inputs[1])
}

func (d *Div) GradientBuilder() GradientBuilder {
	return GradientBuilderFunc(func(xs []Node, y Node, gy Node) []Node {
		x1 := xs[1]
		gx0 := gy.Div(x1)
		gx1 := y.Mul(gy).Div(x1).Neg()

		return []Node{gx0, gx1}
	})
}

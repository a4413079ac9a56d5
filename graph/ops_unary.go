package graph

import (
	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

// Neg is the elementwise unary negation operator.
type Neg struct{}

// NewNeg builds a Neg operator.
func NewNeg() *Neg { return &Neg{} }

func (n *Neg) Name() string { return "Neg" }
func (n *Neg) Arity() int   { return 1 }

func (n *Neg) InferShape(inputShapes []shape.Shape) (shape.Shape, error) {
	return inputShapes[0], nil
}

func (n *Neg) InferHardware(inputHardwares []hardware.Hardware) (hardware.Hardware, error) {
	return DefaultInferHardware(inputHardwares)
}

func (n *Neg) Forward(inputs []*array.Array) (*array.Array, error) {
	if err := checkArity(n.Name(), inputs, 1); err != nil {
		return nil, err
	}

	return inputs[0].Neg(), nil
}

// GradientBuilder returns -gy for the single input.
func (n *Neg) GradientBuilder() GradientBuilder {
	return GradientBuilderFunc(func(xs []Node, y Node, gy Node) []Node {
		return []Node{gy.Neg()}
	})
}

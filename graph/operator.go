package graph

import (
	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

// Operator describes one forward computation: a name, an input arity,
// shape/hardware propagation, a forward kernel, and an optional
// gradient-builder. Operator.Forward may assume InferShape/InferHardware
// already succeeded for the same inputs; it performs no re-checking.
type Operator interface {
	// Name is a human-readable tag, e.g. "Add".
	Name() string

	// Arity is the number of inputs this operator consumes.
	Arity() int

	// InferShape computes the output shape from the input shapes.
	InferShape(inputShapes []shape.Shape) (shape.Shape, error)

	// InferHardware computes the output Hardware from the input
	// Hardwares. The default behaviour (DefaultInferHardware) requires
	// all inputs to be colocated; nullary operators override this to
	// return their own stored Hardware.
	InferHardware(inputHardwares []hardware.Hardware) (hardware.Hardware, error)

	// Forward computes the output Array from the input Arrays.
	Forward(inputs []*array.Array) (*array.Array, error)

	// GradientBuilder returns this operator's gradient-builder, or nil if
	// the operator is a backprop leaf.
	GradientBuilder() GradientBuilder
}

// GradientBuilder appends an operator's local-gradient subgraph: given
// the operator's input Nodes (xs), its output Node (y), and the upstream
// gradient Node (gy), it returns one Node per input representing the
// corresponding partial derivative. It must never call Forward or touch
// Arrays — only build more graph nodes.
type GradientBuilder interface {
	Build(xs []Node, y Node, gy Node) []Node
}

// GradientBuilderFunc adapts a plain function to GradientBuilder.
type GradientBuilderFunc func(xs []Node, y Node, gy Node) []Node

// Build calls f.
func (f GradientBuilderFunc) Build(xs []Node, y Node, gy Node) []Node {
	return f(xs, y, gy)
}

// DefaultInferHardware requires every input Hardware to be identical and
// returns it; used by every operator except the nullary leaves, which
// override InferHardware to return their own stored Hardware.
func DefaultInferHardware(inputHardwares []hardware.Hardware) (hardware.Hardware, error) {
	if len(inputHardwares) == 0 {
		return nil, errs.New(errs.InvalidNode, "cannot infer hardware with no inputs")
	}

	first := inputHardwares[0]
	for _, hw := range inputHardwares[1:] {
		if hw != first {
			return nil, errs.New(errs.InvalidNode, "inputs are not colocated on the same hardware")
		}
	}

	return first, nil
}

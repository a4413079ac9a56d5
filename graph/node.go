package graph

import (
	"fmt"

	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

// Node is a small copyable handle (graph, step_id) into a Graph. It
// carries no data of its own; every arithmetic and gradient API consumes
// and produces Nodes.
type Node struct {
	graph  *Graph
	stepID int
}

// Graph returns the Graph this Node belongs to.
func (n Node) Graph() *Graph {
	return n.graph
}

// StepID returns the id of the Step this Node references.
func (n Node) StepID() int {
	return n.stepID
}

// Equal reports structural equality on (graph, step_id). Nodes from
// different Graphs are never equal, even if their step ids coincide.
func (n Node) Equal(other Node) bool {
	return n.graph == other.graph && n.stepID == other.stepID
}

// String renders the Node as "<graph-id>:<step-id>" for debug output.
func (n Node) String() string {
	if n.graph == nil {
		return "<nil>:-"
	}

	return fmt.Sprintf("%s:%d", n.graph.ID(), n.stepID)
}

// Shape returns the Node's Shape. It is known immediately on
// construction, with no evaluation required.
func (n Node) Shape() shape.Shape {
	s, err := n.graph.StepShape(n.stepID)
	if err != nil {
		panic(err)
	}

	return s
}

// Hardware returns the Hardware the Node's eventual Array will live on.
func (n Node) Hardware() hardware.Hardware {
	hw, err := n.graph.StepHardware(n.stepID)
	if err != nil {
		panic(err)
	}

	return hw
}

// Calculate evaluates the Node's Graph up to this Node and returns a
// fresh clone of the resulting Array.
func (n Node) Calculate() (*array.Array, error) {
	return n.graph.Calculate(n.stepID)
}

// ToF32 evaluates the Node and extracts its scalar value. It panics if
// evaluation fails or the Node is not scalar-shaped, since this is a
// convenience conversion with no error channel (mirroring the arithmetic
// overload surface below).
func (n Node) ToF32() float32 {
	out, err := n.Calculate()
	if err != nil {
		panic(err)
	}
	defer out.Release()

	v, err := out.GetScalar()
	if err != nil {
		panic(err)
	}

	return v
}

// checkSameGraph panics with InvalidGraph unless every other Node shares
// n's Graph. This is the arithmetic-overload surface spec.md allows to
// panic because Go has no fallible operator overloading.
func (n Node) checkSameGraph(others ...Node) {
	for _, o := range others {
		if n.graph != o.graph {
			panic(errs.New(errs.InvalidGraph, "arithmetic between Nodes on different Graphs"))
		}
	}
}

func (n Node) addStepOrPanic(op Operator, inputs []int) Node {
	id, err := n.graph.addStep(op, inputs)
	if err != nil {
		panic(err)
	}

	return Node{graph: n.graph, stepID: id}
}

// Neg builds a Neg Node from n.
func (n Node) Neg() Node {
	return n.addStepOrPanic(NewNeg(), []int{n.stepID})
}

// Add builds an Add Node from n and other. Panics with InvalidGraph if
// they reference different Graphs.
func (n Node) Add(other Node) Node {
	n.checkSameGraph(other)
	return n.addStepOrPanic(NewAdd(), []int{n.stepID, other.stepID})
}

// Sub builds a Sub Node from n and other.
func (n Node) Sub(other Node) Node {
	n.checkSameGraph(other)
	return n.addStepOrPanic(NewSub(), []int{n.stepID, other.stepID})
}

// Mul builds a Mul Node from n and other.
func (n Node) Mul(other Node) Node {
	n.checkSameGraph(other)
	return n.addStepOrPanic(NewMul(), []int{n.stepID, other.stepID})
}

// Div builds a Div Node from n and other.
func (n Node) Div(other Node) Node {
	n.checkSameGraph(other)
	return n.addStepOrPanic(NewDiv(), []int{n.stepID, other.stepID})
}

// FromConstant appends a Constant Step wrapping value and returns a Node
// referencing it. value's shape and Hardware become the Node's.
func FromConstant(g *Graph, value *array.Array) Node {
	id, err := g.addStep(NewConstant(value), nil)
	if err != nil {
		panic(err)
	}

	return Node{graph: g, stepID: id}
}

// Fill appends a Fill Step producing an Array of shape s filled with v
// on hw, and returns a Node referencing it.
func Fill(g *Graph, hw hardware.Hardware, s shape.Shape, v float32) Node {
	id, err := g.addStep(NewFill(hw, s, v), nil)
	if err != nil {
		panic(err)
	}

	return Node{graph: g, stepID: id}
}

// FromScalar appends a scalar-shaped Fill Step holding v, on hw.
func FromScalar(g *Graph, hw hardware.Hardware, v float32) Node {
	return Fill(g, hw, shape.Scalar(), v)
}

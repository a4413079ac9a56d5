package graph

import (
	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

// step is one entry in a Graph: an operator, its input step ids, and an
// output placeholder that starts Unassigned and becomes Assigned the
// first time the evaluator visits it. Shape and Hardware are known the
// moment the step is appended, independent of evaluation.
type step struct {
	operator Operator
	inputs   []int
	shape    shape.Shape
	hardware hardware.Hardware

	assigned bool
	value    *array.Array
}

func (s *step) isAssigned() bool {
	return s.assigned
}

func (s *step) assign(v *array.Array) {
	s.value = v
	s.assigned = true
}

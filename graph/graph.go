// Package graph implements the append-only computation graph: Steps,
// the lazy push-down-automaton evaluator, Nodes, the standard operator
// library, and the reverse-mode gradient engine.
package graph

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sarchlab/dycg"
	"github.com/sarchlab/dycg/array"
	"github.com/sarchlab/dycg/errs"
	"github.com/sarchlab/dycg/hardware"
	"github.com/sarchlab/dycg/shape"
)

// Graph is an append-only sequence of Steps with a lazy, caching
// evaluator. It is not safe for concurrent construction or evaluation;
// a single-writer discipline is enforced with a mutex, matching the
// teacher's own per-instance locking convention (core/port.go).
type Graph struct {
	id    uuid.UUID
	mu    sync.Mutex
	steps []*step
}

// New creates an empty Graph.
func New() *Graph {
	return &Graph{id: uuid.New()}
}

// Builder constructs a Graph with a fluent with-style API, mirroring
// cpu.Builder. Rarely needed since New suffices, but kept for symmetry
// and as the extension point for future per-Graph options.
type Builder struct {
	initialStepCapacity int
}

// NewBuilder returns a Builder with teacher-style defaults.
func NewBuilder() Builder {
	return Builder{}
}

// WithInitialStepCapacity pre-sizes the Graph's step slice.
func (b Builder) WithInitialStepCapacity(n int) Builder {
	b.initialStepCapacity = n
	return b
}

// Build returns a new Graph.
func (b Builder) Build() *Graph {
	return &Graph{id: uuid.New(), steps: make([]*step, 0, b.initialStepCapacity)}
}

// ID returns a short identifier for this Graph, used only in debug
// output to disambiguate graphs when more than one is in play.
func (g *Graph) ID() string {
	return g.id.String()
}

// NumSteps returns the number of Steps appended so far.
func (g *Graph) NumSteps() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return len(g.steps)
}

// checkStepID returns InvalidNode unless id names an existing step.
func (g *Graph) checkStepID(id int) error {
	if id < 0 || id >= len(g.steps) {
		return errs.New(errs.InvalidNode, "step id %d is out of range for a graph with %d step(s)", id, len(g.steps))
	}

	return nil
}

// stepShapeLocked returns the shape of an already-appended step. Callers must
// hold g.mu.
func (g *Graph) stepShapeLocked(id int) shape.Shape {
	return g.steps[id].shape
}

// stepHardwareLocked returns the hardware of an already-appended step.
// Callers must hold g.mu.
func (g *Graph) stepHardwareLocked(id int) hardware.Hardware {
	return g.steps[id].hardware
}

// StepShape returns the shape of step id, without evaluating it.
func (g *Graph) StepShape(id int) (shape.Shape, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkStepID(id); err != nil {
		return shape.Shape{}, err
	}

	return g.stepShapeLocked(id), nil
}

// StepHardware returns the Hardware of step id, without evaluating it.
func (g *Graph) StepHardware(id int) (hardware.Hardware, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkStepID(id); err != nil {
		return nil, err
	}

	return g.stepHardwareLocked(id), nil
}

// StepOperatorName returns the operator name of step id, for debug
// dumps and gradient-engine bookkeeping.
func (g *Graph) StepOperatorName(id int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkStepID(id); err != nil {
		return "", err
	}

	return g.steps[id].operator.Name(), nil
}

// stepOperatorAndInputs returns the operator and input step ids for an
// already-appended step, for use by the gradient engine's reverse walk.
func (g *Graph) stepOperatorAndInputs(id int) (Operator, []int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := g.steps[id]

	return s.operator, s.inputs
}

// addStep validates arity, infers shape and hardware from the inputs'
// already-known placeholders, appends a new Unassigned Step, and returns
// its id. Every id in inputs must already name a step in this Graph —
// the DAG invariant holds by construction since ids only ever increase.
func (g *Graph) addStep(op Operator, inputs []int) (int, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if op.Arity() != len(inputs) {
		return 0, errs.New(errs.InvalidLength, "%s requires %d input(s), got %d", op.Name(), op.Arity(), len(inputs))
	}

	for _, id := range inputs {
		if err := g.checkStepID(id); err != nil {
			return 0, err
		}
	}

	inputShapes := make([]shape.Shape, len(inputs))
	inputHardwares := make([]hardware.Hardware, len(inputs))

	for i, id := range inputs {
		inputShapes[i] = g.stepShapeLocked(id)
		inputHardwares[i] = g.stepHardwareLocked(id)
	}

	outShape, err := op.InferShape(inputShapes)
	if err != nil {
		return 0, err
	}

	outHardware, err := op.InferHardware(inputHardwares)
	if err != nil {
		return 0, err
	}

	newID := len(g.steps)
	g.steps = append(g.steps, &step{
		operator: op,
		inputs:   inputs,
		shape:    outShape,
		hardware: outHardware,
	})

	dycg.Logger().Debug("graph: step appended", "graph", g.id.String(), "step", newID, "operator", op.Name())

	return newID, nil
}

// evalAction is one entry of the push-down automaton's explicit stack.
type evalAction struct {
	stepID int
	perform bool
}

// Calculate evaluates target and every not-yet-cached ancestor using an
// explicit Fetch/Perform stack in place of native recursion, so stack
// usage is O(ancestors) regardless of graph depth. Results are cached on
// each Step, so repeated calls to Calculate are O(1) after the first.
// The returned Array is a clone of the cached value so callers may
// freely Release it.
func (g *Graph) Calculate(target int) (*array.Array, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.checkStepID(target); err != nil {
		return nil, err
	}

	stack := []evalAction{{stepID: target, perform: false}}

	for len(stack) > 0 {
		action := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		s := g.steps[action.stepID]

		if !action.perform {
			if s.isAssigned() {
				continue
			}

			stack = append(stack, evalAction{stepID: action.stepID, perform: true})
			for _, in := range s.inputs {
				stack = append(stack, evalAction{stepID: in, perform: false})
			}

			continue
		}

		if s.isAssigned() {
			continue
		}

		inputArrays := make([]*array.Array, len(s.inputs))
		for i, in := range s.inputs {
			inputArrays[i] = g.steps[in].value
		}

		out, err := s.operator.Forward(inputArrays)
		if err != nil {
			return nil, err
		}

		s.assign(out)
		dycg.Logger().Debug("graph: step evaluated", "graph", g.id.String(), "step", action.stepID, "operator", s.operator.Name())
	}

	return g.steps[target].value.Clone(), nil
}

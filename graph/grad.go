package graph

import (
	"github.com/sarchlab/dycg/errs"
)

// Grad computes, for each x in xs, a new Node on y's Graph representing
// dy/dx symbolically: the i-th returned Node is built from further graph
// Steps, not evaluated numbers, so Grad may be called again on its own
// results to obtain higher-order derivatives.
//
// Grad walks Steps from y back to the earliest input in xs in strict
// reverse-topological order (valid because step ids are assigned in
// topological order by construction), invoking each visited Step's
// gradient-builder to wire in its local-gradient subgraph and summing
// contributions at Steps with more than one downstream consumer. The walk
// visits every Step in [min(x.StepID for x in xs)+1, y.StepID], not only
// those on a path between xs and y — this is intentionally the simple
// O(graph size) approach; no pruning is performed.
//
// Grad returns InvalidNode if any x in xs belongs to a different Graph
// than y.
func Grad(y Node, xs []Node) ([]Node, error) {
	for _, x := range xs {
		if x.graph != y.graph {
			return nil, errs.New(errs.InvalidNode, "grad: x and y must be on the same graph")
		}
	}

	if len(xs) == 0 {
		return nil, nil
	}

	first := xs[0].stepID
	for _, x := range xs[1:] {
		if x.stepID < first {
			first = x.stepID
		}
	}

	last := y.stepID

	slots := make([]*Node, y.graph.NumSteps())

	seed := Fill(y.graph, y.Hardware(), y.Shape(), 1)
	slots[last] = &seed

	for s := last; s > first; s-- {
		gy := slots[s]
		if gy == nil {
			continue
		}

		op, inputIDs := y.graph.stepOperatorAndInputs(s)

		gb := op.GradientBuilder()
		if gb == nil {
			continue
		}

		inputNodes := make([]Node, len(inputIDs))
		for i, id := range inputIDs {
			inputNodes[i] = Node{graph: y.graph, stepID: id}
		}

		gxs := gb.Build(inputNodes, Node{graph: y.graph, stepID: s}, *gy)

		for i, inputID := range inputIDs {
			gx := gxs[i]
			if slots[inputID] == nil {
				slots[inputID] = &gx
				continue
			}

			summed := slots[inputID].Add(gx)
			slots[inputID] = &summed
		}
	}

	out := make([]Node, len(xs))
	for i, x := range xs {
		if slots[x.stepID] != nil {
			out[i] = *slots[x.stepID]
			continue
		}

		out[i] = Fill(y.graph, x.Hardware(), x.Shape(), 0)
	}

	return out, nil
}

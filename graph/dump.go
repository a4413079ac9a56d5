package graph

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// DumpSteps renders every Step's id, operator name, inputs, shape and
// cache state as an ASCII table, mirroring the teacher's own
// core.PrintState register/buffer dumps.
func (g *Graph) DumpSteps() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Graph %s (%d steps)", g.id.String(), len(g.steps)))
	t.AppendHeader(table.Row{"Step", "Operator", "Inputs", "Shape", "Cached"})

	for id, s := range g.steps {
		t.AppendRow(table.Row{id, s.operator.Name(), fmt.Sprint(s.inputs), s.shape.String(), s.isAssigned()})
	}

	return t.Render()
}

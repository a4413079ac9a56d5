package array

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
)

// PrintToggle gates Render's stdout output, mirroring the teacher's own
// core.PrintToggle switch for its register/buffer dumps.
const PrintToggle = false

// Render renders the Array's flat values as an ASCII table, one row per
// up-to-eight elements, for use in debugging and example programs.
func (a *Array) Render() string {
	values := a.GetValues()

	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Array shape=%s", a.shape))

	const perRow = 8
	for start := 0; start < len(values); start += perRow {
		end := start + perRow
		if end > len(values) {
			end = len(values)
		}

		row := make(table.Row, 0, end-start)
		for _, v := range values[start:end] {
			row = append(row, v)
		}

		t.AppendRow(row)
	}

	return t.Render()
}

// Print writes the Array's Render output to stdout when PrintToggle is
// enabled.
func (a *Array) Print() {
	if !PrintToggle {
		return
	}

	fmt.Println(a.Render())
}

// Command dycgbench builds a small computation graph, evaluates it, takes
// its gradient, and reports on Hardware allocations left outstanding when
// the run exits.
package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/tebeka/atexit"

	"github.com/sarchlab/dycg/graph"
	"github.com/sarchlab/dycg/hardware/cpu"
)

var depth = flag.Int("depth", 16, "number of chained multiplications in the benchmark graph")

func buildChain(g *graph.Graph, hw *cpu.Hardware, n int) (x, y graph.Node) {
	x = graph.FromScalar(g, hw, 1.0001)
	y = x

	for i := 0; i < n; i++ {
		y = y.Mul(x)
	}

	return x, y
}

func main() {
	flag.Parse()

	hw := cpu.New()
	atexit.Register(func() {
		fmt.Printf("dycgbench: %d allocation(s) outstanding at exit\n", hw.Outstanding())
	})

	g := graph.New()
	x, y := buildChain(g, hw, *depth)

	start := time.Now()
	out, err := y.Calculate()
	if err != nil {
		panic(err)
	}
	forwardElapsed := time.Since(start)

	v, err := out.GetScalar()
	if err != nil {
		panic(err)
	}
	out.Release()

	start = time.Now()
	grads, err := graph.Grad(y, []graph.Node{x})
	backwardElapsed := time.Since(start)
	if err != nil {
		panic(err)
	}

	gv := grads[0].ToF32()

	fmt.Printf("depth=%d forward=%v backward=%v y=%v dy/dx=%v\n", *depth, forwardElapsed, backwardElapsed, v, gv)

	atexit.Exit(0)
}

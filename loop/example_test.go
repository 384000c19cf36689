package loop_test

import (
	"fmt"

	"github.com/katalvlaran/pipeloop/loop"
)

// ExampleAnalyze measures the loop of a small sketch: how far the farthest
// pipe is from the start, and how many tiles it encloses.
func ExampleAnalyze() {
	g, err := loop.Parse("" +
		".....\n" +
		".S-7.\n" +
		".|.|.\n" +
		".L-J.\n" +
		".....")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	rep, err := loop.Analyze(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("start:", rep.Start, rep.StartShape)
	fmt.Println("farthest:", rep.Farthest)
	fmt.Println("enclosed:", rep.Enclosed)
	// Output:
	// start: (1,1) south-east
	// farthest: 4
	// enclosed: 1
}

// ExampleRender shows the traced loop with its interior marked.
func ExampleRender() {
	g, _ := loop.Parse("F-7\nS.|\nL-J")
	start, _ := loop.FindStart(g)
	lp, _ := loop.Trace(g, start)
	cells, _ := loop.EnclosedCells(g, lp)
	fmt.Print(loop.Render(g, lp, cells))
	// Output:
	// ╔═╗
	// SI║
	// ╚═╝
}

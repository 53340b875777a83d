package hybrid_test

import (
	"fmt"

	"github.com/katalvlaran/hybridbfs/graphgen"
	"github.com/katalvlaran/hybridbfs/hybrid"
)

// ExampleRun_path demonstrates BFS distances on a simple path graph.
func ExampleRun_path() {
	g, err := graphgen.Path(5)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sol, _, err := hybrid.Run(g, 0, hybrid.Options{Method: hybrid.MethodTopDown})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.DistanceSlice())
	// Output:
	// [0 1 2 3 4]
}

// ExampleRun_star shows that every spoke sits at distance 1 from the hub,
// regardless of which direction the driver chose internally.
func ExampleRun_star() {
	g, err := graphgen.Star(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	sol, _, err := hybrid.Run(g, 0, hybrid.Options{Method: hybrid.MethodHybrid})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.DistanceSlice())
	// Output:
	// [0 1 1 1 1 1]
}

// ExampleRun_onStep counts OnStep calls and prints whether that count
// equals Stats.Iterations: OnStep fires once per iteration, the hook a
// caller would use to observe the hybrid driver's direction switches.
func ExampleRun_onStep() {
	g, err := graphgen.Barbell(4)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	var iterations int
	_, stats, err := hybrid.Run(g, 0, hybrid.Options{
		Method: hybrid.MethodHybrid,
		OnStep: func(info hybrid.StepInfo) {
			iterations++
		},
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(iterations == stats.Iterations)
	// Output:
	// true
}

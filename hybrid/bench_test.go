package hybrid_test

import (
	"math/rand/v2"
	"testing"

	"github.com/katalvlaran/hybridbfs/graphgen"
	"github.com/katalvlaran/hybridbfs/hybrid"
)

// BenchmarkRun_Chain measures hybrid.Run on a linear chain of N vertices,
// where direction switching never pays off and top-down dominates.
func BenchmarkRun_Chain(b *testing.B) {
	const n = 20000
	g, err := graphgen.Path(n)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.NumNodes() + g.NumEdges()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = hybrid.Run(g, 0, hybrid.Options{Method: hybrid.MethodHybrid})
	}
}

// BenchmarkRun_RandomSparse_Methods compares all three dispatch methods on
// the same sparse random graph.
func BenchmarkRun_RandomSparse_Methods(b *testing.B) {
	const n = 20000
	rng := rand.New(rand.NewPCG(42, 42))
	g, err := graphgen.RandomSparse(n, float64(8)/float64(n), rng)
	if err != nil {
		b.Fatal(err)
	}

	for _, m := range []hybrid.Method{hybrid.MethodTopDown, hybrid.MethodBottomUp, hybrid.MethodHybrid} {
		b.Run(m.String(), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(g.NumNodes() + g.NumEdges()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _, _ = hybrid.Run(g, 0, hybrid.Options{Method: m})
			}
		})
	}
}

// BenchmarkRun_WorkerScaling measures how throughput scales with worker
// count on a moderately dense random graph, where the bottom-up step has
// enough parallel work to benefit from more threads.
func BenchmarkRun_WorkerScaling(b *testing.B) {
	const n = 50000
	rng := rand.New(rand.NewPCG(7, 7))
	g, err := graphgen.RandomSparse(n, float64(20)/float64(n), rng)
	if err != nil {
		b.Fatal(err)
	}

	for _, workers := range []int{1, 2, 4, 8} {
		b.Run(workerLabel(workers), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(g.NumNodes() + g.NumEdges()))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _, _ = hybrid.Run(g, 0, hybrid.Options{Method: hybrid.MethodHybrid, NumWorkers: workers})
			}
		})
	}
}

// BenchmarkRun_Barbell isolates the cost of the hybrid driver's direction
// switching on a graph shaped to trigger it every run.
func BenchmarkRun_Barbell(b *testing.B) {
	g, err := graphgen.Barbell(2000)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(g.NumNodes() + g.NumEdges()))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_, _, _ = hybrid.Run(g, 0, hybrid.Options{Method: hybrid.MethodHybrid})
	}
}

func workerLabel(n int) string {
	switch n {
	case 1:
		return "Workers=1"
	case 2:
		return "Workers=2"
	case 4:
		return "Workers=4"
	case 8:
		return "Workers=8"
	default:
		return "Workers=N"
	}
}

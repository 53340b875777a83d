package graphgen

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/hybridbfs/csr"
)

const minRandomSparseNodes = 1

// RandomSparse samples an Erdős–Rényi-style undirected graph over n
// vertices, including each unordered pair {i,j}, i<j, independently with
// probability p. Used by equivalence-law tests that check
// MethodTopDown/MethodBottomUp/MethodHybrid agreement on a graph too large to write
// out by hand.
//
// Contract:
//   - n >= 1, else ErrTooFewVertices.
//   - 0 <= p <= 1, else ErrInvalidProbability.
//   - rng must be non-nil for reproducibility; callers seed it themselves
//     (e.g. rand.New(rand.NewPCG(seed, seed))) so a test can rerun a
//     failure deterministically.
func RandomSparse(n int, p float64, rng *rand.Rand) (*csr.Graph, error) {
	if n < minRandomSparseNodes {
		return nil, fmt.Errorf("graphgen.RandomSparse: n=%d < min=%d: %w", n, minRandomSparseNodes, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("graphgen.RandomSparse: p=%.6f not in [0,1]: %w", p, ErrInvalidProbability)
	}

	b, err := csr.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				b.AddEdge(int32(i), int32(j))
			}
		}
	}

	return b.Finalize()
}

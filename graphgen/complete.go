package graphgen

import (
	"fmt"

	"github.com/katalvlaran/hybridbfs/csr"
)

const minCompleteNodes = 1

// Complete builds the complete simple graph K_n (spec.md §8 scenario 2,
// the triangle, is Complete(3)).
//
// Contract:
//   - n >= 1, else ErrTooFewVertices.
//   - Emits each unordered pair {i,j}, i<j, exactly once, in lexicographic
//     order.
func Complete(n int) (*csr.Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("graphgen.Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewVertices)
	}

	b, err := csr.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			b.AddEdge(int32(i), int32(j))
		}
	}

	return b.Finalize()
}

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/hybridbfs/csr"
)

const minPathNodes = 2

// Path builds the simple path 0—1—2—...—(n-1) (spec.md §8 scenario 1).
//
// Contract:
//   - n >= 2, else ErrTooFewVertices.
//   - Edges (i-1,i) are added in ascending i, 1..n-1.
func Path(n int) (*csr.Graph, error) {
	if n < minPathNodes {
		return nil, fmt.Errorf("graphgen.Path: n=%d < min=%d: %w", n, minPathNodes, ErrTooFewVertices)
	}

	b, err := csr.NewBuilder(n)
	if err != nil {
		return nil, err
	}
	for i := 1; i < n; i++ {
		b.AddEdge(int32(i-1), int32(i))
	}

	return b.Finalize()
}

package graphgen

import (
	"fmt"

	"github.com/katalvlaran/hybridbfs/csr"
)

const minBarbellCliqueSize = 2

// Barbell builds two cliques of cliqueSize vertices joined by a single
// bridge edge between vertex (cliqueSize-1) of the first clique and vertex
// cliqueSize of the second (spec.md §8 scenario 6: two cliques of 5 joined
// by a bridge). Vertices [0, cliqueSize) form the first clique,
// [cliqueSize, 2*cliqueSize) the second.
func Barbell(cliqueSize int) (*csr.Graph, error) {
	if cliqueSize < minBarbellCliqueSize {
		return nil, fmt.Errorf("graphgen.Barbell: cliqueSize=%d < min=%d: %w", cliqueSize, minBarbellCliqueSize, ErrTooFewVertices)
	}

	n := 2 * cliqueSize
	b, err := csr.NewBuilder(n)
	if err != nil {
		return nil, err
	}

	addClique := func(offset int32) {
		for i := int32(0); i < int32(cliqueSize); i++ {
			for j := i + 1; j < int32(cliqueSize); j++ {
				b.AddEdge(offset+i, offset+j)
			}
		}
	}
	addClique(0)
	addClique(int32(cliqueSize))

	// The bridge: last vertex of the first clique to first vertex of the
	// second.
	b.AddEdge(int32(cliqueSize-1), int32(cliqueSize))

	return b.Finalize()
}

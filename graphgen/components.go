package graphgen

import "github.com/katalvlaran/hybridbfs/csr"

// TwoComponents builds the 4-vertex, two-component graph of spec.md §8
// scenario 4: edge (0,1) forms one component, edge (2,3) forms a disjoint
// second component.
func TwoComponents() (*csr.Graph, error) {
	b, err := csr.NewBuilder(4)
	if err != nil {
		return nil, err
	}
	b.AddEdge(0, 1)
	b.AddEdge(2, 3)

	return b.Finalize()
}

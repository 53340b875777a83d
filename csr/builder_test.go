package csr_test

import (
	"testing"

	"github.com/katalvlaran/hybridbfs/csr"
	"github.com/stretchr/testify/require"
)

func TestBuilder_PathGraph(t *testing.T) {
	b, err := csr.NewBuilder(4)
	require.NoError(t, err)

	b.AddEdge(0, 1)
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)

	g, err := b.Finalize()
	require.NoError(t, err)

	require.Equal(t, 4, g.NumNodes())
	require.Equal(t, 6, g.NumEdges()) // 3 undirected edges, symmetrized

	require.Equal(t, 1, g.Degree(0))
	require.Equal(t, 2, g.Degree(1))
	require.Equal(t, 2, g.Degree(2))
	require.Equal(t, 1, g.Degree(3))

	require.ElementsMatch(t, []int32{1}, g.Neighbors(0))
	require.ElementsMatch(t, []int32{0, 2}, g.Neighbors(1))
}

func TestBuilder_SelfLoopAndDuplicateAreBenign(t *testing.T) {
	b, err := csr.NewBuilder(2)
	require.NoError(t, err)

	b.AddEdge(0, 0) // self-loop
	b.AddEdge(0, 1)
	b.AddEdge(0, 1) // duplicate

	g, err := b.Finalize()
	require.NoError(t, err)

	// self-loop contributes one entry (not mirrored), duplicate contributes
	// two more (mirrored), so vertex 0 sees [0, 1, 1] and vertex 1 sees [0, 0].
	require.Equal(t, 3, g.Degree(0))
	require.Equal(t, 2, g.Degree(1))
}

func TestBuilder_RejectsOutOfRangeEdge(t *testing.T) {
	b, err := csr.NewBuilder(3)
	require.NoError(t, err)

	b.AddEdge(0, 5)

	_, err = b.Finalize()
	require.ErrorIs(t, err, csr.ErrVertexOutOfRange)
}

func TestBuilder_RejectsEmptyGraph(t *testing.T) {
	b, err := csr.NewBuilder(0)
	require.NoError(t, err)

	_, err = b.Finalize()
	require.ErrorIs(t, err, csr.ErrEmptyGraph)
}

func TestNewBuilder_RejectsNegativeN(t *testing.T) {
	_, err := csr.NewBuilder(-1)
	require.ErrorIs(t, err, csr.ErrNegativeNodeCount)
}

package frontier_test

import (
	"testing"

	"github.com/katalvlaran/hybridbfs/frontier"
	"github.com/stretchr/testify/require"
)

func TestFrontier_PushLenClear(t *testing.T) {
	f := frontier.New(8)
	require.True(t, f.IsEmpty())

	f.Push(3)
	f.Push(7)
	require.Equal(t, 2, f.Len())
	require.Equal(t, []int32{3, 7}, f.AsSlice())

	f.Clear()
	require.True(t, f.IsEmpty())
	require.Equal(t, 0, len(f.AsSlice()))
}

func TestMerge_SumsAllShards(t *testing.T) {
	shards := frontier.NewShards(4, 16)
	shards.Of(0).Push(1)
	shards.Of(1).Push(2)
	shards.Of(1).Push(3)
	shards.Of(3).Push(4)

	dst := frontier.New(16)
	require.NoError(t, frontier.Merge(dst, shards))

	require.Equal(t, 4, dst.Len())
	require.ElementsMatch(t, []int32{1, 2, 3, 4}, dst.AsSlice())
}

func TestMerge_AllEmptyShardsNoOp(t *testing.T) {
	shards := frontier.NewShards(3, 8)
	dst := frontier.New(8)
	require.NoError(t, frontier.Merge(dst, shards))
	require.True(t, dst.IsEmpty())
}

// Package frontier provides the append-only vertex buffers that carry one
// BFS level's worth of work between steps.
//
// Two generations exist at any time — the current frontier (read-only
// during a step) and the next frontier (written only through per-worker
// Shards, then merged). Both are preallocated once, at traversal start, to
// capacity N, and reused across every level: clearing a Frontier resets its
// logical size without releasing the backing array.
package frontier

// Frontier is a dense, append-only buffer of vertex IDs. Push is not
// thread-safe; during a step it is only ever called against a per-worker
// Shard, never against a Frontier shared across goroutines.
type Frontier struct {
	data []int32
	size int
}

// New preallocates a Frontier with room for exactly capacity vertex slots.
func New(capacity int) *Frontier {
	return &Frontier{data: make([]int32, capacity)}
}

// Push appends v. The caller guarantees no overflow past capacity, per
// spec.md §4.B; this is an invariant, not a recoverable error, so Push does
// not itself check bounds on the hot path.
func (f *Frontier) Push(v int32) {
	f.data[f.size] = v
	f.size++
}

// Len reports the number of vertices currently appended.
func (f *Frontier) Len() int { return f.size }

// IsEmpty reports whether Len() == 0.
func (f *Frontier) IsEmpty() bool { return f.size == 0 }

// Clear resets the logical size to zero without freeing the backing array.
func (f *Frontier) Clear() { f.size = 0 }

// AsSlice returns a view of the currently appended prefix. The returned
// slice aliases the Frontier's storage and is invalidated by the next Push
// or Clear.
func (f *Frontier) AsSlice() []int32 { return f.data[:f.size] }

// Grow extends the logical size by n slots without writing them, returning
// the offset at which the caller should start writing. Used by Merge to
// reserve a shard's destination range in a single, un-contended bump.
func (f *Frontier) Grow(n int) (offset int) {
	offset = f.size
	f.size += n
	return offset
}

// CopyInto copies src into the Frontier's backing array starting at offset.
// It does not itself update Len; callers that use Grow to reserve the
// range have already accounted for it.
func (f *Frontier) CopyInto(offset int, src []int32) {
	copy(f.data[offset:], src)
}

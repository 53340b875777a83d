// Package loaders reads an on-disk graph description into a csr.Graph.
//
// Two formats are supported, selected by file suffix:
//
//   - MatrixMarket (".mm"): a sparse-matrix exchange format. The header
//     gives dimensions and non-zero count; vertex IDs are 1-based on disk,
//     so the resulting graph is allocated with N+1 vertices and index 0
//     is unused.
//   - Edge-list (".txt"): one undirected edge per line, 0-based vertex IDs,
//     "#"-prefixed comment lines ignored. N is derived as max(id)+1.
//
// Both loaders build the graph with csr.Builder and return the finalized,
// immutable csr.Graph — construction errors (malformed header, non-square
// matrix, out-of-range vertex, unreadable file) are reported as input
// errors, never panics.
package loaders

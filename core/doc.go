// Package core provides a generic in-memory graph store with
// value-based lookup and deterministic enumeration.
//
// The Graph G = (V,E) is parameterized over the node value type N and
// the edge payload type P (both comparable):
//
//   - Directed by default, undirected via WithUndirected
//   - Parallel edges permitted by default, rejected via WithoutParallelEdges
//   - Dense arena storage with free lists; internal identifiers never
//     cross the public API — every operation takes and returns values
//   - Node/edge value→identifier maps for O(1) lookup
//   - Single-pass restartable cursors (Nodes, Edges) with
//     use-after-mutation detection via a generation counter
//   - DOT dump (DOT, WriteDOT, String) for external viewers
//
// Why use core.Graph?
//
//   - Nodes are whatever you already have — strings, ints, small structs —
//     as long as values are unique and comparable.
//   - Deterministic iteration: adjacency and cursors follow insertion
//     order, so runs are reproducible without sorting.
//   - Loud failure on misuse: absent values return ErrNodeNotFound or
//     ErrEdgeNotFound, never a silent default; cursors that outlive a
//     mutation stop with ErrStaleCursor instead of walking freed slots.
//
// The traversal engines live in the sibling bfs and dfs packages, the
// isomorphism search in subgraph; all three consume a Graph read-only.
//
// Concurrency: a Graph assumes exclusive ownership — at most one
// goroutine interacts with it and any engine bound to it at a time.
package core

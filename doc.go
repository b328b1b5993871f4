// Package libgraph is a generic in-memory graph toolkit: build graphs
// over your own node and payload types, traverse them with hookable
// BFS/DFS engines, and search them for subgraph occurrences.
//
// What's inside:
//
//	core/     — Graph[N, P]: arena-backed store, value-based API,
//	            cursors with stale detection, DOT dump
//	bfs/      — breadth-first search: distances, reachability,
//	            callback hooks, resumable multi-root runs
//	dfs/      — depth-first search: tree/back/other edge
//	            classification, explicit stack, resumable runs
//	subgraph/ — VF2-style subgraph-isomorphism search with pluggable
//	            node/edge equivalence
//
// Why libgraph?
//
//   - Values in, values out — internal identifiers never leak into the API
//   - Deterministic — adjacency and cursors follow insertion order
//   - Hookable — every traversal decision point takes a callback, with
//     no-op defaults so you override only what you need
//   - Pure Go — no cgo, no runtime dependencies
//
// Quick ASCII example:
//
//	    A──→B
//	    │   │
//	    ↓   ↓
//	    C──→D
//
//	four nodes, four directed edges; BFS from A puts B and C at
//	distance 1 and D at distance 2.
//
// A graph assumes exclusive ownership: one goroutine at a time for a
// store and the engines bound to it. Mutating a store invalidates live
// cursors and retained traversal state, and both fail loudly rather
// than serve stale results.
package libgraph

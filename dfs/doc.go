// Package dfs provides depth-first search over a core.Graph as a
// resumable state machine with edge classification.
//
// What:
//
//   - Search: per-node coloring (White, Gray, Black) driven by an
//     explicit stack rather than recursion, so path length is bounded
//     by heap, not goroutine stack.
//   - Run(start, reset): explores only the component reachable from
//     start, then stops — a deliberate deviation from textbook
//     full-graph DFS. Full coverage: call Run once per node with
//     reset=false after the first call; starts already discovered are
//     no-ops.
//   - Edge classification: tree (target undiscovered), back (target on
//     the current path), other (target finished; forward and cross are
//     not distinguished).
//   - Hooks: OnFound, OnLookEdge, OnTreeEdge, OnBackEdge, OnOtherEdge,
//     OnNodeDone, OnEdgeDone. All default to no-ops; an error return
//     aborts the run. OnEdgeDone fires when an edge is finished with:
//     right after classification for non-tree edges, after the subtree
//     for tree edges.
//
// On undirected graphs every incident edge of a node is examined, so
// the edge a node was entered through is seen again from the child and
// classified as a back edge (the parent is still Gray).
//
// Complexity: Time O(V+E) per run, Memory O(V) for colors and stack.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start value not in the graph
//   - ErrStaleRun             graph mutated since the retained state was built
//   - context errors          cancellation via WithContext
//   - hook errors             propagated from any callback
package dfs

// Package bfs provides breadth-first search over a core.Graph as a
// resumable state machine with callback hooks.
//
// What:
//
//   - Search: per-node coloring (White, Gray, Black) plus an unweighted
//     hop-distance map from the most recent root.
//   - Run(start, reset): one traversal of the component reachable from
//     start. reset=false retains colors and distances, so repeated runs
//     accumulate coverage of disconnected components without
//     re-entering finished nodes.
//   - Hooks at every decision point: OnFound, OnLookNode, OnLookEdge,
//     OnTreeEdge, OnOtherEdge, OnNodeDone. All default to no-ops; an
//     error return aborts the run.
//
// With no hooks overridden, a run computes reachability and shortest
// hop distance from the root: Distance(n) and WasSeen(n).
//
// Distance returns 0 both for the root and for unreached nodes — call
// WasSeen to disambiguate.
//
// Complexity: Time O(V+E) per run, Memory O(V) for colors, distances,
// and the queue.
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartNodeNotFound    start value not in the graph
//   - ErrStaleRun             graph mutated since the retained state was built
//   - context errors          cancellation via WithContext
//   - hook errors             propagated from any callback
package bfs

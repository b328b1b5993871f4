// Package core defines the central Graph and Edge types and the
// value-based operations for building and querying graphs.
//
// Node and edge payload types are supplied by the caller as type
// parameters; both must be comparable so that values can be looked up
// in constant time. All public operations speak in caller values only —
// the compact identifiers used internally never cross the API boundary.
//
// This file declares Graph, Edge, GraphOption, sentinel errors, and the
// New constructor.
//
// Errors:
//
//	ErrNodeNotFound  - operation referenced a node value not in the store.
//	ErrEdgeNotFound  - operation referenced an edge that does not exist.
//	ErrParallelEdge  - duplicate edge added while parallel edges are disabled.
//	ErrStaleCursor   - cursor advanced after the store was mutated.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrParallelEdge indicates a parallel edge was attempted when
	// parallel edges are disabled.
	ErrParallelEdge = errors.New("core: parallel edges not allowed")

	// ErrStaleCursor indicates a cursor outlived a mutation of its graph.
	ErrStaleCursor = errors.New("core: graph mutated during iteration")
)

// None is the payload type for graphs that carry no data on their edges.
type None struct{}

// Edge is the caller-visible value of a connection between two nodes.
//
// For directed graphs the pair is ordered From→To; for undirected graphs
// the order is preserved as given but carries no meaning. Payload holds
// arbitrary per-edge data (use None when there is nothing to store).
type Edge[N, P comparable] struct {
	// From is the source node value.
	From N

	// To is the destination node value.
	To N

	// Payload is the data carried on the edge.
	Payload P
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	directed   bool
	allowMulti bool
}

// WithUndirected makes every edge bidirectional. The default is a
// directed graph, where edges run From→To only.
func WithUndirected() GraphOption {
	return func(c *graphConfig) { c.directed = false }
}

// WithoutParallelEdges rejects a second edge between the same endpoints
// with ErrParallelEdge. Parallel edges are permitted by default; turning
// them off costs one extra lookup on every insertion.
func WithoutParallelEdges() GraphOption {
	return func(c *graphConfig) { c.allowMulti = false }
}

// nodeRec is one slot of the node arena. Slots are reused after removal;
// the node's internal identifier is its index in the arena.
type nodeRec[N comparable] struct {
	val  N
	out  []int // outgoing edge ids, insertion order
	in   []int // incoming edge ids, insertion order
	live bool
}

// edgeRec is one slot of the edge arena.
type edgeRec[N, P comparable] struct {
	val      Edge[N, P]
	from, to int // internal node ids
	live     bool
}

// Graph is the in-memory graph store.
//
// Nodes and edges live in dense arenas indexed by internal identifiers;
// nodeIDs and edgeIDs map caller values back to those indexes so every
// public operation costs one map lookup on top of the arena access.
// The generation counter is bumped by every effective mutation and lets
// cursors and traversal engines detect use-after-mutation.
type Graph[N, P comparable] struct {
	directed   bool
	allowMulti bool

	gen uint64

	nodes     []nodeRec[N]
	edges     []edgeRec[N, P]
	freeNodes []int
	freeEdges []int

	nodeIDs map[N]int
	edgeIDs map[Edge[N, P]][]int

	nodeCount int
	edgeCount int
}

// New creates an empty Graph holding N values on nodes and P values on
// edges. By default the graph is directed and permits parallel edges,
// matching the cheapest representation; see WithUndirected and
// WithoutParallelEdges.
// Complexity: O(1).
func New[N, P comparable](opts ...GraphOption) *Graph[N, P] {
	cfg := graphConfig{directed: true, allowMulti: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, P]{
		directed:   cfg.directed,
		allowMulti: cfg.allowMulti,
		nodeIDs:    make(map[N]int),
		edgeIDs:    make(map[Edge[N, P]][]int),
	}
}

// Directed reports whether edges are one-way.
func (g *Graph[N, P]) Directed() bool { return g.directed }

// Multi reports whether parallel edges are permitted.
func (g *Graph[N, P]) Multi() bool { return g.allowMulti }

// Generation returns an opaque counter that changes whenever the store
// is mutated. Consumers snapshot it to detect staleness; the value
// itself carries no other meaning.
func (g *Graph[N, P]) Generation() uint64 { return g.gen }

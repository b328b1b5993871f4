// Package bfs defines hook options and error values for breadth-first
// search over a core.Graph.
package bfs

import (
	"context"
	"errors"

	"github.com/veligo/libgraph/core"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start value is absent.
	ErrStartNodeNotFound = errors.New("bfs: start node not found")

	// ErrStaleRun is returned by Run(_, false) when the graph was
	// mutated after the retained traversal state was built.
	ErrStaleRun = errors.New("bfs: graph mutated since last reset")
)

// Node colors of the traversal state machine.
const (
	White = iota // not yet discovered
	Gray         // discovered, queued, edges not exhausted
	Black        // exhausted
)

// NodeHook observes a node event. Returning an error aborts the run.
type NodeHook[N comparable] func(n N) error

// EdgeHook observes an edge event. Returning an error aborts the run.
type EdgeHook[N, P comparable] func(e core.Edge[N, P]) error

// Option configures Search behavior via functional arguments.
type Option[N, P comparable] func(*Options[N, P])

// Options holds the callbacks invoked as the search progresses. Every
// hook defaults to a no-op, so callers override only what they need.
type Options[N, P comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnFound is called the first time a node is discovered, including
	// the start node of every Run.
	OnFound NodeHook[N]

	// OnLookNode is called when a node is dequeued, before its edges
	// are examined.
	OnLookNode NodeHook[N]

	// OnLookEdge is called on every outgoing edge as it is examined,
	// before classification.
	OnLookEdge EdgeHook[N, P]

	// OnTreeEdge is called when an edge leads to an undiscovered node,
	// after the node's distance has been recorded.
	OnTreeEdge EdgeHook[N, P]

	// OnOtherEdge is called when an edge leads to a node already
	// discovered (back or cross; BFS cannot tell the two apart).
	OnOtherEdge EdgeHook[N, P]

	// OnNodeDone is called after all outgoing edges of a node have
	// been examined.
	OnNodeDone NodeHook[N]
}

// DefaultOptions returns Options with a background context and no-op
// hooks.
func DefaultOptions[N, P comparable]() Options[N, P] {
	return Options[N, P]{
		Ctx:         context.Background(),
		OnFound:     func(N) error { return nil },
		OnLookNode:  func(N) error { return nil },
		OnLookEdge:  func(core.Edge[N, P]) error { return nil },
		OnTreeEdge:  func(core.Edge[N, P]) error { return nil },
		OnOtherEdge: func(core.Edge[N, P]) error { return nil },
		OnNodeDone:  func(N) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[N, P comparable](ctx context.Context) Option[N, P] {
	return func(o *Options[N, P]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnFound registers the first-discovery hook.
func WithOnFound[N, P comparable](fn NodeHook[N]) Option[N, P] {
	return func(o *Options[N, P]) {
		if fn != nil {
			o.OnFound = fn
		}
	}
}

// WithOnLookNode registers the dequeue hook.
func WithOnLookNode[N, P comparable](fn NodeHook[N]) Option[N, P] {
	return func(o *Options[N, P]) {
		if fn != nil {
			o.OnLookNode = fn
		}
	}
}

// WithOnLookEdge registers the edge-examination hook.
func WithOnLookEdge[N, P comparable](fn EdgeHook[N, P]) Option[N, P] {
	return func(o *Options[N, P]) {
		if fn != nil {
			o.OnLookEdge = fn
		}
	}
}

// WithOnTreeEdge registers the tree-edge hook.
func WithOnTreeEdge[N, P comparable](fn EdgeHook[N, P]) Option[N, P] {
	return func(o *Options[N, P]) {
		if fn != nil {
			o.OnTreeEdge = fn
		}
	}
}

// WithOnOtherEdge registers the non-tree-edge hook.
func WithOnOtherEdge[N, P comparable](fn EdgeHook[N, P]) Option[N, P] {
	return func(o *Options[N, P]) {
		if fn != nil {
			o.OnOtherEdge = fn
		}
	}
}

// WithOnNodeDone registers the node-exhausted hook.
func WithOnNodeDone[N, P comparable](fn NodeHook[N]) Option[N, P] {
	return func(o *Options[N, P]) {
		if fn != nil {
			o.OnNodeDone = fn
		}
	}
}

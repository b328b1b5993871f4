// Package dfs defines hook options and error values for depth-first
// search over a core.Graph.
package dfs

import (
	"context"
	"errors"

	"github.com/veligo/libgraph/core"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed to New.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartNodeNotFound is returned when the start value is absent.
	ErrStartNodeNotFound = errors.New("dfs: start node not found")

	// ErrStaleRun is returned by Run(_, false) when the graph was
	// mutated after the retained traversal state was built.
	ErrStaleRun = errors.New("dfs: graph mutated since last reset")
)

// Node colors of the traversal state machine.
const (
	White = iota // not yet discovered
	Gray         // on the current search path
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

	// OnFound is called the first time a node is discovered.
	OnFound NodeHook[N]

	// OnLookEdge is called on every outgoing edge as it is examined,
	// before classification.
	OnLookEdge EdgeHook[N, P]

	// OnTreeEdge is called when an edge leads to an undiscovered node,
	// just before the search descends into it.
	OnTreeEdge EdgeHook[N, P]

	// OnBackEdge is called when an edge leads to an ancestor still on
	// the current search path.
	OnBackEdge EdgeHook[N, P]

	// OnOtherEdge is called when an edge leads to an already-finished
	// node (forward or cross; the two are not distinguished).
	OnOtherEdge EdgeHook[N, P]

	// OnNodeDone is called after all outgoing edges of a node have
	// been exhausted.
	OnNodeDone NodeHook[N]

	// OnEdgeDone is called when an edge is finished with: immediately
	// after classification for non-tree edges, and after the subtree
	// has been fully explored for tree edges.
	OnEdgeDone EdgeHook[N, P]
}

// DefaultOptions returns Options with a background context and no-op
// hooks.
func DefaultOptions[N, P comparable]() Options[N, P] {
	return Options[N, P]{
		Ctx:         context.Background(),
		OnFound:     func(N) error { return nil },
		OnLookEdge:  func(core.Edge[N, P]) error { return nil },
		OnTreeEdge:  func(core.Edge[N, P]) error { return nil },
		OnBackEdge:  func(core.Edge[N, P]) error { return nil },
		OnOtherEdge: func(core.Edge[N, P]) error { return nil },
		OnNodeDone:  func(N) error { return nil },
		OnEdgeDone:  func(core.Edge[N, P]) error { return nil },
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

// WithOnBackEdge registers the back-edge hook.
func WithOnBackEdge[N, P comparable](fn EdgeHook[N, P]) Option[N, P] {
	return func(o *Options[N, P]) {
		if fn != nil {
			o.OnBackEdge = fn
		}
	}
}

// WithOnOtherEdge registers the forward/cross-edge hook.
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

// WithOnEdgeDone registers the edge-finished hook.
func WithOnEdgeDone[N, P comparable](fn EdgeHook[N, P]) Option[N, P] {
	return func(o *Options[N, P]) {
		if fn != nil {
			o.OnEdgeDone = fn
		}
	}
}

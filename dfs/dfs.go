// Package dfs implements depth-first search as a resumable state
// machine over a core.Graph, with edge classification hooks.
package dfs

import (
	"fmt"

	"github.com/veligo/libgraph/core"
)

// frame is one level of the explicit search stack: a node, its
// outgoing edges, the cursor into them, and the tree edge that led
// here (absent for the root).
type frame[N, P comparable] struct {
	node     N
	edges    []core.Edge[N, P]
	next     int
	entry    core.Edge[N, P]
	hasEntry bool
}

// Search holds the per-run traversal state: a color per node, retained
// across Run calls until a reset.
type Search[N, P comparable] struct {
	g    *core.Graph[N, P]
	opts Options[N, P]

	color map[N]int
	gen   uint64
}

// New binds a Search to g. Hooks and context are fixed at construction.
// Returns ErrGraphNil for a nil graph.
func New[N, P comparable](g *core.Graph[N, P], opts ...Option[N, P]) (*Search[N, P], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[N, P]()
	for _, opt := range opts {
		opt(&o)
	}

	return &Search[N, P]{g: g, opts: o}, nil
}

// Run explores the component reachable from start and stops — it does
// not continue into undiscovered components the way a textbook
// full-graph DFS would. Cover the whole graph by calling Run once per
// node with reset=false after the first call; a start that an earlier
// run already discovered makes the call a no-op.
//
// The search uses an explicit stack, so its depth is bounded by heap,
// not goroutine stack.
//
// Returns ErrStartNodeNotFound if start is absent, ErrStaleRun if the
// graph was mutated since the retained state was built, the context's
// error on cancellation, or the first error returned by a hook.
func (s *Search[N, P]) Run(start N, reset bool) error {
	if reset || s.color == nil {
		s.reset()
	} else if s.gen != s.g.Generation() {
		return ErrStaleRun
	}
	if !s.g.HasNode(start) {
		return ErrStartNodeNotFound
	}
	if s.color[start] != White {
		return nil // component already explored
	}

	stack := make([]frame[N, P], 0, 16)
	push := func(n N, entry core.Edge[N, P], hasEntry bool) error {
		if err := s.opts.OnFound(n); err != nil {
			return fmt.Errorf("dfs: OnFound hook for %v: %w", n, err)
		}
		s.color[n] = Gray
		edges, err := s.g.OutEdges(n)
		if err != nil {
			return fmt.Errorf("dfs: OutEdges(%v): %w", n, err)
		}
		stack = append(stack, frame[N, P]{node: n, edges: edges, entry: entry, hasEntry: hasEntry})

		return nil
	}

	if err := push(start, core.Edge[N, P]{}, false); err != nil {
		return err
	}

	for len(stack) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		f := &stack[len(stack)-1]
		if f.next >= len(f.edges) {
			// Node exhausted: finish it, then the edge that led here.
			if err := s.opts.OnNodeDone(f.node); err != nil {
				return fmt.Errorf("dfs: OnNodeDone hook for %v: %w", f.node, err)
			}
			s.color[f.node] = Black
			entry, hasEntry := f.entry, f.hasEntry
			stack = stack[:len(stack)-1]
			if hasEntry {
				if err := s.opts.OnEdgeDone(entry); err != nil {
					return fmt.Errorf("dfs: OnEdgeDone hook: %w", err)
				}
			}
			continue
		}

		e := f.edges[f.next]
		f.next++
		if err := s.opts.OnLookEdge(e); err != nil {
			return fmt.Errorf("dfs: OnLookEdge hook: %w", err)
		}
		m := other(e, f.node)
		switch s.color[m] {
		case White:
			if err := s.opts.OnTreeEdge(e); err != nil {
				return fmt.Errorf("dfs: OnTreeEdge hook: %w", err)
			}
			if err := push(m, e, true); err != nil {
				return err
			}
		case Gray:
			if err := s.opts.OnBackEdge(e); err != nil {
				return fmt.Errorf("dfs: OnBackEdge hook: %w", err)
			}
			if err := s.opts.OnEdgeDone(e); err != nil {
				return fmt.Errorf("dfs: OnEdgeDone hook: %w", err)
			}
		default:
			if err := s.opts.OnOtherEdge(e); err != nil {
				return fmt.Errorf("dfs: OnOtherEdge hook: %w", err)
			}
			if err := s.opts.OnEdgeDone(e); err != nil {
				return fmt.Errorf("dfs: OnEdgeDone hook: %w", err)
			}
		}
	}

	return nil
}

// WasSeen reports whether n was discovered during any run since the
// last reset.
func (s *Search[N, P]) WasSeen(n N) bool { return s.color[n] != White }

// reset clears colors and snapshots the graph generation the retained
// state belongs to.
func (s *Search[N, P]) reset() {
	s.color = make(map[N]int, s.g.NodeCount())
	s.gen = s.g.Generation()
}

// other resolves the endpoint of e opposite to n.
func other[N, P comparable](e core.Edge[N, P], n N) N {
	if e.From == n {
		return e.To
	}

	return e.From
}

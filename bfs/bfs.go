// Package bfs implements breadth-first search as a resumable state
// machine over a core.Graph, with a hook at every decision point.
package bfs

import (
	"fmt"
	"strings"

	"github.com/veligo/libgraph/core"
)

// Search holds the per-run traversal state: a color per node and the
// hop distance from the most recent root. State survives across Run
// calls until a reset, which lets disconnected components be covered
// root by root without re-visiting finished ones.
type Search[N, P comparable] struct {
	g    *core.Graph[N, P]
	opts Options[N, P]

	color map[N]int
	dist  map[N]int
	gen   uint64
}

// New binds a Search to g. Hooks and context are fixed at construction;
// the zero state is established lazily by the first Run.
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

// Run executes BFS from start. With reset true (or on the first run)
// all nodes revert to undiscovered and distances clear; with reset
// false the previous state is kept, so nodes finished by an earlier run
// are not entered again.
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

	// Seed: the root is always (re)discovered at distance zero.
	if err := s.opts.OnFound(start); err != nil {
		return fmt.Errorf("bfs: OnFound hook for %v: %w", start, err)
	}
	s.color[start] = Gray
	s.dist[start] = 0
	queue := []N{start}

	for len(queue) > 0 {
		select {
		case <-s.opts.Ctx.Done():
			return s.opts.Ctx.Err()
		default:
		}

		n := queue[0]
		queue = queue[1:]
		if err := s.opts.OnLookNode(n); err != nil {
			return fmt.Errorf("bfs: OnLookNode hook for %v: %w", n, err)
		}

		edges, err := s.g.OutEdges(n)
		if err != nil {
			return fmt.Errorf("bfs: OutEdges(%v): %w", n, err)
		}
		for _, e := range edges {
			if err = s.opts.OnLookEdge(e); err != nil {
				return fmt.Errorf("bfs: OnLookEdge hook: %w", err)
			}
			m := other(e, n)
			if s.color[m] == White {
				s.dist[m] = s.dist[n] + 1
				if err = s.opts.OnTreeEdge(e); err != nil {
					return fmt.Errorf("bfs: OnTreeEdge hook: %w", err)
				}
				if err = s.opts.OnFound(m); err != nil {
					return fmt.Errorf("bfs: OnFound hook for %v: %w", m, err)
				}
				s.color[m] = Gray
				queue = append(queue, m)
			} else if err = s.opts.OnOtherEdge(e); err != nil {
				return fmt.Errorf("bfs: OnOtherEdge hook: %w", err)
			}
		}

		if err = s.opts.OnNodeDone(n); err != nil {
			return fmt.Errorf("bfs: OnNodeDone hook for %v: %w", n, err)
		}
		s.color[n] = Black
	}

	return nil
}

// Distance returns the hop count from the most recent root to n. It is
// 0 both for the root itself and for any node never reached; use
// WasSeen to tell the two apart.
func (s *Search[N, P]) Distance(n N) int { return s.dist[n] }

// WasSeen reports whether n was discovered during any run since the
// last reset.
func (s *Search[N, P]) WasSeen(n N) bool { return s.color[n] != White }

// String renders a node/distance table over the graph's node set, in
// enumeration order. Unreached nodes report distance 0.
func (s *Search[N, P]) String() string {
	var sb strings.Builder
	sb.WriteString("Node\tDistance to Source\n")
	for c := s.g.Nodes(); c.Next(); {
		fmt.Fprintf(&sb, "%v\t%d\n", c.Value(), s.dist[c.Value()])
	}

	return sb.String()
}

// reset clears colors and distances and snapshots the graph generation
// the retained state belongs to.
func (s *Search[N, P]) reset() {
	s.color = make(map[N]int, s.g.NodeCount())
	s.dist = make(map[N]int, s.g.NodeCount())
	s.gen = s.g.Generation()
}

// other resolves the endpoint of e opposite to n; for directed graphs
// enumeration always starts at the source, for undirected graphs the
// stored orientation is arbitrary.
func other[N, P comparable](e core.Edge[N, P], n N) N {
	if e.From == n {
		return e.To
	}

	return e.From
}

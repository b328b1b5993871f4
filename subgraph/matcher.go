// Package subgraph implements a VF2-style backtracking search for
// occurrences of a pattern graph inside a target graph.
package subgraph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/veligo/libgraph/core"
)

// Matcher enumerates structure-preserving, injective mappings from a
// pattern graph's nodes into the nodes of a fixed target graph. The
// result set of the most recent Run is kept until the next Run.
type Matcher[N, P comparable] struct {
	target *core.Graph[N, P]
	nodeEq NodeEquals[N]
	edgeEq EdgeEquals[N, P]

	matches []map[N]N
	order   []N // pattern node enumeration order of the last Run
}

// New binds a Matcher to the target graph. Equivalence predicates are
// fixed at construction and default to value equality.
// Returns ErrTargetNil for a nil target.
func New[N, P comparable](target *core.Graph[N, P], opts ...Option[N, P]) (*Matcher[N, P], error) {
	if target == nil {
		return nil, ErrTargetNil
	}
	m := &Matcher[N, P]{
		target: target,
		nodeEq: func(t, p N) bool { return t == p },
		edgeEq: func(t, p core.Edge[N, P]) bool { return t == p },
	}
	for _, opt := range opts {
		opt(m)
	}

	return m, nil
}

// Run searches for pattern inside the target and reports whether at
// least one mapping was found. The result set is cleared and rebuilt
// on every call.
//
// By default mappings are induced — adjacency in the pattern must
// mirror adjacency in the target restricted to the mapped nodes — and
// all mappings are enumerated; see WithMonomorphism and
// WithStopAtFirst. An empty pattern yields one empty mapping.
//
// Pattern nodes are tried in decreasing out-degree order (ties in
// enumeration order), which prunes the search early but never changes
// the set of mappings found.
func (m *Matcher[N, P]) Run(pattern *core.Graph[N, P], opts ...RunOption) (bool, error) {
	if pattern == nil {
		return false, ErrPatternNil
	}
	if pattern.Directed() != m.target.Directed() {
		return false, ErrKindMismatch
	}
	cfg := runConfig{induced: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	m.matches = m.matches[:0]
	m.order = m.order[:0]
	for c := pattern.Nodes(); c.Next(); {
		m.order = append(m.order, c.Value())
	}

	// Most-constrained first: descending degree, enumeration order on ties.
	pnodes := make([]N, len(m.order))
	copy(pnodes, m.order)
	sort.SliceStable(pnodes, func(i, j int) bool {
		di, _ := pattern.OutDegree(pnodes[i])
		dj, _ := pattern.OutDegree(pnodes[j])

		return di > dj
	})

	var tnodes []N
	for c := m.target.Nodes(); c.Next(); {
		tnodes = append(tnodes, c.Value())
	}

	w := &walker[N, P]{
		m:       m,
		pattern: pattern,
		cfg:     cfg,
		pnodes:  pnodes,
		tnodes:  tnodes,
		mapping: make(map[N]N, len(pnodes)),
		used:    make(map[N]bool, len(pnodes)),
	}
	w.search(0)

	return len(m.matches) > 0, nil
}

// MatchCount returns the number of mappings found by the last Run.
func (m *Matcher[N, P]) MatchCount() int { return len(m.matches) }

// Match returns the i-th mapping (pattern node → target node) found by
// the last Run. The returned map is shared; treat it as read-only.
func (m *Matcher[N, P]) Match(i int) map[N]N { return m.matches[i] }

// Matches returns all mappings found by the last Run.
func (m *Matcher[N, P]) Matches() []map[N]N { return m.matches }

// String renders every mapping as "pattern ---> target" lines, one
// block per match, in pattern enumeration order.
func (m *Matcher[N, P]) String() string {
	var sb strings.Builder
	for _, match := range m.matches {
		for _, p := range m.order {
			fmt.Fprintf(&sb, "%v ---> %v\n", p, match[p])
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// walker carries the mutable state of one backtracking search.
type walker[N, P comparable] struct {
	m       *Matcher[N, P]
	pattern *core.Graph[N, P]
	cfg     runConfig
	pnodes  []N
	tnodes  []N
	mapping map[N]N
	used    map[N]bool
}

// search extends the partial mapping with an assignment for the k-th
// pattern node. It returns true when the caller should stop unwinding
// (stop-at-first satisfied).
func (w *walker[N, P]) search(k int) bool {
	if k == len(w.pnodes) {
		found := make(map[N]N, len(w.mapping))
		for p, t := range w.mapping {
			found[p] = t
		}
		w.m.matches = append(w.m.matches, found)

		return w.cfg.stopAtFirst
	}

	p := w.pnodes[k]
	for _, t := range w.tnodes {
		if w.used[t] || !w.m.nodeEq(t, p) {
			continue
		}
		if !w.feasible(p, t) {
			continue
		}
		w.mapping[p] = t
		w.used[t] = true
		if w.search(k + 1) {
			return true
		}
		delete(w.mapping, p)
		delete(w.used, t)
	}

	return false
}

// feasible checks the candidate assignment p→t against every node
// already mapped: pattern edges must have equivalent target edges, and
// in induced mode target edges among mapped nodes must not exceed the
// pattern's.
func (w *walker[N, P]) feasible(p, t N) bool {
	if !w.pairOK(p, p, t, t) {
		return false // self-loop mismatch
	}
	for q, tq := range w.mapping {
		if !w.pairOK(p, q, t, tq) {
			return false
		}
		if w.pattern.Directed() && !w.pairOK(q, p, tq, t) {
			return false
		}
	}

	return true
}

// pairOK validates the single direction pu→pv against tu→tv.
func (w *walker[N, P]) pairOK(pu, pv, tu, tv N) bool {
	pEdges := edgesBetween(w.pattern, pu, pv)
	if len(pEdges) == 0 {
		// No pattern edge: induced mode forbids a target edge here.
		return !w.cfg.induced || !w.target().HasEdge(tu, tv)
	}
	tEdges := edgesBetween(w.target(), tu, tv)
	for _, pe := range pEdges {
		matched := false
		for _, te := range tEdges {
			if w.m.edgeEq(te, pe) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	return true
}

func (w *walker[N, P]) target() *core.Graph[N, P] { return w.m.target }

// edgesBetween lists the edges running u→v (either orientation for
// undirected graphs). Absent endpoints yield nothing.
func edgesBetween[N, P comparable](g *core.Graph[N, P], u, v N) []core.Edge[N, P] {
	out, err := g.OutEdges(u)
	if err != nil {
		return nil
	}
	var between []core.Edge[N, P]
	for _, e := range out {
		m := e.To
		if e.From != u {
			m = e.From
		}
		if m == v {
			between = append(between, e)
		}
	}

	return between
}

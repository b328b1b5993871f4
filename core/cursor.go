// Package core: read-only cursors over the node and edge sets.
//
// A cursor is single-pass; calling Nodes or Edges again yields a fresh,
// independent sequence. Each cursor snapshots the graph's generation
// counter at creation and refuses to advance past a mutation, so a
// stale position is reported instead of silently walking freed slots.

package core

// NodeCursor walks every node value in internal-identifier order.
//
//	for c := g.Nodes(); c.Next(); {
//		use(c.Value())
//	}
//	if err := c.Err(); err != nil { ... }
type NodeCursor[N, P comparable] struct {
	g   *Graph[N, P]
	gen uint64
	idx int
	cur N
	err error
}

// Nodes returns a fresh cursor over the node set.
func (g *Graph[N, P]) Nodes() *NodeCursor[N, P] {
	return &NodeCursor[N, P]{g: g, gen: g.gen, idx: -1}
}

// Next advances to the next node. It returns false when the sequence is
// exhausted or the graph was mutated; Err distinguishes the two.
func (c *NodeCursor[N, P]) Next() bool {
	if c.err != nil {
		return false
	}
	if c.gen != c.g.gen {
		c.err = ErrStaleCursor

		return false
	}
	for c.idx++; c.idx < len(c.g.nodes); c.idx++ {
		if c.g.nodes[c.idx].live {
			c.cur = c.g.nodes[c.idx].val

			return true
		}
	}

	return false
}

// Value returns the node at the cursor's position. Valid only after a
// Next call that returned true.
func (c *NodeCursor[N, P]) Value() N { return c.cur }

// Err returns ErrStaleCursor if the graph was mutated while iterating,
// nil otherwise.
func (c *NodeCursor[N, P]) Err() error { return c.err }

// EdgeCursor walks every edge value in internal-identifier order.
type EdgeCursor[N, P comparable] struct {
	g   *Graph[N, P]
	gen uint64
	idx int
	cur Edge[N, P]
	err error
}

// Edges returns a fresh cursor over the edge set.
func (g *Graph[N, P]) Edges() *EdgeCursor[N, P] {
	return &EdgeCursor[N, P]{g: g, gen: g.gen, idx: -1}
}

// Next advances to the next edge. It returns false when the sequence is
// exhausted or the graph was mutated; Err distinguishes the two.
func (c *EdgeCursor[N, P]) Next() bool {
	if c.err != nil {
		return false
	}
	if c.gen != c.g.gen {
		c.err = ErrStaleCursor

		return false
	}
	for c.idx++; c.idx < len(c.g.edges); c.idx++ {
		if c.g.edges[c.idx].live {
			c.cur = c.g.edges[c.idx].val

			return true
		}
	}

	return false
}

// Value returns the edge at the cursor's position. Valid only after a
// Next call that returned true.
func (c *EdgeCursor[N, P]) Value() Edge[N, P] { return c.cur }

// Err returns ErrStaleCursor if the graph was mutated while iterating,
// nil otherwise.
func (c *EdgeCursor[N, P]) Err() error { return c.err }

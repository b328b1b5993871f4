// Package core: Graph mutation and query operations.
//
// Nodes and edges are kept in dense arenas with free lists; removal
// frees a slot without shifting its neighbors, so internal identifiers
// stay valid for everything still alive. Adjacency is a pair of edge-id
// slices per node kept in insertion order, which makes every
// enumeration deterministic within a run.

package core

import "iter"

// AddNode inserts the node value v. Re-adding an existing value is a
// no-op and does not invalidate cursors.
// Complexity: O(1) amortized.
func (g *Graph[N, P]) AddNode(v N) {
	if _, ok := g.nodeIDs[v]; ok {
		return // no-op for existing node
	}
	id := g.allocNode()
	g.nodes[id] = nodeRec[N]{val: v, live: true}
	g.nodeIDs[v] = id
	g.nodeCount++
	g.gen++
}

// AddNodes inserts each value in turn; existing values are skipped.
func (g *Graph[N, P]) AddNodes(vs ...N) {
	for _, v := range vs {
		g.AddNode(v)
	}
}

// AddNodesFrom drains seq into the graph. The sequence is consumed
// exactly once; existing values are skipped.
func (g *Graph[N, P]) AddNodesFrom(seq iter.Seq[N]) {
	for v := range seq {
		g.AddNode(v)
	}
}

// HasNode reports whether the node value v is in the graph.
// Complexity: O(1).
func (g *Graph[N, P]) HasNode(v N) bool {
	_, ok := g.nodeIDs[v]

	return ok
}

// RemoveNode deletes v and every edge incident to it.
// Returns ErrNodeNotFound if v is absent.
// Complexity: O(deg(v)) plus the cost of detaching each incident edge.
func (g *Graph[N, P]) RemoveNode(v N) error {
	id, ok := g.nodeIDs[v]
	if !ok {
		return ErrNodeNotFound
	}
	// Collect incident edge ids first: detaching mutates the slices.
	seen := make(map[int]struct{}, len(g.nodes[id].out)+len(g.nodes[id].in))
	for _, eid := range g.nodes[id].out {
		seen[eid] = struct{}{}
	}
	for _, eid := range g.nodes[id].in {
		seen[eid] = struct{}{}
	}
	for eid := range seen {
		g.detachEdge(eid)
	}

	delete(g.nodeIDs, v)
	g.nodes[id] = nodeRec[N]{}
	g.freeNodes = append(g.freeNodes, id)
	g.nodeCount--
	g.gen++

	return nil
}

// AddEdge creates an edge from→to carrying payload.
// Returns ErrNodeNotFound if either endpoint is absent, or
// ErrParallelEdge when a from→to edge already exists and parallel edges
// are disabled. The store is left unchanged on error.
// Complexity: O(1), or O(deg(from)) when parallel edges are disabled.
func (g *Graph[N, P]) AddEdge(from, to N, payload P) error {
	fid, ok := g.nodeIDs[from]
	if !ok {
		return ErrNodeNotFound
	}
	tid, ok := g.nodeIDs[to]
	if !ok {
		return ErrNodeNotFound
	}
	if !g.allowMulti && g.connected(fid, tid) {
		return ErrParallelEdge
	}

	val := Edge[N, P]{From: from, To: to, Payload: payload}
	eid := g.allocEdge()
	g.edges[eid] = edgeRec[N, P]{val: val, from: fid, to: tid, live: true}
	g.edgeIDs[val] = append(g.edgeIDs[val], eid)

	g.nodes[fid].out = append(g.nodes[fid].out, eid)
	if g.directed {
		g.nodes[tid].in = append(g.nodes[tid].in, eid)
	} else if tid != fid {
		// Undirected edges are incident at both ends; loops only once.
		g.nodes[tid].out = append(g.nodes[tid].out, eid)
	}
	g.edgeCount++
	g.gen++

	return nil
}

// AddEdges inserts every edge, or none: all endpoints are validated
// before the first insertion, so a failing batch leaves the store
// untouched. Parallel-edge violations are likewise detected up front.
func (g *Graph[N, P]) AddEdges(es ...Edge[N, P]) error {
	for _, e := range es {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return ErrNodeNotFound
		}
	}
	if !g.allowMulti {
		for i, e := range es {
			if g.HasEdge(e.From, e.To) {
				return ErrParallelEdge
			}
			for _, prior := range es[:i] {
				if prior.From == e.From && prior.To == e.To {
					return ErrParallelEdge
				}
				// Undirected: the reversed orientation is the same edge.
				if !g.directed && prior.From == e.To && prior.To == e.From {
					return ErrParallelEdge
				}
			}
		}
	}
	for _, e := range es {
		if err := g.AddEdge(e.From, e.To, e.Payload); err != nil {
			return err
		}
	}

	return nil
}

// AddEdgesFrom drains seq and inserts the edges as one batch with
// AddEdges semantics (all-or-nothing).
func (g *Graph[N, P]) AddEdgesFrom(seq iter.Seq[Edge[N, P]]) error {
	var es []Edge[N, P]
	for e := range seq {
		es = append(es, e)
	}

	return g.AddEdges(es...)
}

// RemoveEdge deletes one edge running from→to (for undirected graphs,
// between from and to). With parallel edges present, the oldest such
// edge goes first. Returns ErrEdgeNotFound if no such edge exists, or
// ErrNodeNotFound if an endpoint is absent.
func (g *Graph[N, P]) RemoveEdge(from, to N) error {
	fid, ok := g.nodeIDs[from]
	if !ok {
		return ErrNodeNotFound
	}
	tid, ok := g.nodeIDs[to]
	if !ok {
		return ErrNodeNotFound
	}
	for _, eid := range g.nodes[fid].out {
		if g.otherEnd(eid, fid) == tid {
			g.detachEdge(eid)
			g.gen++

			return nil
		}
	}

	return ErrEdgeNotFound
}

// RemoveEdgeValue deletes one edge whose value (endpoints and payload)
// equals e exactly. With parallel edges present, the oldest such edge
// goes first, as with RemoveEdge. Returns ErrEdgeNotFound if no such
// edge exists.
// Complexity: O(deg) for the detach.
func (g *Graph[N, P]) RemoveEdgeValue(e Edge[N, P]) error {
	ids := g.edgeIDs[e]
	if len(ids) == 0 {
		return ErrEdgeNotFound
	}
	g.detachEdge(ids[0])
	g.gen++

	return nil
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph[N, P]) NodeCount() int { return g.nodeCount }

// EdgeCount returns the number of edges. O(1).
func (g *Graph[N, P]) EdgeCount() int { return g.edgeCount }

// OutDegree returns the number of edges leaving v; for undirected
// graphs this counts all incident edges.
// Returns ErrNodeNotFound if v is absent.
func (g *Graph[N, P]) OutDegree(v N) (int, error) {
	id, ok := g.nodeIDs[v]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(g.nodes[id].out), nil
}

// InDegree returns the number of edges ending in v. For undirected
// graphs it coincides with OutDegree.
// Returns ErrNodeNotFound if v is absent.
func (g *Graph[N, P]) InDegree(v N) (int, error) {
	id, ok := g.nodeIDs[v]
	if !ok {
		return 0, ErrNodeNotFound
	}
	if !g.directed {
		return len(g.nodes[id].out), nil
	}

	return len(g.nodes[id].in), nil
}

// Neighbors returns the set of nodes reachable from v by one outgoing
// edge, deduplicated, in first-edge-insertion order.
// Returns ErrNodeNotFound if v is absent.
// Complexity: O(deg(v)).
func (g *Graph[N, P]) Neighbors(v N) ([]N, error) {
	id, ok := g.nodeIDs[v]
	if !ok {
		return nil, ErrNodeNotFound
	}
	seen := make(map[int]struct{}, len(g.nodes[id].out))
	out := make([]N, 0, len(g.nodes[id].out))
	for _, eid := range g.nodes[id].out {
		nid := g.otherEnd(eid, id)
		if _, dup := seen[nid]; dup {
			continue
		}
		seen[nid] = struct{}{}
		out = append(out, g.nodes[nid].val)
	}

	return out, nil
}

// OutEdges returns the edges leaving v (all incident edges for
// undirected graphs), in insertion order.
// Returns ErrNodeNotFound if v is absent.
func (g *Graph[N, P]) OutEdges(v N) ([]Edge[N, P], error) {
	id, ok := g.nodeIDs[v]
	if !ok {
		return nil, ErrNodeNotFound
	}
	out := make([]Edge[N, P], len(g.nodes[id].out))
	for i, eid := range g.nodes[id].out {
		out[i] = g.edges[eid].val
	}

	return out, nil
}

// InEdges returns the edges ending in v, in insertion order. For
// undirected graphs it coincides with OutEdges.
// Returns ErrNodeNotFound if v is absent.
func (g *Graph[N, P]) InEdges(v N) ([]Edge[N, P], error) {
	id, ok := g.nodeIDs[v]
	if !ok {
		return nil, ErrNodeNotFound
	}
	src := g.nodes[id].in
	if !g.directed {
		src = g.nodes[id].out
	}
	out := make([]Edge[N, P], len(src))
	for i, eid := range src {
		out[i] = g.edges[eid].val
	}

	return out, nil
}

// Connected reports whether an edge u→v exists (either orientation
// for undirected graphs). Unlike HasEdge, an absent endpoint is an
// error (ErrNodeNotFound), not a false.
func (g *Graph[N, P]) Connected(u, v N) (bool, error) {
	uid, ok := g.nodeIDs[u]
	if !ok {
		return false, ErrNodeNotFound
	}
	vid, ok := g.nodeIDs[v]
	if !ok {
		return false, ErrNodeNotFound
	}

	return g.connected(uid, vid), nil
}

// HasEdge reports whether an edge u→v exists (either orientation for
// undirected graphs). Absent endpoints simply report false.
// Complexity: O(deg(u)).
func (g *Graph[N, P]) HasEdge(u, v N) bool {
	uid, ok := g.nodeIDs[u]
	if !ok {
		return false
	}
	vid, ok := g.nodeIDs[v]
	if !ok {
		return false
	}

	return g.connected(uid, vid)
}

// Internal helpers:
////////////////////

// allocNode returns a free arena slot, growing the arena if necessary.
func (g *Graph[N, P]) allocNode() int {
	if n := len(g.freeNodes); n > 0 {
		id := g.freeNodes[n-1]
		g.freeNodes = g.freeNodes[:n-1]

		return id
	}
	g.nodes = append(g.nodes, nodeRec[N]{})

	return len(g.nodes) - 1
}

// allocEdge returns a free edge slot, growing the arena if necessary.
func (g *Graph[N, P]) allocEdge() int {
	if n := len(g.freeEdges); n > 0 {
		id := g.freeEdges[n-1]
		g.freeEdges = g.freeEdges[:n-1]

		return id
	}
	g.edges = append(g.edges, edgeRec[N, P]{})

	return len(g.edges) - 1
}

// connected reports an edge uid→vid (any incident edge to vid when
// undirected).
func (g *Graph[N, P]) connected(uid, vid int) bool {
	for _, eid := range g.nodes[uid].out {
		if g.otherEnd(eid, uid) == vid {
			return true
		}
	}

	return false
}

// otherEnd resolves the endpoint of eid opposite to nid. For a directed
// edge enumerated from its source this is the target; self-loops
// resolve to nid itself.
func (g *Graph[N, P]) otherEnd(eid, nid int) int {
	e := &g.edges[eid]
	if e.from == nid {
		return e.to
	}

	return e.from
}

// detachEdge unlinks eid from both endpoints, the value lookup, and the
// arena. Callers bump the generation counter.
func (g *Graph[N, P]) detachEdge(eid int) {
	e := g.edges[eid]

	g.nodes[e.from].out = removeID(g.nodes[e.from].out, eid)
	if g.directed {
		g.nodes[e.to].in = removeID(g.nodes[e.to].in, eid)
	} else if e.to != e.from {
		g.nodes[e.to].out = removeID(g.nodes[e.to].out, eid)
	}

	ids := removeID(g.edgeIDs[e.val], eid)
	if len(ids) == 0 {
		delete(g.edgeIDs, e.val)
	} else {
		g.edgeIDs[e.val] = ids
	}

	g.edges[eid] = edgeRec[N, P]{}
	g.freeEdges = append(g.freeEdges, eid)
	g.edgeCount--
}

// removeID deletes the first occurrence of id, preserving order.
func removeID(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}

	return ids
}

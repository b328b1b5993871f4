// Package subgraph locates occurrences of a small pattern graph inside
// a larger target graph.
//
// What:
//
//   - Matcher: VF2-style backtracking enumeration of injective,
//     structure-preserving mappings φ from pattern nodes to target
//     nodes. For every pattern edge (u,v), (φ(u),φ(v)) must be a
//     target edge accepted by the edge predicate.
//   - Induced mode (default): adjacency in the pattern must mirror
//     adjacency in the target restricted to the image of φ — no extra
//     target edges among matched nodes. WithMonomorphism relaxes this.
//   - Pluggable equivalence: WithNodeEquals and WithEdgeEquals replace
//     the default value-equality predicates, e.g. to compare a field
//     of the payload only.
//   - WithStopAtFirst stops after one mapping; otherwise all mappings
//     are enumerated and retained until the next Run (MatchCount,
//     Match, Matches).
//
// Pattern nodes are assigned in decreasing degree order, a heuristic
// that prunes the search early without changing the set of mappings.
// With parallel edges, each pattern edge needs an equivalent target
// edge but multiplicities are not matched one-to-one.
//
// Complexity: worst case exponential in pattern size, as for any
// subgraph-isomorphism search; the degree ordering and the per-level
// consistency checks keep typical inputs far below that.
//
// Errors:
//
//   - ErrTargetNil      target graph is nil
//   - ErrPatternNil     pattern graph is nil
//   - ErrKindMismatch   pattern and target directedness differ
package subgraph

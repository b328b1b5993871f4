// Package subgraph defines equivalence predicates, options, and error
// values for the isomorphism matcher.
package subgraph

import (
	"errors"

	"github.com/veligo/libgraph/core"
)

// Sentinel errors for subgraph search.
var (
	// ErrTargetNil is returned if a nil target graph is passed to New.
	ErrTargetNil = errors.New("subgraph: target graph is nil")

	// ErrPatternNil is returned if a nil pattern graph is passed to Run.
	ErrPatternNil = errors.New("subgraph: pattern graph is nil")

	// ErrKindMismatch is returned when pattern and target disagree on
	// directedness; adjacency of the two is not comparable.
	ErrKindMismatch = errors.New("subgraph: pattern and target directedness differ")
)

// NodeEquals decides whether a target node may be matched to a pattern
// node. The target's node comes first.
type NodeEquals[N comparable] func(targetNode, patternNode N) bool

// EdgeEquals decides whether a target edge may stand in for a pattern
// edge. The target's edge comes first.
type EdgeEquals[N, P comparable] func(targetEdge, patternEdge core.Edge[N, P]) bool

// Option configures a Matcher at construction.
type Option[N, P comparable] func(*Matcher[N, P])

// WithNodeEquals overrides the node equivalence predicate. The default
// compares node values with ==.
func WithNodeEquals[N, P comparable](fn NodeEquals[N]) Option[N, P] {
	return func(m *Matcher[N, P]) {
		if fn != nil {
			m.nodeEq = fn
		}
	}
}

// WithEdgeEquals overrides the edge equivalence predicate. The default
// compares full edge values (endpoints and payload) with ==.
func WithEdgeEquals[N, P comparable](fn EdgeEquals[N, P]) Option[N, P] {
	return func(m *Matcher[N, P]) {
		if fn != nil {
			m.edgeEq = fn
		}
	}
}

// RunOption configures a single Run call.
type RunOption func(*runConfig)

type runConfig struct {
	stopAtFirst bool
	induced     bool
}

// WithStopAtFirst stops the search at the first mapping found instead
// of enumerating all of them.
func WithStopAtFirst() RunOption {
	return func(c *runConfig) { c.stopAtFirst = true }
}

// WithMonomorphism relaxes the default induced-subgraph semantics:
// target edges between matched nodes that have no counterpart in the
// pattern no longer disqualify a mapping.
func WithMonomorphism() RunOption {
	return func(c *runConfig) { c.induced = false }
}

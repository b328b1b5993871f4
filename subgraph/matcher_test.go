package subgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/veligo/libgraph/core"
	"github.com/veligo/libgraph/subgraph"
)

// anyNode and anyEdge relax matching down to pure structure.
func anyNode[N comparable](_, _ N) bool { return true }

func anyEdge[N, P comparable](_, _ core.Edge[N, P]) bool { return true }

func buildPath(t *testing.T, nodes ...string) *core.Graph[string, core.None] {
	t.Helper()
	g := core.New[string, core.None]()
	g.AddNodes(nodes...)
	for i := 1; i < len(nodes); i++ {
		require.NoError(t, g.AddEdge(nodes[i-1], nodes[i], core.None{}))
	}

	return g
}

func TestNew_NilTarget(t *testing.T) {
	_, err := subgraph.New[string, core.None](nil)
	assert.ErrorIs(t, err, subgraph.ErrTargetNil)
}

func TestRun_NilPattern(t *testing.T) {
	m, err := subgraph.New(core.New[string, core.None]())
	require.NoError(t, err)
	_, err = m.Run(nil)
	assert.ErrorIs(t, err, subgraph.ErrPatternNil)
}

func TestRun_KindMismatch(t *testing.T) {
	m, err := subgraph.New(core.New[string, core.None]())
	require.NoError(t, err)
	_, err = m.Run(core.New[string, core.None](core.WithUndirected()))
	assert.ErrorIs(t, err, subgraph.ErrKindMismatch)
}

func TestRun_IdentityPattern(t *testing.T) {
	target := buildPath(t, "A", "B", "C")
	pattern := buildPath(t, "A", "B", "C")

	m, err := subgraph.New(target)
	require.NoError(t, err)
	found, err := m.Run(pattern)
	require.NoError(t, err)
	assert.True(t, found)
	require.Equal(t, 1, m.MatchCount())
	assert.Equal(t, map[string]string{"A": "A", "B": "B", "C": "C"}, m.Match(0))
}

func TestRun_SubPath(t *testing.T) {
	target := buildPath(t, "A", "B", "C")
	pattern := buildPath(t, "B", "C")

	m, err := subgraph.New(target)
	require.NoError(t, err)
	found, err := m.Run(pattern)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, map[string]string{"B": "B", "C": "C"}, m.Match(0))
}

func TestRun_NoOccurrence(t *testing.T) {
	target := buildPath(t, "A", "B")
	pattern := buildPath(t, "B", "A") // reversed orientation

	m, err := subgraph.New(target)
	require.NoError(t, err)
	found, err := m.Run(pattern)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, m.MatchCount())
}

func TestRun_StructuralPredicates(t *testing.T) {
	target := core.New[int, core.None]()
	target.AddNodes(1, 2, 3)
	require.NoError(t, target.AddEdge(1, 2, core.None{}))
	require.NoError(t, target.AddEdge(2, 3, core.None{}))

	pattern := core.New[int, core.None]()
	pattern.AddNodes(10, 20)
	require.NoError(t, pattern.AddEdge(10, 20, core.None{}))

	m, err := subgraph.New(target,
		subgraph.WithNodeEquals[int, core.None](anyNode[int]),
		subgraph.WithEdgeEquals(anyEdge[int, core.None]),
	)
	require.NoError(t, err)
	found, err := m.Run(pattern)
	require.NoError(t, err)
	assert.True(t, found)
	// An arc embeds onto 1→2 and onto 2→3.
	assert.Equal(t, 2, m.MatchCount())
}

func TestRun_StopAtFirst(t *testing.T) {
	target := core.New[int, core.None]()
	target.AddNodes(1, 2, 3)
	require.NoError(t, target.AddEdge(1, 2, core.None{}))
	require.NoError(t, target.AddEdge(2, 3, core.None{}))

	pattern := core.New[int, core.None]()
	pattern.AddNodes(10, 20)
	require.NoError(t, pattern.AddEdge(10, 20, core.None{}))

	m, err := subgraph.New(target,
		subgraph.WithNodeEquals[int, core.None](anyNode[int]),
		subgraph.WithEdgeEquals(anyEdge[int, core.None]),
	)
	require.NoError(t, err)
	found, err := m.Run(pattern, subgraph.WithStopAtFirst())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, m.MatchCount())
}

func TestRun_InducedVersusMonomorphism(t *testing.T) {
	// Directed triangle.
	target := core.New[int, core.None]()
	target.AddNodes(1, 2, 3)
	require.NoError(t, target.AddEdge(1, 2, core.None{}))
	require.NoError(t, target.AddEdge(2, 3, core.None{}))
	require.NoError(t, target.AddEdge(1, 3, core.None{}))

	// Two-arc path.
	pattern := core.New[int, core.None]()
	pattern.AddNodes(10, 20, 30)
	require.NoError(t, pattern.AddEdge(10, 20, core.None{}))
	require.NoError(t, pattern.AddEdge(20, 30, core.None{}))

	m, err := subgraph.New(target,
		subgraph.WithNodeEquals[int, core.None](anyNode[int]),
		subgraph.WithEdgeEquals(anyEdge[int, core.None]),
	)
	require.NoError(t, err)

	// Induced: the chord 1→3 has no pattern counterpart, so the path
	// does not occur as an induced subgraph.
	found, err := m.Run(pattern)
	require.NoError(t, err)
	assert.False(t, found)

	// Monomorphism tolerates the chord.
	found, err = m.Run(pattern, subgraph.WithMonomorphism())
	require.NoError(t, err)
	assert.True(t, found)
	require.Equal(t, 1, m.MatchCount())
	assert.Equal(t, map[int]int{10: 1, 20: 2, 30: 3}, m.Match(0))
}

func TestRun_PayloadSensitive(t *testing.T) {
	target := core.New[string, string]()
	target.AddNodes("A", "B")
	require.NoError(t, target.AddEdge("A", "B", "double"))

	single := core.New[string, string]()
	single.AddNodes("A", "B")
	require.NoError(t, single.AddEdge("A", "B", "single"))

	double := core.New[string, string]()
	double.AddNodes("A", "B")
	require.NoError(t, double.AddEdge("A", "B", "double"))

	m, err := subgraph.New(target)
	require.NoError(t, err)

	found, err := m.Run(single)
	require.NoError(t, err)
	assert.False(t, found, "payload mismatch must reject the mapping")

	found, err = m.Run(double)
	require.NoError(t, err)
	assert.True(t, found)
}

func TestRun_Undirected(t *testing.T) {
	target := core.New[int, core.None](core.WithUndirected())
	target.AddNodes(1, 2, 3)
	require.NoError(t, target.AddEdge(1, 2, core.None{}))
	require.NoError(t, target.AddEdge(2, 3, core.None{}))
	require.NoError(t, target.AddEdge(3, 1, core.None{}))

	pattern := core.New[int, core.None](core.WithUndirected())
	pattern.AddNodes(10, 20)
	require.NoError(t, pattern.AddEdge(10, 20, core.None{}))

	m, err := subgraph.New(target,
		subgraph.WithNodeEquals[int, core.None](anyNode[int]),
		subgraph.WithEdgeEquals(anyEdge[int, core.None]),
	)
	require.NoError(t, err)
	found, err := m.Run(pattern)
	require.NoError(t, err)
	assert.True(t, found)
	// Every ordered pair of the triangle's adjacent nodes.
	assert.Equal(t, 6, m.MatchCount())
}

func TestRun_EmptyPattern(t *testing.T) {
	target := buildPath(t, "A", "B")
	m, err := subgraph.New(target)
	require.NoError(t, err)
	found, err := m.Run(core.New[string, core.None]())
	require.NoError(t, err)
	assert.True(t, found)
	require.Equal(t, 1, m.MatchCount())
	assert.Empty(t, m.Match(0))
}

func TestRun_ClearsPreviousResults(t *testing.T) {
	target := buildPath(t, "A", "B", "C")
	m, err := subgraph.New(target)
	require.NoError(t, err)

	found, err := m.Run(buildPath(t, "A", "B"))
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, 1, m.MatchCount())

	found, err = m.Run(buildPath(t, "C", "A"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, 0, m.MatchCount(), "stale results must not survive a new run")
}

func TestString_Rendering(t *testing.T) {
	target := buildPath(t, "A", "B")
	m, err := subgraph.New(target)
	require.NoError(t, err)
	found, err := m.Run(buildPath(t, "A", "B"))
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "A ---> A\nB ---> B\n\n", m.String())
}

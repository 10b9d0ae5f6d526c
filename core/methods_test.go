// Package core_test verifies Digraph mutation and query contracts:
// idempotent vertex insertion, arc validation, option enforcement,
// and insertion-ordered accessors.
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meancycle/core"
)

// TestAddVertex_Idempotent ensures re-adding a vertex neither errors
// nor changes the vertex count.
func TestAddVertex_Idempotent(t *testing.T) {
	g := core.NewDigraph[string]()

	g.AddVertex("A")
	g.AddVertex("A")
	g.AddVertex("B")

	require.True(t, g.HasVertex("A"))
	require.True(t, g.HasVertex("B"))
	require.False(t, g.HasVertex("C"))
	require.Equal(t, 2, g.VertexCount())
}

// TestAddArc_AutoRegistersEndpoints ensures arcs may be inserted
// before their endpoints exist.
func TestAddArc_AutoRegistersEndpoints(t *testing.T) {
	g := core.NewDigraph[string]()

	require.NoError(t, g.AddArc("X", "Y", 10))
	require.NoError(t, g.AddArc("Y", "X", -5))

	require.True(t, g.HasVertex("X"))
	require.True(t, g.HasVertex("Y"))
	require.Equal(t, 2, g.VertexCount())
	require.Equal(t, 2, g.ArcCount())
}

// TestAddArc_RejectsNonFiniteWeights ensures NaN and ±Inf weights are
// refused with ErrNonFiniteWeight and leave the graph untouched.
func TestAddArc_RejectsNonFiniteWeights(t *testing.T) {
	g := core.NewDigraph[string]()

	for _, w := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		err := g.AddArc("A", "B", w)
		require.ErrorIs(t, err, core.ErrNonFiniteWeight)
	}
	require.Equal(t, 0, g.VertexCount())
	require.Equal(t, 0, g.ArcCount())
}

// TestAddArc_DefaultAllowsLoopsAndParallels ensures self-loops and
// duplicate arcs are accepted on a default Digraph.
func TestAddArc_DefaultAllowsLoopsAndParallels(t *testing.T) {
	g := core.NewDigraph[string]()

	require.NoError(t, g.AddArc("D", "D", 7))
	require.NoError(t, g.AddArc("D", "E", 1))
	require.NoError(t, g.AddArc("D", "E", 2))

	require.Equal(t, 3, g.ArcCount())

	arcs, err := g.OutArcs("D")
	require.NoError(t, err)
	require.Equal(t, []core.Arc[string]{
		{To: "D", Weight: 7},
		{To: "E", Weight: 1},
		{To: "E", Weight: 2},
	}, arcs)
}

// TestAddArc_WithoutLoops ensures the loop guard fires and nothing is
// inserted, including the would-be endpoints.
func TestAddArc_WithoutLoops(t *testing.T) {
	g := core.NewDigraph(core.WithoutLoops[string]())

	err := g.AddArc("A", "A", 1)
	require.ErrorIs(t, err, core.ErrLoopNotAllowed)
	require.False(t, g.HasVertex("A"))

	require.NoError(t, g.AddArc("A", "B", 1))
	require.Equal(t, 1, g.ArcCount())
}

// TestAddArc_WithoutMultiArcs ensures a duplicate u→v arc is refused
// while the reverse arc and other destinations stay legal.
func TestAddArc_WithoutMultiArcs(t *testing.T) {
	g := core.NewDigraph(core.WithoutMultiArcs[string]())

	require.NoError(t, g.AddArc("A", "B", 1))
	require.ErrorIs(t, g.AddArc("A", "B", 9), core.ErrMultiArcNotAllowed)
	require.NoError(t, g.AddArc("B", "A", 2))
	require.NoError(t, g.AddArc("A", "C", 3))
	require.Equal(t, 3, g.ArcCount())
}

// TestVertices_InsertionOrder locks in the ordering guarantee that
// downstream analyses rely on for determinism.
func TestVertices_InsertionOrder(t *testing.T) {
	g := core.NewDigraph[string]()

	require.NoError(t, g.AddArc("C", "A", 1))
	g.AddVertex("B")
	require.NoError(t, g.AddArc("A", "B", 1))

	require.Equal(t, []string{"C", "A", "B"}, g.Vertices())
}

// TestOutArcs_MissingVertex ensures querying an unregistered vertex
// yields ErrVertexNotFound.
func TestOutArcs_MissingVertex(t *testing.T) {
	g := core.NewDigraph[string]()

	_, err := g.OutArcs("ghost")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

// TestOutArcs_ReturnsCopy ensures mutating the returned slice does not
// leak into the Digraph.
func TestOutArcs_ReturnsCopy(t *testing.T) {
	g := core.NewDigraph[string]()
	require.NoError(t, g.AddArc("A", "B", 1))

	arcs, err := g.OutArcs("A")
	require.NoError(t, err)
	arcs[0].Weight = 999

	again, err := g.OutArcs("A")
	require.NoError(t, err)
	require.Equal(t, 1.0, again[0].Weight)
}

// TestDigraph_StructKeys ensures any comparable key type works,
// zero values included.
func TestDigraph_StructKeys(t *testing.T) {
	type point struct{ X, Y int }
	g := core.NewDigraph[point]()

	require.NoError(t, g.AddArc(point{}, point{1, 2}, 0.5))
	require.True(t, g.HasVertex(point{}))
	require.True(t, g.HasVertex(point{1, 2}))
	require.Equal(t, []point{{}, {1, 2}}, g.Vertices())
}

package digraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodegraph/dialflow/digraph"
)

func TestNewCSRGraph_EmptyGraph(t *testing.T) {
	g, err := digraph.NewCSRGraph(3, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, g.NumVertices())
	assert.Equal(t, 0, g.NumEdges())

	for v := 0; v < 3; v++ {
		assert.True(t, g.ContainsVertex(v))
		assert.Equal(t, 0, g.Outdegree(v))
	}
}

func TestNewCSRGraph_LinearChain(t *testing.T) {
	// 0 -> 1 -> 2 -> 3
	edges := []digraph.Edge{
		{Tail: 0, Head: 1},
		{Tail: 1, Head: 2},
		{Tail: 2, Head: 3},
	}
	g, err := digraph.NewCSRGraph(4, edges)
	require.NoError(t, err)
	assert.Equal(t, 4, g.NumVertices())
	assert.Equal(t, 3, g.NumEdges())

	var got []digraph.Arc
	for arc := range g.OutgoingArcs(0) {
		got = append(got, arc)
	}
	assert.Equal(t, []digraph.Arc{{Edge: 0, Head: 1}}, got)

	assert.Equal(t, 0, g.Outdegree(3))
}

func TestNewCSRGraph_PreservesEdgeIDOrderWithinTail(t *testing.T) {
	// Two edges share the same tail; edge ids must come out in input order.
	edges := []digraph.Edge{
		{Tail: 0, Head: 2}, // edge 0
		{Tail: 0, Head: 1}, // edge 1
	}
	g, err := digraph.NewCSRGraph(3, edges)
	require.NoError(t, err)

	var ids []int
	for arc := range g.OutgoingArcs(0) {
		ids = append(ids, arc.Edge)
	}
	assert.Equal(t, []int{0, 1}, ids)
}

func TestNewCSRGraph_RejectsOutOfRangeVertex(t *testing.T) {
	_, err := digraph.NewCSRGraph(2, []digraph.Edge{{Tail: 0, Head: 5}})
	assert.ErrorIs(t, err, digraph.ErrVertexOutOfRange)
}

func TestNewCSRGraph_RejectsNegativeVertexCount(t *testing.T) {
	_, err := digraph.NewCSRGraph(-1, nil)
	assert.ErrorIs(t, err, digraph.ErrNegativeVertexCount)
}

func TestCSRGraph_VerticesAndEdgesIteration(t *testing.T) {
	g, err := digraph.NewCSRGraph(3, []digraph.Edge{{Tail: 0, Head: 1}, {Tail: 1, Head: 2}})
	require.NoError(t, err)

	var vs []int
	for v := range g.Vertices() {
		vs = append(vs, v)
	}
	assert.Equal(t, []int{0, 1, 2}, vs)

	var es []int
	for e := range g.Edges() {
		es = append(es, e)
	}
	assert.Equal(t, []int{0, 1}, es)
}

func TestCSRGraph_OutOfRangeAccessPanics(t *testing.T) {
	g, err := digraph.NewCSRGraph(2, nil)
	require.NoError(t, err)

	assert.Panics(t, func() { g.GetVertexID(5) })
	assert.Panics(t, func() { g.GetEdgeID(0) })
	assert.Panics(t, func() { _ = g.OutgoingArcs(5) })
}

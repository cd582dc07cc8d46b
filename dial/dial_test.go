package dial_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodegraph/dialflow/dial"
	"github.com/nodegraph/dialflow/digraph"
	"github.com/nodegraph/dialflow/forest"
)

// run drives the standard Dial search loop to completion: add every
// source, then repeatedly pop, visit, and relax every outgoing arc
// using length as the per-edge cost table.
func run(d *dial.Dial, graph digraph.Graph, length []int64, sources []int) {
	for _, s := range sources {
		d.AddSource(s)
	}
	for !d.Done() {
		v, dist := d.PopNextUnvisitedVertex()
		d.VisitVertex(v, dist)
		for arc := range graph.OutgoingArcs(v) {
			d.RelaxEdge(arc.Edge, v, arc.Head, dist+length[arc.Edge])
		}
	}
}

// Scenario A: trivial single source, no edges.
func TestDial_ScenarioA_TrivialSingleSourceNoEdges(t *testing.T) {
	g, err := digraph.NewCSRGraph(3, nil)
	require.NoError(t, err)
	d := dial.New(g, 1)

	run(d, g, nil, []int{0})

	assert.Equal(t, int64(0), d.DistanceToVertex(0))
	assert.Equal(t, forest.InfiniteDistance, d.DistanceToVertex(1))
	assert.Equal(t, forest.InfiniteDistance, d.DistanceToVertex(2))
	assert.True(t, d.IsRootVertex(0))
	assert.True(t, d.HasVisitedVertex(0))
	assert.False(t, d.HasReachedVertex(1))
}

// Scenario B: linear chain with unit costs.
func TestDial_ScenarioB_LinearChain(t *testing.T) {
	g, err := digraph.NewCSRGraph(4, []digraph.Edge{
		{Tail: 0, Head: 1},
		{Tail: 1, Head: 2},
		{Tail: 2, Head: 3},
	})
	require.NoError(t, err)
	length := []int64{1, 1, 1}
	d := dial.New(g, 2)

	run(d, g, length, []int{0})

	if diff := cmp.Diff([]int64{0, 1, 2, 3}, distances(d, 4)); diff != "" {
		t.Errorf("distances mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0, 0, 1, 2}, predecessors(d, 4)); diff != "" {
		t.Errorf("predecessors mismatch (-want +got):\n%s", diff)
	}
}

// Scenario C: relaxation supersedes a longer path.
func TestDial_ScenarioC_RelaxationSupersedesLongerPath(t *testing.T) {
	g, err := digraph.NewCSRGraph(3, []digraph.Edge{
		{Tail: 0, Head: 1}, // edge 0, cost 5
		{Tail: 0, Head: 2}, // edge 1, cost 1
		{Tail: 2, Head: 1}, // edge 2, cost 1
	})
	require.NoError(t, err)
	length := []int64{5, 1, 1}
	d := dial.New(g, 6)

	run(d, g, length, []int{0})

	assert.Equal(t, []int64{0, 2, 1}, distances(d, 3))
	assert.Equal(t, 2, d.PredecessorVertex(1))
	assert.Equal(t, 0, d.PredecessorVertex(2))
}

// Scenario D: multi-source; each source roots its own tree.
func TestDial_ScenarioD_MultiSource(t *testing.T) {
	g, err := digraph.NewCSRGraph(4, []digraph.Edge{
		{Tail: 0, Head: 1},
		{Tail: 1, Head: 2},
		{Tail: 2, Head: 3},
	})
	require.NoError(t, err)
	length := []int64{1, 1, 1}
	d := dial.New(g, 2)

	run(d, g, length, []int{0, 2})

	assert.Equal(t, []int64{0, 1, 0, 1}, distances(d, 4))
	assert.True(t, d.IsRootVertex(0))
	assert.True(t, d.IsRootVertex(2))
	// Both sources share bucket 0 and are popped in FIFO order (0, then
	// 2). Vertex 1 is reachable only from source 0 (edge 0->1), so its
	// predecessor is 0.
	assert.Equal(t, 0, d.PredecessorVertex(1))
}

// Scenario E: reset idempotence.
func TestDial_ScenarioE_ResetIdempotence(t *testing.T) {
	g, err := digraph.NewCSRGraph(4, []digraph.Edge{
		{Tail: 0, Head: 1},
		{Tail: 1, Head: 2},
		{Tail: 2, Head: 3},
	})
	require.NoError(t, err)
	length := []int64{1, 1, 1}
	d := dial.New(g, 2)

	run(d, g, length, []int{0})
	first := distances(d, 4)

	d.Reset()
	for v := 0; v < 4; v++ {
		assert.False(t, d.HasReachedVertex(v))
		assert.Equal(t, forest.InfiniteDistance, d.DistanceToVertex(v))
		assert.True(t, d.IsRootVertex(v))
	}
	assert.Equal(t, 0, d.CurrentBucketID())
	for id := 0; id < d.NumBuckets(); id++ {
		assert.Empty(t, d.Bucket(id))
	}

	run(d, g, length, []int{0})
	second := distances(d, 4)

	assert.Equal(t, first, second)
}

func TestDial_PopBeforeDonePanics(t *testing.T) {
	g, err := digraph.NewCSRGraph(1, nil)
	require.NoError(t, err)
	d := dial.New(g, 1)
	d.AddSource(0)
	_, _ = d.PopNextUnvisitedVertex()
	d.VisitVertex(0, 0)

	assert.Panics(t, func() { d.PopNextUnvisitedVertex() })
}

func TestDial_AddSourceTwicePanics(t *testing.T) {
	g, err := digraph.NewCSRGraph(1, nil)
	require.NoError(t, err)
	d := dial.New(g, 1)
	d.AddSource(0)
	assert.Panics(t, func() { d.AddSource(0) })
}

func distances(d *dial.Dial, n int) []int64 {
	out := make([]int64, n)
	for v := 0; v < n; v++ {
		out[v] = d.DistanceToVertex(v)
	}
	return out
}

func predecessors(d *dial.Dial, n int) []int {
	out := make([]int, n)
	for v := 0; v < n; v++ {
		out[v] = d.PredecessorVertex(v)
	}
	return out
}

package forest_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nodegraph/dialflow/forest"
)

func TestShortestPathForest_ConstructionIsUnreachedAndInfinite(t *testing.T) {
	g := mustGraph(t, 3, nil)
	spf := forest.NewShortestPathForest(g)

	for v := 0; v < 3; v++ {
		assert.False(t, spf.HasReachedVertex(v))
		assert.False(t, spf.HasVisitedVertex(v))
		assert.Equal(t, forest.InfiniteDistance, spf.DistanceToVertex(v))
		assert.True(t, spf.IsRootVertex(v))
	}
}

func TestShortestPathForest_LabelMonotonicity(t *testing.T) {
	g := mustGraph(t, 1, nil)
	spf := forest.NewShortestPathForest(g)

	spf.LabelVertexReached(0)
	assert.True(t, spf.HasReachedVertex(0))
	assert.False(t, spf.HasVisitedVertex(0))

	spf.LabelVertexVisited(0)
	assert.True(t, spf.HasReachedVertex(0))
	assert.True(t, spf.HasVisitedVertex(0))

	assert.Panics(t, func() { spf.LabelVertexReached(0) })
	assert.Panics(t, func() { spf.LabelVertexVisited(0) })
}

func TestShortestPathForest_ReachedAndVisitedViews(t *testing.T) {
	g := mustGraph(t, 3, nil)
	spf := forest.NewShortestPathForest(g)

	spf.LabelVertexReached(0)
	spf.LabelVertexReached(1)
	spf.LabelVertexVisited(1)

	var reached, visitedv []int
	for v := range spf.ReachedVertices() {
		reached = append(reached, v)
	}
	for v := range spf.VisitedVertices() {
		visitedv = append(visitedv, v)
	}
	assert.Equal(t, []int{0, 1}, reached)
	assert.Equal(t, []int{1}, visitedv)
}

func TestShortestPathForest_ResetRestoresInitialState(t *testing.T) {
	g := mustGraph(t, 2, nil)
	spf := forest.NewShortestPathForest(g)

	spf.LabelVertexReached(0)
	spf.SetDistanceToVertex(0, 7)
	spf.MakeRootVertex(0)

	spf.Reset()

	assert.False(t, spf.HasReachedVertex(0))
	assert.Equal(t, forest.InfiniteDistance, spf.DistanceToVertex(0))
	assert.True(t, spf.IsRootVertex(0))
}

package network_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nodegraph/dialflow/digraph"
	"github.com/nodegraph/dialflow/network"
)

func mustGraph(t *testing.T) *digraph.CSRGraph {
	// 0 -> 1 (edge 0, cost 5), 0 -> 2 (edge 1, cost 1), 2 -> 1 (edge 2, cost 1)
	g, err := digraph.NewCSRGraph(3, []digraph.Edge{
		{Tail: 0, Head: 1},
		{Tail: 0, Head: 2},
		{Tail: 2, Head: 1},
	})
	require.NoError(t, err)
	return g
}

func TestNewUncapacitated_BuildsNegatedReverseCosts(t *testing.T) {
	g := mustGraph(t)
	net, err := network.NewUncapacitated(g, []int64{0, 0, 0}, []int64{5, 1, 1})
	require.NoError(t, err)

	assert.Equal(t, int64(5), net.ArcCost(0))
	assert.Equal(t, int64(-5), net.ArcCost(net.GetTransposeArcID(0)))
}

func TestNew_RejectsLengthMismatches(t *testing.T) {
	g := mustGraph(t)
	_, err := network.NewUncapacitated(g, []int64{0, 0}, []int64{5, 1, 1})
	assert.ErrorIs(t, err, network.ErrSurplusLengthMismatch)

	_, err = network.NewUncapacitated(g, []int64{0, 0, 0}, []int64{5, 1})
	assert.ErrorIs(t, err, network.ErrCostLengthMismatch)
}

func TestNew_RejectsNegativeCost(t *testing.T) {
	g := mustGraph(t)
	_, err := network.NewUncapacitated(g, []int64{0, 0, 0}, []int64{-1, 1, 1})
	assert.ErrorIs(t, err, network.ErrNegativeCost)
}

func TestArcReducedCost(t *testing.T) {
	g := mustGraph(t)
	net, err := network.NewUncapacitated(g, []int64{0, 0, 0}, []int64{5, 1, 1})
	require.NoError(t, err)

	net.IncreaseNodePotential(0, 3) // tail of arc 0
	net.IncreaseNodePotential(1, 1) // head of arc 0

	assert.Equal(t, int64(3), net.ArcReducedCost(0, 0, 1))

	net.IncreaseNodePotential(0, 1)
	assert.Equal(t, int64(2), net.ArcReducedCost(0, 0, 1))
}

func TestExcessDeficitAndBalance(t *testing.T) {
	g := mustGraph(t)
	net, err := network.NewUncapacitated(g, []int64{5, -5, 0}, []int64{5, 1, 1})
	require.NoError(t, err)

	assert.True(t, net.IsExcessNode(0))
	assert.True(t, net.IsDeficitNode(1))
	assert.False(t, net.IsExcessNode(2))
	assert.False(t, net.IsDeficitNode(2))

	assert.Equal(t, int64(5), net.TotalExcess())
	assert.Equal(t, int64(-5), net.TotalDeficit())
	assert.True(t, net.IsBalanced())

	net.IncreaseNodeExcess(2, 1)
	assert.False(t, net.IsBalanced())
}

func TestMaxAdmissibleArcLength_SkipsSaturatedArcs(t *testing.T) {
	g := mustGraph(t)
	net, err := network.NewUncapacitated(g, []int64{0, 0, 0}, []int64{5, 1, 1})
	require.NoError(t, err)

	// All reverse arcs start saturated (no flow yet); admissible set is
	// exactly the three forward arcs, max cost 5.
	assert.Equal(t, int64(5), network.MaxAdmissibleArcLength(net))
}

func TestMaxAdmissibleArcLength_NoAdmissibleArcReturnsZero(t *testing.T) {
	g, err := digraph.NewCSRGraph(1, nil)
	require.NoError(t, err)
	net, err := network.NewUncapacitated(g, []int64{0}, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(0), network.MaxAdmissibleArcLength(net))
}

func TestTotalCost(t *testing.T) {
	g := mustGraph(t)
	net, err := network.NewUncapacitated(g, []int64{0, 0, 0}, []int64{5, 1, 1})
	require.NoError(t, err)

	net.IncreaseArcFlow(0, 2) // forward arc 0, cost 5
	net.IncreaseArcFlow(1, 3) // forward arc 1, cost 1

	assert.Equal(t, int64(5*2+1*3), net.TotalCost())
}

package network

import (
	"fmt"

	"github.com/nodegraph/dialflow/digraph"
	"github.com/nodegraph/dialflow/residual"
)

// Network wraps the residual graph of a digraph.Graph with per-node
// excess and potential, per-arc signed cost, and a pluggable
// residual.CapacityMixin for flow/capacity bookkeeping.
//
// The spec this package implements admits two semantically identical
// construction paths (an owning surplus container, or any iterable
// surplus range); Go slices already serve both roles, so this port
// collapses them into a single constructor taking a []int64.
type Network struct {
	g             *residual.Graph
	mixin         residual.CapacityMixin
	nodeExcess    []int64
	nodePotential []int64
	arcCost       []int64
}

// New builds a Network over the residual graph of g. surplus must
// have one entry per vertex of g; forwardCost must have one
// non-negative entry per edge of g (the cost of the corresponding
// forward arc; the reverse arc's cost is its negation). mixinFactory
// builds the CapacityMixin over the constructed residual graph — pass
// residual.NewUncapacitated or residual.NewUnitCapacity, or a
// caller-supplied mixin.
func New(
	g digraph.Graph,
	surplus []int64,
	forwardCost []int64,
	mixinFactory func(*residual.Graph) residual.CapacityMixin,
) (*Network, error) {
	rg := residual.New(g)

	if len(surplus) != rg.NumVertices() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSurplusLengthMismatch, len(surplus), rg.NumVertices())
	}
	if len(forwardCost) != rg.NumForwardArcs() {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCostLengthMismatch, len(forwardCost), rg.NumForwardArcs())
	}
	for i, c := range forwardCost {
		if c < 0 {
			return nil, fmt.Errorf("%w: edge %d has cost %d", ErrNegativeCost, i, c)
		}
	}

	arcCost := make([]int64, rg.NumEdges())
	for arc := range rg.Edges() {
		if rg.IsForwardArc(arc) {
			arcCost[arc] = forwardCost[rg.GetEdgeID(arc)]
		} else {
			transpose := rg.GetTransposeArcID(arc)
			arcCost[arc] = -forwardCost[rg.GetEdgeID(transpose)]
		}
	}

	nodeExcess := make([]int64, len(surplus))
	copy(nodeExcess, surplus)

	return &Network{
		g:             rg,
		mixin:         mixinFactory(rg),
		nodeExcess:    nodeExcess,
		nodePotential: make([]int64, rg.NumVertices()),
		arcCost:       arcCost,
	}, nil
}

// NewUncapacitated builds a Network whose capacity mixin is
// residual.Uncapacitated.
func NewUncapacitated(g digraph.Graph, surplus, forwardCost []int64) (*Network, error) {
	return New(g, surplus, forwardCost, func(rg *residual.Graph) residual.CapacityMixin {
		return residual.NewUncapacitated(rg)
	})
}

// NewUnitCapacity builds a Network whose capacity mixin is
// residual.UnitCapacity.
func NewUnitCapacity(g digraph.Graph, surplus, forwardCost []int64) (*Network, error) {
	return New(g, surplus, forwardCost, func(rg *residual.Graph) residual.CapacityMixin {
		return residual.NewUnitCapacity(rg)
	})
}

// ResidualGraph returns the underlying residual graph.
func (n *Network) ResidualGraph() *residual.Graph { return n.g }

// Nodes yields every node id in [0, NumNodes()).
func (n *Network) Nodes() func(yield func(int) bool) { return n.g.Vertices() }

// Arcs yields every arc id in [0, NumArcs()).
func (n *Network) Arcs() func(yield func(int) bool) { return n.g.Edges() }

// NumNodes returns the number of nodes.
func (n *Network) NumNodes() int { return n.g.NumVertices() }

// NumArcs returns the number of arcs.
func (n *Network) NumArcs() int { return n.g.NumEdges() }

// ContainsNode reports whether node is a valid node id.
func (n *Network) ContainsNode(node int) bool { return n.g.ContainsVertex(node) }

// ContainsArc reports whether arc is a valid arc id.
func (n *Network) ContainsArc(arc int) bool { return n.g.ContainsEdge(arc) }

// GetNodeID returns node itself. Panics if node is not valid.
func (n *Network) GetNodeID(node int) int { return n.g.GetVertexID(node) }

// GetArcID returns arc itself. Panics if arc is not valid.
func (n *Network) GetArcID(arc int) int {
	n.checkArc(arc)
	return arc
}

// OutgoingArcs yields (arc, head) pairs for every arc leaving node.
func (n *Network) OutgoingArcs(node int) func(yield func(digraph.Arc) bool) {
	return n.g.OutgoingArcs(node)
}

// ForwardArcs yields every forward arc id.
func (n *Network) ForwardArcs() func(yield func(int) bool) { return n.g.ForwardArcs() }

// NumForwardArcs returns the number of forward arcs.
func (n *Network) NumForwardArcs() int { return n.g.NumForwardArcs() }

// IsForwardArc reports whether arc is a forward arc.
func (n *Network) IsForwardArc(arc int) bool { return n.g.IsForwardArc(arc) }

// GetTransposeArcID returns the id of arc's transpose.
func (n *Network) GetTransposeArcID(arc int) int { return n.g.GetTransposeArcID(arc) }

// GetEdgeID returns the original edge id underlying forward arc arc.
// Panics if arc is not a forward arc.
func (n *Network) GetEdgeID(arc int) int { return n.g.GetEdgeID(arc) }

// ArcFlow returns the current flow on arc.
func (n *Network) ArcFlow(arc int) int64 { return n.mixin.ArcFlow(arc) }

// IsArcSaturated reports whether arc has zero residual capacity.
func (n *Network) IsArcSaturated(arc int) bool { return n.mixin.IsArcSaturated(arc) }

// IncreaseArcFlow pushes delta additional units of flow onto arc.
func (n *Network) IncreaseArcFlow(arc int, delta int64) { n.mixin.IncreaseArcFlow(arc, delta) }

func (n *Network) checkNode(node int) {
	if !n.ContainsNode(node) {
		panic(fmt.Sprintf("network: node %d not in network", node))
	}
}

func (n *Network) checkArc(arc int) {
	if !n.ContainsArc(arc) {
		panic(fmt.Sprintf("network: arc %d not in network", arc))
	}
}

// NodeExcess returns node's signed flow imbalance. Panics if node is
// not a valid node.
func (n *Network) NodeExcess(node int) int64 {
	n.checkNode(node)
	return n.nodeExcess[node]
}

// IncreaseNodeExcess adds delta to node's excess. Panics if node is
// not a valid node.
func (n *Network) IncreaseNodeExcess(node int, delta int64) {
	n.checkNode(node)
	n.nodeExcess[node] += delta
}

// DecreaseNodeExcess subtracts delta from node's excess. Panics if
// node is not a valid node.
func (n *Network) DecreaseNodeExcess(node int, delta int64) {
	n.checkNode(node)
	n.nodeExcess[node] -= delta
}

// IsExcessNode reports whether node's excess is strictly positive.
// Panics if node is not a valid node.
func (n *Network) IsExcessNode(node int) bool { return n.NodeExcess(node) > 0 }

// IsDeficitNode reports whether node's excess is strictly negative.
// Panics if node is not a valid node.
func (n *Network) IsDeficitNode(node int) bool { return n.NodeExcess(node) < 0 }

// ExcessNodes returns a lazy filtered view over every excess node.
func (n *Network) ExcessNodes() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for node := range n.Nodes() {
			if n.IsExcessNode(node) {
				if !yield(node) {
					return
				}
			}
		}
	}
}

// DeficitNodes returns a lazy filtered view over every deficit node.
func (n *Network) DeficitNodes() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for node := range n.Nodes() {
			if n.IsDeficitNode(node) {
				if !yield(node) {
					return
				}
			}
		}
	}
}

// TotalExcess returns the sum of excess over every excess node.
func (n *Network) TotalExcess() int64 {
	var total int64
	for node := range n.ExcessNodes() {
		total += n.NodeExcess(node)
	}
	return total
}

// TotalDeficit returns the sum of excess over every deficit node
// (a value <= 0).
func (n *Network) TotalDeficit() int64 {
	var total int64
	for node := range n.DeficitNodes() {
		total += n.NodeExcess(node)
	}
	return total
}

// IsBalanced reports whether total excess across all nodes is zero.
func (n *Network) IsBalanced() bool {
	var total int64
	for _, e := range n.nodeExcess {
		total += e
	}
	return total == 0
}

// NodePotential returns node's dual variable. Panics if node is not
// a valid node.
func (n *Network) NodePotential(node int) int64 {
	n.checkNode(node)
	return n.nodePotential[node]
}

// IncreaseNodePotential adds delta to node's potential. Panics if
// node is not a valid node.
func (n *Network) IncreaseNodePotential(node int, delta int64) {
	n.checkNode(node)
	n.nodePotential[node] += delta
}

// DecreaseNodePotential subtracts delta from node's potential. Panics
// if node is not a valid node.
func (n *Network) DecreaseNodePotential(node int, delta int64) {
	n.checkNode(node)
	n.nodePotential[node] -= delta
}

// ArcCost returns arc's signed unit cost. Panics if arc is not a
// valid arc.
func (n *Network) ArcCost(arc int) int64 {
	n.checkArc(arc)
	return n.arcCost[arc]
}

// ArcReducedCost returns arc's reduced cost given its tail and head:
// ArcCost(arc) - NodePotential(tail) + NodePotential(head). Panics if
// arc, tail, or head is invalid.
func (n *Network) ArcReducedCost(arc, tail, head int) int64 {
	n.checkArc(arc)
	n.checkNode(tail)
	n.checkNode(head)
	return n.ArcCost(arc) - n.NodePotential(tail) + n.NodePotential(head)
}

// TotalCost returns the sum over every forward arc of its cost times
// its current flow.
func (n *Network) TotalCost() int64 {
	var total int64
	for arc := range n.ForwardArcs() {
		total += n.ArcCost(arc) * n.ArcFlow(arc)
	}
	return total
}

// MaxAdmissibleArcLength returns the largest finite reduced cost
// among every non-saturated arc in net's residual graph, or 0 if no
// admissible arc exists. A negative reduced cost on a non-saturated
// arc is a programming error (the network was not built with
// admissible costs) and panics rather than being silently clamped.
func MaxAdmissibleArcLength(net *Network) int64 {
	var maxLen int64
	found := false
	for tail := range net.Nodes() {
		for arc := range net.OutgoingArcs(tail) {
			if net.IsArcSaturated(arc.Edge) {
				continue
			}
			reduced := net.ArcReducedCost(arc.Edge, tail, arc.Head)
			if reduced < 0 {
				panic(fmt.Sprintf("network: negative reduced cost %d on arc %d (%d -> %d)",
					reduced, arc.Edge, tail, arc.Head))
			}
			if !found || reduced > maxLen {
				maxLen = reduced
				found = true
			}
		}
	}
	return maxLen
}

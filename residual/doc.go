// Package residual builds the residual graph of a digraph.Graph and
// defines CapacityMixin, the pluggable per-arc capacity/flow
// bookkeeping the network package delegates to.
//
// For every original edge, the residual graph carries a forward arc
// (same id as the edge, same direction, cost) and a reverse arc (id
// offset by the original edge count, opposite direction, transpose of
// the forward arc's cost and flow). Arc ids in [0, NumForwardArcs())
// are forward; arc ids in [NumForwardArcs(), NumArcs()) are reverse.
//
// Two CapacityMixin implementations are provided: Uncapacitated,
// for networks where only cost (not feasibility) matters, and
// UnitCapacity, for networks where every arc carries at most one unit
// of flow — the representation used by, for example, flow-based
// bipartite matching.
package residual

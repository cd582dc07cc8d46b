package residual

import "fmt"

// CapacityMixin supplies per-arc capacity and flow bookkeeping to the
// network package. The two implementations in this package,
// Uncapacitated and UnitCapacity, cover the arc representations the
// rest of this module needs; a caller may supply a third as long as
// it satisfies this interface.
type CapacityMixin interface {
	// ArcFlow returns the current flow on arc (defined for forward
	// arcs; implementations may return an arbitrary sentinel for
	// reverse arcs, as reverse-arc flow carries no independent
	// meaning — it mirrors the forward arc's own bookkeeping).
	ArcFlow(arc int) int64
	// ArcCapacity returns arc's capacity.
	ArcCapacity(arc int) int64
	// ArcResidualCapacity returns the amount of additional flow arc
	// can still carry.
	ArcResidualCapacity(arc int) int64
	// IsArcSaturated reports whether arc has zero residual capacity.
	IsArcSaturated(arc int) bool
	// IncreaseArcFlow pushes delta additional units of flow onto arc.
	IncreaseArcFlow(arc int, delta int64)
}

// InfiniteCapacity is the capacity Uncapacitated reports for every
// arc.
const InfiniteCapacity = int64(1) << 62

// Uncapacitated is a CapacityMixin for networks in which every arc
// has unlimited capacity and only its accumulated flow is tracked.
// Forward arcs are never saturated; a reverse arc is saturated once
// its transpose forward arc carries no flow left to undo.
type Uncapacitated struct {
	g    *Graph
	flow []int64 // length NumForwardArcs(), flow on the forward arc at that index
}

// NewUncapacitated builds an Uncapacitated mixin over g with every
// arc starting at zero flow.
func NewUncapacitated(g *Graph) *Uncapacitated {
	return &Uncapacitated{g: g, flow: make([]int64, g.NumForwardArcs())}
}

// ArcFlow returns the flow on arc: the stored value for a forward
// arc, or InfiniteCapacity for a reverse arc (mirroring the
// original's convention that a reverse arc's own "flow" is
// meaningless and reported as unbounded).
func (m *Uncapacitated) ArcFlow(arc int) int64 {
	if m.g.IsForwardArc(arc) {
		return m.flow[arc]
	}
	return InfiniteCapacity
}

// ArcCapacity always returns InfiniteCapacity.
func (m *Uncapacitated) ArcCapacity(int) int64 { return InfiniteCapacity }

// ArcResidualCapacity returns InfiniteCapacity for a forward arc, or
// the flow currently on its transpose (the amount of forward flow
// that can still be undone) for a reverse arc.
func (m *Uncapacitated) ArcResidualCapacity(arc int) int64 {
	if m.g.IsForwardArc(arc) {
		return InfiniteCapacity
	}
	return m.flow[m.g.GetTransposeArcID(arc)]
}

// IsArcSaturated reports whether arc has zero residual capacity: always
// false for a forward arc, and true for a reverse arc exactly when its
// transpose carries no flow left to undo.
func (m *Uncapacitated) IsArcSaturated(arc int) bool {
	return m.ArcResidualCapacity(arc) <= 0
}

// IncreaseArcFlow adds delta to the flow on arc's underlying forward
// arc: directly, if arc is forward, or by undoing delta units of the
// transpose's flow, if arc is reverse. Panics if arc is not a valid
// arc.
func (m *Uncapacitated) IncreaseArcFlow(arc int, delta int64) {
	if m.g.IsForwardArc(arc) {
		m.flow[arc] += delta
		return
	}
	transpose := m.g.GetTransposeArcID(arc)
	m.flow[transpose] -= delta
}

var _ CapacityMixin = (*Uncapacitated)(nil)

// UnitCapacity is a CapacityMixin for networks in which every arc
// carries at most one unit of flow, represented as a single
// saturation bit per arc rather than an integer. Reverse arcs start
// saturated (no flow yet exists to undo); forward arcs start
// unsaturated.
type UnitCapacity struct {
	g         *Graph
	saturated []bool // length NumArcs()
}

// NewUnitCapacity builds a UnitCapacity mixin over g.
func NewUnitCapacity(g *Graph) *UnitCapacity {
	saturated := make([]bool, g.NumEdges())
	for arc := range g.Edges() {
		saturated[arc] = !g.IsForwardArc(arc)
	}
	return &UnitCapacity{g: g, saturated: saturated}
}

// ArcFlow returns 1 if arc is saturated, else 0.
func (m *UnitCapacity) ArcFlow(arc int) int64 {
	if m.saturated[arc] {
		return 1
	}
	return 0
}

// ArcCapacity always returns 1.
func (m *UnitCapacity) ArcCapacity(int) int64 { return 1 }

// ArcResidualCapacity returns 0 if arc is saturated, else 1.
func (m *UnitCapacity) ArcResidualCapacity(arc int) int64 {
	if m.saturated[arc] {
		return 0
	}
	return 1
}

// IsArcSaturated returns arc's stored saturation bit.
func (m *UnitCapacity) IsArcSaturated(arc int) bool {
	return m.saturated[arc]
}

// IncreaseArcFlow pushes one unit of flow onto arc, saturating it and
// unsaturating its transpose. Panics if delta != 1 or arc is already
// saturated.
func (m *UnitCapacity) IncreaseArcFlow(arc int, delta int64) {
	if delta != 1 {
		panic(fmt.Sprintf("residual: UnitCapacity.IncreaseArcFlow delta must be 1, got %d", delta))
	}
	if m.saturated[arc] {
		panic(fmt.Sprintf("residual: arc %d is already saturated", arc))
	}
	m.saturated[arc] = true
	m.saturated[m.g.GetTransposeArcID(arc)] = false
}

var _ CapacityMixin = (*UnitCapacity)(nil)

package residual

import (
	"fmt"

	"github.com/nodegraph/dialflow/digraph"
)

// Graph is the residual graph of an original digraph.Graph: every
// original edge contributes a forward arc and a reverse arc. It
// satisfies digraph.Graph itself, so it can be handed directly to the
// forest and dial packages, with "edge" in that interface's vocabulary
// meaning "arc" here.
type Graph struct {
	original       digraph.Graph
	numForwardArcs int
	csr            *digraph.CSRGraph
}

// New builds the residual graph of original. Panics if original is
// internally inconsistent (an OutgoingArcs edge id outside
// [0, NumEdges())) — that would be a bug in the supplied Graph
// implementation, not a legitimate runtime condition.
func New(original digraph.Graph) *Graph {
	n := original.NumVertices()
	e := original.NumEdges()

	edges := make([]digraph.Edge, 2*e)
	seen := make([]bool, e)
	for v := range original.Vertices() {
		for arc := range original.OutgoingArcs(v) {
			if arc.Edge < 0 || arc.Edge >= e {
				panic(fmt.Sprintf("residual: edge id %d out of range [0, %d)", arc.Edge, e))
			}
			seen[arc.Edge] = true
			edges[arc.Edge] = digraph.Edge{Tail: v, Head: arc.Head}
			edges[e+arc.Edge] = digraph.Edge{Tail: arc.Head, Head: v}
		}
	}
	for id, ok := range seen {
		if !ok {
			panic(fmt.Sprintf("residual: edge id %d never appeared in any OutgoingArcs", id))
		}
	}

	csr, err := digraph.NewCSRGraph(n, edges)
	if err != nil {
		panic(fmt.Sprintf("residual: building residual graph: %v", err))
	}

	return &Graph{original: original, numForwardArcs: e, csr: csr}
}

// Original returns the graph this residual graph was built from.
func (g *Graph) Original() digraph.Graph { return g.original }

// NumVertices returns the number of nodes, equal to the original
// graph's vertex count.
func (g *Graph) NumVertices() int { return g.csr.NumVertices() }

// NumEdges returns the number of arcs, 2 * original edge count.
func (g *Graph) NumEdges() int { return g.csr.NumEdges() }

// Vertices yields every node id in [0, NumVertices()).
func (g *Graph) Vertices() func(yield func(int) bool) { return g.csr.Vertices() }

// Edges yields every arc id in [0, NumEdges()).
func (g *Graph) Edges() func(yield func(int) bool) { return g.csr.Edges() }

// ContainsVertex reports whether v is a valid node id.
func (g *Graph) ContainsVertex(v int) bool { return g.csr.ContainsVertex(v) }

// ContainsEdge reports whether a is a valid arc id.
func (g *Graph) ContainsEdge(a int) bool { return g.csr.ContainsEdge(a) }

// GetVertexID returns v itself. Panics if v is not a valid node.
func (g *Graph) GetVertexID(v int) int { return g.csr.GetVertexID(v) }

// GetEdgeID (in this package's vocabulary, the arc's originating edge
// id) is only defined for forward arcs, for which it is the identity.
// Panics if arc is not a valid forward arc.
func (g *Graph) GetEdgeID(arc int) int {
	if !g.IsForwardArc(arc) {
		panic(fmt.Sprintf("residual: GetEdgeID undefined for reverse arc %d; transpose first", arc))
	}
	return arc
}

// OutgoingArcs yields (arc, head) pairs for every arc leaving node, in
// increasing arc-id order.
func (g *Graph) OutgoingArcs(node int) func(yield func(digraph.Arc) bool) {
	return g.csr.OutgoingArcs(node)
}

// NumForwardArcs returns the number of forward arcs, equal to the
// original graph's edge count.
func (g *Graph) NumForwardArcs() int { return g.numForwardArcs }

// IsForwardArc reports whether arc is a forward arc (arc id less than
// NumForwardArcs()). Panics if arc is not a valid arc.
func (g *Graph) IsForwardArc(arc int) bool {
	if !g.ContainsEdge(arc) {
		panic(fmt.Sprintf("residual: arc %d not in residual graph", arc))
	}
	return arc < g.numForwardArcs
}

// ForwardArcs returns a lazy filtered view over every forward arc, in
// increasing arc-id order.
func (g *Graph) ForwardArcs() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for arc := 0; arc < g.numForwardArcs; arc++ {
			if !yield(arc) {
				return
			}
		}
	}
}

// GetTransposeArcID returns the id of arc's transpose: a forward
// arc's transpose is its reverse counterpart, and vice versa. Panics
// if arc is not a valid arc.
func (g *Graph) GetTransposeArcID(arc int) int {
	if !g.ContainsEdge(arc) {
		panic(fmt.Sprintf("residual: arc %d not in residual graph", arc))
	}
	if arc < g.numForwardArcs {
		return arc + g.numForwardArcs
	}
	return arc - g.numForwardArcs
}

var _ digraph.Graph = (*Graph)(nil)

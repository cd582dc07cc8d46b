package forest

import (
	"fmt"

	"github.com/nodegraph/dialflow/digraph"
)

// Forest maps every vertex of a fixed Graph to a (predecessor vertex,
// predecessor edge) pair, forming a forest of rooted trees. A vertex
// is a root iff it is its own predecessor.
//
// Construction is O(V); PredecessorVertex, PredecessorEdge,
// SetPredecessor, MakeRootVertex, and IsRootVertex are all O(1).
// Predecessors walks from a vertex to its tree's root and is O(depth).
type Forest struct {
	graph            digraph.Graph
	edgeFillSentinel int
	predVertex       []int
	predEdge         []int
}

// New builds a Forest over graph in which every vertex starts as the
// root of its own singleton tree. edgeFillSentinel is the value
// stored as a root's predecessor edge; it carries no meaning beyond
// that and is returned verbatim by PredecessorEdge for any vertex made
// a root by construction, Reset, or MakeRootVertex.
func New(graph digraph.Graph, edgeFillSentinel int) *Forest {
	n := graph.NumVertices()
	f := &Forest{
		graph:            graph,
		edgeFillSentinel: edgeFillSentinel,
		predVertex:       make([]int, n),
		predEdge:         make([]int, n),
	}
	f.resetArrays()
	return f
}

func (f *Forest) resetArrays() {
	for v := 0; v < f.graph.NumVertices(); v++ {
		f.predVertex[v] = v
		f.predEdge[v] = f.edgeFillSentinel
	}
}

// Graph returns the graph this forest was built over.
func (f *Forest) Graph() digraph.Graph { return f.graph }

func (f *Forest) checkVertex(v int) {
	if !f.graph.ContainsVertex(v) {
		panic(fmt.Sprintf("forest: vertex %d not in graph", v))
	}
}

// PredecessorVertex returns v's parent; for a root this is v itself.
// Panics if v is not a valid vertex.
func (f *Forest) PredecessorVertex(v int) int {
	f.checkVertex(v)
	return f.predVertex[v]
}

// PredecessorEdge returns v's predecessor edge. The value is only
// meaningful when v is not a root; for a root it is the
// edgeFillSentinel supplied at construction if v became a root by
// construction, Reset, or MakeRootVertex, or the edge passed to
// SetPredecessor(v, v, edge). Panics if v is not a valid vertex.
func (f *Forest) PredecessorEdge(v int) int {
	f.checkVertex(v)
	return f.predEdge[v]
}

// Predecessor returns the (parent, edge) pair for v. See
// PredecessorEdge for the root caveat.
func (f *Forest) Predecessor(v int) (parent, edge int) {
	f.checkVertex(v)
	return f.predVertex[v], f.predEdge[v]
}

// Predecessors returns a lazy, restartable sequence of (parent, edge)
// pairs obtained by walking from v up to (but not including) its
// tree's root. The sequence is empty when v is already a root.
// Panics if v is not a valid vertex.
func (f *Forest) Predecessors(v int) func(yield func(parent, edge int) bool) {
	f.checkVertex(v)
	return func(yield func(parent, edge int) bool) {
		current := v
		for !f.IsRootVertex(current) {
			parent, edge := f.predVertex[current], f.predEdge[current]
			if !yield(parent, edge) {
				return
			}
			current = parent
		}
	}
}

// SetPredecessor records that edge leads from parent to v. Requires v
// and parent to be valid vertices; requires that either v == parent
// (marking v a root) or edge is a valid edge whose tail is parent and
// head is v — the latter is trusted from the caller rather than
// re-derived from the graph, since the Graph interface exposes
// adjacency only by outgoing traversal, not by direct edge lookup.
// Panics on an invalid vertex or edge handle.
func (f *Forest) SetPredecessor(v, parent, edge int) {
	f.checkVertex(v)
	f.checkVertex(parent)
	if v != parent && !f.graph.ContainsEdge(edge) {
		panic(fmt.Sprintf("forest: edge %d not in graph", edge))
	}
	f.predVertex[v] = parent
	f.predEdge[v] = edge
}

// MakeRootVertex marks v as the root of its own tree. Panics if v is
// not a valid vertex.
func (f *Forest) MakeRootVertex(v int) {
	f.checkVertex(v)
	f.predVertex[v] = v
	f.predEdge[v] = f.edgeFillSentinel
}

// IsRootVertex reports whether v is the root of its own tree. Panics
// if v is not a valid vertex.
func (f *Forest) IsRootVertex(v int) bool {
	f.checkVertex(v)
	return f.predVertex[v] == v
}

// Reset restores every vertex to being the root of its own singleton
// tree, as if the Forest had just been constructed.
func (f *Forest) Reset() {
	f.resetArrays()
}

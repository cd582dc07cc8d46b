package digraph

import "fmt"

// Edge is a (tail, head) pair used only to build a CSRGraph; it plays
// no further role once construction completes. Edge ids assigned by
// CSRGraph equal the index of the Edge within the slice passed to
// NewCSRGraph, so callers that carry a parallel per-edge cost or
// weight slice can index it directly by edge id.
type Edge struct {
	Tail int
	Head int
}

// CSRGraph is a compressed-sparse-row digraph: an O(1)-indexed,
// immutable adjacency structure built once from a fixed edge list.
//
// Construction is O(V+E); every query below is O(1) plus, for
// OutgoingArcs, O(outdegree(tail)) to walk the yielded pairs.
type CSRGraph struct {
	numVertices int
	numEdges    int
	rowStart    []int // length numVertices+1
	adjEdge     []int // length numEdges, original edge id per adjacency slot
	adjHead     []int // length numEdges, head vertex per adjacency slot
}

// NewCSRGraph builds a CSRGraph over numVertices vertices from edges.
// Edge ids are assigned in input order: edges[i] becomes edge id i.
// Returns ErrNegativeVertexCount if numVertices < 0, or
// ErrVertexOutOfRange if any edge references a vertex outside
// [0, numVertices).
func NewCSRGraph(numVertices int, edges []Edge) (*CSRGraph, error) {
	if numVertices < 0 {
		return nil, fmt.Errorf("digraph: %w: %d", ErrNegativeVertexCount, numVertices)
	}
	for i, e := range edges {
		if e.Tail < 0 || e.Tail >= numVertices || e.Head < 0 || e.Head >= numVertices {
			return nil, fmt.Errorf("digraph: %w: edge %d (%d -> %d), numVertices=%d",
				ErrVertexOutOfRange, i, e.Tail, e.Head, numVertices)
		}
	}

	degree := make([]int, numVertices)
	for _, e := range edges {
		degree[e.Tail]++
	}

	rowStart := make([]int, numVertices+1)
	for v := 0; v < numVertices; v++ {
		rowStart[v+1] = rowStart[v] + degree[v]
	}

	cursor := make([]int, numVertices)
	copy(cursor, rowStart[:numVertices])

	adjEdge := make([]int, len(edges))
	adjHead := make([]int, len(edges))
	for i, e := range edges {
		pos := cursor[e.Tail]
		adjEdge[pos] = i
		adjHead[pos] = e.Head
		cursor[e.Tail]++
	}

	return &CSRGraph{
		numVertices: numVertices,
		numEdges:    len(edges),
		rowStart:    rowStart,
		adjEdge:     adjEdge,
		adjHead:     adjHead,
	}, nil
}

// NumVertices returns N.
func (g *CSRGraph) NumVertices() int { return g.numVertices }

// NumEdges returns M.
func (g *CSRGraph) NumEdges() int { return g.numEdges }

// Vertices yields 0, 1, ..., N-1.
func (g *CSRGraph) Vertices() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for v := 0; v < g.numVertices; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Edges yields 0, 1, ..., M-1.
func (g *CSRGraph) Edges() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for e := 0; e < g.numEdges; e++ {
			if !yield(e) {
				return
			}
		}
	}
}

// ContainsVertex reports whether v is a valid vertex id.
func (g *CSRGraph) ContainsVertex(v int) bool {
	return v >= 0 && v < g.numVertices
}

// ContainsEdge reports whether e is a valid edge id.
func (g *CSRGraph) ContainsEdge(e int) bool {
	return e >= 0 && e < g.numEdges
}

// GetVertexID returns v itself. Panics if v is not a valid vertex.
func (g *CSRGraph) GetVertexID(v int) int {
	if !g.ContainsVertex(v) {
		panic(fmt.Sprintf("digraph: vertex %d out of range [0, %d)", v, g.numVertices))
	}
	return v
}

// GetEdgeID returns e itself. Panics if e is not a valid edge.
func (g *CSRGraph) GetEdgeID(e int) int {
	if !g.ContainsEdge(e) {
		panic(fmt.Sprintf("digraph: edge %d out of range [0, %d)", e, g.numEdges))
	}
	return e
}

// OutgoingArcs yields (edge, head) pairs for every edge leaving tail,
// in increasing edge-id order. Panics if tail is not a valid vertex.
func (g *CSRGraph) OutgoingArcs(tail int) func(yield func(Arc) bool) {
	if !g.ContainsVertex(tail) {
		panic(fmt.Sprintf("digraph: vertex %d out of range [0, %d)", tail, g.numVertices))
	}
	start, end := g.rowStart[tail], g.rowStart[tail+1]
	return func(yield func(Arc) bool) {
		for i := start; i < end; i++ {
			if !yield(Arc{Edge: g.adjEdge[i], Head: g.adjHead[i]}) {
				return
			}
		}
	}
}

// Outdegree returns the number of edges leaving v. Panics if v is not
// a valid vertex.
func (g *CSRGraph) Outdegree(v int) int {
	if !g.ContainsVertex(v) {
		panic(fmt.Sprintf("digraph: vertex %d out of range [0, %d)", v, g.numVertices))
	}
	return g.rowStart[v+1] - g.rowStart[v]
}

var _ Graph = (*CSRGraph)(nil)

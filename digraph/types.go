package digraph

import "errors"

// Sentinel errors for digraph construction.
var (
	// ErrNegativeVertexCount indicates a negative vertex count was supplied
	// to a constructor.
	ErrNegativeVertexCount = errors.New("digraph: negative vertex count")

	// ErrVertexOutOfRange indicates an edge endpoint referenced a vertex
	// outside [0, numVertices).
	ErrVertexOutOfRange = errors.New("digraph: edge endpoint out of range")
)

// Arc pairs an edge id with the vertex it leads to. It is the element
// type yielded by Graph.OutgoingArcs.
type Arc struct {
	Edge int
	Head int
}

// Graph is the adjacency contract consumed by the forest, residual,
// network, and dial packages. Vertex and edge handles are plain ints
// in [0, NumVertices()) and [0, NumEdges()) respectively, so
// GetVertexID and GetEdgeID are bounds-checked identities rather than
// a lookup into a side table.
//
// Implementations are expected to be immutable for the lifetime of
// any Forest, Network, or Dial built over them; nothing in this
// module defends against a Graph that changes mid-search.
type Graph interface {
	// NumVertices returns the number of vertices, N.
	NumVertices() int
	// NumEdges returns the number of edges, M.
	NumEdges() int

	// Vertices yields every vertex id in [0, N) in increasing order.
	Vertices() func(yield func(int) bool)
	// Edges yields every edge id in [0, M) in increasing order.
	Edges() func(yield func(int) bool)

	// ContainsVertex reports whether v is a valid vertex id.
	ContainsVertex(v int) bool
	// ContainsEdge reports whether e is a valid edge id.
	ContainsEdge(e int) bool

	// GetVertexID returns v's own id. Panics if v is not a valid vertex.
	GetVertexID(v int) int
	// GetEdgeID returns e's own id. Panics if e is not a valid edge.
	GetEdgeID(e int) int

	// OutgoingArcs yields (edge, head) pairs for every edge leaving
	// tail, in edge-id order. Panics if tail is not a valid vertex.
	OutgoingArcs(tail int) func(yield func(Arc) bool)
}

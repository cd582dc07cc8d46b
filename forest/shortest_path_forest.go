package forest

import (
	"fmt"
	"math"

	"github.com/nodegraph/dialflow/digraph"
)

// label is the three-valued monotone state of a vertex during one
// search: unreached -> reached -> visited, with no reverse
// transitions.
type label uint8

const (
	unreached label = iota
	reached
	visited
)

// InfiniteDistance is the sentinel used for a vertex that has not yet
// been reached. It is math.MaxInt64 rather than a true infinity since
// the distance scalar throughout this module is the integral int64
// Dial's algorithm requires.
const InfiniteDistance int64 = math.MaxInt64

// EdgeFillSentinel is the predecessor-edge sentinel ShortestPathForest
// uses for root vertices. -1 is not a valid edge id (edge ids are
// always non-negative), so it is unambiguous.
const EdgeFillSentinel = -1

// ShortestPathForest extends Forest with a per-vertex label
// (unreached/reached/visited) and a distance. It is the state a
// single-source shortest-path search accumulates into as it runs.
type ShortestPathForest struct {
	*Forest
	label    []label
	distance []int64
}

// NewShortestPathForest builds a ShortestPathForest over graph with
// every vertex unreached and every distance set to InfiniteDistance.
// The underlying Forest uses EdgeFillSentinel as its root edge marker.
func NewShortestPathForest(graph digraph.Graph) *ShortestPathForest {
	n := graph.NumVertices()
	spf := &ShortestPathForest{
		Forest:   New(graph, EdgeFillSentinel),
		label:    make([]label, n),
		distance: make([]int64, n),
	}
	spf.resetLabels()
	return spf
}

func (spf *ShortestPathForest) resetLabels() {
	for v := range spf.label {
		spf.label[v] = unreached
		spf.distance[v] = InfiniteDistance
	}
	spf.Forest.resetArrays()
}

func (spf *ShortestPathForest) checkVertex(v int) {
	if !spf.Graph().ContainsVertex(v) {
		panic(fmt.Sprintf("forest: vertex %d not in graph", v))
	}
}

// HasReachedVertex reports whether v's label is reached or visited.
// Panics if v is not a valid vertex.
func (spf *ShortestPathForest) HasReachedVertex(v int) bool {
	spf.checkVertex(v)
	return spf.label[v] != unreached
}

// HasVisitedVertex reports whether v's label is visited. Panics if v
// is not a valid vertex.
func (spf *ShortestPathForest) HasVisitedVertex(v int) bool {
	spf.checkVertex(v)
	return spf.label[v] == visited
}

// LabelVertexReached marks an unvisited vertex as reached. Panics if
// v is not a valid vertex or is already visited.
func (spf *ShortestPathForest) LabelVertexReached(v int) {
	spf.checkVertex(v)
	if spf.label[v] == visited {
		panic(fmt.Sprintf("forest: cannot re-label visited vertex %d as reached", v))
	}
	spf.label[v] = reached
}

// LabelVertexVisited marks an unvisited vertex as visited. Panics if
// v is not a valid vertex or is already visited.
func (spf *ShortestPathForest) LabelVertexVisited(v int) {
	spf.checkVertex(v)
	if spf.label[v] == visited {
		panic(fmt.Sprintf("forest: cannot re-label visited vertex %d as visited", v))
	}
	spf.label[v] = visited
}

// ReachedVertices returns a lazy filtered view over every vertex with
// label reached or visited, in vertex-id order.
func (spf *ShortestPathForest) ReachedVertices() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for v := range spf.Graph().Vertices() {
			if spf.HasReachedVertex(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// VisitedVertices returns a lazy filtered view over every vertex with
// label visited, in vertex-id order.
func (spf *ShortestPathForest) VisitedVertices() func(yield func(int) bool) {
	return func(yield func(int) bool) {
		for v := range spf.Graph().Vertices() {
			if spf.HasVisitedVertex(v) {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// DistanceToVertex returns v's current best known distance. Panics if
// v is not a valid vertex.
func (spf *ShortestPathForest) DistanceToVertex(v int) int64 {
	spf.checkVertex(v)
	return spf.distance[v]
}

// SetDistanceToVertex sets v's distance, unchecked against monotonicity
// — the caller (Dial's relax_edge) is responsible for only ever
// lowering a vertex's distance. Panics if v is not a valid vertex.
func (spf *ShortestPathForest) SetDistanceToVertex(v int, distance int64) {
	spf.checkVertex(v)
	spf.distance[v] = distance
}

// Reset restores the underlying Forest to all-singleton-roots and
// every label/distance to its initial unreached/infinite state.
func (spf *ShortestPathForest) Reset() {
	spf.resetLabels()
}

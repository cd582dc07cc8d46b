package shortestpath

import (
	"fmt"

	"github.com/nodegraph/dialflow/dial"
	"github.com/nodegraph/dialflow/digraph"
)

// ShortestPaths computes single-source shortest distances (and,
// unless disabled, predecessors) from opts' source vertex over g,
// using weight as the per-edge length table (weight[e] is the length
// of edge e; len(weight) must equal g.NumEdges()).
//
// Steps:
//  1. Validate options and weight against g (errors, not panics — the
//     caller's data, not the search itself, might be malformed).
//  2. Size a Dial bucket ring to one more than the largest weight
//     that will actually be relaxed (weights at or above
//     InfEdgeThreshold are skipped and so do not inflate the ring).
//  3. Run the standard add-source / done / pop / visit / relax loop.
//
// Returns dist, one entry per vertex (forest.InfiniteDistance for an
// unreached vertex), and prev (nil unless ReturnPath is set), where
// prev[v] is v's predecessor, or v itself for a root or unreached
// vertex.
func ShortestPaths(g digraph.Graph, weight []int64, opts ...Option) (dist []int64, prev []int, err error) {
	options := DefaultOptions(noSource)
	for _, opt := range opts {
		opt(&options)
	}

	if options.Source == noSource {
		return nil, nil, ErrNoSource
	}
	if !g.ContainsVertex(options.Source) {
		return nil, nil, fmt.Errorf("%w: %d", ErrVertexNotFound, options.Source)
	}
	if len(weight) != g.NumEdges() {
		return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrWeightLengthMismatch, len(weight), g.NumEdges())
	}
	for e, w := range weight {
		if w < 0 {
			return nil, nil, fmt.Errorf("%w: edge %d has weight %d", ErrNegativeWeight, e, w)
		}
	}

	var maxRelaxedWeight int64
	for _, w := range weight {
		if w < options.InfEdgeThreshold && w > maxRelaxedWeight {
			maxRelaxedWeight = w
		}
	}
	numBuckets := int(maxRelaxedWeight) + 1

	d := dial.New(g, numBuckets)
	d.AddSource(options.Source)

	for !d.Done() {
		v, distV := d.PopNextUnvisitedVertex()
		d.VisitVertex(v, distV)

		if distV >= options.MaxDistance {
			continue
		}

		for arc := range g.OutgoingArcs(v) {
			w := weight[arc.Edge]
			if w >= options.InfEdgeThreshold {
				continue
			}
			next := distV + w
			if next > options.MaxDistance {
				continue
			}
			d.RelaxEdge(arc.Edge, v, arc.Head, next)
		}
	}

	dist = make([]int64, g.NumVertices())
	for v := range g.Vertices() {
		dist[v] = d.DistanceToVertex(v)
	}

	if !options.ReturnPath {
		return dist, nil, nil
	}

	prev = make([]int, g.NumVertices())
	for v := range g.Vertices() {
		prev[v] = d.PredecessorVertex(v)
	}
	return dist, prev, nil
}

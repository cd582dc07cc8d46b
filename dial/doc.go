// Package dial implements Dial, a shortest-path scheduler that visits
// vertices in non-decreasing distance order using a circular array of
// FIFO buckets indexed by distance mod B ("Dial's algorithm"), rather
// than a binary heap. It requires integral, non-negative, bounded
// edge lengths — precisely the admissible reduced costs a
// network.Network supplies.
//
// Dial owns a forest.ShortestPathForest; the caller drives the search
// loop:
//
//	d.AddSource(s)
//	for !d.Done() {
//	    v, dist := d.PopNextUnvisitedVertex()
//	    d.VisitVertex(v, dist)
//	    for arc := range graph.OutgoingArcs(v) {
//	        d.RelaxEdge(arc.Edge, v, arc.Head, dist+length(arc.Edge))
//	    }
//	}
//
// Dial never removes a stale bucket entry eagerly (there is no
// decrease-key); Done skips leading visited entries lazily instead,
// keeping PushVertex and RelaxEdge O(1).
package dial

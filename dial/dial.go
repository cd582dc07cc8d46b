package dial

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/nodegraph/dialflow/digraph"
	"github.com/nodegraph/dialflow/forest"
	"github.com/nodegraph/dialflow/network"
)

// Dial schedules vertex visitation in non-decreasing distance order
// over a fixed digraph.Graph, using a ring of numBuckets FIFO buckets
// indexed by distance mod numBuckets. It embeds a
// forest.ShortestPathForest, which accumulates the resulting
// shortest-path tree.
type Dial struct {
	*forest.ShortestPathForest
	graph           digraph.Graph
	buckets         []bucket
	currentBucketID int
	logger          *logrus.Logger
}

// New builds a Dial over graph with numBuckets buckets. Panics if
// numBuckets is negative.
func New(graph digraph.Graph, numBuckets int, opts ...Option) *Dial {
	if numBuckets < 0 {
		panic(fmt.Sprintf("dial: negative bucket count %d", numBuckets))
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Dial{
		ShortestPathForest: forest.NewShortestPathForest(graph),
		graph:              graph,
		buckets:            make([]bucket, numBuckets),
		currentBucketID:    0,
		logger:             o.logger,
	}
}

// NewFromNetwork builds a Dial over net's residual graph, sizing the
// bucket ring to MaxAdmissibleArcLength(net) + 1 — the bound that
// guarantees every vertex popped from the current bucket holds the
// true minimum distance among unvisited reached vertices.
func NewFromNetwork(net *network.Network, opts ...Option) *Dial {
	b := network.MaxAdmissibleArcLength(net) + 1
	return New(net.ResidualGraph(), int(b), opts...)
}

// NumBuckets returns B.
func (d *Dial) NumBuckets() int { return len(d.buckets) }

// CurrentBucketID returns the cursor position in [0, NumBuckets()).
func (d *Dial) CurrentBucketID() int { return d.currentBucketID }

// GetBucketID returns distance mod NumBuckets(). Panics if distance
// is negative.
func (d *Dial) GetBucketID(distance int64) int {
	if distance < 0 {
		panic(fmt.Sprintf("dial: negative distance %d", distance))
	}
	return int(distance % int64(d.NumBuckets()))
}

// Bucket returns a snapshot of the vertices still queued in bucket
// id, in FIFO order. Panics if id is out of range.
func (d *Dial) Bucket(id int) []int {
	b := &d.buckets[id]
	return append([]int(nil), b.items[b.head:]...)
}

// CurrentBucket returns a snapshot of the vertices still queued in
// the current bucket.
func (d *Dial) CurrentBucket() []int {
	return d.Bucket(d.currentBucketID)
}

// AdvanceCurrentBucket moves the cursor to (CurrentBucketID()+1) mod
// NumBuckets(); a no-op when NumBuckets() == 0.
func (d *Dial) AdvanceCurrentBucket() {
	if d.NumBuckets() == 0 {
		return
	}
	d.currentBucketID = (d.currentBucketID + 1) % d.NumBuckets()
}

// PushVertex appends v to the bucket for distance. Requires v to have
// already been labelled reached and distance to be non-negative.
// Panics otherwise.
func (d *Dial) PushVertex(v int, distance int64) {
	if !d.HasReachedVertex(v) {
		panic(fmt.Sprintf("dial: vertex %d pushed before being labelled reached", v))
	}
	id := d.GetBucketID(distance)
	d.buckets[id].push(v)
}

// AddSource makes s the root of a new tree, labels it reached, sets
// its distance to 0, and pushes it into bucket 0. Requires s not to
// have been reached yet. Panics otherwise.
func (d *Dial) AddSource(s int) {
	if d.HasReachedVertex(s) {
		panic(fmt.Sprintf("dial: source %d already reached", s))
	}
	d.MakeRootVertex(s)
	d.LabelVertexReached(s)
	d.SetDistanceToVertex(s, 0)
	d.PushVertex(s, 0)
	if d.logger != nil {
		d.logger.WithField("source", s).Debug("dial: added source")
	}
}

// PopNextUnvisitedVertex removes and returns the front vertex of the
// current bucket and its distance. Requires the current bucket to be
// non-empty with an unvisited front element — guaranteed by a prior
// call to Done() returning false. Panics otherwise.
func (d *Dial) PopNextUnvisitedVertex() (vertex int, distance int64) {
	b := &d.buckets[d.currentBucketID]
	if b.empty() {
		panic("dial: PopNextUnvisitedVertex called on an empty current bucket; call Done() first")
	}
	if d.HasVisitedVertex(b.front()) {
		panic("dial: PopNextUnvisitedVertex called with a stale (visited) front entry; call Done() first")
	}
	v := b.popFront()
	return v, d.DistanceToVertex(v)
}

// ReachVertex records that edge leads from tail to head at distance,
// labels head reached, and pushes it into its bucket. Requires tail
// to have been visited, head not to have been visited, and distance
// to be at least tail's distance. Panics otherwise.
func (d *Dial) ReachVertex(edge, tail, head int, distance int64) {
	if !d.HasVisitedVertex(tail) {
		panic(fmt.Sprintf("dial: ReachVertex called with unvisited tail %d", tail))
	}
	if d.HasVisitedVertex(head) {
		panic(fmt.Sprintf("dial: ReachVertex called with already-visited head %d", head))
	}
	if distance < d.DistanceToVertex(tail) {
		panic(fmt.Sprintf("dial: ReachVertex distance %d less than tail %d's distance %d",
			distance, tail, d.DistanceToVertex(tail)))
	}
	d.SetPredecessor(head, tail, edge)
	d.LabelVertexReached(head)
	d.SetDistanceToVertex(head, distance)
	d.PushVertex(head, distance)
}

// VisitVertex labels v visited. Requires v to have been reached.
// Panics otherwise.
func (d *Dial) VisitVertex(v int, distance int64) {
	if !d.HasReachedVertex(v) {
		panic(fmt.Sprintf("dial: VisitVertex called on unreached vertex %d", v))
	}
	d.LabelVertexVisited(v)
	if d.logger != nil {
		d.logger.WithFields(logrus.Fields{"vertex": v, "distance": distance}).Debug("dial: visited vertex")
	}
}

// RelaxEdge calls ReachVertex(edge, tail, head, distance) iff distance
// is strictly less than head's current distance; otherwise it is a
// no-op. This is the only operation that may lower a vertex's
// recorded distance.
func (d *Dial) RelaxEdge(edge, tail, head int, distance int64) {
	if distance < d.DistanceToVertex(head) {
		d.ReachVertex(edge, tail, head, distance)
	}
}

// Done reports whether the ring has no unvisited vertex remaining,
// advancing the cursor past any leading runs of stale (already
// visited) bucket entries as it goes. Amortised O(NumBuckets() +
// stale entries skipped).
func (d *Dial) Done() bool {
	if d.NumBuckets() == 0 {
		return true
	}

	old := d.currentBucketID
	for i := 0; i < d.NumBuckets(); i++ {
		b := &d.buckets[d.currentBucketID]
		for !b.empty() && d.HasVisitedVertex(b.front()) {
			b.popFront()
		}
		if !b.empty() {
			return false
		}
		d.AdvanceCurrentBucket()
		if d.currentBucketID == old {
			if d.logger != nil {
				d.logger.Debug("dial: bucket ring exhausted, search complete")
			}
			return true
		}
	}
	return true
}

// Reset restores the enclosed ShortestPathForest to its initial
// state, clears every bucket, and resets the cursor to 0.
func (d *Dial) Reset() {
	d.ShortestPathForest.Reset()
	for i := range d.buckets {
		d.buckets[i].clear()
	}
	d.currentBucketID = 0
}

package shortestpath

import (
	"fmt"

	"github.com/nodegraph/dialflow/forest"
)

// noSource marks an Options value that has not had Source applied.
const noSource = -1

// Options configures a ShortestPaths call.
type Options struct {
	// Source is the search's single source vertex.
	Source int
	// ReturnPath controls whether ShortestPaths computes and returns
	// the predecessor array; skip it when only distances are needed.
	ReturnPath bool
	// MaxDistance bounds the search: vertices (and edges leading to
	// them) beyond this distance are left unreached.
	MaxDistance int64
	// InfEdgeThreshold treats any edge weight at or above this value
	// as effectively absent, skipping it during relaxation.
	InfEdgeThreshold int64
}

// DefaultOptions returns production-safe defaults for a search from
// source: return the full predecessor path, and do not bound distance
// or treat any edge weight as infinite.
func DefaultOptions(source int) Options {
	return Options{
		Source:           source,
		ReturnPath:       true,
		MaxDistance:      forest.InfiniteDistance,
		InfEdgeThreshold: forest.InfiniteDistance,
	}
}

// Option configures a ShortestPaths call.
type Option func(*Options)

// Source sets the search's source vertex.
func Source(v int) Option {
	return func(o *Options) { o.Source = v }
}

// WithReturnPath controls whether ShortestPaths populates its
// predecessor return value.
func WithReturnPath(v bool) Option {
	return func(o *Options) { o.ReturnPath = v }
}

// WithMaxDistance bounds the search to vertices within max of the
// source. Panics immediately if max is negative — an invalid bound is
// a caller bug, not a runtime condition to validate later.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(fmt.Sprintf("shortestpath: WithMaxDistance requires a non-negative bound, got %d", max))
	}
	return func(o *Options) { o.MaxDistance = max }
}

// WithInfEdgeThreshold treats any edge weight >= threshold as
// infinite. Panics immediately if threshold is not positive.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(fmt.Sprintf("shortestpath: WithInfEdgeThreshold requires a positive threshold, got %d", threshold))
	}
	return func(o *Options) { o.InfEdgeThreshold = threshold }
}

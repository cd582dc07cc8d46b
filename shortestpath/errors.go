package shortestpath

import "errors"

// Sentinel errors for ShortestPaths. All of these reject malformed
// caller input at the boundary; none of them can occur once a search
// is underway (the dial package panics instead for any precondition
// broken mid-search).
var (
	// ErrNoSource indicates no Source option was supplied.
	ErrNoSource = errors.New("shortestpath: no source vertex specified")

	// ErrVertexNotFound indicates the source vertex is not in the graph.
	ErrVertexNotFound = errors.New("shortestpath: source vertex not found")

	// ErrWeightLengthMismatch indicates the weight slice's length does
	// not match the graph's edge count.
	ErrWeightLengthMismatch = errors.New("shortestpath: weight length does not match edge count")

	// ErrNegativeWeight indicates a negative edge weight was supplied;
	// Dial's algorithm requires non-negative integer edge lengths.
	ErrNegativeWeight = errors.New("shortestpath: edge weight must be non-negative")
)

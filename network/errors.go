package network

import "errors"

// Sentinel errors for Network construction. These are the only
// recoverable failures in this package: they signal malformed caller
// data, not a broken invariant mid-search.
var (
	// ErrSurplusLengthMismatch indicates the supplied surplus slice's
	// length does not equal the number of nodes in the graph.
	ErrSurplusLengthMismatch = errors.New("network: surplus length does not match node count")

	// ErrCostLengthMismatch indicates the supplied forward-cost
	// slice's length does not equal the number of forward arcs.
	ErrCostLengthMismatch = errors.New("network: cost length does not match forward arc count")

	// ErrNegativeCost indicates a negative forward cost was supplied;
	// arc costs in the residual graph must be non-negative before
	// negation for the reverse direction.
	ErrNegativeCost = errors.New("network: forward cost must be non-negative")
)

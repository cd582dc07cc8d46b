// Package digraph defines the Graph interface consumed by the forest,
// residual, network, and dial packages, and provides CSRGraph, a
// compact compressed-sparse-row implementation of it.
//
// Vertices and edges are identified by dense integer ids in [0, N) and
// [0, M) respectively; a vertex or edge id doubles as its own array
// index, so callers never need a separate id lookup step.
//
// CSRGraph is built once from a fixed edge list and is immutable
// thereafter: the forest/network/dial layers all hold a read-only
// reference to a Graph for the duration of a search and assume it
// does not change underneath them.
package digraph

// Package shortestpath provides ShortestPaths, a convenience entry
// point that runs a single-source shortest-path search directly over
// a digraph.Graph and a plain non-negative integer edge-weight slice,
// without requiring the caller to assemble a network.Network.
//
// It is built on top of the dial package exactly the way a
// higher-level, easy-to-call wrapper sits on top of a lower-level,
// composable engine: internally it drives the same
// AddSource/Done/PopNextUnvisitedVertex/VisitVertex/RelaxEdge loop a
// caller would write by hand against package dial.
package shortestpath

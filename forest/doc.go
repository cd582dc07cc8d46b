// Package forest implements Forest, a rooted predecessor forest over
// the vertex set of a fixed digraph.Graph, and ShortestPathForest,
// which layers a three-valued reached/visited label and a distance
// scalar on top of it.
//
// Both types hold a non-owning reference to their Graph; mutating the
// Graph after construction invalidates them (not checked here —
// that contract is the caller's responsibility, same as for any
// borrowed slice).
//
// All precondition violations (an unknown vertex, re-reaching a
// visited vertex, and so on) panic rather than return an error:
// they are programming errors in the caller, not recoverable runtime
// conditions.
package forest

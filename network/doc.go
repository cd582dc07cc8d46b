// Package network implements Network, which wraps the residual graph
// of a digraph.Graph and tracks per-node excess and potential and
// per-arc cost, delegating capacity and flow bookkeeping to a
// residual.CapacityMixin supplied at construction.
//
// Network computes the reduced cost of an arc — the quantity Dial's
// algorithm schedules by — and the aggregate statistics (total
// excess, total deficit, balance, total cost) a minimum-cost-flow
// algorithm built on top of this package would need.
package network

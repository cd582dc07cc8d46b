// Package dialflow is the algorithmic core of a minimum-cost flow
// toolkit: a Dial's-algorithm shortest-path engine over the residual
// graph of a flow network, built from reduced arc costs and a
// circular bucket ring rather than a binary heap.
//
// Subpackages, leaves first:
//
//   - digraph      - the Graph interface and a CSR implementation.
//   - forest       - Forest (predecessor trees) and ShortestPathForest
//                     (label/distance layer).
//   - residual     - residual-graph construction and the two
//                     CapacityMixin implementations (Uncapacitated,
//                     UnitCapacity).
//   - network      - Network (excess/potential/reduced cost) and
//                     MaxAdmissibleArcLength.
//   - dial         - the Dial bucket-ring scheduler itself.
//   - shortestpath - a convenience entry point over a plain
//                     digraph.Graph and integer edge weights.
//
// A single search assembles these bottom-up: build a Network over a
// Graph, build a Dial from the Network, add one or more sources, and
// repeatedly pop/visit/relax until Done. On completion the Dial's
// embedded ShortestPathForest holds distances and a predecessor tree.
//
// This module solves none of the surrounding minimum-cost flow
// problem — no network simplex, no cost scaling, no successive
// shortest paths — by design; it is the search primitive an
// enclosing algorithm drives.
package dialflow

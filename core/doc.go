// Package core defines the Graph type consumed by every cycle-enumeration
// algorithm in niographs, and the shared vertex-numbering pass they all
// depend on.
//
// Graph is an adjacency-list container over string vertex IDs. Unlike a
// map-keyed-by-ID container, it preserves insertion order: Vertices()
// returns vertices in the order they were first added, and per-vertex
// out-neighbor (directed) or incident-edge (undirected) sequences preserve
// the order edges were added. Every cycle algorithm's determinism guarantee
// rests on this ordering, not on any caller-supplied comparator.
//
// Graph supports directed and undirected modes (chosen once, at
// construction, via WithDirected) and self-loops. Multi-edges between the
// same ordered pair are not a supported configuration: AddEdge silently
// coalesces a repeated (from, to) pair rather than growing the adjacency
// list, so algorithms never observe a duplicate neighbor.
//
// Number computes the integer vertex indices (0..n-1) that every cycle
// algorithm uses for "compare by index" decisions, via a single DFS
// pre-order pass seeded by Vertices()'s insertion order.
package core

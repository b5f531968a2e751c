// Package niographs enumerates simple cycles in directed and undirected
// graphs.
//
// Four directed algorithms share one uniform surface
// (New.../SetGraph/Graph/FindSimpleCycles/CountSimpleCycles):
//
//	tiernan/           Tiernan (1970): path-extension backtracking
//	tarjan/            Tarjan (1973): point-stack backtracking with a
//	                   per-vertex "removed" set that persists across starts
//	johnson/           Johnson (1975): per-SCC backtracking with Johnson's
//	                   blocked-set unblock cascade
//	szwarcfiterlauer/  Szwarcfiter & Lauer (1976): single-pass backtracking
//	                   over an entire SCC's shared state
//
// A fifth package, scc, implements the Tarjan (1972) strongly-connected-
// components engine all four cycle algorithms that need SCC restriction
// (johnson, szwarcfiterlauer) build on.
//
// paton implements two variants of Paton's (1969) undirected spanning-tree
// walk, a LIFO one and a FIFO (BFS tree) one; each returns one fundamental
// cycle per non-tree edge of its spanning tree, so both return the same
// number of cycles, and neither is the complete set of an undirected
// graph's simple cycles.
//
// core holds the shared Graph type (an insertion-ordered adjacency list)
// and the DFS-based vertex numbering every directed algorithm's
// "compare by index" logic relies on.
//
// cmd/niocycles is a small command-line harness that loads a graph from an
// edge-list file and prints the cycles found by any one algorithm.
package niographs

// Package paton enumerates cycles of an undirected core.Graph via Paton's
// spanning-tree walk: each unvisited root starts a new tree; popping a
// vertex and inspecting its incident edges either grows the tree (the
// neighbor is new) or closes a cycle (the neighbor is already in the
// tree) by walking parent pointers back to the nearest common ancestor.
//
// The walk's container discipline decides which spanning tree the cycles
// are taken from: PatonCycleBase pops LIFO (a stack), PatonSimpleCycles
// pops FIFO (a queue) and so walks a BFS tree. Both produce one cycle per
// non-tree edge — exactly |E|-|V|+(#components) cycles, a fundamental
// cycle base, linearly independent under symmetric difference — and
// neither is the complete set of simple cycles of the graph (that would
// require XOR-combining subsets of the base, which this package does not
// implement).
//
// Grounded on PatonCycleBase.java/PatonSimpleCycles.java, which are
// otherwise near-duplicates of each other in the original source.
package paton

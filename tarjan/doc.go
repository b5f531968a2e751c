// Package tarjan enumerates simple directed cycles via Tarjan's 1973
// backtracking algorithm: a DFS that tracks the current path on a point
// stack, marks vertices visited during the current start's search on a
// separate marked stack, and prunes each vertex's out-neighbors that have
// already been proven (for the current start) to lead nowhere into a
// per-vertex removed set that persists across start vertices.
//
// Not to be confused with the scc package, which implements Tarjan's
// earlier (1972) strongly connected components algorithm.
package tarjan

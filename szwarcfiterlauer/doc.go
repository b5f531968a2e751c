// Package szwarcfiterlauer enumerates simple directed cycles via the
// Szwarcfiter–Lauer algorithm: one DFS per strongly connected component,
// started at the vertex of maximum in-degree within that component,
// tracking each vertex's position on the current path and a "reach" flag
// recording whether it has ever been finalized, so that later calls can
// reuse earlier pruning (removed/bSet) across different start vertices
// within the same overall search.
//
// O(V + E·C); the fastest of the four directed algorithms on graphs with
// many cycles, grounded on Graphs.java's cycleSL/noCycleSL/unmarkSL.
package szwarcfiterlauer

// Package tiernan enumerates simple directed cycles via Tiernan's
// path-extension algorithm: a backtracking walk that greedily extends the
// current path and, on reaching a dead end, closes the last vertex into a
// per-predecessor blocked set so it is not re-tried from that predecessor
// while the predecessor stays on the path (a vertex's own blocked set is
// cleared when it is itself closed).
//
// Worst case is O(V·C^V); this is the simplest of the four directed
// algorithms and the slowest on dense graphs, kept mainly as a baseline
// the other three can be cross-checked against.
package tiernan

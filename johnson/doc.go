// Package johnson enumerates simple directed cycles via Johnson's
// algorithm: repeatedly take the strongly connected component (via scc)
// containing the smallest-index vertex of the induced subgraph on
// not-yet-discarded vertices, then search that component alone with a
// block/unblock discipline that skips re-exploring a vertex until a
// neighbor on its dependency list (bSet) proves it might lead to a new
// cycle.
//
// Grounded on Graphs.java's findSimpleCyclesJ/minSCGraphJ/findCyclesInSCGJ,
// cross-checked for idiomatic Go block/unblock shape against Gonum's port
// of the same paper (topo.DirectedCyclesIn in the retrieved example pack).
package johnson

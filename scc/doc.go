// Package scc computes strongly connected components of a directed
// core.Graph via Tarjan's 1972 algorithm.
//
// Four queries are exposed, crossing two independent choices: whether
// trivial single-vertex components (a vertex in no cycle) are included,
// and whether components are materialized or merely counted. A
// single-vertex component is non-trivial exactly when that vertex has a
// self-loop — the only kind of cycle a singleton can participate in.
//
// johnson and szwarcfiterlauer both use FindSCCs: johnson calls it on an
// induced subgraph each round to pick the component it searches next;
// szwarcfiterlauer calls it once on the whole graph to pick one start
// vertex per component.
package scc

package scc

import (
	"github.com/rs0h/niographs/core"
)

// FindSCCs returns every non-trivial strongly connected component of g: a
// singleton {v} is included only if (v,v) is an edge. Each component is
// returned as the set of its vertices, in no particular order.
func FindSCCs(g *core.Graph) ([][]string, error) {
	return run(g, false)
}

// CountSCCs is FindSCCs without the caller needing to discard the result.
func CountSCCs(g *core.Graph) (int, error) {
	sccs, err := run(g, false)
	if err != nil {
		return 0, err
	}

	return len(sccs), nil
}

// FindAllSCCs is FindSCCs but also includes trivial singleton components.
func FindAllSCCs(g *core.Graph) ([][]string, error) {
	return run(g, true)
}

// CountAllSCCs is FindAllSCCs without the caller needing to discard the result.
func CountAllSCCs(g *core.Graph) (int, error) {
	sccs, err := run(g, true)
	if err != nil {
		return 0, err
	}

	return len(sccs), nil
}

// tarjanState holds one DFS's worth of Tarjan bookkeeping. Kept separate
// from core.Graph so distinct queries never share mutable state.
type tarjanState struct {
	g *core.Graph

	index         int
	indexOf       map[string]int
	lowlink       map[string]int
	onStack       map[string]bool
	vStack        []string
	returnTrivial bool
	sccs          [][]string
}

// run drives Tarjan's algorithm over every vertex of g, seeded in
// Vertices() insertion order, and collects strongly connected components,
// including trivial singletons only when returnTrivial is set.
func run(g *core.Graph, returnTrivial bool) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	st := &tarjanState{
		g:             g,
		indexOf:       make(map[string]int),
		lowlink:       make(map[string]int),
		onStack:       make(map[string]bool),
		returnTrivial: returnTrivial,
	}

	for _, v := range g.Vertices() {
		if _, ok := st.indexOf[v]; !ok {
			st.strongConnect(v)
		}
	}

	return st.sccs, nil
}

// frame is one DFS call's worth of resumable state: the vertex it was
// entered for and where its neighbor scan left off.
type frame struct {
	v      string
	nbrs   []string
	cursor int
}

// strongConnect runs Tarjan's algorithm from start, rewritten from
// Graphs.java's recursive doStronglyConnect into an explicit frame stack:
// strongly connected components can span the whole graph, so the
// recursion depth here is not bounded the way a cycle backtracker's
// simple-path recursion is.
func (st *tarjanState) strongConnect(start string) {
	push := func(v string) {
		st.indexOf[v] = st.index
		st.lowlink[v] = st.index
		st.index++
		st.vStack = append(st.vStack, v)
		st.onStack[v] = true
	}

	push(start)
	work := []frame{{v: start, nbrs: mustNeighbors(st.g, start)}}

	for len(work) > 0 {
		top := &work[len(work)-1]

		if top.cursor < len(top.nbrs) {
			w := top.nbrs[top.cursor]
			top.cursor++

			if _, ok := st.indexOf[w]; !ok {
				push(w)
				work = append(work, frame{v: w, nbrs: mustNeighbors(st.g, w)})
			} else if st.onStack[w] {
				if st.indexOf[w] < st.lowlink[top.v] {
					st.lowlink[top.v] = st.indexOf[w]
				}
			}
			continue
		}

		v := top.v
		work = work[:len(work)-1]
		if len(work) > 0 {
			parent := &work[len(work)-1]
			if st.lowlink[v] < st.lowlink[parent.v] {
				st.lowlink[parent.v] = st.lowlink[v]
			}
		}

		if st.lowlink[v] != st.indexOf[v] {
			continue
		}

		var comp []string
		for {
			w := st.vStack[len(st.vStack)-1]
			st.vStack = st.vStack[:len(st.vStack)-1]
			st.onStack[w] = false
			comp = append(comp, w)
			if w == v {
				break
			}
		}

		if len(comp) == 1 && !st.returnTrivial && !st.g.HasEdge(comp[0], comp[0]) {
			continue
		}

		st.sccs = append(st.sccs, comp)
	}
}

func mustNeighbors(g *core.Graph, id string) []string {
	nbrs, err := g.OutNeighbors(id)
	if err != nil {
		panic("scc: " + err.Error())
	}

	return nbrs
}

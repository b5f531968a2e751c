package szwarcfiterlauer

import (
	"fmt"
	"sync"

	"github.com/rs0h/niographs/core"
	"github.com/rs0h/niographs/scc"
)

// SzwarcfiterLauer finds simple directed cycles of a bound graph via the
// Szwarcfiter–Lauer position/reach/removed DFS.
type SzwarcfiterLauer struct {
	mu sync.RWMutex
	g  *core.Graph
}

// NewSzwarcfiterLauer constructs a SzwarcfiterLauer cycle finder bound to g.
func NewSzwarcfiterLauer(g *core.Graph) (*SzwarcfiterLauer, error) {
	sl := &SzwarcfiterLauer{}
	if err := sl.SetGraph(g); err != nil {
		return nil, err
	}

	return sl, nil
}

// SetGraph rebinds the target graph. A nil graph fails with ErrGraphNil.
func (sl *SzwarcfiterLauer) SetGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	sl.mu.Lock()
	defer sl.mu.Unlock()
	sl.g = g

	return nil
}

// Graph returns the currently bound graph, or nil if none is bound.
func (sl *SzwarcfiterLauer) Graph() *core.Graph {
	sl.mu.RLock()
	defer sl.mu.RUnlock()

	return sl.g
}

// FindSimpleCycles returns every simple directed cycle of the bound graph.
func (sl *SzwarcfiterLauer) FindSimpleCycles() ([][]string, error) {
	g, err := sl.boundGraph()
	if err != nil {
		return nil, err
	}

	return findSimpleCycles(g)
}

// CountSimpleCycles is FindSimpleCycles().Len() without the caller having
// to hold onto the slice.
func (sl *SzwarcfiterLauer) CountSimpleCycles() (int, error) {
	cycles, err := sl.FindSimpleCycles()
	if err != nil {
		return 0, err
	}

	return len(cycles), nil
}

func (sl *SzwarcfiterLauer) boundGraph() (*core.Graph, error) {
	sl.mu.RLock()
	defer sl.mu.RUnlock()
	if sl.g == nil {
		return nil, ErrGraphNil
	}

	return sl.g, nil
}

// searchState holds one FindSimpleCycles call's worth of bookkeeping,
// shared across every start vertex's DFS (removed, bSets, marked, reach,
// and position all persist across starts — only the stack is start-local
// by construction, since it is always empty between calls to cycle).
type searchState struct {
	g *core.Graph
	n int

	marked   map[string]struct{}
	stack    []string
	position map[string]int
	reach    map[string]bool
	removed  map[string]map[string]struct{}
	bSets    map[string]map[string]struct{}

	cycles [][]string
}

// findSimpleCycles runs cycle(s, 0) for one start vertex per strongly
// connected component of g, the maximum in-degree vertex of each (ties
// broken by insertion order: the earlier-added vertex wins).
func findSimpleCycles(g *core.Graph) ([][]string, error) {
	sccs, err := scc.FindSCCs(g)
	if err != nil {
		return nil, err
	}

	inDegree := core.InDegrees(g)
	insertionPos := make(map[string]int)
	for i, v := range g.Vertices() {
		insertionPos[v] = i
	}

	st := &searchState{
		g:        g,
		n:        g.VertexCount(),
		marked:   make(map[string]struct{}),
		position: make(map[string]int),
		reach:    make(map[string]bool),
		removed:  make(map[string]map[string]struct{}),
		bSets:    make(map[string]map[string]struct{}),
	}

	for _, component := range sccs {
		start := component[0]
		maxInDegree := inDegree[start]
		for _, v := range component[1:] {
			d := inDegree[v]
			if d > maxInDegree || (d == maxInDegree && insertionPos[v] < insertionPos[start]) {
				maxInDegree = d
				start = v
			}
		}
		st.cycle(start, 0)
	}

	return st.cycles, nil
}

// cycle is the per-vertex DFS step. q records the shallowest active
// position this subtree may still close a cycle back to: it resets to the
// current depth t only the first time v is explored (reach[v] false),
// mirroring the original's "q = t" guard.
func (st *searchState) cycle(v string, q int) bool {
	st.marked[v] = struct{}{}
	st.stack = append(st.stack, v)
	t := len(st.stack)
	st.position[v] = t
	if !st.reach[v] {
		q = t
	}

	foundCycle := false
	for _, w := range neighbors(st.g, v) {
		if _, skip := st.removed[v][w]; skip {
			continue
		}

		if _, isMarked := st.marked[w]; !isMarked {
			if st.cycle(w, q) {
				foundCycle = true
			} else {
				st.noCycle(v, w)
			}
		} else if st.position[w] <= q {
			foundCycle = true
			from := st.position[w] - 1
			to := st.position[v]
			cycle := make([]string, to-from)
			copy(cycle, st.stack[from:to])
			st.cycles = append(st.cycles, cycle)
		} else {
			st.noCycle(v, w)
		}
	}

	st.stack = st.stack[:len(st.stack)-1]
	if foundCycle {
		st.unmark(v)
	}
	st.reach[v] = true
	st.position[v] = st.n

	return foundCycle
}

// noCycle(x,y) records that x's edge to y led nowhere this pass: y is
// pruned from x's future exploration (removed), and x is remembered as a
// dependent of y (bSet) so a later unmark(y) can retroactively revisit it.
func (st *searchState) noCycle(x, y string) {
	if st.bSets[y] == nil {
		st.bSets[y] = make(map[string]struct{})
	}
	st.bSets[y][x] = struct{}{}

	if st.removed[x] == nil {
		st.removed[x] = make(map[string]struct{})
	}
	st.removed[x][y] = struct{}{}
}

// unmark undoes noCycle's pruning for every vertex that deferred on x,
// now that x has been shown (via a cycle found higher in the recursion)
// to lead somewhere after all.
func (st *searchState) unmark(x string) {
	delete(st.marked, x)
	for y := range st.bSets[x] {
		delete(st.removed[y], x)
		if !st.g.HasEdge(y, x) {
			panic(fmt.Sprintf("szwarcfiterlauer: invariant violated: %q has no edge to %q despite a recorded dependency", y, x))
		}
		if _, isMarked := st.marked[y]; isMarked {
			st.unmark(y)
		}
	}
	st.bSets[x] = make(map[string]struct{})
}

func neighbors(g *core.Graph, id string) []string {
	nbrs, err := g.OutNeighbors(id)
	if err != nil {
		panic("szwarcfiterlauer: " + err.Error())
	}

	return nbrs
}

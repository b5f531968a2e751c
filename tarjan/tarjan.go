package tarjan

import (
	"sync"

	"github.com/rs0h/niographs/core"
)

// Tarjan finds simple directed cycles of a bound graph via the 1973
// point-stack backtracking algorithm. Grounded on TarjanSimpleCycles.java
// / Graphs.findSimpleCyclesT.
type Tarjan struct {
	mu sync.RWMutex
	g  *core.Graph
}

// NewTarjan constructs a Tarjan cycle finder bound to g.
func NewTarjan(g *core.Graph) (*Tarjan, error) {
	t := &Tarjan{}
	if err := t.SetGraph(g); err != nil {
		return nil, err
	}

	return t, nil
}

// SetGraph rebinds the target graph. A nil graph fails with ErrGraphNil.
func (t *Tarjan) SetGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.g = g

	return nil
}

// Graph returns the currently bound graph, or nil if none is bound.
func (t *Tarjan) Graph() *core.Graph {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.g
}

// FindSimpleCycles returns every simple directed cycle of the bound graph.
func (t *Tarjan) FindSimpleCycles() ([][]string, error) {
	g, err := t.boundGraph()
	if err != nil {
		return nil, err
	}

	return findSimpleCycles(g), nil
}

// CountSimpleCycles is FindSimpleCycles().Len() without the caller having
// to hold onto the slice.
func (t *Tarjan) CountSimpleCycles() (int, error) {
	cycles, err := t.FindSimpleCycles()
	if err != nil {
		return 0, err
	}

	return len(cycles), nil
}

func (t *Tarjan) boundGraph() (*core.Graph, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.g == nil {
		return nil, ErrGraphNil
	}

	return t.g, nil
}

// searchState holds one FindSimpleCycles call's worth of bookkeeping.
// removed persists across start vertices (it is what bounds the
// algorithm's complexity to V*E*C); marked/markedStack/pointStack are
// drained at the end of every start vertex's search.
type searchState struct {
	g       *core.Graph
	indexOf map[string]int

	marked      map[string]struct{}
	markedStack []string
	pointStack  []string
	removed     map[string]map[string]struct{}

	cycles [][]string
}

// findSimpleCycles runs backtrack from every vertex, in index order.
func findSimpleCycles(g *core.Graph) [][]string {
	indexOf, order := core.Number(g)

	st := &searchState{
		g:       g,
		indexOf: indexOf,
		marked:  make(map[string]struct{}),
		removed: make(map[string]map[string]struct{}),
	}

	for _, s := range order {
		st.backtrack(s, s)

		st.markedStack = st.markedStack[:0]
		for v := range st.marked {
			delete(st.marked, v)
		}
	}

	return st.cycles
}

// backtrack extends the current path from v, searching for a way back to
// start. It recurses only along the current simple path, so its depth is
// bounded by |V| regardless of the graph's size — unlike scc's component
// search, this is kept as native Go recursion.
func (st *searchState) backtrack(start, v string) bool {
	st.pointStack = append(st.pointStack, v)
	st.marked[v] = struct{}{}
	st.markedStack = append(st.markedStack, v)

	foundCycle := false
	for _, w := range neighbors(st.g, v) {
		if _, skip := st.removed[v][w]; skip {
			continue
		}
		if st.indexOf[w] < st.indexOf[start] {
			if st.removed[v] == nil {
				st.removed[v] = make(map[string]struct{})
			}
			st.removed[v][w] = struct{}{}
			continue
		}
		if w == start {
			cycle := make([]string, len(st.pointStack))
			copy(cycle, st.pointStack)
			st.cycles = append(st.cycles, cycle)
			foundCycle = true
			continue
		}
		if _, isMarked := st.marked[w]; !isMarked {
			if st.backtrack(start, w) {
				foundCycle = true
			}
		}
	}

	if foundCycle {
		for {
			top := st.markedStack[len(st.markedStack)-1]
			st.markedStack = st.markedStack[:len(st.markedStack)-1]
			delete(st.marked, top)
			if top == v {
				break
			}
		}
	}

	st.pointStack = st.pointStack[:len(st.pointStack)-1]

	return foundCycle
}

func neighbors(g *core.Graph, id string) []string {
	nbrs, err := g.OutNeighbors(id)
	if err != nil {
		panic("tarjan: " + err.Error())
	}

	return nbrs
}

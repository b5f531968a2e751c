package johnson

import (
	"sync"

	"github.com/rs0h/niographs/core"
	"github.com/rs0h/niographs/scc"
)

// Johnson finds simple directed cycles of a bound graph via Johnson's
// SCC-restricted block/unblock algorithm.
type Johnson struct {
	mu sync.RWMutex
	g  *core.Graph
}

// NewJohnson constructs a Johnson cycle finder bound to g.
func NewJohnson(g *core.Graph) (*Johnson, error) {
	j := &Johnson{}
	if err := j.SetGraph(g); err != nil {
		return nil, err
	}

	return j, nil
}

// SetGraph rebinds the target graph. A nil graph fails with ErrGraphNil.
func (j *Johnson) SetGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	j.mu.Lock()
	defer j.mu.Unlock()
	j.g = g

	return nil
}

// Graph returns the currently bound graph, or nil if none is bound.
func (j *Johnson) Graph() *core.Graph {
	j.mu.RLock()
	defer j.mu.RUnlock()

	return j.g
}

// FindSimpleCycles returns every simple directed cycle of the bound graph.
func (j *Johnson) FindSimpleCycles() ([][]string, error) {
	g, err := j.boundGraph()
	if err != nil {
		return nil, err
	}

	return findSimpleCycles(g)
}

// CountSimpleCycles is FindSimpleCycles().Len() without the caller having
// to hold onto the slice.
func (j *Johnson) CountSimpleCycles() (int, error) {
	cycles, err := j.FindSimpleCycles()
	if err != nil {
		return 0, err
	}

	return len(cycles), nil
}

func (j *Johnson) boundGraph() (*core.Graph, error) {
	j.mu.RLock()
	defer j.mu.RUnlock()
	if j.g == nil {
		return nil, ErrGraphNil
	}

	return j.g, nil
}

// findSimpleCycles drives the outer startIndex loop: at each round, the
// induced subgraph on vertices with index >= startIndex is split into
// strongly connected components; the component containing the smallest
// index present becomes the next search scope. When no non-trivial
// component remains, no cycle can touch any remaining vertex, and the
// whole search terminates (not merely this round).
func findSimpleCycles(g *core.Graph) ([][]string, error) {
	indexOf, order := core.Number(g)

	blocked := make(map[string]struct{})
	bSets := make(map[string]map[string]struct{}, len(order))
	for _, v := range order {
		bSets[v] = make(map[string]struct{})
	}

	var cycles [][]string

	for start := 0; start < len(order); {
		induced := inducedSubgraph(g, order[start:])

		sccs, err := scc.FindSCCs(induced)
		if err != nil {
			return nil, err
		}

		minIdx := -1
		var component []string
		for _, comp := range sccs {
			for _, v := range comp {
				if minIdx == -1 || indexOf[v] < minIdx {
					minIdx = indexOf[v]
					component = comp
				}
			}
		}
		if component == nil {
			break
		}

		for _, v := range component {
			delete(blocked, v)
			bSets[v] = make(map[string]struct{})
		}

		scg := inducedSubgraph(g, component)
		startVertex := order[minIdx]
		circuit(scg, startVertex, startVertex, blocked, bSets, nil, &cycles)

		start = minIdx + 1
	}

	return cycles, nil
}

// circuit searches scg for cycles back to start, recursing only along the
// current path within scg (bounded by |component|, kept as native
// recursion). stack accumulates the path for cycle emission.
func circuit(scg *core.Graph, start, v string, blocked map[string]struct{}, bSets map[string]map[string]struct{}, stack []string, cycles *[][]string) bool {
	stack = append(stack, v)
	blocked[v] = struct{}{}

	foundCycle := false
	for _, w := range neighbors(scg, v) {
		if w == start {
			cycle := make([]string, len(stack))
			copy(cycle, stack)
			*cycles = append(*cycles, cycle)
			foundCycle = true
			continue
		}
		if _, isBlocked := blocked[w]; !isBlocked {
			if circuit(scg, start, w, blocked, bSets, stack, cycles) {
				foundCycle = true
			}
		}
	}

	if foundCycle {
		unblock(v, blocked, bSets)
	} else {
		for _, w := range neighbors(scg, v) {
			bSets[w][v] = struct{}{}
		}
	}

	return foundCycle
}

// unblock frees v to be revisited and cascades to every vertex whose
// earlier exploration was deferred pending v's unblock.
func unblock(v string, blocked map[string]struct{}, bSets map[string]map[string]struct{}) {
	delete(blocked, v)
	for w := range bSets[v] {
		delete(bSets[v], w)
		if _, isBlocked := blocked[w]; isBlocked {
			unblock(w, blocked, bSets)
		}
	}
}

// inducedSubgraph builds a new directed graph containing exactly vertices
// and the edges of g between pairs both present in vertices.
func inducedSubgraph(g *core.Graph, vertices []string) *core.Graph {
	present := make(map[string]struct{}, len(vertices))
	for _, v := range vertices {
		present[v] = struct{}{}
	}

	sub := core.NewGraph(core.WithDirected(true))
	for _, v := range vertices {
		_ = sub.AddVertex(v)
	}
	for _, v := range vertices {
		for _, w := range neighbors(g, v) {
			if _, ok := present[w]; ok {
				_ = sub.AddEdge(v, w)
			}
		}
	}

	return sub
}

func neighbors(g *core.Graph, id string) []string {
	nbrs, err := g.OutNeighbors(id)
	if err != nil {
		panic("johnson: " + err.Error())
	}

	return nbrs
}

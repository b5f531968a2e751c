package tiernan

import (
	"sync"

	"github.com/rs0h/niographs/core"
)

// Tiernan finds simple directed cycles of a bound graph, one call at a
// time, via path-extension backtracking. Grounded on
// TiernanSimpleCycles.java / Graphs.findSimpleCyclesN, restructured from
// that source's EC1..EC6 state-machine labels into a flatter loop.
type Tiernan struct {
	mu sync.RWMutex
	g  *core.Graph
}

// NewTiernan constructs a Tiernan bound to g.
func NewTiernan(g *core.Graph) (*Tiernan, error) {
	t := &Tiernan{}
	if err := t.SetGraph(g); err != nil {
		return nil, err
	}

	return t, nil
}

// SetGraph rebinds the target graph. A nil graph fails with ErrGraphNil.
func (t *Tiernan) SetGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.g = g

	return nil
}

// Graph returns the currently bound graph, or nil if none is bound.
func (t *Tiernan) Graph() *core.Graph {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.g
}

// FindSimpleCycles returns every simple directed cycle of the bound graph.
func (t *Tiernan) FindSimpleCycles() ([][]string, error) {
	g, err := t.boundGraph()
	if err != nil {
		return nil, err
	}

	return findSimpleCycles(g), nil
}

// CountSimpleCycles is FindSimpleCycles().Len() without the caller having
// to hold onto the slice.
func (t *Tiernan) CountSimpleCycles() (int, error) {
	cycles, err := t.FindSimpleCycles()
	if err != nil {
		return 0, err
	}

	return len(cycles), nil
}

func (t *Tiernan) boundGraph() (*core.Graph, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.g == nil {
		return nil, ErrGraphNil
	}

	return t.g, nil
}

// findSimpleCycles runs the path-extension backtracking search from every
// start vertex, in index order.
//
// For a start s, path begins as [s] and is greedily extended by any
// out-neighbor n of the path's current end with index(n) > index(s), n not
// already on the path, and n not blocked for the current end. When no such
// neighbor exists, the path's end is checked for an edge back to s (the
// cycle close), then popped off ("closed") into its predecessor's blocked
// set so the same dead end is not retried from that predecessor. When the
// path is back down to just s, the search moves to the next start vertex
// and every blocked set is cleared — unlike tarjan's removed sets, these
// do not persist across start vertices.
func findSimpleCycles(g *core.Graph) [][]string {
	indexOf, order := core.Number(g)

	var cycles [][]string
	blocked := make(map[string]map[string]struct{})

	for _, s := range order {
		path := []string{s}
		pathSet := map[string]struct{}{s: {}}

		for {
			end := path[len(path)-1]
			extended := true
			for extended {
				extended = false
				for _, n := range neighbors(g, end) {
					if indexOf[n] <= indexOf[s] {
						continue
					}
					if _, onPath := pathSet[n]; onPath {
						continue
					}
					if _, isBlocked := blocked[end][n]; isBlocked {
						continue
					}
					path = append(path, n)
					pathSet[n] = struct{}{}
					end = n
					extended = true
					break
				}
			}

			if g.HasEdge(end, s) {
				cycle := make([]string, len(path))
				copy(cycle, path)
				cycles = append(cycles, cycle)
			}

			if len(path) == 1 {
				break
			}

			delete(blocked, end)
			path = path[:len(path)-1]
			delete(pathSet, end)
			pred := path[len(path)-1]
			if blocked[pred] == nil {
				blocked[pred] = make(map[string]struct{})
			}
			blocked[pred][end] = struct{}{}
		}

		blocked = make(map[string]map[string]struct{})
	}

	return cycles
}

func neighbors(g *core.Graph, id string) []string {
	nbrs, err := g.OutNeighbors(id)
	if err != nil {
		panic("tiernan: " + err.Error())
	}

	return nbrs
}

package paton

import (
	"sync"

	"github.com/rs0h/niographs/core"
)

// PatonCycleBase finds a fundamental cycle base of a bound undirected
// graph: a LIFO spanning-tree walk (see package doc).
type PatonCycleBase struct {
	mu sync.RWMutex
	g  *core.Graph
}

// NewCycleBase constructs a PatonCycleBase bound to g.
func NewCycleBase(g *core.Graph) (*PatonCycleBase, error) {
	p := &PatonCycleBase{}
	if err := p.SetGraph(g); err != nil {
		return nil, err
	}

	return p, nil
}

// SetGraph rebinds the target graph. A nil graph fails with ErrGraphNil.
func (p *PatonCycleBase) SetGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.g = g

	return nil
}

// Graph returns the currently bound graph, or nil if none is bound.
func (p *PatonCycleBase) Graph() *core.Graph {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.g
}

// FindSimpleCycles returns the fundamental cycle base: exactly
// |E|-|V|+(#connected components) cycles.
func (p *PatonCycleBase) FindSimpleCycles() ([][]string, error) {
	g, err := p.boundGraph()
	if err != nil {
		return nil, err
	}

	return walk(g, false), nil
}

// CountSimpleCycles is FindSimpleCycles().Len() without the caller having
// to hold onto the slice.
func (p *PatonCycleBase) CountSimpleCycles() (int, error) {
	cycles, err := p.FindSimpleCycles()
	if err != nil {
		return 0, err
	}

	return len(cycles), nil
}

func (p *PatonCycleBase) boundGraph() (*core.Graph, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.g == nil {
		return nil, ErrGraphNil
	}

	return p.g, nil
}

// PatonSimpleCycles finds every fundamental cycle relative to a BFS
// spanning tree of a bound undirected graph: a FIFO spanning-tree walk
// (see package doc). It returns as many cycles as PatonCycleBase, taken
// from a different spanning tree, and is not the complete set of simple
// cycles of the graph.
type PatonSimpleCycles struct {
	mu sync.RWMutex
	g  *core.Graph
}

// NewSimpleCycles constructs a PatonSimpleCycles bound to g.
func NewSimpleCycles(g *core.Graph) (*PatonSimpleCycles, error) {
	p := &PatonSimpleCycles{}
	if err := p.SetGraph(g); err != nil {
		return nil, err
	}

	return p, nil
}

// SetGraph rebinds the target graph. A nil graph fails with ErrGraphNil.
func (p *PatonSimpleCycles) SetGraph(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.g = g

	return nil
}

// Graph returns the currently bound graph, or nil if none is bound.
func (p *PatonSimpleCycles) Graph() *core.Graph {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return p.g
}

// FindSimpleCycles returns every fundamental cycle relative to the walk's
// BFS spanning tree.
func (p *PatonSimpleCycles) FindSimpleCycles() ([][]string, error) {
	g, err := p.boundGraph()
	if err != nil {
		return nil, err
	}

	return walk(g, true), nil
}

// CountSimpleCycles is FindSimpleCycles().Len() without the caller having
// to hold onto the slice.
func (p *PatonSimpleCycles) CountSimpleCycles() (int, error) {
	cycles, err := p.FindSimpleCycles()
	if err != nil {
		return 0, err
	}

	return len(cycles), nil
}

func (p *PatonSimpleCycles) boundGraph() (*core.Graph, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.g == nil {
		return nil, ErrGraphNil
	}

	return p.g, nil
}

// walk runs Paton's spanning-tree walk over every connected component of
// g, in vertex insertion order. fifo selects the container discipline:
// false pops a stack (LIFO, PatonCycleBase), true pops a queue (FIFO,
// PatonSimpleCycles).
func walk(g *core.Graph, fifo bool) [][]string {
	parent := make(map[string]string)
	used := make(map[string]map[string]struct{})
	var cycles [][]string

	for _, root := range g.Vertices() {
		if _, visited := parent[root]; visited {
			continue
		}

		parent[root] = root
		used[root] = make(map[string]struct{})
		queue := []string{root}

		for len(queue) > 0 {
			var current string
			if fifo {
				current = queue[0]
				queue = queue[1:]
			} else {
				current = queue[len(queue)-1]
				queue = queue[:len(queue)-1]
			}
			currentUsed := used[current]

			for _, neighbor := range neighbors(g, current) {
				if _, visited := parent[neighbor]; !visited {
					parent[neighbor] = current
					used[neighbor] = map[string]struct{}{current: {}}
					queue = append(queue, neighbor)
					continue
				}
				if neighbor == current {
					cycles = append(cycles, []string{current})
					continue
				}
				if _, onCurrentPath := currentUsed[neighbor]; onCurrentPath {
					continue
				}

				neighborUsed := used[neighbor]
				// A BFS chord closes through the endpoints' lowest common ancestor.
				stop, up := neighborUsed, []string(nil)
				if fifo {
					stop = make(map[string]struct{})
					for a := neighbor; parent[a] != a; a = parent[a] {
						up = append(up, parent[a])
						stop[parent[a]] = struct{}{}
					}
				}
				cycle := []string{neighbor, current}
				p := parent[current]
				for {
					if _, isAncestor := stop[p]; isAncestor {
						break
					}
					cycle = append(cycle, p)
					p = parent[p]
				}
				cycle = append(cycle, p)
				for len(up) > 0 && up[len(up)-1] != p {
					up = up[:len(up)-1]
				}
				for i := len(up) - 2; i >= 0; i-- {
					cycle = append(cycle, up[i])
				}
				cycles = append(cycles, cycle)
				neighborUsed[current] = struct{}{}
			}
		}
	}

	return cycles
}

func neighbors(g *core.Graph, id string) []string {
	nbrs, err := g.Neighbors(id)
	if err != nil {
		panic("paton: " + err.Error())
	}

	return nbrs
}

package tiernan_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rs0h/niographs/core"
	"github.com/rs0h/niographs/tiernan"
)

func TestNewTiernan_NilGraph(t *testing.T) {
	_, err := tiernan.NewTiernan(nil)
	assert.ErrorIs(t, err, tiernan.ErrGraphNil)
}

func TestSetGraph_Nil(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	ti, err := tiernan.NewTiernan(g)
	assert.NoError(t, err)

	err = ti.SetGraph(nil)
	assert.ErrorIs(t, err, tiernan.ErrGraphNil)
	assert.Same(t, g, ti.Graph())
}

func TestFindSimpleCycles_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	assert.NoError(t, g.AddEdge("0", "0"))

	ti, err := tiernan.NewTiernan(g)
	assert.NoError(t, err)

	cycles, err := ti.FindSimpleCycles()
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"0"}}, cycles)
}

// buildD1 is spec's two disjoint 2-cycles over a 9-vertex graph.
func buildD1(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	edges := [][2]int{
		{0, 1}, {1, 0}, {1, 2}, {2, 3}, {3, 2},
		{4, 5}, {5, 4}, {5, 6}, {6, 7}, {7, 6},
	}
	for _, e := range edges {
		assert.NoError(t, g.AddEdge(strconv.Itoa(e[0]), strconv.Itoa(e[1])))
	}
	assert.NoError(t, g.AddVertex("8"))

	return g
}

func TestFindSimpleCycles_D1(t *testing.T) {
	g := buildD1(t)
	ti, err := tiernan.NewTiernan(g)
	assert.NoError(t, err)

	count, err := ti.CountSimpleCycles()
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

// buildCompleteSelfLoops is spec's D2: a complete directed graph on n
// vertices where every ordered pair, including self-loops, is an edge.
func buildCompleteSelfLoops(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.NoError(t, g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)))
		}
	}

	return g
}

func TestCountSimpleCycles_CompleteSelfLoops(t *testing.T) {
	expected := []int{1, 3, 8, 24, 89, 415, 2372, 16072, 125673}
	for n := 1; n <= len(expected); n++ {
		g := buildCompleteSelfLoops(t, n)
		ti, err := tiernan.NewTiernan(g)
		assert.NoError(t, err)

		count, err := ti.CountSimpleCycles()
		assert.NoError(t, err)
		assert.Equal(t, expected[n-1], count, "n=%d", n)
	}
}

func TestFindSimpleCycles_NoRotationDuplicates(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	assert.NoError(t, g.AddEdge("A", "B"))
	assert.NoError(t, g.AddEdge("B", "C"))
	assert.NoError(t, g.AddEdge("C", "A"))

	ti, err := tiernan.NewTiernan(g)
	assert.NoError(t, err)

	cycles, err := ti.FindSimpleCycles()
	assert.NoError(t, err)
	assert.Len(t, cycles, 1)
	assert.Equal(t, []string{"A", "B", "C"}, cycles[0])
}

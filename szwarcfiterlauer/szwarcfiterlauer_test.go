package szwarcfiterlauer_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rs0h/niographs/core"
	"github.com/rs0h/niographs/szwarcfiterlauer"
)

func TestNewSzwarcfiterLauer_NilGraph(t *testing.T) {
	_, err := szwarcfiterlauer.NewSzwarcfiterLauer(nil)
	assert.ErrorIs(t, err, szwarcfiterlauer.ErrGraphNil)
}

func TestSetGraph_Nil(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	sl, err := szwarcfiterlauer.NewSzwarcfiterLauer(g)
	assert.NoError(t, err)

	assert.ErrorIs(t, sl.SetGraph(nil), szwarcfiterlauer.ErrGraphNil)
	assert.Same(t, g, sl.Graph())
}

func TestFindSimpleCycles_SelfLoop(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	assert.NoError(t, g.AddEdge("0", "0"))

	sl, err := szwarcfiterlauer.NewSzwarcfiterLauer(g)
	assert.NoError(t, err)

	cycles, err := sl.FindSimpleCycles()
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"0"}}, cycles)
}

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

	return g
}

func TestCountSimpleCycles_D1(t *testing.T) {
	g := buildD1(t)
	sl, err := szwarcfiterlauer.NewSzwarcfiterLauer(g)
	assert.NoError(t, err)

	count, err := sl.CountSimpleCycles()
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

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
		sl, err := szwarcfiterlauer.NewSzwarcfiterLauer(g)
		assert.NoError(t, err)

		count, err := sl.CountSimpleCycles()
		assert.NoError(t, err)
		assert.Equal(t, expected[n-1], count, "n=%d", n)
	}
}

// buildD3 is spec's D3: 30 vertices, every vertex has outgoing edges to
// {0,4,8,12,16,20,24,28}, plus D1's extra edges over the first 8 vertices.
// Grounded on GraphsTest.java's 30-vertex fixture; expected count 203961.
func buildD3(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph(core.WithDirected(true))
	const dimension = 30
	for i := 0; i < dimension; i++ {
		for j := 0; j < dimension; j++ {
			if j%4 == 0 {
				assert.NoError(t, g.AddEdge(strconv.Itoa(i), strconv.Itoa(j)))
			}
		}
	}
	edges := [][2]int{
		{0, 1}, {1, 0}, {1, 2}, {2, 3}, {3, 2},
		{4, 5}, {5, 4}, {5, 6}, {6, 7}, {7, 6},
	}
	for _, e := range edges {
		assert.NoError(t, g.AddEdge(strconv.Itoa(e[0]), strconv.Itoa(e[1])))
	}

	return g
}

func TestCountSimpleCycles_D3(t *testing.T) {
	g := buildD3(t)
	sl, err := szwarcfiterlauer.NewSzwarcfiterLauer(g)
	assert.NoError(t, err)

	count, err := sl.CountSimpleCycles()
	assert.NoError(t, err)
	assert.Equal(t, 203961, count)
}

func TestFindSimpleCycles_NoRotationDuplicates(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	assert.NoError(t, g.AddEdge("A", "B"))
	assert.NoError(t, g.AddEdge("B", "C"))
	assert.NoError(t, g.AddEdge("C", "A"))

	sl, err := szwarcfiterlauer.NewSzwarcfiterLauer(g)
	assert.NoError(t, err)

	cycles, err := sl.FindSimpleCycles()
	assert.NoError(t, err)
	assert.Len(t, cycles, 1)
	assert.Equal(t, []string{"A", "B", "C"}, cycles[0])
}

func TestFindSimpleCycles_DAGHasNone(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	assert.NoError(t, g.AddEdge("A", "B"))
	assert.NoError(t, g.AddEdge("B", "C"))
	assert.NoError(t, g.AddEdge("A", "C"))

	sl, err := szwarcfiterlauer.NewSzwarcfiterLauer(g)
	assert.NoError(t, err)

	cycles, err := sl.FindSimpleCycles()
	assert.NoError(t, err)
	assert.Empty(t, cycles)
}

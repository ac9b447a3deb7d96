package maxcut

import (
	"testing"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/stretchr/testify/require"
)

// fourCycle is 0-1-2-3-0 with heavy edges (0,1) and (2,3). It is bipartite, so the best cut
// {0,2} | {1,3} takes every edge: 22.
func fourCycle(t *testing.T) *datastructure.Graph {
	t.Helper()
	g, err := datastructure.NewGraphFromEdges(4, []datastructure.Edge{
		datastructure.NewEdge(0, 1, 10),
		datastructure.NewEdge(1, 2, 1),
		datastructure.NewEdge(2, 3, 10),
		datastructure.NewEdge(3, 0, 1),
	})
	require.NoError(t, err)
	return g
}

// randomGraph draws a G(n, p) graph with weights in [1, maxWeight].
func randomGraph(t *testing.T, n int, p float64, maxWeight int, seed int64) *datastructure.Graph {
	t.Helper()
	rng := NewRand(seed)
	g, err := datastructure.NewGraph(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() < p {
				w := int64(1 + rng.Intn(maxWeight))
				require.NoError(t, g.AddEdge(datastructure.Index(u), datastructure.Index(v), w))
			}
		}
	}
	return g
}

// completeGraph has every edge with weight 1.
func completeGraph(t *testing.T, n int) *datastructure.Graph {
	t.Helper()
	g, err := datastructure.NewGraph(n)
	require.NoError(t, err)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			require.NoError(t, g.AddEdge(datastructure.Index(u), datastructure.Index(v), 1))
		}
	}
	return g
}

func newTestSolver(t *testing.T, g *datastructure.Graph, seed int64) *Solver {
	t.Helper()
	s, err := NewSeededSolver(g, seed, nil)
	require.NoError(t, err)
	return s
}

// isLocalOptimum reports whether no single flip increases the cut.
func isLocalOptimum(g *datastructure.Graph, a datastructure.Assignment) bool {
	for i := 0; i < g.NumberOfVertices(); i++ {
		u := datastructure.Index(i)
		var same, diff int64
		for _, e := range g.GetOutEdges(u) {
			if a.Side(e.GetHead()) == a.Side(u) {
				same += e.GetWeight()
			} else {
				diff += e.GetWeight()
			}
		}
		if same > diff {
			return false
		}
	}
	return true
}

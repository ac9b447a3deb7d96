package maxcut

import (
	"github.com/lintang-b-s/grasp-maxcut/pkg"
	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

// seedAssignment places the endpoints of the heaviest edge on opposite sides: its tail on side B,
// its head on side A. It returns the assignment and the placed flags.
func seedAssignment(g *datastructure.Graph) (datastructure.Assignment, []bool) {
	n := g.NumberOfVertices()
	x := datastructure.NewAssignment(n)
	placed := make([]bool, n)

	heaviest := heaviestEdge(g)
	x.Set(heaviest.GetFrom(), pkg.SIDE_B)
	x.Set(heaviest.GetTo(), pkg.SIDE_A)
	placed[heaviest.GetFrom()] = true
	placed[heaviest.GetTo()] = true
	return x, placed
}

// Greedy seeds the heaviest edge across the cut, then visits the remaining vertices in index
// order and puts each on the side that cuts more weight towards the already placed neighbors.
// Ties go to side A. Among equally heavy edges the first one in insertion order is the seed;
// callers should not rely on that choice.
func (s *Solver) Greedy() datastructure.Assignment {
	g := s.graph
	if g.IsEmpty() {
		return s.emptyResult()
	}

	x, placed := seedAssignment(g)
	isPlaced := func(v datastructure.Index) bool { return placed[v] }

	for i := 0; i < g.NumberOfVertices(); i++ {
		u := datastructure.Index(i)
		if placed[u] {
			continue
		}
		// on side B, u cuts the edges to side A neighbors and vice versa
		sideA, sideB := g.SideWeights(u, x, isPlaced)
		if sideA > sideB {
			x.Set(u, pkg.SIDE_B)
		} else {
			x.Set(u, pkg.SIDE_A)
		}
		placed[u] = true
	}
	return x
}

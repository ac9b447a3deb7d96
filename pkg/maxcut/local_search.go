package maxcut

import (
	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"go.uber.org/zap"
)

// LocalSearch climbs from initial to a 1-flip local optimum. Each sweep visits the vertices in
// index order and flips a vertex when the weight to its own side exceeds the weight to the other
// side; a flip is visible to the rest of the sweep. Sweeps repeat until one makes no flip.
// Every flip raises the cut weight, so the search terminates. initial is not modified.
func (s *Solver) LocalSearch(initial datastructure.Assignment) (LocalSearchResult, error) {
	if err := s.graph.ValidateAssignment(initial); err != nil {
		return LocalSearchResult{}, err
	}
	return s.localSearch(initial), nil
}

// localSearch expects an assignment of the graph's size.
func (s *Solver) localSearch(initial datastructure.Assignment) LocalSearchResult {
	g := s.graph
	x := initial.Clone()
	if g.IsEmpty() {
		return LocalSearchResult{Assignment: x}
	}

	startWeight := g.CutWeight(x)
	weight := startWeight
	sweeps, flips := 0, 0

	for improved := true; improved; {
		improved = false
		for i := 0; i < g.NumberOfVertices(); i++ {
			u := datastructure.Index(i)
			var same, diff int64
			for _, e := range g.GetOutEdges(u) {
				if x.Side(e.GetHead()) == x.Side(u) {
					same += e.GetWeight()
				} else {
					diff += e.GetWeight()
				}
			}

			if same > diff {
				x.Flip(u)
				weight += same - diff
				flips++
				improved = true
			}
		}
		sweeps++
	}

	s.logger.Debug("local search converged",
		zap.Int64("initial_weight", startWeight),
		zap.Int64("weight", weight),
		zap.Int("sweeps", sweeps),
		zap.Int("flips", flips),
	)
	return LocalSearchResult{
		Assignment:    x,
		Weight:        weight,
		InitialWeight: startWeight,
		Sweeps:        sweeps,
		Flips:         flips,
	}
}

package maxcut

import (
	"fmt"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

// RandomAssignment puts every vertex on a side chosen by a fair coin flip.
func (s *Solver) RandomAssignment() datastructure.Assignment {
	a := datastructure.NewAssignment(s.graph.NumberOfVertices())
	for i := range a {
		a[i] = s.rng.Intn(2) == 1
	}
	return a
}

// Randomized returns the mean cut weight of trials independent coin-flip assignments.
// It is a baseline to compare the other heuristics against, not an optimizer.
func (s *Solver) Randomized(trials int) (float64, error) {
	if trials <= 0 {
		return 0, fmt.Errorf("%w: trials must be > 0 (got %d)", ErrInvalidConfig, trials)
	}
	if s.graph.IsEmpty() {
		return 0, nil
	}

	var total int64
	for t := 0; t < trials; t++ {
		total += s.graph.CutWeight(s.RandomAssignment())
	}
	return float64(total) / float64(trials), nil
}

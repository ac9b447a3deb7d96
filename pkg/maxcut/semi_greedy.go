package maxcut

import (
	"github.com/lintang-b-s/grasp-maxcut/pkg"
	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

// candidate is an unassigned vertex with the weight towards its assigned neighbors on each side.
// Unassigned neighbors contribute nothing.
type candidate struct {
	vertex datastructure.Index
	sideA  int64
	sideB  int64
}

func (c candidate) score() int64 {
	return max(c.sideA, c.sideB)
}

// side is the placement that cuts the heavier side; ties go to side B.
func (c candidate) side() bool {
	if c.sideB > c.sideA {
		return pkg.SIDE_A
	}
	return pkg.SIDE_B
}

// round is one construction step: the candidates in vertex order, the score range and the
// best candidate (first one on ties).
type round struct {
	candidates []candidate
	minScore   int64
	maxScore   int64
	best       candidate
}

func newRound(candidates []candidate) round {
	r := round{candidates: candidates}
	for i, c := range candidates {
		s := c.score()
		if i == 0 || s < r.minScore {
			r.minScore = s
		}
		if i == 0 || s > r.maxScore {
			r.maxScore = s
			r.best = c
		}
	}
	return r
}

// threshold is mu = w_min + alpha * (w_max - w_min).
func (r round) threshold(alpha float64) float64 {
	return float64(r.minScore) + alpha*float64(r.maxScore-r.minScore)
}

// restrictedCandidateList returns the candidates scoring at least mu.
func (r round) restrictedCandidateList(mu float64) []candidate {
	rcl := make([]candidate, 0, len(r.candidates))
	for _, c := range r.candidates {
		if float64(c.score()) >= mu {
			rcl = append(rcl, c)
		}
	}
	return rcl
}

// pick draws uniformly from the RCL for mu. With an empty RCL it falls back to the best
// candidate recorded during the scan.
func (r round) pick(mu float64, intn func(int) int) candidate {
	rcl := r.restrictedCandidateList(mu)
	if len(rcl) == 0 {
		return r.best
	}
	return rcl[intn(len(rcl))]
}

// SemiGreedy is the GRASP construction. It seeds like Greedy, then repeatedly scores every
// unassigned vertex against its assigned neighbors, keeps those scoring at least
// w_min + alpha*(w_max-w_min) and places one of them, drawn uniformly, on the side that cuts more.
// alpha = 1 is close to greedy, alpha = 0 close to uniform random order.
func (s *Solver) SemiGreedy(alpha float64) (datastructure.Assignment, error) {
	if err := validateAlpha(alpha); err != nil {
		return nil, err
	}
	return s.semiGreedy(alpha), nil
}

// semiGreedy expects alpha in [0,1].
func (s *Solver) semiGreedy(alpha float64) datastructure.Assignment {
	g := s.graph
	if g.IsEmpty() {
		return s.emptyResult()
	}

	n := g.NumberOfVertices()
	x, assigned := seedAssignment(g)

	// weight from every vertex to its assigned neighbors, kept up to date on each placement
	sideA := make([]int64, n)
	sideB := make([]int64, n)
	place := func(u datastructure.Index) {
		assigned[u] = true
		for _, e := range g.GetOutEdges(u) {
			if x.Side(u) == pkg.SIDE_B {
				sideB[e.GetHead()] += e.GetWeight()
			} else {
				sideA[e.GetHead()] += e.GetWeight()
			}
		}
	}
	for u := 0; u < n; u++ {
		if assigned[u] {
			place(datastructure.Index(u))
		}
	}

	candidates := make([]candidate, 0, n)
	for left := n - 2; left > 0; left-- {
		candidates = candidates[:0]
		for u := 0; u < n; u++ {
			if assigned[u] {
				continue
			}
			candidates = append(candidates, candidate{
				vertex: datastructure.Index(u),
				sideA:  sideA[u],
				sideB:  sideB[u],
			})
		}

		r := newRound(candidates)
		chosen := r.pick(r.threshold(alpha), s.rng.Intn)

		x.Set(chosen.vertex, chosen.side())
		place(chosen.vertex)
	}
	return x
}

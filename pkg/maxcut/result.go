package maxcut

import (
	"time"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

type LocalSearchResult struct {
	Assignment    datastructure.Assignment
	Weight        int64
	InitialWeight int64
	// Sweeps counts full passes over the vertices, including the final pass without flips.
	Sweeps int
	Flips  int
}

// Incumbent is the best assignment seen so far by a GRASP run.
type Incumbent struct {
	Assignment datastructure.Assignment
	Weight     int64
	// Iteration is the 1-based restart that produced the incumbent, 0 while none exists.
	Iteration int
}

func (inc Incumbent) Found() bool {
	return inc.Iteration > 0
}

type Stats struct {
	Iterations   int
	Sweeps       int
	LastSweeps   int
	Improvements int
}

type Result struct {
	Assignment    datastructure.Assignment
	Weight        int64
	BestIteration int
	Stats         Stats
	Duration      time.Duration
}

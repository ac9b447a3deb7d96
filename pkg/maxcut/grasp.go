package maxcut

import (
	"context"
	"time"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"go.uber.org/zap"
)

// Grasp repeats semi-greedy construction followed by local search for a fixed number of
// iterations and keeps the heaviest cut. Iteration i draws from its own stream derived from
// (Seed, i), so its outcome does not depend on the other iterations.
type Grasp struct {
	graph  *datastructure.Graph
	cfg    Config
	logger *zap.Logger
}

func NewGrasp(graph *datastructure.Graph, cfg Config, logger *zap.Logger) (*Grasp, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Grasp{graph: graph, cfg: cfg, logger: logger}, nil
}

// Start returns a run positioned before the first iteration.
func (gr *Grasp) Start() *Run {
	return &Run{grasp: gr}
}

// Solve drives a run through the iteration budget. On context cancellation it stops between
// iterations and returns the incumbent found so far together with the context error.
func (gr *Grasp) Solve(ctx context.Context) (Result, error) {
	start := time.Now()
	run := gr.Start()

	for {
		if err := ctx.Err(); err != nil {
			gr.logger.Sugar().Infof("grasp stopped after %d of %d iterations: %v", run.stats.Iterations, gr.cfg.Iterations, err)
			return run.result(time.Since(start)), err
		}
		if !run.Next() {
			break
		}
	}

	res := run.result(time.Since(start))
	gr.logger.Debug("grasp finished",
		zap.Int64("weight", res.Weight),
		zap.Int("iterations", res.Stats.Iterations),
		zap.Int("best_iteration", res.BestIteration),
		zap.Int("sweeps", res.Stats.Sweeps),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

// Run is a resumable GRASP execution. Next performs one restart, so a caller can stop after any
// iteration, inspect the incumbent and continue later. A Run is not safe for concurrent use.
type Run struct {
	grasp     *Grasp
	incumbent Incumbent
	stats     Stats
}

// Next performs the next iteration and reports whether one was performed. It returns false
// once the iteration budget is exhausted.
func (r *Run) Next() bool {
	gr := r.grasp
	if r.stats.Iterations >= gr.cfg.Iterations {
		return false
	}
	iteration := r.stats.Iterations + 1

	// NewGrasp validated the graph and alpha
	solver := newSolver(gr.graph, NewRand(deriveSeed(gr.cfg.Seed, uint64(iteration))), gr.logger)
	improved := solver.localSearch(solver.semiGreedy(gr.cfg.Alpha))

	r.stats.Iterations = iteration
	r.stats.Sweeps += improved.Sweeps
	r.stats.LastSweeps = improved.Sweeps

	// strict improvement only, so ties keep the earliest incumbent
	if !r.incumbent.Found() || improved.Weight > r.incumbent.Weight {
		r.incumbent = Incumbent{
			Assignment: improved.Assignment,
			Weight:     improved.Weight,
			Iteration:  iteration,
		}
		r.stats.Improvements++
		gr.logger.Debug("grasp incumbent improved",
			zap.Int("iteration", iteration),
			zap.Int64("weight", improved.Weight),
		)
	}
	return true
}

// Done reports whether the iteration budget is exhausted.
func (r *Run) Done() bool {
	return r.stats.Iterations >= r.grasp.cfg.Iterations
}

// Incumbent returns a copy of the best solution so far.
func (r *Run) Incumbent() Incumbent {
	inc := r.incumbent
	inc.Assignment = inc.Assignment.Clone()
	return inc
}

func (r *Run) Stats() Stats {
	return r.stats
}

func (r *Run) result(d time.Duration) Result {
	inc := r.Incumbent()
	if !inc.Found() {
		inc.Assignment = datastructure.NewAssignment(r.grasp.graph.NumberOfVertices())
		inc.Weight = r.grasp.graph.CutWeight(inc.Assignment)
	}
	return Result{
		Assignment:    inc.Assignment,
		Weight:        inc.Weight,
		BestIteration: inc.Iteration,
		Stats:         r.stats,
		Duration:      d,
	}
}

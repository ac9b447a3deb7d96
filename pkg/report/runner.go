package report

import (
	"context"
	"fmt"
	"time"

	"github.com/lintang-b-s/grasp-maxcut/pkg/concurrent"
	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/maxcut"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Record is one row of the comparison table.
type Record struct {
	Name string
	// Available is false when the instance could not be loaded; only Name and KnownBest are set.
	Available bool
	Vertices  int
	Edges     int

	Randomized float64
	Greedy     int64
	SemiGreedy int64

	// LocalSweeps and LocalAverage are averaged over the local searches started from
	// LocalSamples semi-greedy constructions.
	LocalSweeps  float64
	LocalAverage float64

	GraspIterations int
	GraspBest       int64
	// Cut is the best GRASP assignment.
	Cut datastructure.Assignment

	KnownBest string
	Duration  time.Duration
}

type Runner struct {
	Config    maxcut.Config
	Workers   int
	KnownBest KnownBest
	Logger    *zap.Logger
}

// Run evaluates every instance as one worker pool job. Records keep the order of instances.
// Failing instances do not stop the others; their errors are combined into the returned error.
func (r Runner) Run(ctx context.Context, instances []Instance) ([]Record, error) {
	if err := r.Config.Validate(); err != nil {
		return nil, err
	}
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	type outcome struct {
		record Record
		err    error
	}
	outcomes := concurrent.Map(ctx, r.Workers, instances, func(ctx context.Context, in Instance) outcome {
		rec, err := r.runInstance(ctx, in, logger)
		return outcome{record: rec, err: err}
	})

	records := make([]Record, len(outcomes))
	var errs error
	for i, o := range outcomes {
		records[i] = o.record
		if o.err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", instances[i].Name, o.err))
		}
	}
	return records, errs
}

func (r Runner) runInstance(ctx context.Context, in Instance, logger *zap.Logger) (Record, error) {
	rec := Record{Name: in.Name, KnownBest: r.KnownBest.Lookup(in.Name)}
	if !in.Available() {
		logger.Sugar().Warnf("instance %s is not available", in.Name)
		return rec, nil
	}
	if err := ctx.Err(); err != nil {
		return rec, err
	}

	start := time.Now()
	g := in.Graph
	cfg := r.Config
	rec.Available = true
	rec.Vertices = g.NumberOfVertices()
	rec.Edges = g.NumberOfEdges()

	solver, err := maxcut.NewSeededSolver(g, cfg.Seed, logger)
	if err != nil {
		return rec, err
	}

	if rec.Randomized, err = solver.Randomized(cfg.Trials); err != nil {
		return rec, err
	}
	rec.Greedy = g.CutWeight(solver.Greedy())

	var sweeps, total int64
	for i := 0; i < cfg.LocalSamples; i++ {
		constructed, err := solver.SemiGreedy(cfg.Alpha)
		if err != nil {
			return rec, err
		}
		if i == 0 {
			rec.SemiGreedy = g.CutWeight(constructed)
		}
		improved, err := solver.LocalSearch(constructed)
		if err != nil {
			return rec, err
		}
		sweeps += int64(improved.Sweeps)
		total += improved.Weight
	}
	rec.LocalSweeps = float64(sweeps) / float64(cfg.LocalSamples)
	rec.LocalAverage = float64(total) / float64(cfg.LocalSamples)

	grasp, err := maxcut.NewGrasp(g, cfg, logger)
	if err != nil {
		return rec, err
	}
	res, err := grasp.Solve(ctx)
	rec.GraspIterations = res.Stats.Iterations
	rec.GraspBest = res.Weight
	rec.Cut = res.Assignment
	rec.Duration = time.Since(start)
	if err != nil {
		return rec, err
	}

	logger.Sugar().Infof("%s: |V|=%d |E|=%d greedy=%d semi-greedy=%d local=%.2f grasp=%d (best at %d, %d sweeps, %d in the last restart) known best=%s (%v)",
		rec.Name, rec.Vertices, rec.Edges, rec.Greedy, rec.SemiGreedy, rec.LocalAverage, rec.GraspBest,
		res.BestIteration, res.Stats.Sweeps, res.Stats.LastSweeps, rec.KnownBest, rec.Duration)
	return rec, nil
}

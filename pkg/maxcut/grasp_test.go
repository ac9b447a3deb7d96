package maxcut

import (
	"context"
	"testing"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
	"go.uber.org/zap/zaptest"
)

func graspConfig(iterations int, alpha float64, seed int64) Config {
	cfg := DefaultConfig()
	cfg.Iterations = iterations
	cfg.Alpha = alpha
	cfg.Seed = seed
	return cfg
}

func solveGrasp(t *testing.T, g *datastructure.Graph, cfg Config) Result {
	t.Helper()
	gr, err := NewGrasp(g, cfg, zaptest.NewLogger(t))
	require.NoError(t, err)
	res, err := gr.Solve(context.Background())
	require.NoError(t, err)
	return res
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	err := Config{Alpha: 1.5, Iterations: 0, Trials: -1, LocalSamples: 0}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.Len(t, multierr.Errors(err), 4)
}

func TestNewGraspRejectsInvalidInput(t *testing.T) {
	_, err := NewGrasp(nil, DefaultConfig(), nil)
	assert.ErrorIs(t, err, ErrNilGraph)

	_, err = NewGrasp(fourCycle(t), graspConfig(0, 0.5, 1), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestGraspFourCycle(t *testing.T) {
	g := fourCycle(t)
	for seed := int64(1); seed <= 20; seed++ {
		res := solveGrasp(t, g, graspConfig(5, 0.5, seed))

		assert.Equal(t, int64(22), res.Weight, "seed %d", seed)
		assert.Equal(t, g.CutWeight(res.Assignment), res.Weight)
		assert.Equal(t, 5, res.Stats.Iterations)
		// every restart reaches 22, so the first one is kept
		assert.Equal(t, 1, res.BestIteration)
		assert.Equal(t, 1, res.Stats.Improvements)
	}
}

func TestGraspIsDeterministicForASeed(t *testing.T) {
	g := randomGraph(t, 60, 0.15, 50, 21)
	cfg := graspConfig(10, 0.4, 99)

	a := solveGrasp(t, g, cfg)
	b := solveGrasp(t, g, cfg)
	assert.Equal(t, a.Assignment, b.Assignment)
	assert.Equal(t, a.Weight, b.Weight)
	assert.Equal(t, a.Stats, b.Stats)
}

func TestGraspWeightIsNonDecreasingInBudget(t *testing.T) {
	g := randomGraph(t, 50, 0.2, 30, 4)

	prev := int64(-1)
	for k := 1; k <= 12; k++ {
		res := solveGrasp(t, g, graspConfig(k, 0.5, 8))
		assert.GreaterOrEqual(t, res.Weight, prev, "budget %d", k)
		prev = res.Weight
	}
}

func TestGraspResultIsALocalOptimum(t *testing.T) {
	g := randomGraph(t, 40, 0.3, 10, 13)
	res := solveGrasp(t, g, graspConfig(8, 0.7, 2))

	assert.True(t, isLocalOptimum(g, res.Assignment))
	assert.LessOrEqual(t, res.Weight, g.TotalWeight())
	assert.GreaterOrEqual(t, res.Stats.Sweeps, res.Stats.Iterations)
}

func TestGraspRunIsResumable(t *testing.T) {
	g := randomGraph(t, 45, 0.2, 25, 17)
	gr, err := NewGrasp(g, graspConfig(9, 0.5, 3), nil)
	require.NoError(t, err)

	run := gr.Start()
	assert.False(t, run.Incumbent().Found())

	prev := int64(-1)
	for i := 0; i < 4; i++ {
		require.True(t, run.Next())
		inc := run.Incumbent()
		require.True(t, inc.Found())
		assert.GreaterOrEqual(t, inc.Weight, prev)
		prev = inc.Weight
	}
	assert.Equal(t, 4, run.Stats().Iterations)
	assert.False(t, run.Done())

	for run.Next() {
	}
	assert.True(t, run.Done())
	assert.False(t, run.Next())

	full, err := gr.Solve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, full.Weight, run.Incumbent().Weight)
	assert.Equal(t, full.Assignment, run.Incumbent().Assignment)
	assert.Equal(t, full.Stats, run.Stats())
}

func TestGraspIterationsReplaySolverSteps(t *testing.T) {
	g := randomGraph(t, 30, 0.3, 20, 11)
	gr, err := NewGrasp(g, graspConfig(3, 0.6, 42), nil)
	require.NoError(t, err)
	run := gr.Start()

	best := int64(-1)
	for i := 1; i <= 3; i++ {
		s, err := NewSeededSolver(g, deriveSeed(42, uint64(i)), nil)
		require.NoError(t, err)
		constructed, err := s.SemiGreedy(0.6)
		require.NoError(t, err)
		improved, err := s.LocalSearch(constructed)
		require.NoError(t, err)

		require.True(t, run.Next())
		assert.Equal(t, improved.Sweeps, run.Stats().LastSweeps, "iteration %d", i)
		if improved.Weight > best {
			best = improved.Weight
			assert.Equal(t, improved.Assignment, run.Incumbent().Assignment, "iteration %d", i)
			assert.Equal(t, i, run.Incumbent().Iteration)
		}
		assert.Equal(t, best, run.Incumbent().Weight)
	}
}

func TestGraspIncumbentIsACopy(t *testing.T) {
	gr, err := NewGrasp(fourCycle(t), graspConfig(2, 0.5, 1), nil)
	require.NoError(t, err)

	run := gr.Start()
	require.True(t, run.Next())
	inc := run.Incumbent()
	inc.Assignment.Flip(0)
	assert.Equal(t, "BABA", run.Incumbent().Assignment.String())
}

func TestGraspStopsOnCancelledContext(t *testing.T) {
	g := fourCycle(t)
	gr, err := NewGrasp(g, graspConfig(50, 0.5, 1), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := gr.Solve(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, res.Stats.Iterations)
	assert.Equal(t, "AAAA", res.Assignment.String())
	assert.Equal(t, int64(0), res.Weight)
}

func TestGraspEmptyGraph(t *testing.T) {
	g, err := datastructure.NewGraph(3)
	require.NoError(t, err)

	res := solveGrasp(t, g, graspConfig(4, 0.5, 1))
	assert.Equal(t, "AAA", res.Assignment.String())
	assert.Equal(t, int64(0), res.Weight)
	assert.Equal(t, 4, res.Stats.Iterations)
}

func TestDeriveSeed(t *testing.T) {
	assert.Equal(t, deriveSeed(5, 1), deriveSeed(5, 1))
	assert.NotEqual(t, deriveSeed(5, 1), deriveSeed(5, 2))
	assert.NotEqual(t, deriveSeed(5, 1), deriveSeed(6, 1))
}

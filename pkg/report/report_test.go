package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/generator"
	"github.com/lintang-b-s/grasp-maxcut/pkg/maxcut"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

const cycleFile = "4 4\n1 2 10\n2 3 1\n3 4 10\n4 1 1\n"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestInstanceName(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"g1.rud", "g1"},
		{"/data/gset/g22.txt", "g22"},
		{"g14.rud.bz2", "g14"},
		{"toroidal", "toroidal"},
		{filepath.Join("a", "b.c.d"), "b"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, InstanceName(tt.path), tt.path)
	}
}

func TestLoadInstance(t *testing.T) {
	dir := t.TempDir()
	in, err := LoadInstance(writeFile(t, dir, "cycle.txt", cycleFile))
	require.NoError(t, err)
	assert.Equal(t, "cycle", in.Name)
	assert.True(t, in.Available())
	assert.Equal(t, 4, in.Graph.NumberOfEdges())

	missing, err := LoadInstance(filepath.Join(dir, "g99.rud"))
	assert.Error(t, err)
	assert.Equal(t, "g99", missing.Name)
	assert.False(t, missing.Available())
}

func TestKnownBest(t *testing.T) {
	kb := DefaultKnownBest()
	assert.Equal(t, "12078", kb.Lookup("g1"))
	assert.Equal(t, "5988", kb.Lookup("g50"))
	assert.Equal(t, "N/A", kb.Lookup("g4"))

	var none KnownBest
	assert.Equal(t, "N/A", none.Lookup("g1"))

	path := writeFile(t, t.TempDir(), "best.yaml", "g1: 12078\ncycle: 22\n")
	loaded, err := LoadKnownBest(path)
	require.NoError(t, err)
	assert.Equal(t, KnownBest{"g1": 12078, "cycle": 22}, loaded)

	bad := writeFile(t, t.TempDir(), "bad.yaml", "g1: [1, 2]\n")
	_, err = LoadKnownBest(bad)
	assert.Error(t, err)
}

func testInstances(t *testing.T) []Instance {
	t.Helper()
	cycle, err := datastructure.ReadGraph(strings.NewReader(cycleFile))
	require.NoError(t, err)
	random, err := generator.Random(40, 0.2, 1, 20, maxcut.NewRand(6))
	require.NoError(t, err)
	empty, err := datastructure.NewGraph(3)
	require.NoError(t, err)

	return []Instance{
		{Name: "cycle", Graph: cycle},
		{Name: "g1"},
		{Name: "random", Graph: random},
		{Name: "empty", Graph: empty},
	}
}

func TestRunnerRun(t *testing.T) {
	cfg := maxcut.DefaultConfig()
	cfg.Iterations = 5
	cfg.LocalSamples = 3
	runner := Runner{
		Config:    cfg,
		Workers:   2,
		KnownBest: KnownBest{"cycle": 22, "g1": 12078},
		Logger:    zaptest.NewLogger(t),
	}

	records, err := runner.Run(context.Background(), testInstances(t))
	require.NoError(t, err)
	require.Len(t, records, 4)

	cycle := records[0]
	assert.Equal(t, "cycle", cycle.Name)
	assert.True(t, cycle.Available)
	assert.Equal(t, 4, cycle.Vertices)
	assert.Equal(t, 4, cycle.Edges)
	assert.Equal(t, int64(22), cycle.Greedy)
	assert.Equal(t, int64(22), cycle.SemiGreedy)
	assert.Equal(t, 22.0, cycle.LocalAverage)
	assert.Equal(t, 1.0, cycle.LocalSweeps)
	assert.Equal(t, int64(22), cycle.GraspBest)
	assert.Equal(t, 5, cycle.GraspIterations)
	assert.Equal(t, "22", cycle.KnownBest)
	assert.Equal(t, "BABA", cycle.Cut.String())
	assert.Greater(t, cycle.Randomized, 0.0)
	assert.Less(t, cycle.Randomized, 22.0)

	assert.Equal(t, Record{Name: "g1", KnownBest: "12078"}, records[1])

	random := records[2]
	assert.Equal(t, "random", random.Name)
	assert.GreaterOrEqual(t, float64(random.GraspBest), random.Randomized)
	assert.GreaterOrEqual(t, random.LocalAverage, 0.0)
	assert.Equal(t, "N/A", random.KnownBest)

	empty := records[3]
	assert.True(t, empty.Available)
	assert.Equal(t, int64(0), empty.GraspBest)
	assert.Equal(t, 0.0, empty.Randomized)
}

func TestRunnerIsDeterministicAcrossWorkerCounts(t *testing.T) {
	cfg := maxcut.DefaultConfig()
	cfg.Iterations = 4
	instances := testInstances(t)

	one, err := Runner{Config: cfg, Workers: 1}.Run(context.Background(), instances)
	require.NoError(t, err)
	many, err := Runner{Config: cfg, Workers: 4}.Run(context.Background(), instances)
	require.NoError(t, err)

	for i := range one {
		one[i].Duration, many[i].Duration = 0, 0
	}
	assert.Equal(t, one, many)
}

func TestRunnerRejectsInvalidConfig(t *testing.T) {
	cfg := maxcut.DefaultConfig()
	cfg.Alpha = 2
	_, err := Runner{Config: cfg}.Run(context.Background(), testInstances(t))
	assert.ErrorIs(t, err, maxcut.ErrInvalidConfig)
}

func TestRunnerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	records, err := Runner{Config: maxcut.DefaultConfig()}.Run(ctx, testInstances(t))
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, records, 4)
	assert.Equal(t, "cycle", records[0].Name)
	assert.False(t, records[0].Available)
}

func TestWriteRecords(t *testing.T) {
	records := []Record{
		{
			Name: "cycle", Available: true, Vertices: 4, Edges: 4,
			Randomized: 11.456, Greedy: 22, SemiGreedy: 22,
			LocalSweeps: 1, LocalAverage: 21.5,
			GraspIterations: 50, GraspBest: 22, KnownBest: "22",
		},
		{Name: "g1", KnownBest: "12078"},
	}

	var buf bytes.Buffer
	require.NoError(t, writeRecords(&buf, records))

	want := strings.Join([]string{
		",Problem,,,Constructive algorithm,,Local Search,,GRASP,,Known best solution",
		",,,,,,Simple Local-1,,,,",
		"name,|V|,|E|,Simple Randomized,Simple Greedy,Semi-greedy-1,No. of iterations,Average value,No. of iterations,Best value,",
		"cycle,4,4,11.46,22,22,1,21.50,50,22,22",
		"g1,N/A,N/A,N/A,N/A,N/A,N/A,N/A,N/A,N/A,12078",
		"",
	}, "\n")
	assert.Equal(t, want, buf.String())
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "maxcut.csv")
	require.NoError(t, WriteCSV(path, []Record{{Name: "g2", KnownBest: "12084"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "g2,N/A,N/A,N/A,N/A,N/A,N/A,N/A,N/A,N/A,12084", lines[3])
}

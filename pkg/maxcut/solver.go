package maxcut

import (
	"errors"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"go.uber.org/zap"
	"golang.org/x/exp/rand"
)

var (
	ErrNilGraph = errors.New("maxcut: graph is nil")
	ErrNilRand  = errors.New("maxcut: random source is nil")
)

// Solver runs the construction heuristics and the local search on one graph. It owns its random
// stream, so a Solver must not be shared between goroutines; build one per goroutine instead
// (the graph itself can be shared).
type Solver struct {
	graph  *datastructure.Graph
	rng    *rand.Rand
	logger *zap.Logger
}

func NewSolver(graph *datastructure.Graph, rng *rand.Rand, logger *zap.Logger) (*Solver, error) {
	if graph == nil {
		return nil, ErrNilGraph
	}
	if rng == nil {
		return nil, ErrNilRand
	}
	return newSolver(graph, rng, logger), nil
}

func newSolver(graph *datastructure.Graph, rng *rand.Rand, logger *zap.Logger) *Solver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Solver{
		graph:  graph,
		rng:    rng,
		logger: logger,
	}
}

// NewSeededSolver is NewSolver with a generator built from seed.
func NewSeededSolver(graph *datastructure.Graph, seed int64, logger *zap.Logger) (*Solver, error) {
	return NewSolver(graph, NewRand(seed), logger)
}

// CutWeight evaluates a on the solver graph.
func (s *Solver) CutWeight(a datastructure.Assignment) (int64, error) {
	if err := s.graph.ValidateAssignment(a); err != nil {
		return 0, err
	}
	return s.graph.CutWeight(a), nil
}

// emptyResult is the answer of every heuristic on a graph without edges.
func (s *Solver) emptyResult() datastructure.Assignment {
	return datastructure.NewAssignment(s.graph.NumberOfVertices())
}

// heaviestEdge returns the first edge, in insertion order, among those of maximum weight. It is
// the head of a stable descending sort of the edge list. The graph must have at least one edge.
func heaviestEdge(g *datastructure.Graph) datastructure.Edge {
	best := g.GetEdge(0)
	g.ForEachEdge(func(e datastructure.Edge, eId int) {
		if e.GetWeight() > best.GetWeight() {
			best = e
		}
	})
	return best
}

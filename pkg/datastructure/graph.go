package datastructure

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/multierr"
)

var (
	// ErrInvalidGraph is returned for structurally invalid input: negative vertex count,
	// self loops or edge endpoints outside [0, n).
	ErrInvalidGraph = errors.New("datastructure: invalid graph")

	// ErrAssignmentSize is returned when an assignment does not hold one side per vertex.
	ErrAssignmentSize = errors.New("datastructure: assignment size mismatch")
)

type Index uint32

// Edge is an undirected weighted edge {from, to}.
type Edge struct {
	from   Index
	to     Index
	weight int64
}

func NewEdge(from, to Index, weight int64) Edge {
	return Edge{
		from:   from,
		to:     to,
		weight: weight,
	}
}

func (e Edge) GetFrom() Index {
	return e.from
}

func (e Edge) GetTo() Index {
	return e.to
}

func (e Edge) GetWeight() int64 {
	return e.weight
}

// OutEdge is one direction of an undirected edge as stored in the adjacency list of its tail.
type OutEdge struct {
	head   Index
	weight int64
	edgeId int
}

func (e OutEdge) GetHead() Index {
	return e.head
}

func (e OutEdge) GetWeight() int64 {
	return e.weight
}

// GetEdgeID returns the position of the undirected edge in the graph edge list.
func (e OutEdge) GetEdgeID() int {
	return e.edgeId
}

// Graph is a simple undirected edge-weighted graph. Every edge is registered in the adjacency
// list of both endpoints, so the adjacency lists hold 2*m entries in total.
// Heuristics only query a Graph; once built it is safe for concurrent readers.
type Graph struct {
	numberOfVertices int
	edgeList         []Edge
	adjacencyList    [][]OutEdge
	totalWeight      int64
}

// MaxVertices is the largest vertex count an Index can address.
const MaxVertices = math.MaxUint32

func NewGraph(numberOfVertices int) (*Graph, error) {
	if numberOfVertices < 0 {
		return nil, fmt.Errorf("%w: vertex count must be >= 0 (got %d)", ErrInvalidGraph, numberOfVertices)
	}
	if uint64(numberOfVertices) > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d exceeds %d", ErrInvalidGraph, numberOfVertices, uint64(MaxVertices))
	}
	adjacencyList := make([][]OutEdge, numberOfVertices)
	for i := range adjacencyList {
		adjacencyList[i] = make([]OutEdge, 0)
	}
	return &Graph{
		numberOfVertices: numberOfVertices,
		edgeList:         make([]Edge, 0),
		adjacencyList:    adjacencyList,
	}, nil
}

// NewGraphFromEdges builds a graph from an edge list. Every invalid edge is reported, not only the
// first one.
func NewGraphFromEdges(numberOfVertices int, edges []Edge) (*Graph, error) {
	g, err := NewGraph(numberOfVertices)
	if err != nil {
		return nil, err
	}

	var errs error
	for _, e := range edges {
		errs = multierr.Append(errs, g.AddEdge(e.from, e.to, e.weight))
	}
	if errs != nil {
		return nil, errs
	}
	return g, nil
}

func (g *Graph) checkEdge(u, v Index) error {
	n := Index(g.numberOfVertices)
	if u >= n || v >= n {
		return fmt.Errorf("%w: edge (%d,%d) references a vertex outside [0,%d)", ErrInvalidGraph, u, v, n)
	}
	if u == v {
		return fmt.Errorf("%w: self loop on vertex %d", ErrInvalidGraph, u)
	}
	return nil
}

// AddEdge appends the edge {u,v} with weight w and registers it in both adjacency lists.
func (g *Graph) AddEdge(u, v Index, w int64) error {
	if err := g.checkEdge(u, v); err != nil {
		return err
	}

	edgeId := len(g.edgeList)
	g.edgeList = append(g.edgeList, NewEdge(u, v, w))
	g.adjacencyList[u] = append(g.adjacencyList[u], OutEdge{head: v, weight: w, edgeId: edgeId})
	g.adjacencyList[v] = append(g.adjacencyList[v], OutEdge{head: u, weight: w, edgeId: edgeId})
	g.totalWeight += w
	return nil
}

func (g *Graph) NumberOfVertices() int {
	return g.numberOfVertices
}

func (g *Graph) NumberOfEdges() int {
	return len(g.edgeList)
}

// IsEmpty reports whether there is nothing to cut: no vertices or no edges.
func (g *Graph) IsEmpty() bool {
	return g.numberOfVertices == 0 || len(g.edgeList) == 0
}

func (g *Graph) GetEdge(eId int) Edge {
	return g.edgeList[eId]
}

// GetEdges returns a copy of the edge list in insertion order.
func (g *Graph) GetEdges() []Edge {
	edges := make([]Edge, len(g.edgeList))
	copy(edges, g.edgeList)
	return edges
}

func (g *Graph) ForEachEdge(handle func(e Edge, eId int)) {
	for eId, e := range g.edgeList {
		handle(e, eId)
	}
}

func (g *Graph) GetOutDegree(u Index) int {
	return len(g.adjacencyList[u])
}

func (g *Graph) ForOutEdgesOfVertex(u Index, handle func(e OutEdge)) {
	for _, e := range g.adjacencyList[u] {
		handle(e)
	}
}

// GetOutEdges exposes the adjacency list of u for hot loops. Callers must not modify it.
func (g *Graph) GetOutEdges(u Index) []OutEdge {
	return g.adjacencyList[u]
}

// TotalWeight is the sum of all edge weights, the upper bound of any cut when weights are
// non-negative.
func (g *Graph) TotalWeight() int64 {
	return g.totalWeight
}

// CutWeight sums the weights of edges whose endpoints lie on different sides. O(m).
// The assignment must hold exactly one side per vertex (see ValidateAssignment).
func (g *Graph) CutWeight(a Assignment) int64 {
	var total int64
	for _, e := range g.edgeList {
		if a[e.from] != a[e.to] {
			total += e.weight
		}
	}
	return total
}

func (g *Graph) ValidateAssignment(a Assignment) error {
	if len(a) != g.numberOfVertices {
		return fmt.Errorf("%w: want %d sides, got %d", ErrAssignmentSize, g.numberOfVertices, len(a))
	}
	return nil
}

// SideWeights returns the total weight from u to its neighbors on side A and on side B,
// counting only neighbors for which include returns true. A nil include counts every neighbor.
func (g *Graph) SideWeights(u Index, a Assignment, include func(v Index) bool) (int64, int64) {
	var sideA, sideB int64
	for _, e := range g.adjacencyList[u] {
		if include != nil && !include(e.head) {
			continue
		}
		if a[e.head] {
			sideB += e.weight
		} else {
			sideA += e.weight
		}
	}
	return sideA, sideB
}

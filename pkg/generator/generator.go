// Package generator builds synthetic Max-Cut instances for tests and benchmarks.
package generator

import (
	"errors"
	"fmt"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/lintang-b-s/grasp-maxcut/pkg/geo"
	"golang.org/x/exp/rand"
)

var ErrInvalidParameter = errors.New("generator: invalid parameter")

// Random draws a G(n, density) graph: every pair u < v is present with probability density and
// weighted uniformly in [minW, maxW].
func Random(n int, density float64, minW, maxW int64, rng *rand.Rand) (*datastructure.Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be >= 0 (got %d)", ErrInvalidParameter, n)
	}
	if !(density >= 0 && density <= 1) {
		return nil, fmt.Errorf("%w: density must be in [0,1] (got %v)", ErrInvalidParameter, density)
	}
	if minW > maxW {
		return nil, fmt.Errorf("%w: weight range [%d,%d] is empty", ErrInvalidParameter, minW, maxW)
	}

	g, err := datastructure.NewGraph(n)
	if err != nil {
		return nil, err
	}
	span := uint64(maxW - minW + 1)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if rng.Float64() >= density {
				continue
			}
			w := minW + int64(rng.Uint64n(span))
			if err := g.AddEdge(datastructure.Index(u), datastructure.Index(v), w); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Toroidal builds a rows x cols torus grid with weights drawn from {-1, +1}, the shape of the
// toroidal G-set instances. Vertex (r, c) has index r*cols + c.
func Toroidal(rows, cols int, rng *rand.Rand) (*datastructure.Graph, error) {
	if rows < 3 || cols < 3 {
		return nil, fmt.Errorf("%w: torus needs at least 3x3 vertices (got %dx%d)", ErrInvalidParameter, rows, cols)
	}

	g, err := datastructure.NewGraph(rows * cols)
	if err != nil {
		return nil, err
	}
	sign := func() int64 {
		if rng.Intn(2) == 0 {
			return -1
		}
		return 1
	}
	id := func(r, c int) datastructure.Index {
		return datastructure.Index(r*cols + c)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if err := g.AddEdge(id(r, c), id(r, (c+1)%cols), sign()); err != nil {
				return nil, err
			}
			if err := g.AddEdge(id(r, c), id((r+1)%rows, c), sign()); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

type BoundingBox struct {
	MinLat, MinLon float64
	MaxLat, MaxLon float64
}

func (b BoundingBox) valid() bool {
	return b.MinLat <= b.MaxLat && b.MinLon <= b.MaxLon &&
		b.MinLat >= -90 && b.MaxLat <= 90 && b.MinLon >= -180 && b.MaxLon <= 180
}

// GeometricInstance is a graph whose vertices are points on the earth.
type GeometricInstance struct {
	Graph       *datastructure.Graph
	Coordinates []datastructure.Coordinate
}

// Polyline encodes the vertex coordinates in index order.
func (gi GeometricInstance) Polyline() string {
	return geo.PolylineFromCoords(gi.Coordinates)
}

// Geometric scatters n points uniformly in bbox and joins every pair at most radiusKm apart.
// Edges weigh the distance in metres.
func Geometric(n int, radiusKm float64, bbox BoundingBox, rng *rand.Rand) (GeometricInstance, error) {
	if n < 0 {
		return GeometricInstance{}, fmt.Errorf("%w: n must be >= 0 (got %d)", ErrInvalidParameter, n)
	}
	if !(radiusKm > 0) {
		return GeometricInstance{}, fmt.Errorf("%w: radius must be > 0 (got %v)", ErrInvalidParameter, radiusKm)
	}
	if !bbox.valid() {
		return GeometricInstance{}, fmt.Errorf("%w: bounding box %+v", ErrInvalidParameter, bbox)
	}

	coords := make([]datastructure.Coordinate, n)
	for i := range coords {
		lat := bbox.MinLat + rng.Float64()*(bbox.MaxLat-bbox.MinLat)
		lon := bbox.MinLon + rng.Float64()*(bbox.MaxLon-bbox.MinLon)
		coords[i] = datastructure.NewCoordinate(lat, lon)
	}

	g, err := datastructure.NewGraph(n)
	if err != nil {
		return GeometricInstance{}, err
	}
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if geo.GreatCircleDistance(coords[u], coords[v]) > radiusKm {
				continue
			}
			if err := g.AddEdge(datastructure.Index(u), datastructure.Index(v), geo.EdgeWeightMeters(coords[u], coords[v])); err != nil {
				return GeometricInstance{}, err
			}
		}
	}
	return GeometricInstance{Graph: g, Coordinates: coords}, nil
}

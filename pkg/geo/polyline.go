package geo

import (
	"fmt"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
	"github.com/twpayne/go-polyline"
)

// PolylineFromCoords encodes the coordinates as a Google polyline (5 digit precision).
func PolylineFromCoords(path []datastructure.Coordinate) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{p.Lat(), p.Lon()})
	}
	return string(polyline.EncodeCoords(coords))
}

func CoordsFromPolyline(s string) ([]datastructure.Coordinate, error) {
	coords, rest, err := polyline.DecodeCoords([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("geo: decode polyline: %w", err)
	}
	if len(rest) > 0 {
		return nil, fmt.Errorf("geo: decode polyline: %d trailing bytes", len(rest))
	}
	path := make([]datastructure.Coordinate, len(coords))
	for i, c := range coords {
		path[i] = datastructure.NewCoordinate(c[0], c[1])
	}
	return path, nil
}

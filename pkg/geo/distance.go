package geo

import (
	"math"

	"github.com/golang/geo/s2"
	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

const (
	earthRadiusKM = 6371.0
)

// GreatCircleDistance returns the distance between a and b in km, measured as the s2 angle
// between the two points.
func GreatCircleDistance(a, b datastructure.Coordinate) float64 {
	angle := s2.LatLngFromDegrees(a.Lat(), a.Lon()).Distance(s2.LatLngFromDegrees(b.Lat(), b.Lon()))
	return angle.Radians() * earthRadiusKM
}

// EdgeWeightMeters is the distance between a and b in whole metres, at least 1 so that every
// edge carries weight.
func EdgeWeightMeters(a, b datastructure.Coordinate) int64 {
	m := int64(math.Round(GreatCircleDistance(a, b) * 1000))
	return max(m, 1)
}

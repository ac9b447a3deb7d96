package datastructure

// Coordinate is a WGS84 position in degrees, attached to vertices of geometric and road
// network instances.
type Coordinate struct {
	lat float64
	lon float64
}

func (c Coordinate) Lat() float64 {
	return c.lat
}

func (c Coordinate) Lon() float64 {
	return c.lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		lat: lat,
		lon: lon,
	}
}

func NewCoordinates(lat, lon []float64) []Coordinate {
	coords := make([]Coordinate, len(lat))
	for i := range lat {
		coords[i] = NewCoordinate(lat[i], lon[i])
	}
	return coords
}

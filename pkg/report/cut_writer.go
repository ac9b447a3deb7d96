package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

// WriteAssignment writes the vertex count and then one line per vertex: 0 for side A, 1 for
// side B.
func WriteAssignment(filename string, a datastructure.Assignment) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if _, err := fmt.Fprintf(w, "%d\n", len(a)); err != nil {
		return err
	}
	for i := range a {
		side := 0
		if !a.IsSideA(datastructure.Index(i)) {
			side = 1
		}
		if _, err := fmt.Fprintf(w, "%d\n", side); err != nil {
			return err
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}
	return f.Close()
}

type point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type sideNodes struct {
	Side  string  `json:"side"`
	Nodes []point `json:"nodes"`
}

// WriteSidesJSON writes the positions of the vertices on each side of the cut, side A first.
func WriteSidesJSON(filename string, a datastructure.Assignment, coords []datastructure.Coordinate) error {
	if len(a) != len(coords) {
		return fmt.Errorf("%w: %d sides for %d coordinates", datastructure.ErrAssignmentSize, len(a), len(coords))
	}
	sides := []sideNodes{{Side: "A", Nodes: []point{}}, {Side: "B", Nodes: []point{}}}
	for i, c := range coords {
		s := 0
		if !a.IsSideA(datastructure.Index(i)) {
			s = 1
		}
		sides[s].Nodes = append(sides[s].Nodes, point{Lat: c.Lat(), Lon: c.Lon()})
	}

	buf, err := json.MarshalIndent(sides, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, buf, 0644)
}

// Package report runs every heuristic on a set of instances and writes the comparison table.
package report

import (
	"path/filepath"
	"strings"

	"github.com/lintang-b-s/grasp-maxcut/pkg/datastructure"
)

// Instance is a named graph. A nil Graph marks an instance whose file could not be loaded; it
// still gets a row in the table.
type Instance struct {
	Name  string
	Graph *datastructure.Graph
	// Coordinates is set for instances built from geographic data.
	Coordinates []datastructure.Coordinate
}

func (in Instance) Available() bool {
	return in.Graph != nil
}

// InstanceName is the file base name up to its first '.', so "g1.rud.bz2" is "g1".
func InstanceName(path string) string {
	base := filepath.Base(path)
	if i := strings.IndexByte(base, '.'); i >= 0 {
		return base[:i]
	}
	return base
}

func LoadInstance(path string) (Instance, error) {
	g, err := datastructure.ReadGraphFile(path)
	if err != nil {
		return Instance{Name: InstanceName(path)}, err
	}
	return Instance{Name: InstanceName(path), Graph: g}, nil
}

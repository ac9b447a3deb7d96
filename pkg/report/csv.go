package report

import (
	"encoding/csv"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/lintang-b-s/grasp-maxcut/pkg"
)

var (
	groupHeader = []string{"", "Problem", "", "", "Constructive algorithm", "", "Local Search", "", "GRASP", "", "Known best solution"}
	subHeader   = []string{"", "", "", "", "", "", "Simple Local-1", "", "", "", ""}
	columns     = []string{
		"name", "|V|", "|E|",
		"Simple Randomized", "Simple Greedy", "Semi-greedy-1",
		"No. of iterations", "Average value",
		"No. of iterations", "Best value", "",
	}
)

func WriteCSV(path string, records []Record) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := writeRecords(f, records); err != nil {
		return err
	}
	return f.Close()
}

func writeRecords(out io.Writer, records []Record) error {
	w := csv.NewWriter(out)
	for _, row := range [][]string{groupHeader, subHeader, columns} {
		if err := w.Write(row); err != nil {
			return err
		}
	}
	for _, rec := range records {
		if err := w.Write(recordRow(rec)); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func recordRow(rec Record) []string {
	if !rec.Available {
		row := []string{rec.Name}
		for i := 1; i < len(columns)-1; i++ {
			row = append(row, pkg.UNKNOWN_BEST)
		}
		return append(row, rec.KnownBest)
	}
	return []string{
		rec.Name,
		strconv.Itoa(rec.Vertices),
		strconv.Itoa(rec.Edges),
		strconv.FormatFloat(rec.Randomized, 'f', 2, 64),
		strconv.FormatInt(rec.Greedy, 10),
		strconv.FormatInt(rec.SemiGreedy, 10),
		formatMean(rec.LocalSweeps),
		formatMean(rec.LocalAverage),
		strconv.Itoa(rec.GraspIterations),
		strconv.FormatInt(rec.GraspBest, 10),
		rec.KnownBest,
	}
}

// formatMean prints whole numbers without decimals and anything else with two.
func formatMean(v float64) string {
	if v == math.Trunc(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

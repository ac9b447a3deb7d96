package report

import (
	"fmt"
	"os"
	"strconv"

	"github.com/lintang-b-s/grasp-maxcut/pkg"
	"gopkg.in/yaml.v3"
)

// KnownBest maps an instance name to the best cut weight reported in the literature.
type KnownBest map[string]int64

// DefaultKnownBest holds the published best cuts of the G-set instances used in the benchmark.
func DefaultKnownBest() KnownBest {
	return KnownBest{
		"g1": 12078, "g2": 12084, "g3": 12077,
		"g11": 627, "g12": 621, "g13": 645,
		"g14": 3187, "g15": 3169, "g16": 3172,
		"g22": 14123, "g23": 14129, "g24": 14131,
		"g32": 1560, "g33": 1537, "g34": 1541,
		"g35": 8000, "g36": 7996, "g37": 8009,
		"g43": 7027, "g44": 7022, "g45": 7020,
		"g48": 6000, "g49": 6000, "g50": 5988,
	}
}

// LoadKnownBest reads a YAML mapping such as "g1: 12078".
func LoadKnownBest(path string) (KnownBest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	kb := KnownBest{}
	if err := yaml.Unmarshal(data, &kb); err != nil {
		return nil, fmt.Errorf("report: parse known best %s: %w", path, err)
	}
	return kb, nil
}

// Lookup returns the known best for name, or N/A when there is none.
func (kb KnownBest) Lookup(name string) string {
	if v, ok := kb[name]; ok {
		return strconv.FormatInt(v, 10)
	}
	return pkg.UNKNOWN_BEST
}

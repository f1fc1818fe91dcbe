package scenario

import (
	"fmt"
	"os"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/programme-lv/bitterlesson/api"
)

// specScenario maps the [scenario] table of a scenario file.
type specScenario struct {
	ProblemSizes     []int     `toml:"problem_sizes"`
	ComputationTimes []float64 `toml:"computation_times"`
}

type specRoot struct {
	Scenario specScenario `toml:"scenario"`
}

// Default returns the built-in scenario the demo runs when no file is given.
func Default() api.Scenario {
	return api.Scenario{
		ProblemSizes:     []int{5000, 10000, 20000},
		ComputationTimes: []float64{0.1, 0.5, 1.0, 2.0},
	}
}

// Parse reads a scenario TOML file and converts it to a validated api.Scenario.
func Parse(path string) (api.Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return api.Scenario{}, fmt.Errorf("failed to read scenario file: %w", err)
	}
	var root specRoot
	if err := toml.Unmarshal(data, &root); err != nil {
		return api.Scenario{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	scn := api.Scenario{
		ProblemSizes:     root.Scenario.ProblemSizes,
		ComputationTimes: root.Scenario.ComputationTimes,
	}
	if err := Validate(scn); err != nil {
		return api.Scenario{}, err
	}
	return scn, nil
}

// Validate checks that a scenario can be run: at least one problem size and
// one computation time, sizes positive and unique, times non-negative and
// strictly ascending.
func Validate(scn api.Scenario) error {
	if len(scn.ProblemSizes) == 0 {
		return fmt.Errorf("scenario must list at least one problem size")
	}
	if len(scn.ComputationTimes) == 0 {
		return fmt.Errorf("scenario must list at least one computation time")
	}

	seen := mapset.NewSetWithSize[int](len(scn.ProblemSizes))
	for _, n := range scn.ProblemSizes {
		if n <= 0 {
			return fmt.Errorf("problem size must be positive, got %d", n)
		}
		if !seen.Add(n) {
			return fmt.Errorf("duplicate problem size: %d", n)
		}
	}

	for i, t := range scn.ComputationTimes {
		if t < 0 {
			return fmt.Errorf("computation time must be non-negative, got %g", t)
		}
		if i > 0 && t <= scn.ComputationTimes[i-1] {
			return fmt.Errorf("computation times must be strictly ascending: %g after %g",
				t, scn.ComputationTimes[i-1])
		}
	}
	return nil
}

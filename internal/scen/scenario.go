// Package scen reads scenario files and writes schedule output in the
// YAML formats of the planner's file interface.
package scen

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

// ErrMalformed reports a structurally invalid scenario file.
var ErrMalformed = errors.New("scen: malformed scenario")

type scenarioFile struct {
	Map struct {
		Dimensions []int   `yaml:"dimensions"`
		Obstacles  [][]int `yaml:"obstacles"`
	} `yaml:"map"`
	Agents []struct {
		Start []int `yaml:"start"`
		Goal  []int `yaml:"goal"`
	} `yaml:"agents"`
}

// Load reads and validates a scenario file. The goal list of the agents
// section forms the goal pool.
func Load(path string) (*core.Instance, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scen: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse builds a validated instance from scenario YAML.
func Parse(data []byte) (*core.Instance, error) {
	var f scenarioFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(f.Map.Dimensions) != 2 {
		return nil, fmt.Errorf("%w: map.dimensions needs [dimx, dimy]", ErrMalformed)
	}
	obstacles := make([]core.Location, 0, len(f.Map.Obstacles))
	for _, o := range f.Map.Obstacles {
		if len(o) != 2 {
			return nil, fmt.Errorf("%w: obstacle needs [x, y]", ErrMalformed)
		}
		obstacles = append(obstacles, core.Location{X: o[0], Y: o[1]})
	}
	grid := core.NewGrid(f.Map.Dimensions[0], f.Map.Dimensions[1], obstacles)

	starts := make([]core.State, 0, len(f.Agents))
	goals := make([]core.Location, 0, len(f.Agents))
	for i, a := range f.Agents {
		if len(a.Start) != 2 || len(a.Goal) != 2 {
			return nil, fmt.Errorf("%w: agent %d needs start and goal [x, y]", ErrMalformed, i)
		}
		starts = append(starts, core.State{Time: 0, X: a.Start[0], Y: a.Start[1]})
		goals = append(goals, core.Location{X: a.Goal[0], Y: a.Goal[1]})
	}

	inst, err := core.NewInstance(grid, starts, goals)
	if err != nil {
		return nil, fmt.Errorf("scen: %w", err)
	}
	return inst, nil
}

// Command gen_instances generates random scenario files for
// benchmarking. Generation is deterministic per seed.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/cbsta-grid/internal/algo"
	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

type scenarioOut struct {
	Map struct {
		Dimensions []int   `yaml:"dimensions"`
		Obstacles  [][]int `yaml:"obstacles"`
	} `yaml:"map"`
	Agents []agentOut `yaml:"agents"`
}

type agentOut struct {
	Start []int `yaml:"start"`
	Goal  []int `yaml:"goal"`
}

func main() {
	var (
		count   = flag.Int("count", 10, "number of instances")
		dimx    = flag.Int("dimx", 8, "grid width")
		dimy    = flag.Int("dimy", 8, "grid height")
		agents  = flag.Int("agents", 4, "agent count")
		density = flag.Float64("density", 0.1, "obstacle density")
		seed    = flag.Int64("seed", 1, "random seed")
		outDir  = flag.String("out", "instances", "output directory")
	)
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, "gen_instances:", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	for i := 0; i < *count; i++ {
		scenario := generate(rng, *dimx, *dimy, *agents, *density)
		data, err := yaml.Marshal(scenario)
		if err != nil {
			fmt.Fprintln(os.Stderr, "gen_instances:", err)
			os.Exit(1)
		}
		path := filepath.Join(*outDir, fmt.Sprintf("instance_%03d.yaml", i))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "gen_instances:", err)
			os.Exit(1)
		}
		fmt.Println(path)
	}
}

// generate retries until every agent can reach every goal, so the
// emitted instance is solvable per agent (joint feasibility is the
// planner's problem).
func generate(rng *rand.Rand, dimx, dimy, agents int, density float64) *scenarioOut {
	for {
		var obstacles []core.Location
		blocked := make(map[core.Location]bool)
		for y := 0; y < dimy; y++ {
			for x := 0; x < dimx; x++ {
				if rng.Float64() < density {
					loc := core.Location{X: x, Y: y}
					obstacles = append(obstacles, loc)
					blocked[loc] = true
				}
			}
		}

		free := make([]core.Location, 0, dimx*dimy)
		for y := 0; y < dimy; y++ {
			for x := 0; x < dimx; x++ {
				if loc := (core.Location{X: x, Y: y}); !blocked[loc] {
					free = append(free, loc)
				}
			}
		}
		if len(free) < 2*agents {
			continue
		}
		rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
		starts := free[:agents]
		goals := free[agents : 2*agents]

		grid := core.NewGrid(dimx, dimy, obstacles)
		h := algo.NewShortestPathHeuristic(grid, goals)
		reachable := true
		for _, s := range starts {
			for j := range goals {
				if h.Value(s, j) >= algo.Unreachable {
					reachable = false
				}
			}
		}
		if !reachable {
			continue
		}

		out := &scenarioOut{}
		out.Map.Dimensions = []int{dimx, dimy}
		for _, o := range obstacles {
			out.Map.Obstacles = append(out.Map.Obstacles, []int{o.X, o.Y})
		}
		for i := range starts {
			out.Agents = append(out.Agents, agentOut{
				Start: []int{starts[i].X, starts[i].Y},
				Goal:  []int{goals[i].X, goals[i].Y},
			})
		}
		return out
	}
}

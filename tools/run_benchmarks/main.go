// Command run_benchmarks runs the planners over a directory of
// scenario files and prints a comparison table.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/elektrokombinacija/cbsta-grid/internal/algo"
	"github.com/elektrokombinacija/cbsta-grid/internal/scen"
)

func main() {
	var (
		dir           = flag.String("dir", "instances", "scenario directory")
		groupSize     = flag.Int("groupSize", 0, "agents per assignment group (0 = one group)")
		maxExpansions = flag.Int("maxExpansions", 100000, "high-level expansion cap")
	)
	flag.Parse()

	paths, err := filepath.Glob(filepath.Join(*dir, "*.yaml"))
	if err != nil || len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "run_benchmarks: no scenarios in", *dir)
		os.Exit(1)
	}
	sort.Strings(paths)

	opts := algo.Options{GroupSize: *groupSize, MaxHighLevelExpansions: *maxExpansions}
	fmt.Printf("%-28s %-8s %8s %8s %10s %12s\n", "instance", "solver", "cost", "hlExp", "taDraws", "runtime")

	for _, path := range paths {
		inst, err := scen.Load(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, "run_benchmarks:", err)
			continue
		}
		for _, solver := range []algo.Solver{algo.NewCBS(opts), algo.NewCBSTA(opts)} {
			start := time.Now()
			sol := solver.Solve(inst)
			elapsed := time.Since(start)
			stats := solver.Stats()

			cost := "-"
			if sol != nil {
				cost = fmt.Sprint(sol.Cost)
			}
			fmt.Printf("%-28s %-8s %8s %8d %10d %12v\n",
				filepath.Base(path), solver.Name(), cost,
				stats.HighLevelExpanded, stats.NumTaskAssignments, elapsed)
		}
	}
}

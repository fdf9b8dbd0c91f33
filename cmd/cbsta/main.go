// Command cbsta plans conflict-free grid schedules with CBS or CBS-TA.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/elektrokombinacija/cbsta-grid/internal/algo"
	"github.com/elektrokombinacija/cbsta-grid/internal/logger"
	"github.com/elektrokombinacija/cbsta-grid/internal/scen"
)

func main() {
	var (
		inputFile          = pflag.StringP("input", "i", "", "input scenario file (YAML)")
		outputFile         = pflag.StringP("output", "o", "", "output schedule file (YAML)")
		maxTaskAssignments = pflag.Int("maxTaskAssignments", 0, "maximum number of task assignments to try (0 = unlimited)")
		groupSize          = pflag.Int("groupSize", 0, "number of agents per assignment group (0 = one group)")
		maxExpansions      = pflag.Int("maxExpansions", 0, "high-level expansion cap (0 = unbounded)")
		algorithm          = pflag.String("algorithm", "cbs-ta", "planner: cbs-ta or cbs")
	)
	pflag.Parse()

	if *inputFile == "" || *outputFile == "" {
		fmt.Fprintln(os.Stderr, "cbsta: --input and --output are required")
		pflag.Usage()
		os.Exit(1)
	}

	log, err := logger.New()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cbsta:", err)
		os.Exit(1)
	}
	defer log.Sync()

	inst, err := scen.Load(*inputFile)
	if err != nil {
		log.Error("loading scenario failed", zap.Error(err))
		os.Exit(1)
	}

	opts := algo.Options{
		MaxTaskAssignments:     *maxTaskAssignments,
		GroupSize:              *groupSize,
		MaxHighLevelExpansions: *maxExpansions,
	}
	var solver algo.Solver
	switch *algorithm {
	case "cbs-ta":
		solver = algo.NewCBSTA(opts)
	case "cbs":
		solver = algo.NewCBS(opts)
	default:
		log.Error("unknown algorithm", zap.String("algorithm", *algorithm))
		os.Exit(1)
	}

	log.Info("planning",
		zap.String("algorithm", solver.Name()),
		zap.Int("agents", inst.NumAgents()),
		zap.Int("dimx", inst.Grid.DimX),
		zap.Int("dimy", inst.Grid.DimY),
		zap.Int("obstacles", len(inst.Grid.Obstacles)))

	start := time.Now()
	sol := solver.Solve(inst)
	elapsed := time.Since(start)
	stats := solver.Stats()

	if sol == nil {
		log.Warn("planning not successful",
			zap.Bool("limitReached", stats.LimitReached),
			zap.Int("numTaskAssignments", stats.NumTaskAssignments),
			zap.Duration("runtime", elapsed))
		return
	}

	log.Info("planning successful",
		zap.Int("cost", sol.Cost),
		zap.Int("makespan", sol.Makespan),
		zap.Int("highLevelExpanded", stats.HighLevelExpanded),
		zap.Int("lowLevelExpanded", stats.LowLevelExpanded),
		zap.Int("numTaskAssignments", stats.NumTaskAssignments),
		zap.Duration("runtime", elapsed))

	err = scen.Write(*outputFile, sol, scen.Statistics{
		Cost:               sol.Cost,
		Makespan:           sol.Makespan,
		Runtime:            elapsed.Seconds(),
		HighLevelExpanded:  stats.HighLevelExpanded,
		LowLevelExpanded:   stats.LowLevelExpanded,
		NumTaskAssignments: stats.NumTaskAssignments,
	})
	if err != nil {
		log.Error("writing schedule failed", zap.Error(err))
		os.Exit(1)
	}
}

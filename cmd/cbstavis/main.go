// Command cbstavis solves a scenario and plays the schedule back in a
// GUI window.
package main

import (
	"fmt"
	"log"
	"os"

	"gioui.org/app"
	"gioui.org/unit"
	"github.com/spf13/pflag"

	"github.com/elektrokombinacija/cbsta-grid/internal/algo"
	"github.com/elektrokombinacija/cbsta-grid/internal/scen"
	"github.com/elektrokombinacija/cbsta-grid/internal/vis"
)

func main() {
	var (
		inputFile = pflag.StringP("input", "i", "", "input scenario file (YAML)")
		groupSize = pflag.Int("groupSize", 0, "number of agents per assignment group (0 = one group)")
	)
	pflag.Parse()

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "cbstavis: --input is required")
		pflag.Usage()
		os.Exit(1)
	}

	inst, err := scen.Load(*inputFile)
	if err != nil {
		log.Fatal(err)
	}
	solver := algo.NewCBSTA(algo.Options{GroupSize: *groupSize})
	sol := solver.Solve(inst)
	if sol == nil {
		log.Fatal("cbstavis: planning not successful")
	}

	go func() {
		window := new(app.Window)
		window.Option(
			app.Title("CBS-TA Schedule Playback"),
			app.Size(unit.Dp(1000), unit.Dp(800)),
		)
		if err := vis.NewApp(inst, sol).Run(window); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

package scen

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/elektrokombinacija/cbsta-grid/internal/core"
)

// Statistics is the block written ahead of the schedule.
type Statistics struct {
	Cost               int
	Makespan           int
	Runtime            float64
	HighLevelExpanded  int
	LowLevelExpanded   int
	NumTaskAssignments int
}

// Marshal renders a solved schedule. The document is built from
// explicit nodes so the key order is fixed and runs diff cleanly.
func Marshal(sol *core.Solution, stats Statistics) ([]byte, error) {
	statsNode := mapping(
		"cost", intNode(stats.Cost),
		"makespan", intNode(stats.Makespan),
		"runtime", floatNode(stats.Runtime),
		"highLevelExpanded", intNode(stats.HighLevelExpanded),
		"lowLevelExpanded", intNode(stats.LowLevelExpanded),
		"numTaskAssignments", intNode(stats.NumTaskAssignments),
	)

	schedule := &yaml.Node{Kind: yaml.MappingNode}
	for a := range sol.Plans {
		steps := &yaml.Node{Kind: yaml.SequenceNode}
		for _, entry := range sol.Plans[a].States {
			steps.Content = append(steps.Content, mapping(
				"x", intNode(entry.State.X),
				"y", intNode(entry.State.Y),
				"t", intNode(entry.State.Time),
			))
		}
		schedule.Content = append(schedule.Content,
			scalarNode("agent"+strconv.Itoa(a)), steps)
	}

	doc := mapping("statistics", statsNode, "schedule", schedule)
	return yaml.Marshal(doc)
}

// Write stores the schedule at path.
func Write(path string, sol *core.Solution, stats Statistics) error {
	data, err := Marshal(sol, stats)
	if err != nil {
		return fmt.Errorf("scen: marshal schedule: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("scen: write %s: %w", path, err)
	}
	return nil
}

func scalarNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: s}
}

func intNode(v int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(v)}
}

func floatNode(v float64) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: strconv.FormatFloat(v, 'g', -1, 64)}
}

func mapping(kv ...any) *yaml.Node {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i < len(kv); i += 2 {
		n.Content = append(n.Content, scalarNode(kv[i].(string)), kv[i+1].(*yaml.Node))
	}
	return n
}

// levelcheck plays every level in a levels.yaml headless, with no tilt, and
// writes a YAML report of how each one ended. Useful for spotting levels that
// can never be won without steering gravity.
package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/gravshot/gravshot/internal/core/event"
	"github.com/gravshot/gravshot/internal/data"
	"github.com/gravshot/gravshot/internal/game"
	"github.com/gravshot/gravshot/internal/input"
	"github.com/gravshot/gravshot/internal/level"
	"github.com/gravshot/gravshot/internal/world"
)

type Result struct {
	Level       int    `yaml:"level"`
	Name        string `yaml:"name"`
	Outcome     string `yaml:"outcome"` // win, lose or undecided
	DecidedAt   int    `yaml:"decided_at,omitempty"`
	Frames      int    `yaml:"frames"`
	Adversaries int    `yaml:"adversaries_left"`
}

const defaultFrames = 3600

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: levelcheck <levels.yaml> [frames] [seed]")
		os.Exit(1)
	}

	levels, err := data.LoadLevelTable(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	frames := defaultFrames
	if len(os.Args) > 2 {
		if frames, err = strconv.Atoi(os.Args[2]); err != nil || frames <= 0 {
			fmt.Fprintf(os.Stderr, "bad frame count %q\n", os.Args[2])
			os.Exit(1)
		}
	}
	var seed int64 = 1
	if len(os.Args) > 3 {
		if seed, err = strconv.ParseInt(os.Args[3], 10, 64); err != nil {
			fmt.Fprintf(os.Stderr, "bad seed %q\n", os.Args[3])
			os.Exit(1)
		}
	}

	results := make([]Result, 0, levels.Count())
	for n := 1; n <= levels.Count(); n++ {
		results = append(results, check(levels.Get(n), frames, seed))
	}

	// Hardest first: losses, then undecided, then wins.
	rank := map[string]int{"lose": 0, "undecided": 1, "win": 2}
	sort.SliceStable(results, func(i, j int) bool {
		return rank[results[i].Outcome] < rank[results[j].Outcome]
	})

	out, err := yaml.Marshal(results)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("# levelcheck: %d levels, %d frames max, seed %d\n", len(results), frames, seed)
	os.Stdout.Write(out)
}

// check plays one level until it asks for a reset or the next level, or the
// frame budget runs out.
func check(rules *data.LevelRules, frames int, seed int64) Result {
	bus := event.NewBus()
	sim := game.NewSimulation(level.NewGeneric(rules, nil), game.Options{
		Accel: input.NewFixed(0, -1),
		Bus:   bus,
		Seed:  seed,
	})

	r := Result{Level: rules.Number, Name: rules.Name, Outcome: "undecided"}
	done := false
	event.Subscribe(bus, func(e event.OutcomeFired) {
		switch e.Outcome {
		case world.OutcomeWin, world.OutcomeLose:
			r.Outcome, r.DecidedAt = e.Outcome.String(), e.Frame
		}
	})
	event.Subscribe(bus, func(event.LevelReset) { done = true })
	event.Subscribe(bus, func(event.LevelAdvance) { done = true })

	for !done && sim.Frame() < frames {
		sim.Advance()
		bus.Flush()
	}
	r.Frames = sim.Frame()
	r.Adversaries = sim.Stats().Adversaries
	return r
}

// Command analyze prints quick, human-readable heuristics about layout
// files. It summarizes entity counts and timing, computes the best
// possible score, measures each monster's patrol span, and highlights
// problems a plain validation pass would miss: coins buried in walls,
// monsters with no room to move, and exits the player cannot reach
// before the clock runs out.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pocketportal/doors/game/engine"
)

func main() {
	paths := os.Args[1:]
	if len(paths) == 0 {
		dir := os.Getenv("LAYOUT_DIR")
		if dir == "" {
			dir = "layouts"
		}
		entries, err := os.ReadDir(dir)
		if err != nil {
			fmt.Printf("No layout files given and no %s directory; analyzing the built-in layout.\n", dir)
			analyzeLayout("(built-in classic)", engine.DefaultLayout())
			return
		}
		for _, entry := range entries {
			if !entry.IsDir() && strings.HasSuffix(entry.Name(), ".json") {
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
	}

	for _, path := range paths {
		fmt.Printf("\n=== Analyzing %s ===\n", path)
		analyzeFile(path)
	}
}

func analyzeFile(path string) {
	data, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("Error reading file: %v\n", err)
		return
	}

	var layout engine.LayoutConfig
	if err := json.Unmarshal(data, &layout); err != nil {
		fmt.Printf("Error parsing JSON: %v\n", err)
		return
	}

	if err := engine.ValidateLayout(&layout); err != nil {
		fmt.Printf("WARNING: layout does not validate: %v\n", err)
	}

	analyzeLayout(path, &layout)
}

func analyzeLayout(label string, layout *engine.LayoutConfig) {
	fmt.Printf("Name: %s\n", layout.Name)
	fmt.Printf("Screen: %g x %g, exit line at %g\n", layout.ScreenWidth, layout.ScreenHeight, layout.ExitLine)
	fmt.Printf("Walls: %d  Monsters: %d  Coins: %d\n", len(layout.Walls), len(layout.Monsters), len(layout.Coins))
	fmt.Printf("Time: %gs  Portal budget: %d  Player speed: %g\n", layout.StartingTime, layout.PortalBudget, layout.PlayerSpeed)

	maxBusts := layout.PortalBudget
	if len(layout.Monsters) < maxBusts {
		maxBusts = len(layout.Monsters)
	}
	maxScore := len(layout.Coins)*engine.PointsPerCoin + maxBusts*engine.PointsPerBust
	fmt.Printf("Best possible score: %d (%d coins + %d busts)\n", maxScore, len(layout.Coins), maxBusts)

	walls := make([]engine.Wall, 0, len(layout.Walls))
	for _, wc := range layout.Walls {
		walls = append(walls, engine.Wall{Box: engine.Box{X: wc.X, Y: wc.Y, W: wc.W, H: wc.H}})
	}

	reportBuriedCoins(layout, walls)
	reportPatrolSpans(layout, walls)
	reportExitTiming(layout)
}

// reportBuriedCoins flags coins whose box overlaps a wall. The player
// can never collect them without clipping through the wall, so they are
// dead score.
func reportBuriedCoins(layout *engine.LayoutConfig, walls []engine.Wall) {
	var buried []engine.Position
	for _, c := range layout.Coins {
		box := engine.CenteredBox(c.X, c.Y, layout.CoinSize, layout.CoinSize)
		for _, w := range walls {
			if box.Intersects(w.Box) {
				buried = append(buried, c)
				break
			}
		}
	}

	if len(buried) > 0 {
		fmt.Printf("WARNING: %d coins overlap walls and cannot be collected:\n", len(buried))
		for i, c := range buried {
			if i >= 5 {
				fmt.Printf("   ... and %d more\n", len(buried)-5)
				break
			}
			fmt.Printf("   Buried coin at (%g, %g)\n", c.X, c.Y)
		}
	} else {
		fmt.Printf("All coins sit clear of walls\n")
	}
}

// reportPatrolSpans measures how far each monster can travel along its
// axis before bouncing, walking the spawn box outward in 1px steps. A
// zero span means the monster is wedged and will jitter in place.
func reportPatrolSpans(layout *engine.LayoutConfig, walls []engine.Wall) {
	stuck := 0
	for i, mc := range layout.Monsters {
		spawn := engine.CenteredBox(mc.X, mc.Y, layout.MonsterSize, layout.MonsterSize)
		span := patrolSpan(spawn, mc.Axis, layout, walls)
		if span == 0 {
			fmt.Printf("WARNING: monster %d at (%g, %g) has no room to patrol\n", i+1, mc.X, mc.Y)
			stuck++
		}
	}
	if stuck == 0 {
		fmt.Printf("All monsters have room to patrol\n")
	}
}

// patrolSpan returns the free travel in pixels across both directions
// of the monster's axis
func patrolSpan(spawn engine.Box, axis engine.Axis, layout *engine.LayoutConfig, walls []engine.Wall) float64 {
	span := 0.0
	for _, dir := range []float64{-1, 1} {
		probe := spawn
		for {
			if axis == engine.AxisHorizontal {
				probe.X += dir
			} else {
				probe.Y += dir
			}
			if probe.X < 0 || probe.Y < 0 ||
				probe.Right() > layout.ScreenWidth || probe.Bottom() > layout.ScreenHeight {
				break
			}
			blocked := false
			for _, w := range walls {
				if probe.Intersects(w.Box) {
					blocked = true
					break
				}
			}
			if blocked {
				break
			}
			span++
		}
	}
	return span
}

// reportExitTiming compares the straight-line dash to the exit against
// the starting clock. Walls make the real path longer, so a dash that
// already overruns the clock means the layout is unwinnable.
func reportExitTiming(layout *engine.LayoutConfig) {
	spawn := engine.CenteredBox(layout.PlayerSpawn.X, layout.PlayerSpawn.Y, layout.PlayerSize, layout.PlayerSize)
	distance := layout.ExitLine - spawn.Right()
	if distance <= 0 {
		fmt.Printf("WARNING: player spawns past the exit line\n")
		return
	}

	ticks := distance / layout.PlayerSpeed
	seconds := ticks * engine.TickSeconds
	fmt.Printf("Straight dash to exit: %.1fs of %gs\n", seconds, layout.StartingTime)
	if seconds > layout.StartingTime {
		fmt.Printf("WARNING: the exit cannot be reached before time expires\n")
	}
}

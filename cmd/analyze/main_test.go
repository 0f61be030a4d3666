package main

import (
	"testing"

	"github.com/pocketportal/doors/game/engine"
)

func analysisWalls(layout *engine.LayoutConfig) []engine.Wall {
	walls := make([]engine.Wall, 0, len(layout.Walls))
	for _, wc := range layout.Walls {
		walls = append(walls, engine.Wall{Box: engine.Box{X: wc.X, Y: wc.Y, W: wc.W, H: wc.H}})
	}
	return walls
}

func TestPatrolSpan(t *testing.T) {
	layout := &engine.LayoutConfig{
		ScreenWidth:  400,
		ScreenHeight: 300,
		MonsterSize:  20,
	}
	walls := []engine.Wall{
		{Box: engine.Box{X: 0, Y: 0, W: 10, H: 300}},
		{Box: engine.Box{X: 200, Y: 0, W: 10, H: 300}},
	}

	// Between the two walls: free run from x=10 to x=200.
	spawn := engine.CenteredBox(100, 150, 20, 20)
	span := patrolSpan(spawn, engine.AxisHorizontal, layout, walls)
	if span != 170 {
		t.Errorf("Expected a 170px span between the walls, got %g", span)
	}

	// Wedged monster: walls hug both sides.
	tight := []engine.Wall{
		{Box: engine.Box{X: 80, Y: 0, W: 10, H: 300}},
		{Box: engine.Box{X: 110, Y: 0, W: 10, H: 300}},
	}
	spawn = engine.CenteredBox(100, 150, 20, 20)
	if span := patrolSpan(spawn, engine.AxisHorizontal, layout, tight); span != 0 {
		t.Errorf("Expected a wedged monster to have zero span, got %g", span)
	}

	// Vertical axis ignores horizontal walls.
	span = patrolSpan(spawn, engine.AxisVertical, layout, tight)
	if span == 0 {
		t.Error("Expected free vertical travel between vertical walls")
	}
}

func TestDefaultLayoutHeuristics(t *testing.T) {
	layout := engine.DefaultLayout()
	walls := analysisWalls(layout)

	// The shipped layout must be clean: no buried coins, no wedged
	// monsters, and an exit reachable well within the clock.
	for i, c := range layout.Coins {
		box := engine.CenteredBox(c.X, c.Y, layout.CoinSize, layout.CoinSize)
		for _, w := range walls {
			if box.Intersects(w.Box) {
				t.Errorf("Coin %d at (%g, %g) overlaps a wall", i+1, c.X, c.Y)
			}
		}
	}

	for i, mc := range layout.Monsters {
		spawn := engine.CenteredBox(mc.X, mc.Y, layout.MonsterSize, layout.MonsterSize)
		if span := patrolSpan(spawn, mc.Axis, layout, walls); span == 0 {
			t.Errorf("Monster %d at (%g, %g) has no room to patrol", i+1, mc.X, mc.Y)
		}
	}

	spawnBox := engine.CenteredBox(layout.PlayerSpawn.X, layout.PlayerSpawn.Y, layout.PlayerSize, layout.PlayerSize)
	dashSeconds := (layout.ExitLine - spawnBox.Right()) / layout.PlayerSpeed * engine.TickSeconds
	if dashSeconds >= layout.StartingTime {
		t.Errorf("Straight dash takes %.1fs, longer than the %gs clock", dashSeconds, layout.StartingTime)
	}
}

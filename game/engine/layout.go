package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// WallConfig describes one wall rectangle by its min corner and size
type WallConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// MonsterConfig describes one patrol: spawn center, signed speed in
// pixels per tick, and the fixed movement axis
type MonsterConfig struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Speed float64 `json:"speed"`
	Axis  Axis    `json:"axis"`
}

// LayoutConfig is the static maze description for a session: a constant
// configuration table, never computed. The exit line is part of the
// layout rather than a constant in code so that other mazes can place
// it elsewhere.
type LayoutConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`

	ScreenWidth  float64 `json:"screen_width"`
	ScreenHeight float64 `json:"screen_height"`
	ExitLine     float64 `json:"exit_line"`

	StartingTime float64 `json:"starting_time"`
	PortalBudget int     `json:"portal_budget"`

	PlayerSpawn Position `json:"player_spawn"`
	PlayerSpeed float64  `json:"player_speed"`

	PlayerSize  float64 `json:"player_size"`
	MonsterSize float64 `json:"monster_size"`
	CoinSize    float64 `json:"coin_size"`
	PortalSize  float64 `json:"portal_size"`

	Walls    []WallConfig    `json:"walls"`
	Monsters []MonsterConfig `json:"monsters"`
	Coins    []Position      `json:"coins"`
}

// ValidateLayout validates a layout for correctness and playability
func ValidateLayout(layout *LayoutConfig) error {
	if layout == nil {
		return fmt.Errorf("layout validation: layout is nil")
	}
	if layout.Name == "" {
		return fmt.Errorf("layout validation: name is required")
	}
	if layout.ScreenWidth <= 0 || layout.ScreenHeight <= 0 {
		return fmt.Errorf("layout validation: screen size must be positive, got %gx%g",
			layout.ScreenWidth, layout.ScreenHeight)
	}
	if layout.ExitLine <= 0 || layout.ExitLine > layout.ScreenWidth {
		return fmt.Errorf("layout validation: exit_line must be inside the screen, got %g", layout.ExitLine)
	}
	if layout.StartingTime <= 0 {
		return fmt.Errorf("layout validation: starting_time must be positive, got %g", layout.StartingTime)
	}
	if layout.PortalBudget < 0 {
		return fmt.Errorf("layout validation: portal_budget must be non-negative, got %d", layout.PortalBudget)
	}
	if layout.PlayerSpeed <= 0 {
		return fmt.Errorf("layout validation: player_speed must be positive, got %g", layout.PlayerSpeed)
	}
	for name, size := range map[string]float64{
		"player_size":  layout.PlayerSize,
		"monster_size": layout.MonsterSize,
		"coin_size":    layout.CoinSize,
		"portal_size":  layout.PortalSize,
	} {
		if size <= 0 {
			return fmt.Errorf("layout validation: %s must be positive, got %g", name, size)
		}
	}

	if len(layout.Walls) == 0 {
		return fmt.Errorf("layout validation: at least one wall is required")
	}
	walls := make([]Wall, 0, len(layout.Walls))
	for i, wc := range layout.Walls {
		b, err := NewBox(wc.X, wc.Y, wc.W, wc.H)
		if err != nil {
			return fmt.Errorf("layout validation: wall %d: %w", i+1, err)
		}
		walls = append(walls, Wall{Box: b})
	}

	screen := Box{W: layout.ScreenWidth, H: layout.ScreenHeight}

	if len(layout.Monsters) == 0 {
		return fmt.Errorf("layout validation: at least one monster is required")
	}
	for i, mc := range layout.Monsters {
		if mc.Speed == 0 {
			return fmt.Errorf("layout validation: monster %d must have non-zero speed", i+1)
		}
		if mc.Axis != AxisHorizontal && mc.Axis != AxisVertical {
			return fmt.Errorf("layout validation: monster %d has invalid axis %q", i+1, mc.Axis)
		}
		spawn := CenteredBox(mc.X, mc.Y, layout.MonsterSize, layout.MonsterSize)
		if !spawn.Intersects(screen) {
			return fmt.Errorf("layout validation: monster %d spawns off screen at (%g, %g)", i+1, mc.X, mc.Y)
		}
		if intersectsAnyWall(spawn, walls) {
			return fmt.Errorf("layout validation: monster %d spawns inside a wall at (%g, %g)", i+1, mc.X, mc.Y)
		}
	}

	if len(layout.Coins) == 0 {
		return fmt.Errorf("layout validation: at least one coin is required")
	}
	for i, c := range layout.Coins {
		spawn := CenteredBox(c.X, c.Y, layout.CoinSize, layout.CoinSize)
		if !spawn.Intersects(screen) {
			return fmt.Errorf("layout validation: coin %d sits off screen at (%g, %g)", i+1, c.X, c.Y)
		}
	}

	playerSpawn := CenteredBox(layout.PlayerSpawn.X, layout.PlayerSpawn.Y, layout.PlayerSize, layout.PlayerSize)
	if !playerSpawn.Intersects(screen) {
		return fmt.Errorf("layout validation: player spawns off screen at (%g, %g)",
			layout.PlayerSpawn.X, layout.PlayerSpawn.Y)
	}
	if intersectsAnyWall(playerSpawn, walls) {
		return fmt.Errorf("layout validation: player spawns inside a wall at (%g, %g)",
			layout.PlayerSpawn.X, layout.PlayerSpawn.Y)
	}

	return nil
}

// LoadLayout reads and validates a layout from a JSON file
func LoadLayout(path string) (*LayoutConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var layout LayoutConfig
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	if err := ValidateLayout(&layout); err != nil {
		return nil, err
	}

	return &layout, nil
}

// DefaultLayout returns the hand-authored classic dungeon: a 1280x720
// screen with 21 walls, 12 monster patrols, 28 coins, a 100 second
// clock, and a budget of 5 portals. The exit gap sits past x=1050 on
// the right edge, below the end of the outer right wall.
func DefaultLayout() *LayoutConfig {
	return &LayoutConfig{
		Name:        "classic",
		Description: "The original dungeon of the Doors of Perception",

		ScreenWidth:  1280,
		ScreenHeight: 720,
		ExitLine:     1050,

		StartingTime: 100,
		PortalBudget: 5,

		PlayerSpawn: Position{X: 100, Y: 200},
		PlayerSpeed: 3,

		PlayerSize:  40,
		MonsterSize: 36,
		CoinSize:    16,
		PortalSize:  32,

		Walls: []WallConfig{
			{X: 50, Y: 50, W: 1000, H: 5},
			{X: 1050, Y: 50, W: 5, H: 550},
			{X: 50, Y: 700, W: 1000, H: 5},
			{X: 50, Y: 50, W: 5, H: 650},
			{X: 150, Y: 150, W: 5, H: 550},
			{X: 250, Y: 150, W: 700, H: 5},
			{X: 250, Y: 150, W: 5, H: 250},
			{X: 250, Y: 500, W: 5, H: 100},
			{X: 250, Y: 600, W: 100, H: 5},
			{X: 350, Y: 500, W: 5, H: 100},
			{X: 350, Y: 250, W: 5, H: 150},
			{X: 450, Y: 150, W: 5, H: 450},
			{X: 450, Y: 600, W: 300, H: 5},
			{X: 550, Y: 500, W: 300, H: 5},
			{X: 850, Y: 500, W: 5, H: 200},
			{X: 550, Y: 150, W: 5, H: 250},
			{X: 650, Y: 250, W: 5, H: 250},
			{X: 750, Y: 150, W: 5, H: 250},
			{X: 850, Y: 250, W: 5, H: 150},
			{X: 850, Y: 250, W: 200, H: 5},
			{X: 950, Y: 400, W: 5, H: 200},
		},

		Monsters: []MonsterConfig{
			{X: 220, Y: 100, Speed: 2.3, Axis: AxisHorizontal},
			{X: 200, Y: 400, Speed: 2.1, Axis: AxisVertical},
			{X: 300, Y: 450, Speed: 1.9, Axis: AxisHorizontal},
			{X: 400, Y: 225, Speed: 2, Axis: AxisVertical},
			{X: 490, Y: 650, Speed: 2.2, Axis: AxisHorizontal},
			{X: 500, Y: 200, Speed: 2, Axis: AxisVertical},
			{X: 630, Y: 550, Speed: 2.4, Axis: AxisHorizontal},
			{X: 600, Y: 450, Speed: 2.1, Axis: AxisVertical},
			{X: 700, Y: 450, Speed: 1.9, Axis: AxisHorizontal},
			{X: 800, Y: 200, Speed: 1.9, Axis: AxisHorizontal},
			{X: 900, Y: 300, Speed: 2.1, Axis: AxisHorizontal},
			{X: 1000, Y: 625, Speed: 2, Axis: AxisVertical},
		},

		Coins: []Position{
			{X: 100, Y: 100},
			{X: 100, Y: 535},
			{X: 100, Y: 625},
			{X: 200, Y: 200},
			{X: 200, Y: 505},
			{X: 200, Y: 625},
			{X: 300, Y: 100},
			{X: 300, Y: 200},
			{X: 300, Y: 415},
			{X: 300, Y: 625},
			{X: 400, Y: 335},
			{X: 400, Y: 425},
			{X: 500, Y: 200},
			{X: 500, Y: 100},
			{X: 500, Y: 425},
			{X: 500, Y: 625},
			{X: 600, Y: 415},
			{X: 600, Y: 525},
			{X: 700, Y: 200},
			{X: 800, Y: 200},
			{X: 800, Y: 425},
			{X: 800, Y: 535},
			{X: 900, Y: 325},
			{X: 900, Y: 425},
			{X: 900, Y: 625},
			{X: 1000, Y: 100},
			{X: 1000, Y: 200},
			{X: 1000, Y: 425},
		},
	}
}

package engine

import (
	"os"
	"path/filepath"
	"testing"
)

// testLayout returns a small single-room maze shared by the engine
// tests: border walls on three sides, a vertical divider at x=200, one
// horizontal patrol, and two coins. The right side is open past the
// exit line at x=350.
func testLayout() *LayoutConfig {
	return &LayoutConfig{
		Name:        "test-room",
		Description: "Single room used by the engine tests",

		ScreenWidth:  400,
		ScreenHeight: 300,
		ExitLine:     350,

		StartingTime: 10,
		PortalBudget: 2,

		PlayerSpawn: Position{X: 50, Y: 150},
		PlayerSpeed: 4,

		PlayerSize:  20,
		MonsterSize: 20,
		CoinSize:    10,
		PortalSize:  16,

		Walls: []WallConfig{
			{X: 0, Y: 0, W: 400, H: 10},
			{X: 0, Y: 290, W: 400, H: 10},
			{X: 0, Y: 0, W: 10, H: 300},
			{X: 200, Y: 100, W: 10, H: 100},
		},

		Monsters: []MonsterConfig{
			{X: 100, Y: 150, Speed: 5, Axis: AxisHorizontal},
		},

		Coins: []Position{
			{X: 80, Y: 150},
			{X: 300, Y: 150},
		},
	}
}

func TestDefaultLayoutIsValid(t *testing.T) {
	layout := DefaultLayout()
	if err := ValidateLayout(layout); err != nil {
		t.Fatalf("DefaultLayout failed validation: %v", err)
	}

	if len(layout.Walls) != 21 {
		t.Errorf("Expected 21 walls, got %d", len(layout.Walls))
	}
	if len(layout.Monsters) != 12 {
		t.Errorf("Expected 12 monsters, got %d", len(layout.Monsters))
	}
	if len(layout.Coins) != 28 {
		t.Errorf("Expected 28 coins, got %d", len(layout.Coins))
	}
	if layout.StartingTime != 100 {
		t.Errorf("Expected 100 seconds of starting time, got %g", layout.StartingTime)
	}
	if layout.PortalBudget != 5 {
		t.Errorf("Expected a budget of 5 portals, got %d", layout.PortalBudget)
	}
	if layout.ExitLine != 1050 {
		t.Errorf("Expected exit line at x=1050, got %g", layout.ExitLine)
	}
}

func TestValidateLayoutRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*LayoutConfig)
	}{
		{"missing name", func(l *LayoutConfig) { l.Name = "" }},
		{"zero screen width", func(l *LayoutConfig) { l.ScreenWidth = 0 }},
		{"negative screen height", func(l *LayoutConfig) { l.ScreenHeight = -720 }},
		{"exit line at zero", func(l *LayoutConfig) { l.ExitLine = 0 }},
		{"exit line past screen", func(l *LayoutConfig) { l.ExitLine = 500 }},
		{"zero starting time", func(l *LayoutConfig) { l.StartingTime = 0 }},
		{"negative portal budget", func(l *LayoutConfig) { l.PortalBudget = -1 }},
		{"zero player speed", func(l *LayoutConfig) { l.PlayerSpeed = 0 }},
		{"zero player size", func(l *LayoutConfig) { l.PlayerSize = 0 }},
		{"zero coin size", func(l *LayoutConfig) { l.CoinSize = 0 }},
		{"no walls", func(l *LayoutConfig) { l.Walls = nil }},
		{"negative wall width", func(l *LayoutConfig) { l.Walls[0].W = -5 }},
		{"no monsters", func(l *LayoutConfig) { l.Monsters = nil }},
		{"zero monster speed", func(l *LayoutConfig) { l.Monsters[0].Speed = 0 }},
		{"invalid monster axis", func(l *LayoutConfig) { l.Monsters[0].Axis = "diagonal" }},
		{"monster inside wall", func(l *LayoutConfig) { l.Monsters[0].X, l.Monsters[0].Y = 205, 150 }},
		{"monster off screen", func(l *LayoutConfig) { l.Monsters[0].X = 900 }},
		{"no coins", func(l *LayoutConfig) { l.Coins = nil }},
		{"coin off screen", func(l *LayoutConfig) { l.Coins[0].X = -50 }},
		{"player inside wall", func(l *LayoutConfig) { l.PlayerSpawn = Position{X: 205, Y: 150} }},
		{"player off screen", func(l *LayoutConfig) { l.PlayerSpawn = Position{X: 500, Y: 150} }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			layout := testLayout()
			test.mutate(layout)
			if err := ValidateLayout(layout); err == nil {
				t.Error("Expected validation error, got nil")
			}
		})
	}

	if err := ValidateLayout(nil); err == nil {
		t.Error("Expected validation error for nil layout")
	}
}

func TestLoadLayout(t *testing.T) {
	dir := t.TempDir()

	// A valid layout round-trips through JSON.
	path := filepath.Join(dir, "room.json")
	data := `{
		"name": "room",
		"description": "test room",
		"screen_width": 400,
		"screen_height": 300,
		"exit_line": 350,
		"starting_time": 10,
		"portal_budget": 2,
		"player_spawn": {"x": 50, "y": 150},
		"player_speed": 4,
		"player_size": 20,
		"monster_size": 20,
		"coin_size": 10,
		"portal_size": 16,
		"walls": [{"x": 0, "y": 0, "w": 400, "h": 10}],
		"monsters": [{"x": 100, "y": 150, "speed": 5, "axis": "horizontal"}],
		"coins": [{"x": 80, "y": 150}]
	}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Failed to write layout file: %v", err)
	}

	layout, err := LoadLayout(path)
	if err != nil {
		t.Fatalf("LoadLayout failed: %v", err)
	}
	if layout.Name != "room" {
		t.Errorf("Expected name 'room', got %q", layout.Name)
	}
	if len(layout.Walls) != 1 || len(layout.Monsters) != 1 || len(layout.Coins) != 1 {
		t.Errorf("Unexpected entity counts: %d walls, %d monsters, %d coins",
			len(layout.Walls), len(layout.Monsters), len(layout.Coins))
	}

	// Broken JSON is a load error.
	broken := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(broken, []byte("{not json"), 0644); err != nil {
		t.Fatalf("Failed to write broken file: %v", err)
	}
	if _, err := LoadLayout(broken); err == nil {
		t.Error("Expected error for malformed JSON")
	}

	// A parseable but invalid layout is rejected too.
	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"name": "x"}`), 0644); err != nil {
		t.Fatalf("Failed to write invalid file: %v", err)
	}
	if _, err := LoadLayout(invalid); err == nil {
		t.Error("Expected validation error for incomplete layout")
	}

	// Missing file surfaces the underlying error.
	if _, err := LoadLayout(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}

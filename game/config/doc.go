// Package config provides layout management for Doors of Perception.
//
// The config package handles:
//   - Loading dungeon layouts from JSON files
//   - Layout validation and caching
//   - Default layout selection
//   - Layout discovery and listing
//
// Layout Format:
//
// Layouts are stored as JSON files in the layouts directory. Each
// layout defines:
//   - Screen dimensions and the exit line
//   - Wall rectangles in pixel coordinates
//   - Monster spawn points with per-monster speed and patrol axis
//   - Coin spawn points
//   - Player spawn, movement speed, starting time and portal budget
//
// Default Layout:
//
// The manager prefers classic.json from the layout directory, falls
// back to the first valid layout it finds, and as a last resort uses
// the built-in classic dungeon compiled into the engine. A manager is
// therefore always usable even over an empty directory.
//
// Usage:
//
//	manager, err := config.NewManager("layouts")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific layout
//	layout, err := manager.LoadLayout("classic")
//
//	// Get the default layout
//	layout = manager.GetDefault()
//
//	// List available layouts
//	infos, err := manager.ListLayouts()
//
// Validation:
//
// All layouts pass engine.ValidateLayout before they are cached or
// saved: spawn points must be on screen and clear of walls, monsters
// need a nonzero speed and a known patrol axis, and the exit line must
// sit inside the screen.
package config

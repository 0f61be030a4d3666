// Package engine provides the core simulation for Doors of Perception.
//
// The engine package implements the game mechanics including:
//   - Axis-aligned bounding box placement and collision for all entities
//   - Player movement with axis-separated wall resolution and coin pickup
//   - Monster patrol movement with wall bounces and player capture
//   - Portal placement against a finite budget and monster exorcism
//   - The countdown scoreboard and derived score
//   - The session state machine (start, playing, game over) and the
//     fixed-order tick pipeline that drives one simulation step
//
// Core Types:
//
// Engine owns one live World and one Scoreboard and is the only place a
// state transition may happen. World is the full entity collection for a
// single playthrough and is rebuilt wholesale on every begin or restart.
// LayoutConfig is the static maze description (walls, monster patrols,
// coin positions) loaded from JSON or taken from DefaultLayout.
//
// Usage:
//
//	layout := engine.DefaultLayout()
//
//	eng, err := engine.NewEngine(layout)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// One simulation step per frame at 60 Hz.
//	eng.Tick(engine.Input{Right: true})
//	snap := eng.Snapshot()
//
// Game Rules:
//
// The player steers through a walled dungeon, collecting coins while
// monsters patrol fixed horizontal or vertical routes. Dropping a portal
// spends one unit of a per-session budget; a monster that wanders into a
// portal is removed and scored. The session ends when the player slips
// past the exit line on the right, is touched by a monster, or runs out
// of time. All three endings are ordinary state transitions, not errors.
package engine

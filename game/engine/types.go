package engine

import "fmt"

// State identifies the phase of a game session
type State int

const (
	StateStart State = iota
	StatePlaying
	StateGameOver
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// EndReason identifies why a session reached game over
type EndReason string

const (
	ReasonNone        EndReason = ""
	ReasonReachedExit EndReason = "reached-exit"
	ReasonCaught      EndReason = "caught-by-monster"
	ReasonTimeExpired EndReason = "time-expired"
)

// Message returns the player-facing text for an end reason
func (r EndReason) Message() string {
	switch r {
	case ReasonReachedExit:
		return "You made it out alive!"
	case ReasonCaught:
		return "You were discombobulated by a ghost!"
	case ReasonTimeExpired:
		return "You ran out of time!"
	default:
		return ""
	}
}

// Axis is the fixed patrol axis of a monster
type Axis string

const (
	AxisHorizontal Axis = "horizontal"
	AxisVertical   Axis = "vertical"
)

// Position represents an x,y point in screen coordinates
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Input is the polled input state for a single tick. The directional
// fields are level-triggered (held keys); the rest are edge-triggered
// key-down events.
type Input struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool

	Begin       bool
	Restart     bool
	PlacePortal bool
}

// Outcome is the explicit result a tick phase hands back to the engine.
// Phases never flip session state themselves; the engine applies the
// transition, which keeps every state change in one place.
type Outcome struct {
	Over   bool
	Reason EndReason
}

// endWith builds a terminal outcome for the given reason
func endWith(r EndReason) Outcome {
	return Outcome{Over: true, Reason: r}
}

// Wall is a static obstacle. Walls never move or disappear during a
// session.
type Wall struct {
	Box Box
}

// Coin is a collectible. A coin has no behavior of its own; the player
// phase removes it from the live set on overlap.
type Coin struct {
	Box Box
}

// Portal is a monster trap placed at the player's center. A portal
// persists after exorcising a monster and lives until the world is
// rebuilt.
type Portal struct {
	Box Box
}

package engine

// TickSeconds is the fixed simulation step: one tick per frame at 60 Hz
const TickSeconds = 1.0 / 60.0

// Engine is the game state machine for one session. It owns the live
// world and scoreboard and is the sole authority allowed to change
// session state: tick phases report an Outcome and the engine applies
// it. There is no shared global state; callers hold the engine and pass
// polled input into Tick once per frame.
type Engine struct {
	layout *LayoutConfig
	world  *World
	score  *Scoreboard
	state  State
	reason EndReason
}

// Snapshot is the render-ready view of one tick: the full set of live
// entity boxes, the scoreboard, and the session state with its game
// over reason. The renderer consumes one per frame and never touches
// the live world.
type Snapshot struct {
	State  State
	Reason EndReason

	Player   Box
	Walls    []Box
	Monsters []Box
	Coins    []Box
	Portals  []Box

	Score ScoreboardView
}

// NewEngine creates an engine in the start state with a world already
// built, so the start screen has something to show. The layout is
// validated up front; a bad layout is a construction error, not a
// runtime condition.
func NewEngine(layout *LayoutConfig) (*Engine, error) {
	if err := ValidateLayout(layout); err != nil {
		return nil, err
	}
	return &Engine{
		layout: layout,
		world:  NewWorld(layout),
		score:  NewScoreboard(layout),
		state:  StateStart,
	}, nil
}

// State returns the current session state
func (e *Engine) State() State {
	return e.state
}

// Reason returns why the session ended, or ReasonNone while it has not
func (e *Engine) Reason() EndReason {
	return e.reason
}

// Layout returns the static layout this engine was built from
func (e *Engine) Layout() *LayoutConfig {
	return e.layout
}

// World returns the live world. Only the tick pipeline mutates it.
func (e *Engine) World() *World {
	return e.world
}

// Scoreboard returns the live scoreboard
func (e *Engine) Scoreboard() *Scoreboard {
	return e.score
}

// Restart discards the current world and scoreboard, rebuilds both from
// the layout, and enters the playing state. There is no partial reset.
func (e *Engine) Restart() {
	e.world = NewWorld(e.layout)
	e.score = NewScoreboard(e.layout)
	e.state = StatePlaying
	e.reason = ReasonNone
}

// PlacePortal drops a portal at the player's center, spending one unit
// of the budget. With the budget exhausted the request is silently
// refused - running dry is expected play, not an error. The budget
// check lives here, in the state machine, not in the portal itself.
func (e *Engine) PlacePortal() bool {
	if e.state != StatePlaying || e.score.PortalsRemaining <= 0 {
		return false
	}
	e.score.RegisterPortalSpent()
	e.world.SpawnPortal(e.layout.PortalSize)
	return true
}

// Tick advances the session by one simulation step. Outside the playing
// state only the begin and restart edges are honored; a tick that
// performs a transition does nothing else, so a frame never keeps
// mutating a world it just replaced or ended.
func (e *Engine) Tick(in Input) {
	switch e.state {
	case StateStart:
		if in.Begin || in.Restart {
			e.Restart()
		}
	case StateGameOver:
		if in.Restart {
			e.Restart()
		}
	case StatePlaying:
		if in.Restart {
			e.Restart()
			return
		}
		if in.PlacePortal {
			e.PlacePortal()
		}
		e.tickPlaying(in)
	}
}

// tickPlaying runs the fixed-order playing pipeline: player, monsters,
// portals, clock. Each phase returns an explicit outcome; the first
// terminal one short-circuits the rest of the frame. The ordering also
// fixes the precedence between simultaneous endings - a player phase
// ending always beats time expiry in the same tick.
func (e *Engine) tickPlaying(in Input) {
	if out := e.playerPhase(in); out.Over {
		e.endSession(out.Reason)
		return
	}
	if out := e.monsterPhase(); out.Over {
		e.endSession(out.Reason)
		return
	}
	e.portalPhase()
	if out := e.score.AdvanceTime(TickSeconds); out.Over {
		e.endSession(out.Reason)
	}
}

// playerPhase moves the player and collects overlapping coins
func (e *Engine) playerPhase(in Input) Outcome {
	if out := e.world.Player.Step(in, e.layout.ExitLine, e.world.Walls); out.Over {
		return out
	}
	for n := e.world.CollectCoins(); n > 0; n-- {
		e.score.RegisterCoin()
	}
	return Outcome{}
}

// monsterPhase steps every monster in creation order. The first capture
// wins; later monsters do not move that frame.
func (e *Engine) monsterPhase() Outcome {
	for _, m := range e.world.Monsters {
		if out := m.Step(e.world.Player, e.world.Walls); out.Over {
			return out
		}
	}
	return Outcome{}
}

// portalPhase resolves monster-versus-portal contact after movement
func (e *Engine) portalPhase() {
	for n := e.world.ResolvePortals(); n > 0; n-- {
		e.score.RegisterBust()
	}
}

func (e *Engine) endSession(r EndReason) {
	e.state = StateGameOver
	e.reason = r
}

// Snapshot captures the current tick for rendering
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		State:    e.state,
		Reason:   e.reason,
		Player:   e.world.Player.Box,
		Walls:    make([]Box, 0, len(e.world.Walls)),
		Monsters: make([]Box, 0, len(e.world.Monsters)),
		Coins:    make([]Box, 0, len(e.world.Coins)),
		Portals:  make([]Box, 0, len(e.world.Portals)),
		Score:    e.score.View(),
	}
	for _, w := range e.world.Walls {
		snap.Walls = append(snap.Walls, w.Box)
	}
	for _, m := range e.world.Monsters {
		snap.Monsters = append(snap.Monsters, m.Box)
	}
	for _, c := range e.world.Coins {
		snap.Coins = append(snap.Coins, c.Box)
	}
	for _, p := range e.world.Portals {
		snap.Portals = append(snap.Portals, p.Box)
	}
	return snap
}

package engine

// Player is the single player-controlled entity. Exactly one exists
// while a world is live.
type Player struct {
	Box   Box
	Speed float64
	Spawn Position // original spawn center, kept for reference
}

// NewPlayer creates a player centered on the spawn position
func NewPlayer(spawn Position, speed, size float64) *Player {
	return &Player{
		Box:   CenteredBox(spawn.X, spawn.Y, size, size),
		Speed: speed,
		Spawn: spawn,
	}
}

// Step advances the player one tick from the polled input. The exit
// check runs before anything else because it can end the session; the
// rest of the phase is skipped once it fires.
//
// Movement is resolved one axis at a time: attempt the translation,
// then revert it if any wall overlaps. This prevents corner tunneling
// and lets the player slide along a wall while the other axis still
// moves. When opposing keys are held together, left wins over right and
// up wins over down by check order.
func (p *Player) Step(in Input, exitLine float64, walls []Wall) Outcome {
	if p.Box.Right() > exitLine {
		return endWith(ReasonReachedExit)
	}

	prevX := p.Box.X
	if in.Left {
		p.Box.X -= p.Speed
	} else if in.Right {
		p.Box.X += p.Speed
	}
	if intersectsAnyWall(p.Box, walls) {
		p.Box.X = prevX
	}

	prevY := p.Box.Y
	if in.Up {
		p.Box.Y -= p.Speed
	} else if in.Down {
		p.Box.Y += p.Speed
	}
	if intersectsAnyWall(p.Box, walls) {
		p.Box.Y = prevY
	}

	return Outcome{}
}

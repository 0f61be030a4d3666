package engine

// Monster patrols a fixed horizontal or vertical route, reversing
// whenever it bumps a wall. Speed carries the direction in its sign.
type Monster struct {
	Box    Box
	Speed  float64
	Axis   Axis
	Frozen bool // set when the monster catches the player
}

// NewMonster creates a monster centered on the given point
func NewMonster(center Position, speed float64, axis Axis, size float64) *Monster {
	return &Monster{
		Box:   CenteredBox(center.X, center.Y, size, size),
		Speed: speed,
		Axis:  axis,
	}
}

// Step advances the monster one tick. The player check runs first
// because it can end the session, making the rest of this monster's
// physics irrelevant for the frame: the monster stops where it stands.
//
// Movement happens on the monster's fixed axis only. If the translation
// lands inside a wall it is reverted and the speed sign flips, which
// yields the simple back-and-forth patrol - never diagonal motion.
// Portal contact is resolved separately by the portal phase, after all
// monsters have moved.
func (m *Monster) Step(player *Player, walls []Wall) Outcome {
	if m.Box.Intersects(player.Box) {
		m.Speed = 0
		m.Frozen = true
		return endWith(ReasonCaught)
	}

	switch m.Axis {
	case AxisHorizontal:
		prev := m.Box.X
		m.Box.X += m.Speed
		if intersectsAnyWall(m.Box, walls) {
			m.Box.X = prev
			m.Speed = -m.Speed
		}
	case AxisVertical:
		prev := m.Box.Y
		m.Box.Y += m.Speed
		if intersectsAnyWall(m.Box, walls) {
			m.Box.Y = prev
			m.Speed = -m.Speed
		}
	}

	return Outcome{}
}

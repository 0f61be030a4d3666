package engine

// World is the live entity collection for one game session: exactly one
// player, the fixed wall and patrol sets from the layout, the remaining
// coins, and any placed portals. A world is only ever built whole from
// its layout; begin and restart discard the previous world entirely
// rather than resetting pieces of it.
type World struct {
	Player   *Player
	Walls    []Wall
	Monsters []*Monster
	Coins    []Coin
	Portals  []Portal
}

// NewWorld builds a fresh world from a layout. The layout is assumed to
// have passed ValidateLayout.
func NewWorld(layout *LayoutConfig) *World {
	w := &World{
		Player:   NewPlayer(layout.PlayerSpawn, layout.PlayerSpeed, layout.PlayerSize),
		Walls:    make([]Wall, 0, len(layout.Walls)),
		Monsters: make([]*Monster, 0, len(layout.Monsters)),
		Coins:    make([]Coin, 0, len(layout.Coins)),
	}
	for _, wc := range layout.Walls {
		w.Walls = append(w.Walls, Wall{Box: Box{X: wc.X, Y: wc.Y, W: wc.W, H: wc.H}})
	}
	for _, mc := range layout.Monsters {
		w.Monsters = append(w.Monsters, NewMonster(Position{X: mc.X, Y: mc.Y}, mc.Speed, mc.Axis, layout.MonsterSize))
	}
	for _, c := range layout.Coins {
		w.Coins = append(w.Coins, Coin{Box: CenteredBox(c.X, c.Y, layout.CoinSize, layout.CoinSize)})
	}
	return w
}

// CollectCoins removes every coin overlapping the player and returns
// how many were taken. Several coins can go in one tick if they overlap
// geometrically. Removals are gathered during the scan and applied
// afterwards, so a coin can never be counted twice.
func (w *World) CollectCoins() int {
	var taken []int
	for i, c := range w.Coins {
		if c.Box.Intersects(w.Player.Box) {
			taken = append(taken, i)
		}
	}
	if len(taken) == 0 {
		return 0
	}

	kept := make([]Coin, 0, len(w.Coins)-len(taken))
	next := 0
	for i, c := range w.Coins {
		if next < len(taken) && i == taken[next] {
			next++
			continue
		}
		kept = append(kept, c)
	}
	w.Coins = kept
	return len(taken)
}

// SpawnPortal places a new portal centered on the player. Budget checks
// belong to the engine; the world only materializes the entity.
func (w *World) SpawnPortal(size float64) {
	b := CenteredBox(w.Player.Box.CenterX(), w.Player.Box.CenterY(), size, size)
	w.Portals = append(w.Portals, Portal{Box: b})
}

// ResolvePortals removes every monster that overlaps a portal and
// returns the number removed. This runs once per tick, after monster
// movement, and is the single authoritative portal-versus-monster
// check. Portals are untouched: they keep working after an exorcism.
// Doomed monsters are gathered first and the live set rebuilt after the
// scan, so removal never disturbs the iteration.
func (w *World) ResolvePortals() int {
	if len(w.Portals) == 0 || len(w.Monsters) == 0 {
		return 0
	}

	var doomed []int
	for i, m := range w.Monsters {
		for _, p := range w.Portals {
			if m.Box.Intersects(p.Box) {
				doomed = append(doomed, i)
				break
			}
		}
	}
	if len(doomed) == 0 {
		return 0
	}

	kept := make([]*Monster, 0, len(w.Monsters)-len(doomed))
	next := 0
	for i, m := range w.Monsters {
		if next < len(doomed) && i == doomed[next] {
			next++
			continue
		}
		kept = append(kept, m)
	}
	w.Monsters = kept
	return len(doomed)
}

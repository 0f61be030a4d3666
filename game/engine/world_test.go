package engine

import (
	"testing"
)

func TestNewWorldCensus(t *testing.T) {
	layout := testLayout()
	w := NewWorld(layout)

	if w.Player == nil {
		t.Fatal("Expected a player")
	}
	if len(w.Walls) != len(layout.Walls) {
		t.Errorf("Expected %d walls, got %d", len(layout.Walls), len(w.Walls))
	}
	if len(w.Monsters) != len(layout.Monsters) {
		t.Errorf("Expected %d monsters, got %d", len(layout.Monsters), len(w.Monsters))
	}
	if len(w.Coins) != len(layout.Coins) {
		t.Errorf("Expected %d coins, got %d", len(layout.Coins), len(w.Coins))
	}
	if len(w.Portals) != 0 {
		t.Errorf("Expected no portals in a fresh world, got %d", len(w.Portals))
	}

	// Worlds from the same layout are independent.
	w2 := NewWorld(layout)
	w.Monsters[0].Speed = 99
	if w2.Monsters[0].Speed == 99 {
		t.Error("Worlds built from the same layout share monster state")
	}
}

func TestCollectCoins(t *testing.T) {
	layout := testLayout()
	w := NewWorld(layout)

	// Nothing near the player at spawn.
	if n := w.CollectCoins(); n != 0 {
		t.Fatalf("Expected 0 coins at spawn, got %d", n)
	}

	// Move the player onto the first coin.
	w.Player.Box = CenteredBox(layout.Coins[0].X, layout.Coins[0].Y, w.Player.Box.W, w.Player.Box.H)
	if n := w.CollectCoins(); n != 1 {
		t.Fatalf("Expected 1 coin, got %d", n)
	}
	if len(w.Coins) != len(layout.Coins)-1 {
		t.Errorf("Expected %d coins left, got %d", len(layout.Coins)-1, len(w.Coins))
	}

	// Standing still must not collect the same coin again.
	if n := w.CollectCoins(); n != 0 {
		t.Errorf("Collected a removed coin again: %d", n)
	}
}

func TestCollectCoinsTakesAllOverlapping(t *testing.T) {
	layout := testLayout()
	w := NewWorld(layout)

	// Stack two extra coins on the player.
	cx, cy := w.Player.Box.CenterX(), w.Player.Box.CenterY()
	w.Coins = append(w.Coins,
		Coin{Box: CenteredBox(cx, cy, layout.CoinSize, layout.CoinSize)},
		Coin{Box: CenteredBox(cx+4, cy, layout.CoinSize, layout.CoinSize)},
	)

	if n := w.CollectCoins(); n != 2 {
		t.Errorf("Expected both overlapping coins in one pass, got %d", n)
	}
	if len(w.Coins) != len(layout.Coins) {
		t.Errorf("Expected %d coins left, got %d", len(layout.Coins), len(w.Coins))
	}
}

func TestSpawnPortalCentersOnPlayer(t *testing.T) {
	layout := testLayout()
	w := NewWorld(layout)

	w.SpawnPortal(layout.PortalSize)
	if len(w.Portals) != 1 {
		t.Fatalf("Expected 1 portal, got %d", len(w.Portals))
	}
	p := w.Portals[0]
	if p.Box.CenterX() != w.Player.Box.CenterX() || p.Box.CenterY() != w.Player.Box.CenterY() {
		t.Errorf("Portal not centered on player: portal %+v, player %+v", p.Box, w.Player.Box)
	}
	if p.Box.W != layout.PortalSize || p.Box.H != layout.PortalSize {
		t.Errorf("Expected a %gx%g portal, got %gx%g", layout.PortalSize, layout.PortalSize, p.Box.W, p.Box.H)
	}
}

func TestResolvePortals(t *testing.T) {
	layout := testLayout()
	w := NewWorld(layout)

	// No portals yet: nothing happens.
	if n := w.ResolvePortals(); n != 0 {
		t.Fatalf("Expected 0 busts without portals, got %d", n)
	}

	w.SpawnPortal(layout.PortalSize)
	portal := w.Portals[0]

	// Park the only monster on the portal.
	w.Monsters[0].Box = CenteredBox(portal.Box.CenterX(), portal.Box.CenterY(), w.Monsters[0].Box.W, w.Monsters[0].Box.H)
	if n := w.ResolvePortals(); n != 1 {
		t.Fatalf("Expected 1 bust, got %d", n)
	}
	if len(w.Monsters) != 0 {
		t.Errorf("Expected the monster removed, got %d left", len(w.Monsters))
	}

	// The portal itself survives the exorcism.
	if len(w.Portals) != 1 {
		t.Errorf("Expected the portal to persist, got %d", len(w.Portals))
	}
}

func TestResolvePortalsRemovesOnlyOverlapping(t *testing.T) {
	layout := testLayout()
	w := NewWorld(layout)
	w.SpawnPortal(layout.PortalSize)
	portal := w.Portals[0]

	far := NewMonster(Position{X: 300, Y: 250}, 2, AxisVertical, 20)
	w.Monsters = append(w.Monsters, far)
	w.Monsters[0].Box = CenteredBox(portal.Box.CenterX(), portal.Box.CenterY(), w.Monsters[0].Box.W, w.Monsters[0].Box.H)

	if n := w.ResolvePortals(); n != 1 {
		t.Fatalf("Expected 1 bust, got %d", n)
	}
	if len(w.Monsters) != 1 || w.Monsters[0] != far {
		t.Error("Expected only the overlapping monster removed")
	}
}

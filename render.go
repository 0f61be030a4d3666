package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/pocketportal/doors/game/engine"
)

// World palette
var (
	colorBackground = color.RGBA{222, 184, 135, 255} // burlywood
	colorWall       = color.RGBA{139, 69, 0, 255}    // dark orange
	colorPlayer     = color.RGBA{70, 130, 180, 255}  // steel blue
	colorMonster    = color.RGBA{205, 55, 55, 255}
	colorCoin       = color.RGBA{255, 215, 0, 255} // gold
	colorPortal     = color.RGBA{106, 13, 173, 255}
	colorFade       = color.RGBA{0, 0, 0, 255}
)

const (
	portalPulseFrom     = 1.8
	portalPulseDuration = 0.35
	fadeMaxAlpha        = 150
	fadeDuration        = 0.8
)

// renderer draws the world snapshot and owns the two tween-driven
// effects: a shrink pulse on a freshly placed portal and the dark fade
// behind the game-over text. Tweens advance on the simulation tick, so
// the effects stay in step with the 60 Hz frame loop.
type renderer struct {
	portalPulse *gween.Tween
	pulseScale  float64
	portalsSeen int

	fade      *gween.Tween
	fadeAlpha float64
}

func newRenderer() *renderer {
	return &renderer{pulseScale: 1}
}

// advance steps the animation state from the latest snapshot
func (r *renderer) advance(dt float64, snap engine.Snapshot) {
	// A new portal appeared: pulse it in. Fewer portals means a
	// restart cleared the world.
	if len(snap.Portals) > r.portalsSeen {
		r.portalPulse = gween.New(portalPulseFrom, 1, portalPulseDuration, ease.OutQuad)
	}
	r.portalsSeen = len(snap.Portals)

	if r.portalPulse != nil {
		v, done := r.portalPulse.Update(float32(dt))
		r.pulseScale = float64(v)
		if done {
			r.portalPulse = nil
			r.pulseScale = 1
		}
	}

	if snap.State == engine.StateGameOver {
		if r.fade == nil {
			r.fade = gween.New(0, fadeMaxAlpha, fadeDuration, ease.Linear)
		}
		v, _ := r.fade.Update(float32(dt))
		r.fadeAlpha = float64(v)
	} else if r.fade != nil {
		r.fade = nil
		r.fadeAlpha = 0
	}
}

// drawWorld renders the full entity set from a snapshot
func (r *renderer) drawWorld(screen *ebiten.Image, snap engine.Snapshot) {
	screen.Fill(colorBackground)

	for _, w := range snap.Walls {
		drawBox(screen, w, colorWall)
	}
	for _, c := range snap.Coins {
		drawBox(screen, c, colorCoin)
	}
	for i, p := range snap.Portals {
		// The newest portal carries the spawn pulse.
		if i == len(snap.Portals)-1 && r.pulseScale != 1 {
			drawBox(screen, scaleBox(p, r.pulseScale), colorPortal)
			continue
		}
		drawBox(screen, p, colorPortal)
	}
	for _, m := range snap.Monsters {
		drawBox(screen, m, colorMonster)
	}
	drawBox(screen, snap.Player, colorPlayer)
}

// drawFade darkens the screen behind the game-over text
func (r *renderer) drawFade(screen *ebiten.Image, w, h int) {
	c := colorFade
	c.A = uint8(r.fadeAlpha)
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), c)
}

func drawBox(screen *ebiten.Image, b engine.Box, c color.Color) {
	ebitenutil.DrawRect(screen, b.X, b.Y, b.W, b.H, c)
}

func scaleBox(b engine.Box, s float64) engine.Box {
	w, h := b.W*s, b.H*s
	return engine.Box{
		X: b.CenterX() - w/2,
		Y: b.CenterY() - h/2,
		W: w,
		H: h,
	}
}

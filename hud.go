package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/pocketportal/doors/game/engine"
	"github.com/pocketportal/doors/game/session"
)

// HUD palette
var (
	colorHUDText  = color.RGBA{40, 25, 10, 255}
	colorOverlay  = color.RGBA{255, 250, 240, 255}
	colorExitMark = color.RGBA{20, 90, 20, 255}
)

// hud draws all text: the scoreboard panel beside the exit, the exit
// marker, and the start and game-over overlays. Faces come from the
// bundled Go Regular font, so there are no asset files to ship.
type hud struct {
	face    font.Face
	bigFace font.Face
}

// newHUD parses the bundled font. A parse failure is a startup error;
// the game cannot run without text.
func newHUD() (*hud, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	const dpi = 72
	return &hud{
		face: truetype.NewFace(tt, &truetype.Options{
			Size:    18,
			DPI:     dpi,
			Hinting: font.HintingFull,
		}),
		bigFace: truetype.NewFace(tt, &truetype.Options{
			Size:    32,
			DPI:     dpi,
			Hinting: font.HintingFull,
		}),
	}, nil
}

// clockSeconds rounds the remaining time to the nearest whole second,
// so a clock at 99.9s reads 100 rather than 99.
func clockSeconds(timeLeft float64) int {
	return int(math.Round(timeLeft))
}

// drawPanel renders the scoreboard in the strip right of the exit line
// and the exit marker near the bottom right opening
func (h *hud) drawPanel(screen *ebiten.Image, snap engine.Snapshot) {
	bounds := screen.Bounds()
	x := bounds.Dx() - 210
	y := 40

	lines := []string{
		fmt.Sprintf("Coins: %d", snap.Score.CoinsCollected),
		fmt.Sprintf("Time: %d", clockSeconds(snap.Score.TimeLeft)),
		fmt.Sprintf("Exorcised: %d", snap.Score.GhostsBusted),
		fmt.Sprintf("Portals: %d", snap.Score.PortalsRemaining),
		fmt.Sprintf("Score: %d", snap.Score.Points),
	}
	for _, line := range lines {
		text.Draw(screen, line, h.face, x, y, colorHUDText)
		y += 26
	}

	y += 14
	for _, line := range []string{"Arrows: move", "Space: portal", "R: restart", "Q: quit"} {
		text.Draw(screen, line, h.face, x, y, colorHUDText)
		y += 22
	}

	text.Draw(screen, "EXIT---->", h.face, bounds.Dx()-300, bounds.Dy()-84, colorExitMark)
}

// drawStartScreen renders the instructions overlay
func (h *hud) drawStartScreen(screen *ebiten.Image) {
	bounds := screen.Bounds()
	cx := bounds.Dx() / 2

	text.Draw(screen, "DOORS OF PERCEPTION", h.bigFace, cx-200, 180, colorHUDText)

	y := 260
	for _, line := range []string{
		"Grab the coins and escape through the right edge",
		"before the clock runs out.",
		"",
		"The ghosts patrol fixed routes. Touch one and it's over -",
		"unless you drop a portal in its path first.",
		"",
		"Arrows move. Space drops a portal (5 per game).",
		"R restarts. Q quits.",
	} {
		text.Draw(screen, line, h.face, cx-250, y, colorHUDText)
		y += 28
	}

	text.Draw(screen, "Press SPACE to begin", h.bigFace, cx-170, y+60, colorHUDText)
}

// drawGameOver renders the end-of-session overlay on top of the fade
func (h *hud) drawGameOver(screen *ebiten.Image, snap engine.Snapshot, runs int, best *session.Run) {
	bounds := screen.Bounds()
	cx := bounds.Dx() / 2

	text.Draw(screen, snap.Reason.Message(), h.bigFace, cx-260, 240, colorOverlay)

	y := 320
	lines := []string{
		fmt.Sprintf("Final score: %d", snap.Score.Points),
		fmt.Sprintf("Coins: %d   Ghosts exorcised: %d", snap.Score.CoinsCollected, snap.Score.GhostsBusted),
		fmt.Sprintf("Runs this sitting: %d", runs),
	}
	if best != nil {
		lines = append(lines, fmt.Sprintf("Best run: %d points", best.Score.Points))
	}
	for _, line := range lines {
		text.Draw(screen, line, h.face, cx-180, y, colorOverlay)
		y += 28
	}

	text.Draw(screen, "Press R to play again, Q to quit", h.face, cx-180, y+40, colorOverlay)
}

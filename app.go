package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/pocketportal/doors/game/engine"
	"github.com/pocketportal/doors/game/session"
)

// App is the desktop client: it owns the engine, polls the keyboard
// once per frame, and renders the snapshot. ebiten's fixed 60 TPS tick
// is the simulation clock; one Update call is one engine tick.
type App struct {
	engine   *engine.Engine
	ledger   *session.Manager
	run      *session.Run
	renderer *renderer
	hud      *hud

	screenW int
	screenH int
}

// NewApp builds the client around a validated layout
func NewApp(layout *engine.LayoutConfig) (*App, error) {
	eng, err := engine.NewEngine(layout)
	if err != nil {
		return nil, err
	}

	h, err := newHUD()
	if err != nil {
		return nil, err
	}

	return &App{
		engine:   eng,
		ledger:   session.NewManager(),
		renderer: newRenderer(),
		hud:      h,
		screenW:  int(layout.ScreenWidth),
		screenH:  int(layout.ScreenHeight),
	}, nil
}

// Update polls input and advances the engine by one tick.
// Space begins a session from the start screen and places a portal
// while playing; the engine routes the edge by its state. Q quits.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	space := inpututil.IsKeyJustPressed(ebiten.KeySpace)
	in := engine.Input{
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:          ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Begin:       space,
		PlacePortal: space,
		Restart:     inpututil.IsKeyJustPressed(ebiten.KeyR),
	}

	prev := a.engine.State()
	a.engine.Tick(in)
	a.trackTransitions(prev, in)

	a.renderer.advance(engine.TickSeconds, a.engine.Snapshot())
	return nil
}

// trackTransitions keeps the run ledger in step with the engine's state
// machine: a run opens whenever a session begins and closes at game
// over. A restart mid-session abandons the current run unfinished.
func (a *App) trackTransitions(prev engine.State, in engine.Input) {
	cur := a.engine.State()

	switch {
	case prev != engine.StatePlaying && cur == engine.StatePlaying:
		a.openRun()

	case prev == engine.StatePlaying && cur == engine.StatePlaying && in.Restart:
		logrus.WithField("run", a.run.ID).Debug("Session restarted")
		a.openRun()

	case prev == engine.StatePlaying && cur == engine.StateGameOver:
		score := a.engine.Scoreboard().View()
		if err := a.ledger.Finish(a.run.ID, a.engine.Reason(), score); err != nil {
			logrus.WithError(err).Warn("Failed to record run")
		}
		logrus.WithFields(logrus.Fields{
			"run":    a.run.ID,
			"reason": a.engine.Reason(),
			"points": score.Points,
			"coins":  score.CoinsCollected,
			"busts":  score.GhostsBusted,
		}).Info("Session over")
	}
}

func (a *App) openRun() {
	a.run = a.ledger.Start(a.engine.Layout().Name)
	logrus.WithFields(logrus.Fields{
		"run":    a.run.ID,
		"layout": a.run.LayoutName,
	}).Info("Session started")
}

// Draw renders the current snapshot
func (a *App) Draw(screen *ebiten.Image) {
	snap := a.engine.Snapshot()
	a.renderer.drawWorld(screen, snap)

	switch snap.State {
	case engine.StateStart:
		a.hud.drawPanel(screen, snap)
		a.hud.drawStartScreen(screen)
	case engine.StatePlaying:
		a.hud.drawPanel(screen, snap)
	case engine.StateGameOver:
		a.hud.drawPanel(screen, snap)
		a.renderer.drawFade(screen, a.screenW, a.screenH)
		a.hud.drawGameOver(screen, snap, a.ledger.Count(), a.ledger.Best())
	}
}

// Layout returns the fixed logical screen size
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenW, a.screenH
}

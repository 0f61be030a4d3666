package engine

// Score weights for the derived points total
const (
	PointsPerCoin = 100
	PointsPerBust = 50
)

// Scoreboard holds the mutable counters for one session. Points is
// always recomputed from the coin and bust counters and is never the
// source of truth.
type Scoreboard struct {
	CoinsCollected   int
	TimeLeft         float64
	GhostsBusted     int
	PortalsRemaining int
	Points           int
}

// ScoreboardView is the render-ready snapshot of the counters, with the
// remaining time floored at zero for display.
type ScoreboardView struct {
	CoinsCollected   int
	TimeLeft         float64
	GhostsBusted     int
	PortalsRemaining int
	Points           int
}

// NewScoreboard creates a fresh scoreboard from the layout's starting
// time and portal budget
func NewScoreboard(layout *LayoutConfig) *Scoreboard {
	return &Scoreboard{
		TimeLeft:         layout.StartingTime,
		PortalsRemaining: layout.PortalBudget,
	}
}

// RegisterCoin records one collected coin
func (s *Scoreboard) RegisterCoin() {
	s.CoinsCollected++
	s.recompute()
}

// RegisterBust records one exorcised monster
func (s *Scoreboard) RegisterBust() {
	s.GhostsBusted++
	s.recompute()
}

// RegisterPortalSpent consumes one unit of the portal budget. The
// caller checks the budget before placing; this is bookkeeping only.
func (s *Scoreboard) RegisterPortalSpent() {
	s.PortalsRemaining--
}

// AdvanceTime deducts a fixed per-tick delta from the remaining time.
// This is a fixed-step deduction independent of wall-clock variance,
// not measured elapsed time. Returns a terminal outcome the first time
// the clock reaches zero or below.
func (s *Scoreboard) AdvanceTime(dt float64) Outcome {
	s.TimeLeft -= dt
	s.recompute()
	if s.TimeLeft <= 0 {
		return endWith(ReasonTimeExpired)
	}
	return Outcome{}
}

// View returns a display snapshot of the counters
func (s *Scoreboard) View() ScoreboardView {
	t := s.TimeLeft
	if t < 0 {
		t = 0
	}
	return ScoreboardView{
		CoinsCollected:   s.CoinsCollected,
		TimeLeft:         t,
		GhostsBusted:     s.GhostsBusted,
		PortalsRemaining: s.PortalsRemaining,
		Points:           s.Points,
	}
}

func (s *Scoreboard) recompute() {
	s.Points = s.CoinsCollected*PointsPerCoin + s.GhostsBusted*PointsPerBust
}

package session

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/pocketportal/doors/game/engine"
)

var (
	ErrRunNotFound        = errors.New("run not found")
	ErrRunAlreadyFinished = errors.New("run already finished")
)

// Run is one recorded play-through: when it started, which layout it
// used, and - once finished - how it ended and with what score. Runs
// live only for the lifetime of the process.
type Run struct {
	ID         string
	LayoutName string
	StartedAt  time.Time
	FinishedAt time.Time
	Reason     engine.EndReason
	Score      engine.ScoreboardView
}

// Finished reports whether the run has been closed out
func (r *Run) Finished() bool {
	return !r.FinishedAt.IsZero()
}

// Duration returns how long the run lasted, or the time elapsed so far
// for a run still in progress
func (r *Run) Duration() time.Duration {
	if r.Finished() {
		return r.FinishedAt.Sub(r.StartedAt)
	}
	return time.Since(r.StartedAt)
}

// Manager is the in-memory run ledger for one process. All methods are
// safe for concurrent use.
type Manager struct {
	runs map[string]*Run
	mu   sync.RWMutex
}

// NewManager creates an empty run ledger
func NewManager() *Manager {
	return &Manager{
		runs: make(map[string]*Run),
	}
}

// Start opens a new run against the named layout and returns it
func (m *Manager) Start(layoutName string) *Run {
	m.mu.Lock()
	defer m.mu.Unlock()

	run := &Run{
		ID:         m.generateRunID(),
		LayoutName: layoutName,
		StartedAt:  time.Now(),
	}
	m.runs[run.ID] = run
	return run
}

// Get retrieves a run by ID (case-insensitive)
func (m *Manager) Get(id string) (*Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, exists := m.runs[strings.ToLower(id)]
	if !exists {
		return nil, ErrRunNotFound
	}
	return run, nil
}

// Finish closes a run out with its end reason and final score. A run
// can only be finished once.
func (m *Manager) Finish(id string, reason engine.EndReason, score engine.ScoreboardView) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	run, exists := m.runs[strings.ToLower(id)]
	if !exists {
		return ErrRunNotFound
	}
	if run.Finished() {
		return ErrRunAlreadyFinished
	}

	run.FinishedAt = time.Now()
	run.Reason = reason
	run.Score = score
	return nil
}

// List returns all runs ordered by start time, oldest first
func (m *Manager) List() []*Run {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]*Run, 0, len(m.runs))
	for _, run := range m.runs {
		result = append(result, run)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].StartedAt.Before(result[j].StartedAt)
	})
	return result
}

// Best returns the finished run with the highest points, or nil when
// no run has finished yet
func (m *Manager) Best() *Run {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var best *Run
	for _, run := range m.runs {
		if !run.Finished() {
			continue
		}
		if best == nil || run.Score.Points > best.Score.Points {
			best = run
		}
	}
	return best
}

// Delete removes a run from the ledger
func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	lowerID := strings.ToLower(id)
	if _, exists := m.runs[lowerID]; !exists {
		return ErrRunNotFound
	}
	delete(m.runs, lowerID)
	return nil
}

// Count returns the number of recorded runs
func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.runs)
}

// generateRunID generates a random 8-character run ID. Called with the
// write lock held; retries on the unlikely collision.
func (m *Manager) generateRunID() string {
	for {
		bytes := make([]byte, 4)
		rand.Read(bytes)
		id := hex.EncodeToString(bytes)
		if _, exists := m.runs[id]; !exists {
			return id
		}
	}
}

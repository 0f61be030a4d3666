package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pocketportal/doors/game/engine"
)

var (
	ErrLayoutNotFound = errors.New("layout not found")
	ErrInvalidLayout  = errors.New("invalid layout")
)

// LayoutInfo summarizes one layout file for listings
type LayoutInfo struct {
	Filename     string
	LayoutID     string // identifier to pass to LoadLayout
	Name         string
	Description  string
	Walls        int
	Monsters     int
	Coins        int
	StartingTime float64
	PortalBudget int
}

// Manager handles layout loading and caching
type Manager struct {
	layoutDir     string
	defaultLayout *engine.LayoutConfig
	layouts       map[string]*engine.LayoutConfig
	mu            sync.RWMutex
}

// NewManager creates a new layout manager
func NewManager(layoutDir string) (*Manager, error) {
	// Ensure layout directory exists
	if _, err := os.Stat(layoutDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("layout directory does not exist: %s", layoutDir)
	}

	m := &Manager{
		layoutDir: layoutDir,
		layouts:   make(map[string]*engine.LayoutConfig),
	}

	m.mu.Lock()
	err := m.loadDefaultLayout()
	m.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("failed to load default layout: %w", err)
	}

	return m, nil
}

// LoadLayout loads a layout by name
func (m *Manager) LoadLayout(name string) (*engine.LayoutConfig, error) {
	m.mu.RLock()
	// Check cache first
	if layout, exists := m.layouts[name]; exists {
		m.mu.RUnlock()
		return layout, nil
	}
	m.mu.RUnlock()

	// Load from file
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loadLayoutLocked(name)
}

// loadLayoutLocked reads, validates and caches a layout. Callers hold
// the write lock; this is the only load path that may run while the
// manager is already locked (NewManager, RefreshCache).
func (m *Manager) loadLayoutLocked(name string) (*engine.LayoutConfig, error) {
	// Re-check the cache: the caller may have raced another loader
	// between dropping its read lock and taking the write lock.
	if layout, exists := m.layouts[name]; exists {
		return layout, nil
	}

	// Add .json extension if not present
	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	layoutPath := filepath.Join(m.layoutDir, filename)

	data, err := os.ReadFile(layoutPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrLayoutNotFound
		}
		return nil, fmt.Errorf("failed to read layout file: %w", err)
	}

	var layout engine.LayoutConfig
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	if err := engine.ValidateLayout(&layout); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	// Cache the layout
	m.layouts[name] = &layout
	return &layout, nil
}

// ListLayouts returns information about all available layouts
func (m *Manager) ListLayouts() ([]*LayoutInfo, error) {
	entries, err := os.ReadDir(m.layoutDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout directory: %w", err)
	}

	var infos []*LayoutInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}

		// Remove .json extension for the layout name
		name := strings.TrimSuffix(entry.Name(), ".json")

		layout, err := m.LoadLayout(name)
		if err != nil {
			// Skip invalid layouts
			continue
		}

		infos = append(infos, &LayoutInfo{
			Filename:     entry.Name(),
			LayoutID:     name,
			Name:         layout.Name,
			Description:  layout.Description,
			Walls:        len(layout.Walls),
			Monsters:     len(layout.Monsters),
			Coins:        len(layout.Coins),
			StartingTime: layout.StartingTime,
			PortalBudget: layout.PortalBudget,
		})
	}

	return infos, nil
}

// GetDefault returns the default layout
func (m *Manager) GetDefault() *engine.LayoutConfig {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultLayout
}

// SetDefault sets the default layout by name
func (m *Manager) SetDefault(name string) error {
	layout, err := m.LoadLayout(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultLayout = layout
	return nil
}

// RefreshCache reloads all cached layouts from disk
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Clear cache
	m.layouts = make(map[string]*engine.LayoutConfig)

	return m.loadDefaultLayout()
}

// loadDefaultLayout picks the default layout: classic.json if present,
// then the first valid layout on disk, then the built-in classic dungeon.
// Callers hold the write lock.
func (m *Manager) loadDefaultLayout() error {
	if layout, err := m.loadLayoutLocked("classic"); err == nil {
		m.defaultLayout = layout
		return nil
	}

	entries, err := os.ReadDir(m.layoutDir)
	if err == nil {
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
				continue
			}

			name := strings.TrimSuffix(entry.Name(), ".json")
			if layout, err := m.loadLayoutLocked(name); err == nil {
				m.defaultLayout = layout
				return nil
			}
		}
	}

	m.defaultLayout = engine.DefaultLayout()
	return nil
}

// SaveLayout saves a layout to disk
func (m *Manager) SaveLayout(name string, layout *engine.LayoutConfig) error {
	// Validate before saving
	if err := engine.ValidateLayout(layout); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLayout, err)
	}

	// Add .json extension if not present
	filename := name
	if !strings.HasSuffix(filename, ".json") {
		filename = name + ".json"
	}

	layoutPath := filepath.Join(m.layoutDir, filename)

	data, err := json.MarshalIndent(layout, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.WriteFile(layoutPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write layout file: %w", err)
	}

	// Update cache
	m.mu.Lock()
	m.layouts[name] = layout
	m.mu.Unlock()

	return nil
}

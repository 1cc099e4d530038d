// Package settings persists the demo application's window and effect
// preferences across runs. Scene state itself is never persisted.
package settings

import (
	"fmt"
	"log"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// Storage keys
const (
	settingsObject   = "settings"
	settingsProperty = "app"
)

// Settings are the persisted application preferences.
type Settings struct {
	WindowScale int    `yaml:"windowScale"` // Window pixels per logical pixel
	Fullscreen  bool   `yaml:"fullscreen"`
	Effect      string `yaml:"effect"` // Preferred transition: "fade" or "tile"
}

// Default returns the out-of-the-box settings.
func Default() *Settings {
	return &Settings{
		WindowScale: 3,
		Fullscreen:  false,
		Effect:      "fade",
	}
}

// Manager loads and saves settings through a gdata store.
// A nil store degrades to in-memory settings without persistence.
type Manager struct {
	store    *gdata.Manager
	settings *Settings
}

// NewManager creates a settings manager and loads any saved settings.
// A load failure is not fatal: defaults are used instead.
func NewManager(store *gdata.Manager) *Manager {
	m := &Manager{
		store:    store,
		settings: Default(),
	}
	if err := m.Load(); err != nil {
		log.Printf("[Settings] Warning: failed to load settings: %v (using defaults)", err)
	}
	return m
}

// Settings returns the current settings. Mutate and call Save to persist.
func (m *Manager) Settings() *Settings {
	return m.settings
}

// Load reads settings from the store, keeping defaults when the store is
// nil or holds nothing yet.
func (m *Manager) Load() error {
	if m.store == nil {
		m.settings = Default()
		return nil
	}
	if !m.store.ObjectPropExists(settingsObject, settingsProperty) {
		m.settings = Default()
		return nil
	}

	data, err := m.store.LoadObjectProp(settingsObject, settingsProperty)
	if err != nil {
		m.settings = Default()
		return fmt.Errorf("failed to load settings: %w", err)
	}

	var loaded Settings
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		m.settings = Default()
		return fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	m.settings = &loaded
	return nil
}

// Save writes the current settings to the store. A nil store is a no-op.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	if err := m.store.SaveObjectProp(settingsObject, settingsProperty, data); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

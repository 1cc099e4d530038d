package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration from YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadDisplay loads display.yaml
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	data, err := fs.ReadFile(l.fsys, "display.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read display.yaml: %w", err)
	}

	var cfg DisplayConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse display.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid display.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadTransitions loads transitions.yaml
func (l *Loader) LoadTransitions() (*TransitionsConfig, error) {
	data, err := fs.ReadFile(l.fsys, "transitions.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read transitions.yaml: %w", err)
	}

	var cfg TransitionsConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse transitions.yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transitions.yaml: %w", err)
	}

	return &cfg, nil
}

// LoadAll loads all configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	transitions, err := l.LoadTransitions()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display:     display,
		Transitions: transitions,
	}, nil
}

package config

import (
	"fmt"
	"image/color"
)

// DisplayConfig is the root config for display.yaml
type DisplayConfig struct {
	ScreenWidth  int  `yaml:"screenWidth"`
	ScreenHeight int  `yaml:"screenHeight"`
	Scale        int  `yaml:"scale"`
	Framerate    int  `yaml:"framerate"`
	ClearColor   RGBA `yaml:"clearColor"`
}

// Validate checks the display config for usable values
func (c *DisplayConfig) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %dx%d", c.ScreenWidth, c.ScreenHeight)
	}
	if c.Scale <= 0 {
		return fmt.Errorf("invalid scale %d", c.Scale)
	}
	if c.Framerate <= 0 {
		return fmt.Errorf("invalid framerate %d", c.Framerate)
	}
	return nil
}

// RGBA is a color in config files
type RGBA struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
	A uint8 `yaml:"a"`
}

// Color converts to a color.RGBA
func (c RGBA) Color() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// TransitionsConfig is the root config for transitions.yaml
type TransitionsConfig struct {
	Fade FadeConfig `yaml:"fade"`
	Tile TileConfig `yaml:"tile"`
}

// Validate checks the transitions config for usable values
func (c *TransitionsConfig) Validate() error {
	if c.Fade.Duration <= 0 {
		return fmt.Errorf("invalid fade duration %v", c.Fade.Duration)
	}
	if c.Tile.Duration <= 0 {
		return fmt.Errorf("invalid tile duration %v", c.Tile.Duration)
	}
	if c.Tile.TileSize <= 0 {
		return fmt.Errorf("invalid tile size %d", c.Tile.TileSize)
	}
	return nil
}

// FadeConfig configures the fade transition pair
type FadeConfig struct {
	Duration float64 `yaml:"duration"` // Seconds per direction
}

// TileConfig configures the even-odd tile transition pair
type TileConfig struct {
	Duration float64 `yaml:"duration"` // Seconds per direction
	TileSize int     `yaml:"tileSize"` // Tile edge in pixels
}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display     *DisplayConfig
	Transitions *TransitionsConfig
}

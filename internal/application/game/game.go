package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Game implements ebiten.Game, driving a SceneManager once per frame.
type Game struct {
	manager    *SceneManager
	screenW    int
	screenH    int
	dt         float64
	clearColor color.Color
}

// New creates a loop wrapper for the given manager and logical screen
// dimensions.
func New(manager *SceneManager, screenW, screenH int) *Game {
	return &Game{
		manager:    manager,
		screenW:    screenW,
		screenH:    screenH,
		dt:         1.0 / 60.0, // Default to 60 FPS
		clearColor: color.Black,
	}
}

// Manager returns the wrapped scene manager.
func (g *Game) Manager() *SceneManager {
	return g.manager
}

// Update advances the scene manager by one fixed tick.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.manager.Update(g.dt)
	return nil
}

// Draw renders the active scene and any running transition.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.manager.Draw(screen, g.clearColor)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Resize changes the logical screen dimensions and propagates the
// regeneration of all live render surfaces.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.manager.NotifyDisplayResized(width, height)
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetClearColor sets the color the frame is cleared with.
func (g *Game) SetClearColor(c color.Color) {
	g.clearColor = c
}

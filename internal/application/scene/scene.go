// Package scene defines the Scene interface and its lifecycle.
//
// Each game screen (title, menu, playing, settings, etc.) implements
// the Scene interface. A scene renders into its own offscreen surface
// so the scene manager can composite transition effects over it.
package scene

import (
	"image/color"

	"github.com/younwookim/curtain/internal/application/surface"
)

// Scene represents an isolated unit of renderable, updatable content.
//
// Lifecycle: Initialize -> Update/draw loop -> UnloadContent -> Dispose.
// A scene may be reused: UnloadContent followed by Initialize is legal.
// Dispose is terminal and idempotent.
type Scene interface {
	// Initialize allocates the render surface and loads content.
	// Safe to call again after UnloadContent.
	Initialize()

	// UnloadContent releases content and the render surface.
	// The scene object survives and can be re-initialized.
	UnloadContent()

	// Update updates the scene logic.
	// dt is the delta time in seconds (typically 1/60).
	Update(dt float64)

	// BeforeDraw opens the draw bracket: binds the render surface and
	// clears it with the given color.
	BeforeDraw(clear color.Color)

	// Draw renders the scene's content into its render surface.
	Draw()

	// AfterDraw closes the draw bracket.
	AfterDraw()

	// Surface returns the scene's own render surface.
	Surface() *surface.Surface

	// Paused reports whether scene updates are suspended.
	Paused() bool

	// SetPaused suspends or resumes scene updates.
	SetPaused(paused bool)

	// Resize regenerates the render surface at the given dimensions.
	// Called on display-surface resize and graphics-device reset.
	Resize(width, height int)

	// Dispose releases everything UnloadContent releases and marks the
	// scene terminally disposed. Safe to call repeatedly.
	Dispose()

	// Disposed reports whether Dispose has been called.
	Disposed() bool
}

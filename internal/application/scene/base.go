package scene

import (
	"image/color"

	"github.com/younwookim/curtain/internal/application/surface"
)

// Base implements the Scene lifecycle and surface ownership.
// Concrete scenes embed Base and override Initialize, Update and Draw,
// calling the embedded method where they extend rather than replace it.
type Base struct {
	width    int
	height   int
	surface  *surface.Surface
	paused   bool
	disposed bool
}

// NewBase creates the lifecycle base for a width x height scene.
// The render surface is not allocated until Initialize.
func NewBase(width, height int) Base {
	return Base{width: width, height: height}
}

// Initialize allocates the render surface at the scene's current size.
func (b *Base) Initialize() {
	if b.surface == nil {
		b.surface = surface.New(b.width, b.height)
		return
	}
	if !b.surface.IsValid() {
		b.surface.Generate(b.width, b.height)
	}
}

// UnloadContent releases the render surface. The scene survives and may
// be initialized again.
func (b *Base) UnloadContent() {
	if b.surface != nil {
		b.surface.Dispose()
	}
}

// Update is a no-op; content scenes override it.
func (b *Base) Update(dt float64) {}

// BeforeDraw clears the render surface with the given color.
// The surface must be allocated: drawing an uninitialized or unloaded
// scene is a caller contract violation.
func (b *Base) BeforeDraw(clear color.Color) {
	if b.surface == nil || !b.surface.IsValid() {
		panic("scene: BeforeDraw without Initialize")
	}
	b.surface.Image().Fill(clear)
}

// Draw is a no-op; content scenes override it and render into
// Surface().Image().
func (b *Base) Draw() {}

// AfterDraw closes the draw bracket. The base has nothing to unbind.
func (b *Base) AfterDraw() {}

// Surface returns the scene's render surface.
func (b *Base) Surface() *surface.Surface {
	return b.surface
}

// Paused reports whether updates are suspended.
func (b *Base) Paused() bool {
	return b.paused
}

// SetPaused suspends or resumes updates.
func (b *Base) SetPaused(paused bool) {
	b.paused = paused
}

// Size returns the scene's current logical dimensions.
func (b *Base) Size() (width, height int) {
	return b.width, b.height
}

// Resize records the new dimensions and regenerates the render surface
// if one is allocated. An unloaded scene just picks the new size up on
// its next Initialize.
func (b *Base) Resize(width, height int) {
	b.width = width
	b.height = height
	if b.surface != nil && b.surface.IsValid() {
		b.surface.Generate(width, height)
	}
}

// Dispose releases the render surface and marks the scene disposed.
// Safe to call repeatedly.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	if b.surface != nil {
		b.surface.Dispose()
	}
}

// Disposed reports whether Dispose has been called.
func (b *Base) Disposed() bool {
	return b.disposed
}

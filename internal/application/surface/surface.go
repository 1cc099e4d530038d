// Package surface provides the offscreen render target that scenes and
// transitions draw into.
package surface

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Surface is a resizable offscreen render target backed by an
// ebiten.Image. A Surface is exclusively owned by one scene or
// transition; whoever owns it is responsible for disposing it.
//
// The backing image must be regenerated, not resized in place, whenever
// the display surface changes size or the graphics device is reset.
type Surface struct {
	image  *ebiten.Image
	width  int
	height int
}

// New allocates a surface of the given size.
func New(width, height int) *Surface {
	s := &Surface{}
	s.Generate(width, height)
	return s
}

// Generate allocates a fresh backing image of the given size, releasing
// any previous one first. Dimensions must be positive.
func (s *Surface) Generate(width, height int) {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("surface: non-positive dimensions %dx%d", width, height))
	}
	if s.image != nil {
		s.image.Deallocate()
	}
	s.image = ebiten.NewImage(width, height)
	s.width = width
	s.height = height
}

// IsValid reports whether a backing image is currently allocated.
func (s *Surface) IsValid() bool {
	return s.image != nil
}

// Image returns the backing image for drawing. It is nil after Dispose
// and before the first Generate.
func (s *Surface) Image() *ebiten.Image {
	return s.image
}

// Size returns the dimensions of the most recent Generate.
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Dispose releases the backing image. Safe to call repeatedly.
func (s *Surface) Dispose() {
	if s.image == nil {
		return
	}
	s.image.Deallocate()
	s.image = nil
}

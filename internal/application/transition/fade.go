package transition

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/curtain/internal/application/surface"
)

// Fade dissolves the source frame: an Out fade starts fully opaque and
// ends fully transparent, an In fade is the mirror.
type Fade struct {
	Base
}

var _ Transition = (*Fade)(nil)

// NewFade creates a fade over the given duration in seconds.
func NewFade(kind Kind, seconds float64) *Fade {
	return &Fade{Base: newBase(kind, seconds)}
}

// Start binds the source surface. Fades need no variant-specific setup.
func (f *Fade) Start(source *surface.Surface) {
	f.start(source)
}

// Draw composites the source at the current opacity onto screen.
func (f *Fade) Draw(screen *ebiten.Image) {
	if f.source == nil {
		panic("transition: Draw before Start")
	}

	target := f.target.Image()
	target.Clear()

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(1 - f.strength()))
	target.DrawImage(f.source.Image(), op)

	screen.DrawImage(target, nil)
}

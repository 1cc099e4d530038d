package transition

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/curtain/internal/application/surface"
	"github.com/younwookim/curtain/internal/domain/tiling"
)

// EvenOddTile conceals or reveals the source as a checkerboard of
// shrinking, rotating tiles. The two parity groups animate in sequential
// halves of the duration: even tiles first, then odd tiles, producing a
// two-phase staggered effect.
type EvenOddTile struct {
	Base
	tileSize int
	grid     tiling.Grid
}

var _ Transition = (*EvenOddTile)(nil)

// NewEvenOddTile creates a tiled transition over the given duration in
// seconds with tileSize-pixel tiles.
func NewEvenOddTile(kind Kind, seconds float64, tileSize int) *EvenOddTile {
	if tileSize <= 0 {
		panic("transition: non-positive tile size")
	}
	return &EvenOddTile{Base: newBase(kind, seconds), tileSize: tileSize}
}

// Start binds the source surface and computes the tile grid from its
// dimensions.
func (t *EvenOddTile) Start(source *surface.Surface) {
	t.start(source)
	w, h := source.Size()
	t.grid = tiling.NewGrid(w, h, t.tileSize)
}

// Resize regenerates the owned render surface and recomputes the grid
// for the new dimensions.
func (t *EvenOddTile) Resize(width, height int) {
	t.Base.Resize(width, height)
	if t.source != nil {
		t.grid = tiling.NewGrid(width, height, t.tileSize)
	}
}

// Grid returns the tile grid computed at Start.
func (t *EvenOddTile) Grid() tiling.Grid {
	return t.grid
}

// Draw composites each tile of the source scaled and rotated by its
// parity group's local progress.
func (t *EvenOddTile) Draw(screen *ebiten.Image) {
	if t.source == nil {
		panic("transition: Draw before Start")
	}

	target := t.target.Image()
	target.Clear()

	src := t.source.Image()
	bounds := src.Bounds()
	s := t.strength()
	ts := t.grid.TileSize

	for row := 0; row < t.grid.Rows; row++ {
		for col := 0; col < t.grid.Cols; col++ {
			local := tiling.LocalProgress(s, tiling.Parity(col, row))
			scale := 1 - local
			if scale <= 0 {
				continue
			}

			x0 := bounds.Min.X + col*ts
			y0 := bounds.Min.Y + row*ts
			rect := image.Rect(x0, y0, min(x0+ts, bounds.Max.X), min(y0+ts, bounds.Max.Y))
			tile := src.SubImage(rect).(*ebiten.Image)

			// Shrink and spin around the tile center.
			cx := float64(rect.Dx()) / 2
			cy := float64(rect.Dy()) / 2
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(-cx, -cy)
			op.GeoM.Rotate(local * math.Pi / 2)
			op.GeoM.Scale(scale, scale)
			op.GeoM.Translate(float64(x0-bounds.Min.X)+cx, float64(y0-bounds.Min.Y)+cy)
			target.DrawImage(tile, op)
		}
	}

	screen.DrawImage(target, nil)
}

// Package gallery provides the demo scenes used to showcase scene
// transitions: two visually distinct screens to swap between.
package gallery

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/younwookim/curtain/internal/application/scene"
)

// Colors for rendering
var (
	colorOrbitBG   = color.RGBA{26, 26, 46, 255}
	colorOrbitBody = color.RGBA{100, 200, 100, 255}
	colorOrbitTail = color.RGBA{100, 100, 200, 255}
	colorCheckerA  = color.RGBA{80, 80, 100, 255}
	colorCheckerB  = color.RGBA{200, 170, 60, 255}
)

// Orbit is a scene of squares circling the screen center.
type Orbit struct {
	scene.Base
	elapsed float64
	bodies  int
}

// NewOrbit creates the orbit scene.
func NewOrbit(width, height int) *Orbit {
	return &Orbit{
		Base:   scene.NewBase(width, height),
		bodies: 5,
	}
}

// Update advances the orbit angle.
func (o *Orbit) Update(dt float64) {
	o.elapsed += dt
}

// Draw renders the orbiting squares into the scene's surface.
func (o *Orbit) Draw() {
	img := o.Surface().Image()
	w, h := o.Size()
	cx, cy := float64(w)/2, float64(h)/2
	radius := math.Min(cx, cy) * 0.6

	for i := 0; i < o.bodies; i++ {
		angle := o.elapsed + float64(i)*2*math.Pi/float64(o.bodies)
		x := cx + radius*math.Cos(angle)
		y := cy + radius*math.Sin(angle)
		c := colorOrbitBody
		if i%2 == 1 {
			c = colorOrbitTail
		}
		ebitenutil.DrawRect(img, x-6, y-6, 12, 12, c)
	}
	ebitenutil.DebugPrint(img, "orbit")
}

// Checker is a scene of a scrolling checkerboard.
type Checker struct {
	scene.Base
	offset   float64
	cellSize int
	speed    float64
}

// NewChecker creates the checker scene.
func NewChecker(width, height int) *Checker {
	return &Checker{
		Base:     scene.NewBase(width, height),
		cellSize: 24,
		speed:    30, // Pixels per second
	}
}

// Update scrolls the board.
func (c *Checker) Update(dt float64) {
	c.offset += c.speed * dt
	c.offset = math.Mod(c.offset, float64(c.cellSize*2))
}

// Draw renders the checkerboard into the scene's surface.
func (c *Checker) Draw() {
	img := c.Surface().Image()
	w, h := c.Size()
	cs := c.cellSize

	for row := -1; row*cs <= h; row++ {
		for col := -1; col*cs <= w; col++ {
			cell := colorCheckerA
			if (row+col)%2 == 0 {
				cell = colorCheckerB
			}
			x := float64(col*cs) + c.offset
			ebitenutil.DrawRect(img, x, float64(row*cs), float64(cs), float64(cs), cell)
		}
	}
	ebitenutil.DebugPrint(img, "checker")
}

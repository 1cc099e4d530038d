// Package tiling provides the grid math behind tiled transition effects:
// splitting a surface into fixed-size tiles, grouping them by checkerboard
// parity, and staggering the two groups across sequential phases.
package tiling

import "fmt"

// Grid partitions a surface into fixed-size tiles.
// Edge tiles may be smaller than TileSize when the surface
// dimensions are not multiples of it.
type Grid struct {
	Cols     int
	Rows     int
	TileSize int
}

// NewGrid creates a grid covering a width x height surface with
// tileSize-pixel tiles. All arguments must be positive.
func NewGrid(width, height, tileSize int) Grid {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("tiling: non-positive surface %dx%d", width, height))
	}
	if tileSize <= 0 {
		panic(fmt.Sprintf("tiling: non-positive tile size %d", tileSize))
	}
	return Grid{
		Cols:     (width + tileSize - 1) / tileSize,
		Rows:     (height + tileSize - 1) / tileSize,
		TileSize: tileSize,
	}
}

// Tiles returns the total tile count.
func (g Grid) Tiles() int {
	return g.Cols * g.Rows
}

// Parity returns the checkerboard group (0 or 1) of the tile at col, row.
func Parity(col, row int) int {
	return (col + row) % 2
}

// LocalProgress maps the overall effect progress in [0, 1] to the local
// progress of one parity group. The overall span is split into two equal
// sequential phases: group 0 animates over the first half then saturates
// at 1; group 1 holds 0 through the first half and animates over the
// second. Out-of-range overall values are clamped.
func LocalProgress(overall float64, group int) float64 {
	switch group {
	case 0:
		return clamp01(overall * 2)
	case 1:
		return clamp01(overall*2 - 1)
	default:
		panic(fmt.Sprintf("tiling: invalid parity group %d", group))
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package tiling

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGrid(t *testing.T) {
	tests := []struct {
		name               string
		w, h, tileSize     int
		wantCols, wantRows int
	}{
		{"exact fit", 320, 240, 16, 20, 15},
		{"width remainder", 330, 240, 16, 21, 15},
		{"height remainder", 320, 250, 16, 20, 16},
		{"tile larger than surface", 10, 10, 16, 1, 1},
		{"single pixel tiles", 3, 2, 1, 3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGrid(tt.w, tt.h, tt.tileSize)
			assert.Equal(t, tt.wantCols, g.Cols)
			assert.Equal(t, tt.wantRows, g.Rows)
			assert.Equal(t, tt.wantCols*tt.wantRows, g.Tiles())
		})
	}
}

func TestNewGrid_InvalidArguments(t *testing.T) {
	assert.Panics(t, func() { NewGrid(0, 240, 16) })
	assert.Panics(t, func() { NewGrid(320, -1, 16) })
	assert.Panics(t, func() { NewGrid(320, 240, 0) })
}

func TestParity(t *testing.T) {
	assert.Equal(t, 0, Parity(0, 0))
	assert.Equal(t, 1, Parity(1, 0))
	assert.Equal(t, 1, Parity(0, 1))
	assert.Equal(t, 0, Parity(1, 1))
	assert.Equal(t, 0, Parity(3, 5))
}

func TestLocalProgress_PhaseSplit(t *testing.T) {
	// Group 0 runs over the first half, group 1 over the second.
	assert.Equal(t, 0.0, LocalProgress(0, 0))
	assert.InDelta(t, 0.5, LocalProgress(0.25, 0), 1e-9)
	assert.Equal(t, 1.0, LocalProgress(0.5, 0))
	assert.Equal(t, 1.0, LocalProgress(0.75, 0), "group 0 saturates in second half")

	assert.Equal(t, 0.0, LocalProgress(0, 1))
	assert.Equal(t, 0.0, LocalProgress(0.5, 1), "group 1 holds zero through first half")
	assert.InDelta(t, 0.5, LocalProgress(0.75, 1), 1e-9)
	assert.Equal(t, 1.0, LocalProgress(1, 1))
}

func TestLocalProgress_Clamped(t *testing.T) {
	assert.Equal(t, 0.0, LocalProgress(-0.5, 0))
	assert.Equal(t, 1.0, LocalProgress(1.5, 0))
	assert.Equal(t, 0.0, LocalProgress(-0.5, 1))
	assert.Equal(t, 1.0, LocalProgress(1.5, 1))
}

func TestLocalProgress_InvalidGroup(t *testing.T) {
	assert.Panics(t, func() { LocalProgress(0.5, 2) })
	assert.Panics(t, func() { LocalProgress(0.5, -1) })
}

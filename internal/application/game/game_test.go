package game

import (
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	m := NewSceneManager(320, 240)
	g := New(m, 320, 240)

	assert.NotNil(t, g)
	assert.Same(t, m, g.Manager())
}

func TestGame_Update_DelegatesToManager(t *testing.T) {
	m := NewSceneManager(320, 240)
	g := New(m, 320, 240)

	s := newMockScene(320, 240)
	m.ChangeScene(s)

	err := g.Update()
	assert.NoError(t, err)
	assert.Same(t, s, m.Active(), "tick performs the deferred swap")
	assert.Equal(t, 1, s.updates)
}

func TestGame_Draw_DelegatesToManager(t *testing.T) {
	m := NewSceneManager(320, 240)
	g := New(m, 320, 240)

	s := newMockScene(320, 240)
	m.ChangeScene(s)
	_ = g.Update()

	// Create a dummy image for testing
	img := ebiten.NewImage(320, 240)
	g.Draw(img)

	assert.Equal(t, 1, s.draws)
}

func TestGame_Layout(t *testing.T) {
	g := New(NewSceneManager(320, 240), 320, 240)

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_Resize(t *testing.T) {
	m := NewSceneManager(320, 240)
	g := New(m, 320, 240)
	s := newMockScene(320, 240)
	m.ChangeScene(s)
	_ = g.Update()

	g.Resize(640, 480)

	w, h := g.Layout(1280, 960)
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)

	sw, sh := s.Surface().Size()
	assert.Equal(t, 640, sw)
	assert.Equal(t, 480, sh)
}

func TestGame_SetDT(t *testing.T) {
	m := NewSceneManager(320, 240)
	g := New(m, 320, 240)
	g.SetDT(0.1)

	next := newMockScene(320, 240)
	s := newMockScene(320, 240)
	m.ChangeScene(s)
	_ = g.Update()

	outFade := newMockTransition(0, 0.2)
	inFade := newMockTransition(1, 0.2)
	m.ChangeSceneWith(next, outFade, inFade)

	// Two 0.1s ticks finish the 0.2s out transition.
	_ = g.Update()
	_ = g.Update()

	assert.Same(t, next, m.Active())
}

func TestGame_SetClearColor(t *testing.T) {
	g := New(NewSceneManager(64, 64), 64, 64)
	g.SetClearColor(color.White)

	img := ebiten.NewImage(64, 64)
	assert.NotPanics(t, func() { g.Draw(img) })
}

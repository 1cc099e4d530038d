package transition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/curtain/internal/application/surface"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "Out", Out.String())
	assert.Equal(t, "In", In.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

func TestFade_Start(t *testing.T) {
	src := surface.New(320, 240)
	f := NewFade(Out, 0.5)

	assert.False(t, f.Running())

	f.Start(src)

	assert.True(t, f.Running())
	assert.Equal(t, 0.5, f.Remaining())
	assert.Equal(t, Out, f.Kind())

	require.NotNil(t, f.target)
	w, h := f.target.Size()
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestStart_InvalidSource(t *testing.T) {
	f := NewFade(Out, 0.5)
	assert.Panics(t, func() { f.Start(nil) })

	disposed := surface.New(32, 32)
	disposed.Dispose()
	assert.Panics(t, func() { f.Start(disposed) })
}

func TestUpdate_CountsDown(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(Out, 1.0)
	f.Start(src)

	f.Update(0.25)
	assert.InDelta(t, 0.75, f.Remaining(), 1e-9)
	assert.True(t, f.Running())

	f.Update(0.5)
	assert.InDelta(t, 0.25, f.Remaining(), 1e-9)
	assert.True(t, f.Running())
}

func TestUpdate_CompletionFiresOnce(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(Out, 0.3)

	completions := 0
	f.SetOnComplete(func() { completions++ })
	f.Start(src)

	for i := 0; i < 10; i++ {
		f.Update(0.1)
	}

	assert.Equal(t, 1, completions)
	assert.False(t, f.Running())
	assert.Equal(t, 0.0, f.Remaining())
}

func TestUpdate_AfterCompletionIsNoOp(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(In, 0.1)
	f.Start(src)
	f.Update(1.0)

	assert.NotPanics(t, func() { f.Update(0.1) })
	assert.Equal(t, 0.0, f.Remaining())
}

func TestUpdate_NegativeDT(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(Out, 0.5)
	f.Start(src)

	assert.Panics(t, func() { f.Update(-0.1) })
}

func TestRestart_CompletionFiresAgain(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(Out, 0.2)

	completions := 0
	f.SetOnComplete(func() { completions++ })

	f.Start(src)
	f.Update(1.0)
	assert.Equal(t, 1, completions)

	f.Start(src)
	assert.True(t, f.Running())
	assert.Equal(t, 0.2, f.Remaining())
	f.Update(1.0)
	assert.Equal(t, 2, completions)
}

func TestSetOnComplete_NilDeregisters(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(Out, 0.2)

	f.SetOnComplete(func() { t.Fatal("deregistered callback fired") })
	f.SetOnComplete(nil)
	f.Start(src)

	assert.NotPanics(t, func() { f.Update(1.0) })
}

func TestStrength_OutGrowsWithElapsedTime(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(Out, 1.0)
	f.Start(src)

	assert.Equal(t, 0.0, f.strength(), "full remaining shows the unmodified source")

	f.Update(0.5)
	assert.InDelta(t, 0.5, f.strength(), 1e-9)

	f.Update(0.5)
	assert.Equal(t, 1.0, f.strength(), "zero remaining fully obscures")
}

func TestStrength_InIsTheMirror(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(In, 1.0)
	f.Start(src)

	assert.Equal(t, 1.0, f.strength(), "full remaining fully obscures")

	f.Update(0.5)
	assert.InDelta(t, 0.5, f.strength(), 1e-9)

	f.Update(0.5)
	assert.Equal(t, 0.0, f.strength(), "zero remaining shows the unmodified source")
}

func TestResize_PreservesCountdown(t *testing.T) {
	src := surface.New(320, 240)
	f := NewFade(Out, 1.0)
	f.Start(src)
	f.Update(0.4)

	src.Generate(640, 480)
	f.Resize(640, 480)

	assert.True(t, f.Running(), "resize must not stop the effect")
	assert.InDelta(t, 0.6, f.Remaining(), 1e-9, "resize must not reset the countdown")

	w, h := f.target.Size()
	assert.Equal(t, 640, w)
	assert.Equal(t, 480, h)
}

func TestResize_BeforeStartIsNoOp(t *testing.T) {
	f := NewFade(Out, 1.0)
	assert.NotPanics(t, func() { f.Resize(640, 480) })
	assert.Nil(t, f.target)
}

func TestDispose_Idempotent(t *testing.T) {
	src := surface.New(64, 64)
	f := NewFade(Out, 0.5)
	f.Start(src)

	f.Dispose()
	assert.True(t, f.Disposed())
	assert.False(t, f.Running())

	assert.NotPanics(t, func() { f.Dispose() })
	assert.True(t, src.IsValid(), "transition must never dispose the borrowed source")
}

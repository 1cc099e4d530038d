// Package transition provides timed visual effects that animate a scene
// swap by compositing an offscreen-rendered source frame.
//
// A transition reads from a source surface it does not own, renders the
// effect into a surface it does own, and reports completion exactly once
// per Start cycle. The same effect serves both directions: an Out
// transition grows from showing the unmodified source to fully obscuring
// it as its countdown runs out, and an In transition runs the identical
// effect on an inverted time axis.
package transition

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/curtain/internal/application/surface"
	"github.com/younwookim/curtain/internal/domain/timing"
)

// Kind is the direction of a transition effect.
type Kind int

const (
	// Out obscures the source as time runs out.
	Out Kind = iota
	// In reveals the source as time runs out.
	In
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case Out:
		return "Out"
	case In:
		return "In"
	default:
		return "Unknown"
	}
}

// Transition is a timed visual effect over a source surface.
//
// Calling Draw before Start is a caller contract violation.
type Transition interface {
	// Kind returns the effect direction.
	Kind() Kind

	// Start binds the source surface, resets the countdown and performs
	// variant-specific setup. The source is borrowed, never mutated or
	// disposed by the transition.
	Start(source *surface.Surface)

	// Update advances the countdown by dt seconds. When the countdown
	// reaches zero the transition stops running and the completion
	// callback fires, exactly once per Start cycle. Updates after
	// completion are no-ops. dt must not be negative.
	Update(dt float64)

	// Draw renders one frame of the effect onto screen.
	Draw(screen *ebiten.Image)

	// Running reports whether the effect is in flight.
	Running() bool

	// Remaining returns the seconds left on the countdown.
	Remaining() float64

	// SetOnComplete registers the completion callback. Pass nil to
	// deregister. The callback is consumed by exactly one listener.
	SetOnComplete(fn func())

	// Resize regenerates the owned render surface at the new dimensions
	// without disturbing the countdown or running state.
	Resize(width, height int)

	// Dispose releases the owned render surface. Safe to call repeatedly.
	Dispose()
}

// Base carries the countdown, direction, surfaces and one-shot
// completion shared by all effect variants.
type Base struct {
	kind       Kind
	countdown  timing.Countdown
	source     *surface.Surface
	target     *surface.Surface
	running    bool
	disposed   bool
	onComplete func()
}

func newBase(kind Kind, seconds float64) Base {
	return Base{kind: kind, countdown: timing.NewCountdown(seconds)}
}

// Kind returns the effect direction.
func (b *Base) Kind() Kind {
	return b.kind
}

// Running reports whether the effect is in flight.
func (b *Base) Running() bool {
	return b.running
}

// Remaining returns the seconds left on the countdown.
func (b *Base) Remaining() float64 {
	return b.countdown.Remaining()
}

// Duration returns the effect's total duration in seconds.
func (b *Base) Duration() float64 {
	return b.countdown.Total()
}

// SetOnComplete registers the completion callback, nil to deregister.
func (b *Base) SetOnComplete(fn func()) {
	b.onComplete = fn
}

// start binds the source and resets the countdown. The owned render
// surface is (re)allocated at the source's dimensions.
func (b *Base) start(source *surface.Surface) {
	if source == nil || !source.IsValid() {
		panic("transition: Start with nil or invalid source")
	}
	b.source = source
	w, h := source.Size()
	if b.target == nil {
		b.target = surface.New(w, h)
	} else {
		b.target.Generate(w, h)
	}
	b.countdown.Reset()
	b.running = true
}

// Update advances the countdown and fires completion when it finishes.
func (b *Base) Update(dt float64) {
	if dt < 0 {
		panic("transition: negative dt")
	}
	if !b.running {
		return
	}
	if b.countdown.Advance(dt) {
		b.running = false
		if b.onComplete != nil {
			b.onComplete()
		}
	}
}

// strength returns the effect intensity in [0, 1]: 0 renders the source
// unmodified, 1 is the fully transformed end state. Out grows with
// elapsed time; In is the mirror.
func (b *Base) strength() float64 {
	p := b.countdown.Fraction()
	if b.kind == Out {
		return 1 - p
	}
	return p
}

// Resize regenerates the owned render surface. Countdown state and the
// borrowed source reference are untouched; the source's owner
// regenerates it separately.
func (b *Base) Resize(width, height int) {
	if b.target != nil && b.target.IsValid() {
		b.target.Generate(width, height)
	}
}

// Dispose releases the owned render surface and drops all references.
// Safe to call repeatedly.
func (b *Base) Dispose() {
	if b.disposed {
		return
	}
	b.disposed = true
	b.running = false
	b.onComplete = nil
	b.source = nil
	if b.target != nil {
		b.target.Dispose()
	}
}

// Disposed reports whether Dispose has been called.
func (b *Base) Disposed() bool {
	return b.disposed
}

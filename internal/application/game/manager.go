// Package game provides the scene manager that orchestrates scene swaps
// and the two-stage out/in transition sequence, plus the ebiten.Game
// loop wrapper driving it.
package game

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/curtain/internal/application/scene"
	"github.com/younwookim/curtain/internal/application/state"
	"github.com/younwookim/curtain/internal/application/transition"
)

// SceneManager holds at most one active scene, at most one pending
// scene and at most one running transition of a registered out/in pair.
//
// A scene change with effects runs Out -> swap -> In: the outgoing
// transition plays over the old scene's frame, the swap unloads the old
// scene and initializes the new one, and the incoming transition plays
// over the new scene's frame. All stage changes happen synchronously
// inside Update, including cascading completions.
type SceneManager struct {
	active  scene.Scene
	pending scene.Scene

	out     transition.Transition
	in      transition.Transition
	current transition.Transition

	phase  state.Phase
	width  int
	height int
}

// NewSceneManager creates a manager for a width x height display.
// The manager starts with no active scene; request one with ChangeScene.
func NewSceneManager(width, height int) *SceneManager {
	if width <= 0 || height <= 0 {
		panic("game: non-positive display dimensions")
	}
	return &SceneManager{
		phase:  state.PhaseIdle,
		width:  width,
		height: height,
	}
}

// ChangeScene requests an instantaneous swap to next on the following
// Update tick, with no visual effect. A second request before that tick
// overwrites the first. Requesting the currently active scene or nil is
// a caller contract violation.
func (m *SceneManager) ChangeScene(next scene.Scene) {
	if next == nil {
		panic("game: ChangeScene with nil scene")
	}
	if next == m.active {
		panic("game: ChangeScene to the active scene")
	}
	m.pending = next
}

// ChangeSceneWith requests an animated swap to next: out plays over the
// current scene, then the swap happens, then in plays over the new
// scene. The request is silently dropped while a previous pair is still
// in flight. Requires an active scene to transition out of.
func (m *SceneManager) ChangeSceneWith(next scene.Scene, out, in transition.Transition) {
	if next == nil {
		panic("game: ChangeSceneWith with nil scene")
	}
	if out == nil || in == nil {
		panic("game: ChangeSceneWith with nil transition")
	}
	if next == m.active {
		panic("game: ChangeSceneWith to the active scene")
	}
	if m.active == nil {
		panic("game: ChangeSceneWith without an active scene")
	}
	if m.out != nil || m.in != nil {
		// A pair is already running. Dropped, deliberately unlogged.
		return
	}

	m.pending = next
	m.out = out
	m.in = in
	out.SetOnComplete(m.onOutComplete)
	in.SetOnComplete(m.onInComplete)

	out.Start(m.active.Surface())
	m.current = out
	m.phase = state.PhaseTransitionOut
}

// Update advances the running transition if any, performs a pending
// bare swap otherwise, then updates the active scene unless it is
// paused. Transition completions cascade synchronously within this
// call. dt must not be negative.
func (m *SceneManager) Update(dt float64) {
	if dt < 0 {
		panic("game: negative dt")
	}

	if m.current != nil {
		m.current.Update(dt)
	} else if m.pending != nil {
		m.swapScenes()
		m.phase = state.PhaseIdle
	}

	if m.active != nil && !m.active.Paused() {
		m.active.Update(dt)
	}
}

// Draw runs the active scene's draw bracket into its own surface, then
// composites the running transition's frame onto screen, or the scene
// surface directly when no transition is running.
func (m *SceneManager) Draw(screen *ebiten.Image, clear color.Color) {
	screen.Fill(clear)

	if m.active != nil {
		m.active.BeforeDraw(clear)
		m.active.Draw()
		m.active.AfterDraw()
	}

	if m.current != nil {
		m.current.Draw(screen)
	} else if m.active != nil {
		screen.DrawImage(m.active.Surface().Image(), nil)
	}
}

// NotifyDisplayResized regenerates the render surfaces of every live
// owner (the active scene and any in-flight transitions) at the new
// dimensions. Transition timing is untouched.
func (m *SceneManager) NotifyDisplayResized(width, height int) {
	if width <= 0 || height <= 0 {
		panic("game: non-positive display dimensions")
	}
	m.width = width
	m.height = height
	log.Printf("[SceneManager] display resized to %dx%d", width, height)
	m.regenerateSurfaces()
}

// NotifyDeviceReset regenerates all live render surfaces at the current
// dimensions after a graphics-device reset or recreation.
func (m *SceneManager) NotifyDeviceReset() {
	log.Printf("[SceneManager] device reset, regenerating surfaces")
	m.regenerateSurfaces()
}

// Active returns the active scene, nil before the first swap.
func (m *SceneManager) Active() scene.Scene {
	return m.active
}

// Pending returns the scene waiting to be swapped in, if any.
func (m *SceneManager) Pending() scene.Scene {
	return m.pending
}

// Current returns the running transition, nil when idle.
func (m *SceneManager) Current() transition.Transition {
	return m.current
}

// Phase returns the manager's position in the scene-change sequence.
func (m *SceneManager) Phase() state.Phase {
	return m.phase
}

// Size returns the current logical display dimensions.
func (m *SceneManager) Size() (width, height int) {
	return m.width, m.height
}

// swapScenes unloads the old scene and activates and initializes the
// pending one at the current display size.
func (m *SceneManager) swapScenes() {
	m.phase = state.PhaseSwap
	if m.active != nil {
		m.active.UnloadContent()
	}
	m.active = m.pending
	m.pending = nil
	m.active.Resize(m.width, m.height)
	m.active.Initialize()
	log.Printf("[SceneManager] scene swapped")
}

func (m *SceneManager) onOutComplete() {
	m.out.SetOnComplete(nil)
	m.out.Dispose()
	m.out = nil

	m.swapScenes()

	m.in.Start(m.active.Surface())
	m.current = m.in
	m.phase = state.PhaseTransitionIn
}

func (m *SceneManager) onInComplete() {
	m.in.SetOnComplete(nil)
	m.in.Dispose()
	m.in = nil
	m.current = nil
	m.phase = state.PhaseIdle
}

// regenerateSurfaces resizes every currently allocated surface, not just
// the newest one, so an in-flight transition never renders at stale
// dimensions.
func (m *SceneManager) regenerateSurfaces() {
	if m.active != nil && !m.active.Disposed() {
		m.active.Resize(m.width, m.height)
	}
	if m.out != nil {
		m.out.Resize(m.width, m.height)
	}
	if m.in != nil {
		m.in.Resize(m.width, m.height)
	}
}

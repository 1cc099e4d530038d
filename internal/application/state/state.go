package state

// Phase represents the scene manager's position in the scene-change sequence
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTransitionOut
	PhaseSwap
	PhaseTransitionIn
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseTransitionOut:
		return "TransitionOut"
	case PhaseSwap:
		return "Swap"
	case PhaseTransitionIn:
		return "TransitionIn"
	default:
		return "Unknown"
	}
}

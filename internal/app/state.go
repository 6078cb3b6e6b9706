// Package app runs the terminal map explorer on top of the collision engine.
package app

// State represents the current input mode.
type State int

const (
	// StateWalk moves the walker with the arrow keys.
	StateWalk State = iota
	// StateLook previews a raycast in the pressed direction instead of moving.
	StateLook
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateWalk:
		return "walk"
	case StateLook:
		return "look"
	default:
		return "unknown"
	}
}

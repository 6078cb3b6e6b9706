package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/samdwyer/doorjam/internal/collision"
	"github.com/samdwyer/doorjam/internal/grid"
)

// LookDistance is how many steps a look raycast travels.
const LookDistance = 8

// ErrNoFloor is returned when a map has nowhere to stand.
var ErrNoFloor = errors.New("app: map has no walkable cell")

// Session is the explorer state independent of the terminal.
type Session struct {
	query  *collision.Query
	walker grid.Point
	state  State
	ray    []grid.Point
	status string
}

// NewSession places the walker on the first walkable cell in row-major order.
func NewSession(q *collision.Query) (*Session, error) {
	g := q.Grid()
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			if q.IsWalkable(x, y) {
				return &Session{
					query:  q,
					walker: grid.Point{X: x, Y: y},
					state:  StateWalk,
					status: "arrows: move  l: look  q: quit",
				}, nil
			}
		}
	}
	return nil, ErrNoFloor
}

// Walker returns the walker's position.
func (s *Session) Walker() grid.Point {
	return s.walker
}

// State returns the current input mode.
func (s *Session) State() State {
	return s.state
}

// Ray returns the cells of the last look, if any.
func (s *Session) Ray() []grid.Point {
	return s.ray
}

// Status returns the message for the status line.
func (s *Session) Status() string {
	return s.status
}

// ToggleLook switches between walk and look mode.
func (s *Session) ToggleLook() {
	if s.state == StateLook {
		s.state = StateWalk
		s.ray = nil
	} else {
		s.state = StateLook
	}
	s.status = fmt.Sprintf("mode: %v", s.state)
}

// Act applies an arrow key in the current mode. In walk mode it reports
// whether the walker moved.
func (s *Session) Act(dir grid.Direction) bool {
	if s.state == StateLook {
		s.ray = slices.Collect(s.query.Raycast(s.walker, dir, LookDistance))
		s.status = fmt.Sprintf("look %v: %d cells", dir, len(s.ray))
		return false
	}

	if !s.query.CanMove(s.walker, dir) {
		s.status = fmt.Sprintf("blocked %v at %v", dir, s.walker)
		return false
	}
	s.walker = s.walker.Step(dir)
	s.status = fmt.Sprintf("at %v", s.walker)
	return true
}

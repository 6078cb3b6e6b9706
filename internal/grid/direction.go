package grid

import "fmt"

// Direction is one of the four orthogonal neighbours of a cell.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists every direction in clockwise order starting at North.
var Directions = [...]Direction{North, East, South, West}

// Delta returns the coordinate offset of one step in d. Y grows southwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, -1
	case East:
		return 1, 0
	case South:
		return 0, 1
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the direction pointing back across the same edge.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	case West:
		return East
	default:
		return d
	}
}

// Valid reports whether d is one of the four named directions.
func (d Direction) Valid() bool {
	return d >= North && d <= West
}

// String returns a human-readable direction name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Point is a cell coordinate.
type Point struct {
	X, Y int
}

// Step returns the neighbouring point in direction d.
func (p Point) Step(d Direction) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// String formats the point as (x,y).
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Package grid provides the 2D map of tile type ids.
package grid

import (
	"errors"
	"fmt"

	"github.com/samdwyer/doorjam/internal/tileset"
)

var (
	// ErrInvalidDimensions is returned for non-positive or inconsistent grid sizes.
	ErrInvalidDimensions = errors.New("grid: invalid dimensions")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("grid: coordinates out of bounds")
)

// MaxCells bounds the area of a grid.
const MaxCells = 1 << 24

// Grid is a width x height map of tile type ids stored in row-major order.
//
// A grid does not know which registry interprets its ids. It is mutated only
// while it is being built; afterwards it is shared read-only.
type Grid struct {
	width  int
	height int
	cells  []tileset.TypeID
}

// New creates a grid with every cell set to fill.
func New(width, height int, fill tileset.TypeID) (*Grid, error) {
	n, err := CellCount(width, height)
	if err != nil {
		return nil, fmt.Errorf("new grid: %w", err)
	}

	cells := make([]tileset.TypeID, n)
	for i := range cells {
		cells[i] = fill
	}

	return &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}, nil
}

// CellCount returns width*height. It fails with ErrInvalidDimensions when a
// side is not positive or the area exceeds MaxCells.
func CellCount(width, height int) (int, error) {
	if width <= 0 || height <= 0 || height > MaxCells/width {
		return 0, fmt.Errorf("%dx%d: %w", width, height, ErrInvalidDimensions)
	}
	return width * height, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the tile type id at (x, y).
func (g *Grid) Get(x, y int) (tileset.TypeID, error) {
	if !g.InBounds(x, y) {
		return 0, g.outOfBounds(x, y)
	}
	return g.cells[y*g.width+x], nil
}

// Set replaces the tile type id at (x, y). Only used while building.
func (g *Grid) Set(x, y int, id tileset.TypeID) error {
	if !g.InBounds(x, y) {
		return g.outOfBounds(x, y)
	}
	g.cells[y*g.width+x] = id
	return nil
}

// Cells returns a copy of the ids in row-major order.
func (g *Grid) Cells() []tileset.TypeID {
	out := make([]tileset.TypeID, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid) outOfBounds(x, y int) error {
	return fmt.Errorf("(%d,%d) outside %dx%d: %w", x, y, g.width, g.height, ErrOutOfBounds)
}

// Package edge resolves whether the boundary between two cells blocks movement.
//
// Tiles only store walls on their east and south edges. The west and north
// edges of a cell are read from the neighbour that owns them, so every
// internal edge has exactly one authoritative flag. Edges on the map
// boundary always block.
package edge

import (
	"fmt"

	"github.com/samdwyer/doorjam/internal/grid"
	"github.com/samdwyer/doorjam/internal/tileset"
)

// Resolver answers edge and floor questions for a grid interpreted by a registry.
// It only reads from both and is safe for concurrent use once they are built.
type Resolver struct {
	grid     *grid.Grid
	registry *tileset.Registry
}

// NewResolver creates a resolver borrowing g and registry.
func NewResolver(g *grid.Grid, registry *tileset.Registry) *Resolver {
	return &Resolver{
		grid:     g,
		registry: registry,
	}
}

// Blocked reports whether the edge on side dir of cell (x, y) blocks movement.
func (r *Resolver) Blocked(x, y int, dir grid.Direction) (bool, error) {
	if !r.grid.InBounds(x, y) {
		return false, fmt.Errorf("edge %v of (%d,%d): %w", dir, x, y, grid.ErrOutOfBounds)
	}

	switch dir {
	case grid.East:
		flags, err := r.flagsAt(x, y)
		if err != nil {
			return false, err
		}
		return flags.BlocksEast || !r.grid.InBounds(x+1, y), nil
	case grid.South:
		flags, err := r.flagsAt(x, y)
		if err != nil {
			return false, err
		}
		return flags.BlocksSouth || !r.grid.InBounds(x, y+1), nil
	case grid.West:
		if !r.grid.InBounds(x-1, y) {
			return true, nil
		}
		flags, err := r.flagsAt(x-1, y)
		return flags.BlocksEast, err
	case grid.North:
		if !r.grid.InBounds(x, y-1) {
			return true, nil
		}
		flags, err := r.flagsAt(x, y-1)
		return flags.BlocksSouth, err
	default:
		return false, fmt.Errorf("edge of (%d,%d): invalid direction %d", x, y, int(dir))
	}
}

// IsFloor reports whether the tile at (x, y) is a floor tile.
func (r *Resolver) IsFloor(x, y int) (bool, error) {
	flags, err := r.flagsAt(x, y)
	if err != nil {
		return false, err
	}
	return flags.Floor, nil
}

// flagsAt returns the flags of the tile at (x, y).
func (r *Resolver) flagsAt(x, y int) (tileset.Flags, error) {
	id, err := r.grid.Get(x, y)
	if err != nil {
		return tileset.Flags{}, err
	}
	flags, err := r.registry.Lookup(id)
	if err != nil {
		return tileset.Flags{}, fmt.Errorf("cell (%d,%d): %w", x, y, err)
	}
	return flags, nil
}

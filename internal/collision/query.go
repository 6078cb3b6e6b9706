// Package collision answers movement and line-of-sight questions on a tile grid
// whose walls sit on tile edges.
package collision

import (
	"fmt"
	"iter"

	"github.com/samdwyer/doorjam/internal/builder"
	"github.com/samdwyer/doorjam/internal/edge"
	"github.com/samdwyer/doorjam/internal/grid"
	"github.com/samdwyer/doorjam/internal/tileset"
)

// Query is the collision API over a validated grid.
// It is read-only and safe for concurrent use.
type Query struct {
	grid     *grid.Grid
	resolver *edge.Resolver
}

// New validates g against registry and returns a query over both.
func New(g *grid.Grid, registry *tileset.Registry) (*Query, error) {
	if err := builder.Validate(g, registry); err != nil {
		return nil, fmt.Errorf("collision query: %w", err)
	}
	return &Query{
		grid:     g,
		resolver: edge.NewResolver(g, registry),
	}, nil
}

// Grid returns the grid the query reads from.
func (q *Query) Grid() *grid.Grid {
	return q.grid
}

// IsWalkable returns true when (x, y) is in bounds and a floor tile.
func (q *Query) IsWalkable(x, y int) bool {
	if !q.grid.InBounds(x, y) {
		return false
	}
	floor, err := q.resolver.IsFloor(x, y)
	if err != nil {
		panic(integrityViolation(err))
	}
	return floor
}

// CanMove reports whether one step from from in dir is allowed: both cells
// are in bounds, the destination is floor, and the edge between them is open.
func (q *Query) CanMove(from grid.Point, dir grid.Direction) bool {
	if !dir.Valid() || !q.grid.InBounds(from.X, from.Y) {
		return false
	}
	to := from.Step(dir)
	if !q.IsWalkable(to.X, to.Y) {
		return false
	}
	return !q.EdgeBlocked(from, dir)
}

// EdgeBlocked reports whether the edge on side dir of from blocks movement.
// Edges of cells outside the grid count as blocked.
func (q *Query) EdgeBlocked(from grid.Point, dir grid.Direction) bool {
	if !dir.Valid() || !q.grid.InBounds(from.X, from.Y) {
		return true
	}
	blocked, err := q.resolver.Blocked(from.X, from.Y, dir)
	if err != nil {
		panic(integrityViolation(err))
	}
	return blocked
}

// Moves returns the directions, in North, East, South, West order, that
// CanMove allows from the given cell.
func (q *Query) Moves(from grid.Point) []grid.Direction {
	var moves []grid.Direction
	for _, dir := range grid.Directions {
		if q.CanMove(from, dir) {
			moves = append(moves, dir)
		}
	}
	return moves
}

// Raycast yields the walkable cells reached by stepping from from in dir.
// The start cell comes first if it is walkable; otherwise nothing is yielded.
// Stepping stops at the first move CanMove rejects or after maxDistance steps.
// The sequence is lazy and finite. It holds no cursor of its own, so ranging
// over it a second time walks the same ray again from from.
func (q *Query) Raycast(from grid.Point, dir grid.Direction, maxDistance int) iter.Seq[grid.Point] {
	return func(yield func(grid.Point) bool) {
		if !q.IsWalkable(from.X, from.Y) {
			return
		}
		if !yield(from) {
			return
		}
		cur := from
		for step := 0; step < maxDistance; step++ {
			if !q.CanMove(cur, dir) {
				return
			}
			cur = cur.Step(dir)
			if !yield(cur) {
				return
			}
		}
	}
}

// integrityViolation wraps an error that New's validation should have made impossible.
func integrityViolation(err error) error {
	return fmt.Errorf("collision: grid changed after validation: %w", err)
}

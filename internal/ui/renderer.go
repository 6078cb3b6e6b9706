package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/doorjam/internal/collision"
	"github.com/samdwyer/doorjam/internal/grid"
)

// Glyphs used by the renderer.
const (
	GlyphFloor     = '.'
	GlyphSolid     = '░'
	GlyphWalker    = '@'
	GlyphRay       = '*'
	GlyphWallEast  = '│'
	GlyphWallSouth = '─'
	GlyphPost      = '+'
)

// Frame is everything drawn in one pass.
type Frame struct {
	Walker grid.Point
	Ray    []grid.Point
	Status string
}

// Renderer handles drawing the map to the screen.
//
// Cell (x, y) is drawn at column 2x+1, row 2y+1. The columns and rows in
// between carry the wall segments of the edges, so a wall owned by one tile
// shows up exactly once.
type Renderer struct {
	screen *Screen
	theme  Theme
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen, theme Theme) *Renderer {
	return &Renderer{screen: screen, theme: theme}
}

// CellOrigin returns the screen position of a cell.
func CellOrigin(p grid.Point) (int, int) {
	return 2*p.X + 1, 2*p.Y + 1
}

// Render draws the map, ray, walker and status line.
func (r *Renderer) Render(q *collision.Query, frame Frame) {
	r.screen.Clear()

	g := q.Grid()
	wallStyle := tcell.StyleDefault.Foreground(r.theme.Wall)
	floorStyle := tcell.StyleDefault.Foreground(r.theme.Floor)

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			p := grid.Point{X: x, Y: y}
			sx, sy := CellOrigin(p)

			if q.IsWalkable(x, y) {
				r.screen.SetContent(sx, sy, GlyphFloor, floorStyle)
			} else {
				r.screen.SetContent(sx, sy, GlyphSolid, floorStyle)
			}

			// Each cell draws the two edges it owns plus the outer
			// boundary on the first row and column.
			if q.EdgeBlocked(p, grid.East) {
				r.screen.SetContent(sx+1, sy, GlyphWallEast, wallStyle)
			}
			if q.EdgeBlocked(p, grid.South) {
				r.screen.SetContent(sx, sy+1, GlyphWallSouth, wallStyle)
			}
			if x == 0 {
				r.screen.SetContent(sx-1, sy, GlyphWallEast, wallStyle)
			}
			if y == 0 {
				r.screen.SetContent(sx, sy-1, GlyphWallSouth, wallStyle)
			}
			r.screen.SetContent(sx+1, sy+1, GlyphPost, wallStyle)
			if x == 0 {
				r.screen.SetContent(sx-1, sy+1, GlyphPost, wallStyle)
			}
			if y == 0 {
				r.screen.SetContent(sx+1, sy-1, GlyphPost, wallStyle)
			}
		}
	}
	r.screen.SetContent(0, 0, GlyphPost, wallStyle)

	rayStyle := tcell.StyleDefault.Foreground(tcell.ColorAqua)
	for _, p := range frame.Ray {
		sx, sy := CellOrigin(p)
		r.screen.SetContent(sx, sy, GlyphRay, rayStyle)
	}

	walkerStyle := tcell.StyleDefault.
		Foreground(tcell.ColorYellow).
		Bold(true)
	wx, wy := CellOrigin(frame.Walker)
	r.screen.SetContent(wx, wy, GlyphWalker, walkerStyle)

	r.renderStatus(frame.Status, 2*g.Height()+2)

	r.screen.Show()
}

// renderStatus writes a message on row y.
func (r *Renderer) renderStatus(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range []rune(msg) {
		r.screen.SetContent(i, y, ch, style)
	}
}

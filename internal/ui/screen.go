// Package ui draws a tile grid with edge walls in the terminal using tcell.
package ui

import "github.com/gdamore/tcell/v2"

// Screen is the terminal surface the renderer draws the wall lattice on.
// Cell positions on it come from CellOrigin.
type Screen struct {
	screen tcell.Screen
}

// NewScreen takes over the terminal. Call Close before the process exits.
func NewScreen() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return newScreen(s)
}

func newScreen(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, err
	}
	s.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	s.Clear()
	return &Screen{screen: s}, nil
}

// Close hands the terminal back.
func (s *Screen) Close() {
	s.screen.Fini()
}

// PollEvent blocks until the next key or resize event.
func (s *Screen) PollEvent() tcell.Event {
	return s.screen.PollEvent()
}

// Clear blanks the frame before the lattice is redrawn.
func (s *Screen) Clear() {
	s.screen.Clear()
}

// Show presents the drawn frame.
func (s *Screen) Show() {
	s.screen.Show()
}

// SetContent places one glyph of the lattice.
func (s *Screen) SetContent(x, y int, r rune, style tcell.Style) {
	s.screen.SetContent(x, y, r, nil, style)
}

// Sync repaints everything, used after a terminal resize.
func (s *Screen) Sync() {
	s.screen.Sync()
}

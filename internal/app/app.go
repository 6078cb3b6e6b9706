package app

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/doorjam/internal/collision"
	"github.com/samdwyer/doorjam/internal/grid"
	"github.com/samdwyer/doorjam/internal/logger"
	"github.com/samdwyer/doorjam/internal/telemetry"
	"github.com/samdwyer/doorjam/internal/ui"
)

// App holds the terminal explorer.
type App struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	query    *collision.Query
	session  *Session
	running  bool
}

// New creates an explorer over q.
func New(q *collision.Query, theme ui.Theme) (*App, error) {
	session, err := NewSession(q)
	if err != nil {
		return nil, err
	}

	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &App{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		query:    q,
		session:  session,
		running:  true,
	}, nil
}

// Run executes the input loop until the user quits.
func (a *App) Run(ctx context.Context) error {
	_, span := telemetry.Tracer("app").Start(ctx, "app.run")
	start := a.session.Walker()
	span.SetAttributes(
		attribute.Int("grid.width", a.query.Grid().Width()),
		attribute.Int("grid.height", a.query.Grid().Height()),
		attribute.Int("walker.start_x", start.X),
		attribute.Int("walker.start_y", start.Y),
	)
	defer span.End()

	logger.Component("app").WithField("start", start.String()).Info("explorer started")

	moves := 0
	for a.running {
		a.renderer.Render(a.query, ui.Frame{
			Walker: a.session.Walker(),
			Ray:    a.session.Ray(),
			Status: a.session.Status(),
		})

		if a.handleInput() {
			moves++
		}
	}

	span.SetAttributes(attribute.Int("walker.moves", moves))
	a.screen.Close()
	return nil
}

// handleInput processes a single input event and reports whether the walker moved.
func (a *App) handleInput() bool {
	ev := a.screen.PollEvent()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKeyEvent(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return false
}

// handleKeyEvent processes keyboard input.
func (a *App) handleKeyEvent(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		a.running = false

	case tcell.KeyUp:
		return a.session.Act(grid.North)
	case tcell.KeyDown:
		return a.session.Act(grid.South)
	case tcell.KeyLeft:
		return a.session.Act(grid.West)
	case tcell.KeyRight:
		return a.session.Act(grid.East)

	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			a.running = false
		case 'l', 'L':
			a.session.ToggleLook()
		}
	}
	return false
}

package ui

import (
	"context"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/doorjam/internal/builder"
	"github.com/samdwyer/doorjam/internal/collision"
	"github.com/samdwyer/doorjam/internal/grid"
	"github.com/samdwyer/doorjam/internal/tileset"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#c8a050", true},
		{"invalid", false},
		{"#FFF", false},
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}

	c, _ := ParseHexColor("#102030")
	if r, g, b := c.RGB(); r != 0x10 || g != 0x20 || b != 0x30 {
		t.Errorf("ParseHexColor(#102030) = (%d,%d,%d)", r, g, b)
	}
}

func TestNewTheme(t *testing.T) {
	if _, err := NewTheme("#FFFFFF", "#000000"); err != nil {
		t.Errorf("NewTheme failed: %v", err)
	}
	if _, err := NewTheme("nope", "#000000"); err == nil {
		t.Error("NewTheme with bad wall color should fail")
	}
	if _, err := NewTheme("#FFFFFF", "nope"); err == nil {
		t.Error("NewTheme with bad floor color should fail")
	}
}

func TestRenderEdgeWalls(t *testing.T) {
	registry := tileset.NewRegistry()
	_ = registry.Register(0, tileset.Flags{Floor: true})
	_ = registry.Register(1, tileset.Flags{Floor: true, BlocksEast: true})
	_ = registry.Register(2, tileset.Flags{})
	registry.Freeze()

	// 3x1: walled floor, open floor, solid
	g, err := builder.Build(context.Background(), 3, 1, []tileset.TypeID{1, 0, 2}, registry)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	q, err := collision.New(g, registry)
	if err != nil {
		t.Fatalf("collision.New failed: %v", err)
	}

	sim := tcell.NewSimulationScreen("UTF-8")
	screen, err := newScreen(sim)
	if err != nil {
		t.Fatalf("newScreen failed: %v", err)
	}
	defer screen.Close()

	theme, _ := NewTheme("#FFFFFF", "#808080")
	NewRenderer(screen, theme).Render(q, Frame{
		Walker: grid.Point{X: 1, Y: 0},
		Status: "ok",
	})

	at := func(x, y int) rune {
		r, _, _, _ := sim.GetContent(x, y)
		return r
	}

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{"walled floor cell", 1, 1, GlyphFloor},
		{"owned east wall", 2, 1, GlyphWallEast},
		{"walker", 3, 1, GlyphWalker},
		{"solid cell", 5, 1, GlyphSolid},
		{"map east boundary", 6, 1, GlyphWallEast},
		{"map west boundary", 0, 1, GlyphWallEast},
		{"map north boundary", 3, 0, GlyphWallSouth},
		{"map south boundary", 3, 2, GlyphWallSouth},
		{"status line", 0, 4, 'o'},
	}

	for _, tt := range tests {
		if got := at(tt.x, tt.y); got != tt.want {
			t.Errorf("%s: content at (%d,%d) = %q, want %q", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

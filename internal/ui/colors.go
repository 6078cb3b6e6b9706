package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Theme holds the colors used to draw a map.
type Theme struct {
	Wall  tcell.Color
	Floor tcell.Color
}

// NewTheme parses hex colors for walls and floors.
func NewTheme(wallHex, floorHex string) (Theme, error) {
	wall, err := ParseHexColor(wallHex)
	if err != nil {
		return Theme{}, fmt.Errorf("wall color: %w", err)
	}
	floor, err := ParseHexColor(floorHex)
	if err != nil {
		return Theme{}, fmt.Errorf("floor color: %w", err)
	}
	return Theme{Wall: wall, Floor: floor}, nil
}

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a tcell.Color.
func ParseHexColor(hex string) (tcell.Color, error) {
	hex = strings.TrimPrefix(hex, "#")

	if len(hex) != 6 {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color length: %s", hex)
	}

	rgb, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return tcell.ColorDefault, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	return tcell.NewRGBColor(int32(rgb>>16&0xFF), int32(rgb>>8&0xFF), int32(rgb&0xFF)), nil
}

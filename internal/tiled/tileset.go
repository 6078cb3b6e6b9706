// Package tiled decodes Tiled editor files (TSX tilesets and JSON maps) into
// the plain inputs the tileset registry and grid builder consume.
package tiled

import (
	"encoding/xml"
	"fmt"
	"io"
	"strconv"

	"github.com/samdwyer/doorjam/internal/tileset"
)

// Property names carried by the tileset.
const (
	propFloor     = "floor"
	propWallEast  = "wall_east"
	propWallSouth = "wall_south"
)

type tsxTileset struct {
	XMLName   xml.Name  `xml:"tileset"`
	Name      string    `xml:"name,attr"`
	TileCount int       `xml:"tilecount,attr"`
	Columns   int       `xml:"columns,attr"`
	Tiles     []tsxTile `xml:"tile"`
}

type tsxTile struct {
	ID         int           `xml:"id,attr"`
	Properties []tsxProperty `xml:"properties>property"`
}

type tsxProperty struct {
	Name  string `xml:"name,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:"value,attr"`
}

// DecodeTileset reads a TSX tileset. Only the floor, wall_east and
// wall_south properties are kept; all other properties are ignored.
func DecodeTileset(r io.Reader) (tileset.Descriptor, error) {
	var raw tsxTileset
	if err := xml.NewDecoder(r).Decode(&raw); err != nil {
		return tileset.Descriptor{}, fmt.Errorf("decode tileset: %w", err)
	}

	desc := tileset.Descriptor{
		Name:      raw.Name,
		TileCount: raw.TileCount,
		Columns:   raw.Columns,
		Tiles:     make([]tileset.TileDef, 0, len(raw.Tiles)),
	}

	for _, tile := range raw.Tiles {
		def := tileset.TileDef{ID: tile.ID}
		for _, prop := range tile.Properties {
			var target **bool
			switch prop.Name {
			case propFloor:
				target = &def.Floor
			case propWallEast:
				target = &def.WallEast
			case propWallSouth:
				target = &def.WallSouth
			default:
				continue
			}

			b, err := parseBool(prop)
			if err != nil {
				return tileset.Descriptor{}, fmt.Errorf("tileset %q tile %d: %w", raw.Name, tile.ID, err)
			}
			*target = &b
		}
		desc.Tiles = append(desc.Tiles, def)
	}

	return desc, nil
}

// parseBool reads a bool property. Tiled may omit value for false.
func parseBool(prop tsxProperty) (bool, error) {
	if prop.Type != "bool" {
		return false, fmt.Errorf("property %s has type %q, want bool", prop.Name, prop.Type)
	}
	if prop.Value == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(prop.Value)
	if err != nil {
		return false, fmt.Errorf("property %s: %w", prop.Name, err)
	}
	return b, nil
}

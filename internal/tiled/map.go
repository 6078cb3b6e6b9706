package tiled

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/samdwyer/doorjam/internal/grid"
	"github.com/samdwyer/doorjam/internal/tileset"
)

// Flip and rotation bits Tiled stores in the high bits of a gid.
const gidFlagMask uint32 = 0xF0000000

// ErrNoLayer is returned when a map has no matching tile layer.
var ErrNoLayer = errors.New("tiled: tile layer not found")

// Map is the subset of a Tiled JSON map the engine needs.
type Map struct {
	Width       int          `json:"width"`
	Height      int          `json:"height"`
	TileWidth   int          `json:"tilewidth"`
	TileHeight  int          `json:"tileheight"`
	Orientation string       `json:"orientation"`
	Layers      []Layer      `json:"layers"`
	Tilesets    []TilesetRef `json:"tilesets"`
}

// Layer is a map layer. Only layers of type "tilelayer" carry tile data.
type Layer struct {
	Name   string   `json:"name"`
	Type   string   `json:"type"`
	Width  int      `json:"width"`
	Height int      `json:"height"`
	Data   []uint32 `json:"data"`
}

// TilesetRef points from a map to an external tileset.
type TilesetRef struct {
	FirstGID int    `json:"firstgid"`
	Source   string `json:"source"`
}

// DecodeMap reads a Tiled JSON map.
func DecodeMap(r io.Reader) (*Map, error) {
	var m Map
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode map: %w", err)
	}
	return &m, nil
}

// TileLayer returns the tile layer with the given name, or the first
// tile layer when name is empty.
func (m *Map) TileLayer(name string) (*Layer, error) {
	for i := range m.Layers {
		layer := &m.Layers[i]
		if layer.Type != "tilelayer" {
			continue
		}
		if name == "" || layer.Name == name {
			return layer, nil
		}
	}
	return nil, fmt.Errorf("layer %q: %w", name, ErrNoLayer)
}

// FirstGID returns the first gid of the map's first tileset, or 1 if the
// map declares none.
func (m *Map) FirstGID() int {
	if len(m.Tilesets) == 0 {
		return 1
	}
	return m.Tilesets[0].FirstGID
}

// TileIDs converts the layer's gids into row-major tile type ids local to the
// tileset starting at firstGID. Empty cells (gid 0) become empty.
func (l *Layer) TileIDs(firstGID int, empty tileset.TypeID) ([]tileset.TypeID, error) {
	if n, err := grid.CellCount(l.Width, l.Height); err != nil || len(l.Data) != n {
		return nil, fmt.Errorf("layer %q: %d gids for %dx%d: %w",
			l.Name, len(l.Data), l.Width, l.Height, grid.ErrInvalidDimensions)
	}

	ids := make([]tileset.TypeID, len(l.Data))
	for i, raw := range l.Data {
		gid := int(raw &^ gidFlagMask)
		switch {
		case gid == 0:
			ids[i] = empty
		case gid < firstGID:
			return nil, fmt.Errorf("layer %q cell (%d,%d): gid %d below first gid %d: %w",
				l.Name, i%l.Width, i/l.Width, gid, firstGID, tileset.ErrUnknownTileType)
		default:
			ids[i] = tileset.TypeID(gid - firstGID)
		}
	}
	return ids, nil
}

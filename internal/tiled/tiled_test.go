package tiled

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/samdwyer/doorjam/data"
	"github.com/samdwyer/doorjam/internal/builder"
	"github.com/samdwyer/doorjam/internal/grid"
	"github.com/samdwyer/doorjam/internal/tileset"
)

func TestLoadEmbeddedTileset(t *testing.T) {
	registry, err := LoadRegistry(context.Background(), data.FS(), data.TilesetFile)
	if err != nil {
		t.Fatalf("Failed to load tileset: %v", err)
	}

	if registry.Count() != 100 {
		t.Errorf("Expected 100 tile types, got %d", registry.Count())
	}

	tests := []struct {
		id   tileset.TypeID
		want tileset.Flags
	}{
		{0, tileset.Flags{Floor: true}},
		{1, tileset.Flags{Floor: true}},
		{2, tileset.Flags{}}, // Not listed in the descriptor
		{10, tileset.Flags{BlocksEast: true, BlocksSouth: true}},
		{11, tileset.Flags{BlocksSouth: true}},
		{12, tileset.Flags{BlocksEast: true}},
		{60, tileset.Flags{BlocksEast: true, BlocksSouth: true}},
		{99, tileset.Flags{}},
	}

	for _, tt := range tests {
		got, err := registry.Lookup(tt.id)
		if err != nil {
			t.Errorf("Lookup(%d) failed: %v", tt.id, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Lookup(%d) = %+v, want %+v", tt.id, got, tt.want)
		}
	}
}

func TestDecodeTilesetProperties(t *testing.T) {
	const tsx = `<?xml version="1.0" encoding="UTF-8"?>
<tileset name="Test" tilecount="4" columns="2">
 <tile id="1">
  <properties>
   <property name="floor" type="bool" value="true"/>
   <property name="label" type="string" value="ignored"/>
  </properties>
 </tile>
 <tile id="3">
  <properties>
   <property name="wall_south" type="bool"/>
   <property name="wall_east" type="bool" value="true"/>
  </properties>
 </tile>
</tileset>`

	desc, err := DecodeTileset(strings.NewReader(tsx))
	if err != nil {
		t.Fatalf("DecodeTileset failed: %v", err)
	}
	if desc.Name != "Test" || desc.TileCount != 4 || desc.Columns != 2 {
		t.Errorf("Header = %q/%d/%d, want Test/4/2", desc.Name, desc.TileCount, desc.Columns)
	}
	if len(desc.Tiles) != 2 {
		t.Fatalf("Expected 2 tile entries, got %d", len(desc.Tiles))
	}

	if got := desc.Tiles[0].Flags(); got != (tileset.Flags{Floor: true}) {
		t.Errorf("Tile 1 flags = %+v", got)
	}
	tile3 := desc.Tiles[1]
	if tile3.Floor != nil {
		t.Error("Tile 3 floor should be unset")
	}
	if tile3.WallSouth == nil || *tile3.WallSouth {
		t.Error("Tile 3 wall_south should be explicitly false")
	}
	if got := tile3.Flags(); got != (tileset.Flags{BlocksEast: true}) {
		t.Errorf("Tile 3 flags = %+v", got)
	}
}

func TestDecodeTilesetErrors(t *testing.T) {
	tests := []struct {
		name string
		tsx  string
	}{
		{"malformed xml", `<tileset name="x"`},
		{"wrong property type", `<tileset tilecount="1"><tile id="0"><properties><property name="floor" type="int" value="1"/></properties></tile></tileset>`},
		{"bad bool", `<tileset tilecount="1"><tile id="0"><properties><property name="floor" type="bool" value="maybe"/></properties></tile></tileset>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeTileset(strings.NewReader(tt.tsx)); err == nil {
				t.Error("DecodeTileset should fail")
			}
		})
	}
}

func TestLayerTileIDs(t *testing.T) {
	layer := Layer{
		Name:   "Floor",
		Type:   "tilelayer",
		Width:  3,
		Height: 1,
		Data:   []uint32{1, 0, 11 | 0x80000000},
	}

	ids, err := layer.TileIDs(1, 2)
	if err != nil {
		t.Fatalf("TileIDs failed: %v", err)
	}
	want := []tileset.TypeID{0, 2, 10}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestLayerTileIDsErrors(t *testing.T) {
	short := Layer{Name: "short", Width: 2, Height: 2, Data: []uint32{1, 1, 1}}
	if _, err := short.TileIDs(1, 0); !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("Short layer error = %v, want ErrInvalidDimensions", err)
	}

	wrapped := Layer{Name: "wrapped", Width: 1 << 32, Height: 1 << 32}
	if _, err := wrapped.TileIDs(1, 0); !errors.Is(err, grid.ErrInvalidDimensions) {
		t.Errorf("Wrapping layer error = %v, want ErrInvalidDimensions", err)
	}

	foreign := Layer{Name: "foreign", Width: 1, Height: 1, Data: []uint32{3}}
	if _, err := foreign.TileIDs(5, 0); !errors.Is(err, tileset.ErrUnknownTileType) {
		t.Errorf("Foreign gid error = %v, want ErrUnknownTileType", err)
	}
}

func TestTileLayer(t *testing.T) {
	m := &Map{Layers: []Layer{
		{Name: "Objects", Type: "objectgroup"},
		{Name: "Floor", Type: "tilelayer"},
		{Name: "Decor", Type: "tilelayer"},
	}}

	if layer, err := m.TileLayer(""); err != nil || layer.Name != "Floor" {
		t.Errorf("TileLayer(\"\") = %v, %v; want Floor", layer, err)
	}
	if layer, err := m.TileLayer("Decor"); err != nil || layer.Name != "Decor" {
		t.Errorf("TileLayer(Decor) = %v, %v; want Decor", layer, err)
	}
	if _, err := m.TileLayer("Objects"); !errors.Is(err, ErrNoLayer) {
		t.Errorf("TileLayer(Objects) error = %v, want ErrNoLayer", err)
	}
	if m.FirstGID() != 1 {
		t.Errorf("FirstGID() without tilesets = %d, want 1", m.FirstGID())
	}
}

func TestEmbeddedDemoMapBuilds(t *testing.T) {
	ctx := context.Background()
	registry, err := LoadRegistry(ctx, data.FS(), data.TilesetFile)
	if err != nil {
		t.Fatalf("LoadRegistry failed: %v", err)
	}
	m, err := LoadMap(ctx, data.FS(), data.MapFile)
	if err != nil {
		t.Fatalf("LoadMap failed: %v", err)
	}
	layer, err := m.TileLayer("")
	if err != nil {
		t.Fatalf("TileLayer failed: %v", err)
	}
	ids, err := layer.TileIDs(m.FirstGID(), 2)
	if err != nil {
		t.Fatalf("TileIDs failed: %v", err)
	}

	g, err := builder.Build(ctx, layer.Width, layer.Height, ids, registry)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if g.Width() != m.Width || g.Height() != m.Height {
		t.Errorf("Grid %dx%d, map %dx%d", g.Width(), g.Height(), m.Width, m.Height)
	}
	if id, _ := g.Get(0, 0); id != 10 {
		t.Errorf("Corner tile = %d, want 10", id)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fsys := fstest.MapFS{}
	_, err := LoadMap(context.Background(), fsys, "missing.tmj")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadMap error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadRegistryFromMapFS(t *testing.T) {
	fsys := fstest.MapFS{
		"tiny.tsx": &fstest.MapFile{Data: []byte(
			`<tileset name="tiny" tilecount="2" columns="2"><tile id="5"/></tileset>`)},
	}
	_, err := LoadRegistry(context.Background(), fsys, "tiny.tsx")
	if !errors.Is(err, tileset.ErrUnknownTileType) {
		t.Errorf("LoadRegistry error = %v, want ErrUnknownTileType", err)
	}
}

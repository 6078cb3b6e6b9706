package app

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/samdwyer/doorjam/data"
	"github.com/samdwyer/doorjam/internal/builder"
	"github.com/samdwyer/doorjam/internal/collision"
	"github.com/samdwyer/doorjam/internal/config"
	"github.com/samdwyer/doorjam/internal/tileset"
	"github.com/samdwyer/doorjam/internal/tiled"
)

// LoadWorld loads the configured tileset and map and builds a collision query.
func LoadWorld(ctx context.Context, cfg config.Config) (*collision.Query, error) {
	tsFS, tsName := source(cfg.TilesetPath, data.TilesetFile)
	registry, err := tiled.LoadRegistry(ctx, tsFS, tsName)
	if err != nil {
		return nil, err
	}

	mapFS, mapName := source(cfg.MapPath, data.MapFile)
	m, err := tiled.LoadMap(ctx, mapFS, mapName)
	if err != nil {
		return nil, err
	}

	layer, err := m.TileLayer(cfg.Layer)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapName, err)
	}
	ids, err := layer.TileIDs(m.FirstGID(), tileset.TypeID(cfg.EmptyTile))
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapName, err)
	}

	g, err := builder.Build(ctx, layer.Width, layer.Height, ids, registry)
	if err != nil {
		return nil, fmt.Errorf("map %s: %w", mapName, err)
	}
	return collision.New(g, registry)
}

// source picks the embedded data unless path is set.
func source(path, embedded string) (fs.FS, string) {
	if path == "" {
		return data.FS(), embedded
	}
	return os.DirFS(filepath.Dir(path)), filepath.Base(path)
}

package tiled

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/doorjam/internal/logger"
	"github.com/samdwyer/doorjam/internal/telemetry"
	"github.com/samdwyer/doorjam/internal/tileset"
)

// Load opens name in fsys and decodes it with decode.
func Load[T any](ctx context.Context, fsys fs.FS, name string, decode func(io.Reader) (T, error)) (T, error) {
	var result T

	_, span := telemetry.Tracer("tiled").Start(ctx, "tiled.load")
	defer span.End()
	span.SetAttributes(attribute.String("tiled.file", name))

	f, err := fsys.Open(name)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	result, err = decode(f)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return result, fmt.Errorf("failed to load %s: %w", name, err)
	}

	logger.Component("tiled").WithField("file", name).Debug("loaded")
	return result, nil
}

// LoadRegistry loads a TSX tileset and returns its frozen registry.
func LoadRegistry(ctx context.Context, fsys fs.FS, name string) (*tileset.Registry, error) {
	desc, err := Load(ctx, fsys, name, DecodeTileset)
	if err != nil {
		return nil, err
	}
	registry, err := tileset.FromDescriptor(desc)
	if err != nil {
		return nil, fmt.Errorf("failed to register %s: %w", name, err)
	}
	return registry, nil
}

// LoadMap loads a Tiled JSON map.
func LoadMap(ctx context.Context, fsys fs.FS, name string) (*Map, error) {
	return Load(ctx, fsys, name, DecodeMap)
}

// Package builder constructs grids from external id data and checks them
// against a tileset registry.
//
// Build is the single validation checkpoint: a grid it returns never makes
// the edge resolver or collision queries hit an unknown tile type.
package builder

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/doorjam/internal/grid"
	"github.com/samdwyer/doorjam/internal/logger"
	"github.com/samdwyer/doorjam/internal/telemetry"
	"github.com/samdwyer/doorjam/internal/tileset"
)

// Build creates a width x height grid from row-major ids.
// No grid is returned unless every id is known to registry.
func Build(ctx context.Context, width, height int, ids []tileset.TypeID, registry *tileset.Registry) (*grid.Grid, error) {
	tracer := telemetry.Tracer("builder")
	_, span := tracer.Start(ctx, "grid.build")
	defer span.End()

	buildID := uuid.New()
	startTime := time.Now()
	span.SetAttributes(
		attribute.String("build.id", buildID.String()),
		attribute.Int("grid.width", width),
		attribute.Int("grid.height", height),
	)

	log := logger.Component("builder").WithFields(logrus.Fields{
		"build_id": buildID.String(),
		"width":    width,
		"height":   height,
	})

	if n, err := grid.CellCount(width, height); err != nil || len(ids) != n {
		err := fmt.Errorf("build %dx%d from %d ids: %w", width, height, len(ids), grid.ErrInvalidDimensions)
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).Warn("grid rejected")
		return nil, err
	}

	distinct, err := checkIDs(ids, registry)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.WithError(err).Warn("grid rejected")
		return nil, err
	}

	g, err := grid.New(width, height, ids[0])
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		if err := g.Set(i%width, i/width, id); err != nil {
			return nil, err
		}
	}

	span.SetAttributes(
		attribute.Int("grid.distinct_tiles", distinct),
		attribute.Int64("grid.build_ms", time.Since(startTime).Milliseconds()),
	)
	log.WithField("distinct_tiles", distinct).Debug("grid built")

	return g, nil
}

// BuildRows creates a grid from rows of ids. Every row must have the same,
// non-zero length.
func BuildRows(ctx context.Context, rows [][]tileset.TypeID, registry *tileset.Registry) (*grid.Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("build from rows: empty grid: %w", grid.ErrInvalidDimensions)
	}

	width := len(rows[0])
	ids := make([]tileset.TypeID, 0, width*len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("build from rows: row %d has %d ids, want %d: %w",
				y, len(row), width, grid.ErrInvalidDimensions)
		}
		ids = append(ids, row...)
	}

	return Build(ctx, width, len(rows), ids, registry)
}

// Validate checks that every cell of g references a registered tile type.
func Validate(g *grid.Grid, registry *tileset.Registry) error {
	_, err := checkIDs(g.Cells(), registry)
	return err
}

// checkIDs returns the number of distinct ids, or an error listing every
// unknown id in ascending order.
func checkIDs(ids []tileset.TypeID, registry *tileset.Registry) (int, error) {
	seen := mapset.New[tileset.TypeID]()
	unknown := mapset.New[tileset.TypeID]()

	for _, id := range ids {
		if seen.Has(id) {
			continue
		}
		seen.Put(id)
		if !registry.Has(id) {
			unknown.Put(id)
		}
	}

	if unknown.Size() > 0 {
		missing := make([]tileset.TypeID, 0, unknown.Size())
		unknown.Each(func(id tileset.TypeID) {
			missing = append(missing, id)
		})
		slices.Sort(missing)
		return 0, fmt.Errorf("grid references tiles %v: %w", missing, tileset.ErrUnknownTileType)
	}

	return seen.Size(), nil
}

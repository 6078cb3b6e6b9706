package tileset

import "errors"

var (
	// ErrDuplicateTileType is returned when an id is registered twice.
	ErrDuplicateTileType = errors.New("tileset: duplicate tile type")
	// ErrUnknownTileType is returned when an id is not present in the registry.
	ErrUnknownTileType = errors.New("tileset: unknown tile type")
	// ErrRegistryFrozen is returned by Register after Freeze.
	ErrRegistryFrozen = errors.New("tileset: registry is frozen")
)

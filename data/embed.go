// Package data provides the embedded default tileset and demo map.
package data

import "embed"

// Names of the embedded files.
const (
	TilesetFile = "Tiles.tsx"
	MapFile     = "demo.tmj"
)

// dataFS embeds the Tiled files from the data directory at build time.
//
//go:embed *.tsx *.tmj
var dataFS embed.FS

// FS returns the embedded filesystem containing the default tileset and map.
func FS() embed.FS {
	return dataFS
}

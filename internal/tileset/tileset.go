// Package tileset provides the catalog of tile types and their collision flags.
package tileset

// TypeID identifies a tile type within a tileset. Valid ids are in [0, tileCount).
type TypeID int

// Flags holds the collision attributes of a tile type.
// The zero value has every flag unset, which is also the default for
// properties the tileset descriptor leaves out.
type Flags struct {
	Floor       bool // The cell itself can be stood on
	BlocksEast  bool // Wall segment on the east edge of the cell
	BlocksSouth bool // Wall segment on the south edge of the cell
}

// Descriptor is an already-decoded tileset description.
type Descriptor struct {
	Name      string
	TileCount int
	Columns   int
	Tiles     []TileDef
}

// TileDef is the sparse per-tile entry of a Descriptor.
// A nil property was not specified by the source data.
type TileDef struct {
	ID        int
	Floor     *bool
	WallEast  *bool
	WallSouth *bool
}

// Flags normalizes the definition into concrete flags.
func (d TileDef) Flags() Flags {
	return Flags{
		Floor:       value(d.Floor),
		BlocksEast:  value(d.WallEast),
		BlocksSouth: value(d.WallSouth),
	}
}

func value(b *bool) bool {
	return b != nil && *b
}

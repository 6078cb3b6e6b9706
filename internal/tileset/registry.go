package tileset

import (
	"fmt"
	"slices"
)

// Registry maps tile type ids to their flags.
//
// A registry is filled during a single-threaded build phase and then frozen.
// Once frozen it never changes and may be read from any number of goroutines
// without locking.
type Registry struct {
	flags  map[TypeID]Flags
	frozen bool
}

// NewRegistry creates an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{
		flags: make(map[TypeID]Flags),
	}
}

// FromDescriptor creates a frozen registry from a decoded descriptor.
// Every id in [0, TileCount) is registered; ids without an entry get
// the zero Flags.
func FromDescriptor(desc Descriptor) (*Registry, error) {
	if desc.TileCount < 0 {
		return nil, fmt.Errorf("tileset %q: negative tile count %d", desc.Name, desc.TileCount)
	}

	defs := make(map[TypeID]Flags, len(desc.Tiles))
	for _, def := range desc.Tiles {
		id := TypeID(def.ID)
		if def.ID < 0 || def.ID >= desc.TileCount {
			return nil, fmt.Errorf("tileset %q: tile %d outside tile count %d: %w",
				desc.Name, def.ID, desc.TileCount, ErrUnknownTileType)
		}
		if _, ok := defs[id]; ok {
			return nil, fmt.Errorf("tileset %q: tile %d: %w", desc.Name, def.ID, ErrDuplicateTileType)
		}
		defs[id] = def.Flags()
	}

	registry := NewRegistry()
	for i := 0; i < desc.TileCount; i++ {
		id := TypeID(i)
		if err := registry.Register(id, defs[id]); err != nil {
			return nil, err
		}
	}
	registry.Freeze()
	return registry, nil
}

// Register adds a tile type. It fails if the id is already present,
// negative, or the registry has been frozen.
func (r *Registry) Register(id TypeID, flags Flags) error {
	if r.frozen {
		return fmt.Errorf("register tile %d: %w", id, ErrRegistryFrozen)
	}
	if id < 0 {
		return fmt.Errorf("register tile %d: negative id: %w", id, ErrUnknownTileType)
	}
	if _, ok := r.flags[id]; ok {
		return fmt.Errorf("register tile %d: %w", id, ErrDuplicateTileType)
	}
	r.flags[id] = flags
	return nil
}

// Lookup returns the flags registered for id.
func (r *Registry) Lookup(id TypeID) (Flags, error) {
	flags, ok := r.flags[id]
	if !ok {
		return Flags{}, fmt.Errorf("lookup tile %d: %w", id, ErrUnknownTileType)
	}
	return flags, nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id TypeID) bool {
	_, ok := r.flags[id]
	return ok
}

// Freeze ends the build phase. Freezing twice is a no-op.
func (r *Registry) Freeze() {
	r.frozen = true
}

// Frozen reports whether Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.frozen
}

// IDs returns all registered ids in ascending order.
func (r *Registry) IDs() []TypeID {
	ids := make([]TypeID, 0, len(r.flags))
	for id := range r.flags {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Count returns the number of registered tile types.
func (r *Registry) Count() int {
	return len(r.flags)
}

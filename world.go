package tabula

import (
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"

	"github.com/tabula-ecs/tabula/log"
	"github.com/tabula-ecs/tabula/registry"
	"github.com/tabula-ecs/tabula/storage"
	"github.com/tabula-ecs/tabula/types"
)

// World owns the entity registry and one component store per component type
// used with it. It is the sole mutation gateway: every spawn, despawn, and
// component write goes through the World, and everything a query yields is a
// view into the World's stores.
type World struct {
	registry *registry.Registry
	stores   map[string]storage.AnyStore
	order    []string // component names in registration order

	nextComponentID types.ComponentID

	// version counts structural changes (spawn, despawn, component type
	// membership changes). Open iterators capture it at construction and
	// panic if it moves, which turns structural mutation during iteration
	// into a loud failure instead of a corrupted pass.
	version uint64

	logger zerolog.Logger
}

// NewWorld creates an empty world using configuration from TABULA_*
// environment variables.
func NewWorld(opts ...WorldOption) (*World, error) {
	cfg, err := loadWorldConfig()
	if err != nil {
		return nil, err
	}

	w := &World{
		registry: registry.New(cfg.InitialCapacity),
		stores:   make(map[string]storage.AnyStore),
		order:    make([]string, 0),
		logger:   cfg.logger(),
	}
	for _, opt := range opts {
		opt(w)
	}

	w.logger.Debug().Msg("world created")
	return w, nil
}

// Spawn creates a single entity carrying the given bundle of components. At
// least 1 component must be provided, and every component type in the bundle
// must already have a store (created by an earlier Spawn1..Spawn4,
// RegisterComponent, or SetComponent). Either the whole bundle is stored or
// no entity is created.
func (w *World) Spawn(components ...types.Component) (types.EntityID, error) {
	if len(components) == 0 {
		return types.EntityID{}, ErrEntityMustHaveComponents
	}

	// Resolve every store up front so a bad bundle fails before any state
	// changes.
	stores := make([]storage.AnyStore, len(components))
	for i, c := range components {
		st, ok := w.stores[c.Name()]
		if !ok {
			return types.EntityID{}, eris.Wrapf(ErrComponentNotRegistered, "component %q", c.Name())
		}
		stores[i] = st
	}

	id := w.registry.Allocate()
	for i, c := range components {
		if err := stores[i].Set(id, c); err != nil {
			// A same-named component of a different Go type slipped into the
			// bundle. Undo the partial spawn before reporting.
			for _, st := range stores[:i] {
				st.Discard(id)
			}
			w.registry.Despawn(id)
			return types.EntityID{}, err
		}
	}
	w.version++

	w.logSpawn(id, components)
	return id, nil
}

// SpawnMany creates num entities, each carrying its own copy of the given
// bundle, and returns their IDs in creation order.
func (w *World) SpawnMany(num int, components ...types.Component) ([]types.EntityID, error) {
	ids := make([]types.EntityID, 0, num)
	for i := 0; i < num; i++ {
		id, err := w.Spawn(components...)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Despawn invalidates id and removes the entity's data from every component
// store that holds it. Returns false if id was already stale or unknown.
func (w *World) Despawn(id types.EntityID) bool {
	if !w.registry.Despawn(id) {
		return false
	}
	for _, name := range w.order {
		w.stores[name].Discard(id)
	}
	w.version++

	w.logger.Debug().
		Str("entity_id", id.String()).
		Msg("entity despawned")
	return true
}

// Entity returns a read-oriented handle for id. It fails if id is not live.
func (w *World) Entity(id types.EntityID) (EntityRef, error) {
	if !w.registry.IsAlive(id) {
		return EntityRef{}, eris.Wrapf(ErrEntityNotFound, "entity %s", id)
	}
	return EntityRef{id: id, world: w}, nil
}

// IsAlive reports whether id refers to a live entity.
func (w *World) IsAlive(id types.EntityID) bool {
	return w.registry.IsAlive(id)
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return w.registry.Count()
}

// Logger returns the world's logger.
func (w *World) Logger() *zerolog.Logger {
	return &w.logger
}

// RegisteredComponents returns the metadata of every component type a store
// has been created for, in registration order.
func (w *World) RegisteredComponents() []types.ComponentMetadata {
	acc := make([]types.ComponentMetadata, 0, len(w.order))
	for _, name := range w.order {
		acc = append(acc, w.stores[name])
	}
	return acc
}

// mustBeCurrent panics if the world has seen a structural change since an
// iterator captured version.
func (w *World) mustBeCurrent(version uint64) {
	if w.version != version {
		panic("tabula: structural change to the world during iteration")
	}
}

// LogRegisteredComponents writes a summary of every registered component
// type to the world's logger.
func (w *World) LogRegisteredComponents(level zerolog.Level) {
	log.Components(&w.logger, w, level)
}

func (w *World) logSpawn(id types.EntityID, components []types.Component) {
	if w.logger.GetLevel() > zerolog.DebugLevel {
		return
	}
	metadata := make([]types.ComponentMetadata, 0, len(components))
	for _, c := range components {
		if st, ok := w.stores[c.Name()]; ok {
			metadata = append(metadata, st)
		}
	}
	log.Entity(&w.logger, zerolog.DebugLevel, id, metadata)
}

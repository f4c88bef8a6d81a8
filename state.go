package tabula

import (
	"encoding/json"

	"github.com/rotisserie/eris"

	"github.com/tabula-ecs/tabula/codec"
	"github.com/tabula-ecs/tabula/filter"
	"github.com/tabula-ecs/tabula/search"
	"github.com/tabula-ecs/tabula/types"
)

// The World is the search package's Reader.
var _ search.Reader = &World{}

// Search creates a search over this world's live entities. See the search
// package for the iteration API and the optional Where clause.
func (w *World) Search(f filter.ComponentFilter, opts ...search.Option) (*search.Search, error) {
	return search.New(w, f, opts...)
}

// EachEntity calls fn for every live entity in slot order. Return false from
// fn to stop. Structural changes from inside fn panic.
func (w *World) EachEntity(fn func(types.EntityID) bool) {
	version := w.version
	w.registry.Range(func(id types.EntityID) bool {
		w.mustBeCurrent(version)
		return fn(id)
	})
}

// ComponentsFor returns the component types the entity currently holds, in
// registration order. The result is empty for stale or unknown IDs.
func (w *World) ComponentsFor(id types.EntityID) []types.Component {
	acc := make([]types.Component, 0)
	if !w.registry.IsAlive(id) {
		return acc
	}
	for _, name := range w.order {
		st := w.stores[name]
		if st.Contains(id) {
			acc = append(acc, st)
		}
	}
	return acc
}

// StateFor returns the entity's component data keyed by component name. Each
// component is decoded into a map of its JSON fields, which is the shape the
// search package's where clauses evaluate against.
func (w *World) StateFor(id types.EntityID) (map[string]any, error) {
	if !w.registry.IsAlive(id) {
		return nil, eris.Wrapf(ErrEntityNotFound, "entity %s", id)
	}
	env := make(map[string]any)
	for _, name := range w.order {
		st := w.stores[name]
		value, ok := st.Value(id)
		if !ok {
			continue
		}
		bz, err := codec.Encode(value)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to encode component %q", name)
		}
		fields, err := codec.Decode[map[string]any](bz)
		if err != nil {
			return nil, eris.Wrapf(err, "failed to decode component %q", name)
		}
		env[name] = fields
	}
	return env, nil
}

// State returns a serialized dump of every live entity and its components,
// mainly for debugging and tests.
func (w *World) State() (types.EntityStateResponse, error) {
	resp := make(types.EntityStateResponse, 0, w.registry.Count())
	var err error
	w.EachEntity(func(id types.EntityID) bool {
		components := make(map[string]json.RawMessage)
		for _, name := range w.order {
			st := w.stores[name]
			value, ok := st.Value(id)
			if !ok {
				continue
			}
			var bz []byte
			bz, err = st.Encode(value)
			if err != nil {
				err = eris.Wrapf(err, "failed to encode component %q for entity %s", name, id)
				return false
			}
			components[name] = bz
		}
		resp = append(resp, types.EntityStateElement{ID: id, Components: components})
		return true
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}

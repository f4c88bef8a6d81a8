package tabula

import (
	"github.com/rotisserie/eris"

	"github.com/tabula-ecs/tabula/storage"
	"github.com/tabula-ecs/tabula/types"
)

// RegisterComponent creates the store for T if it does not exist yet. Stores
// are otherwise created lazily on first use; explicit registration is only
// needed before spawning through the variadic World.Spawn, which cannot
// create typed stores from interface values.
func RegisterComponent[T types.Component](w *World) error {
	_, err := ensureStore[T](w)
	return err
}

// GetComponent returns a pointer to the entity's component of type T for
// direct read or in-place mutation. Changes through the pointer are
// immediately visible to all subsequent operations. The pointer is only valid
// until the next structural change to the world.
func GetComponent[T types.Component](w *World, id types.EntityID) (*T, error) {
	if !w.registry.IsAlive(id) {
		return nil, eris.Wrapf(ErrEntityNotFound, "entity %s", id)
	}
	st, err := lookupStore[T](w)
	if err != nil {
		return nil, err
	}
	if st == nil {
		var zero T
		return nil, eris.Wrapf(ErrComponentNotOnEntity, "component %q on entity %s", zero.Name(), id)
	}
	ref, ok := st.Ref(id)
	if !ok {
		var zero T
		return nil, eris.Wrapf(ErrComponentNotOnEntity, "component %q on entity %s", zero.Name(), id)
	}
	return ref, nil
}

// SetComponent stores component for the entity, overwriting any prior value
// of type T and creating T's store on first use.
func SetComponent[T types.Component](w *World, id types.EntityID, component *T) error {
	if !w.registry.IsAlive(id) {
		return eris.Wrapf(ErrEntityNotFound, "entity %s", id)
	}
	st, err := ensureStore[T](w)
	if err != nil {
		return err
	}
	if !st.Contains(id) {
		// Gaining a component type changes query membership.
		w.version++
	}
	st.Insert(id, *component)

	w.logger.Debug().
		Str("entity_id", id.String()).
		Str("component_name", st.Name()).
		Int("component_id", int(st.ID())).
		Msg("entity updated")
	return nil
}

// UpdateComponent reads the entity's T, applies fn, and stores the result.
func UpdateComponent[T types.Component](w *World, id types.EntityID, fn func(*T) *T) error {
	val, err := GetComponent[T](w, id)
	if err != nil {
		return err
	}
	updatedVal := fn(val)
	return SetComponent[T](w, id, updatedVal)
}

// AddComponentTo adds a zero-valued T to the entity. It fails if the entity
// already holds a T.
func AddComponentTo[T types.Component](w *World, id types.EntityID) error {
	if !w.registry.IsAlive(id) {
		return eris.Wrapf(ErrEntityNotFound, "entity %s", id)
	}
	st, err := ensureStore[T](w)
	if err != nil {
		return err
	}
	if st.Contains(id) {
		return eris.Wrapf(ErrComponentAlreadyOnEntity, "component %q on entity %s", st.Name(), id)
	}
	var zero T
	st.Insert(id, zero)
	w.version++
	return nil
}

// RemoveComponentFrom removes the entity's component of type T, leaving the
// entity alive.
func RemoveComponentFrom[T types.Component](w *World, id types.EntityID) error {
	if !w.registry.IsAlive(id) {
		return eris.Wrapf(ErrEntityNotFound, "entity %s", id)
	}
	st, err := lookupStore[T](w)
	if err != nil {
		return err
	}
	if st == nil {
		var zero T
		return eris.Wrapf(ErrComponentNotOnEntity, "component %q on entity %s", zero.Name(), id)
	}
	if _, ok := st.Remove(id); !ok {
		return eris.Wrapf(ErrComponentNotOnEntity, "component %q on entity %s", st.Name(), id)
	}
	w.version++
	return nil
}

// Contains reports whether the entity is live and holds a component of
// type T.
func Contains[T types.Component](w *World, id types.EntityID) bool {
	if !w.registry.IsAlive(id) {
		return false
	}
	st, err := lookupStore[T](w)
	if err != nil || st == nil {
		return false
	}
	return st.Contains(id)
}

// ensureStore returns T's store, creating it on first use. Two distinct Go
// types claiming the same component name are rejected.
func ensureStore[T types.Component](w *World) (*storage.Store[T], error) {
	var zero T
	name := zero.Name()
	if existing, ok := w.stores[name]; ok {
		typed, ok := existing.(*storage.Store[T])
		if !ok {
			return nil, nameClashError(zero, existing)
		}
		return typed, nil
	}

	st, err := storage.NewStore[T]()
	if err != nil {
		return nil, err
	}
	if err := st.SetID(w.nextComponentID); err != nil {
		return nil, err
	}
	w.nextComponentID++
	w.stores[name] = st
	w.order = append(w.order, name)
	w.version++

	w.logger.Debug().
		Str("component_name", name).
		Int("component_id", int(st.ID())).
		Msg("component registered")
	return st, nil
}

// lookupStore returns T's store if it exists, nil if no store has been
// created for T's name, and an error if the name belongs to a different Go
// type.
func lookupStore[T types.Component](w *World) (*storage.Store[T], error) {
	var zero T
	existing, ok := w.stores[zero.Name()]
	if !ok {
		return nil, nil
	}
	typed, ok := existing.(*storage.Store[T])
	if !ok {
		return nil, nameClashError(zero, existing)
	}
	return typed, nil
}

func nameClashError(claimant types.Component, existing storage.AnyStore) error {
	same, err := types.IsComponentValid(claimant, existing.GetSchema())
	if err != nil {
		return err
	}
	if same {
		return eris.Wrapf(ErrComponentNameClash,
			"component name %q is already registered to a different Go type with an identical schema", claimant.Name())
	}
	return eris.Wrapf(ErrComponentNameClash,
		"component name %q is already registered with a different schema", claimant.Name())
}

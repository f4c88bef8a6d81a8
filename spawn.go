package tabula

import (
	"github.com/tabula-ecs/tabula/types"
)

// Spawn1 through Spawn4 create a single entity from a fixed-arity bundle of
// component values, creating each component type's store on first use. The
// whole bundle is stored before the new ID is returned, so an entity is never
// observable with only part of its bundle. If the bundle repeats a component
// type, the later value overwrites the earlier one.

func Spawn1[A types.Component](w *World, a A) (types.EntityID, error) {
	sa, err := ensureStore[A](w)
	if err != nil {
		return types.EntityID{}, err
	}
	id := w.registry.Allocate()
	sa.Insert(id, a)
	w.version++
	w.logSpawn(id, []types.Component{a})
	return id, nil
}

func Spawn2[A, B types.Component](w *World, a A, b B) (types.EntityID, error) {
	sa, err := ensureStore[A](w)
	if err != nil {
		return types.EntityID{}, err
	}
	sb, err := ensureStore[B](w)
	if err != nil {
		return types.EntityID{}, err
	}
	id := w.registry.Allocate()
	sa.Insert(id, a)
	sb.Insert(id, b)
	w.version++
	w.logSpawn(id, []types.Component{a, b})
	return id, nil
}

func Spawn3[A, B, C types.Component](w *World, a A, b B, c C) (types.EntityID, error) {
	sa, err := ensureStore[A](w)
	if err != nil {
		return types.EntityID{}, err
	}
	sb, err := ensureStore[B](w)
	if err != nil {
		return types.EntityID{}, err
	}
	sc, err := ensureStore[C](w)
	if err != nil {
		return types.EntityID{}, err
	}
	id := w.registry.Allocate()
	sa.Insert(id, a)
	sb.Insert(id, b)
	sc.Insert(id, c)
	w.version++
	w.logSpawn(id, []types.Component{a, b, c})
	return id, nil
}

func Spawn4[A, B, C, D types.Component](w *World, a A, b B, c C, d D) (types.EntityID, error) {
	sa, err := ensureStore[A](w)
	if err != nil {
		return types.EntityID{}, err
	}
	sb, err := ensureStore[B](w)
	if err != nil {
		return types.EntityID{}, err
	}
	sc, err := ensureStore[C](w)
	if err != nil {
		return types.EntityID{}, err
	}
	sd, err := ensureStore[D](w)
	if err != nil {
		return types.EntityID{}, err
	}

	id := w.registry.Allocate()
	sa.Insert(id, a)
	sb.Insert(id, b)
	sc.Insert(id, c)
	sd.Insert(id, d)
	w.version++
	w.logSpawn(id, []types.Component{a, b, c, d})
	return id, nil
}

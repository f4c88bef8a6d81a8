package tabula

import (
	"github.com/tabula-ecs/tabula/types"
)

// EntityRef is a read-oriented handle bound to one entity. It offers per-type
// lookups that return copies; mutation goes through write-mode queries or
// SetComponent, keeping the World the single source of structural truth.
type EntityRef struct {
	id    types.EntityID
	world *World
}

// ID returns the entity ID the handle is bound to.
func (e EntityRef) ID() types.EntityID {
	return e.id
}

// Alive reports whether the handle's entity is still live.
func (e EntityRef) Alive() bool {
	return e.world != nil && e.world.registry.IsAlive(e.id)
}

// Components returns the component types currently on the entity.
func (e EntityRef) Components() []types.Component {
	if e.world == nil {
		return nil
	}
	return e.world.ComponentsFor(e.id)
}

// Get returns a copy of the entity's component of type T. It returns false if
// the entity is no longer live, never had a T, or no store for T exists.
func Get[T types.Component](e EntityRef) (T, bool) {
	var zero T
	if !e.Alive() {
		return zero, false
	}
	st, err := lookupStore[T](e.world)
	if err != nil || st == nil {
		return zero, false
	}
	return st.Get(e.id)
}

// Has reports whether the entity is live and holds a component of type T.
func Has[T types.Component](e EntityRef) bool {
	if !e.Alive() {
		return false
	}
	return Contains[T](e.world, e.id)
}

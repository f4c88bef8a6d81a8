package tabula

import (
	"github.com/rotisserie/eris"

	"github.com/tabula-ecs/tabula/storage"
)

var (
	// ErrEntityNotFound is returned when an operation addresses an entity ID
	// whose generation does not match the live slot, or that never existed.
	ErrEntityNotFound = storage.ErrEntityNotFound

	// ErrComponentNotOnEntity is returned when a component lookup finds no
	// value of the requested type for the entity.
	ErrComponentNotOnEntity = storage.ErrComponentNotOnEntity

	// ErrComponentAlreadyOnEntity is returned by AddComponentTo when the
	// entity already holds a value of the component type.
	ErrComponentAlreadyOnEntity = storage.ErrComponentAlreadyOnEntity

	// ErrComponentNotRegistered is returned by the variadic Spawn path when a
	// bundle names a component type whose store has not been created yet.
	ErrComponentNotRegistered = storage.ErrComponentNotRegistered

	// ErrInvalidComponentValue is returned when a value handed to a store is
	// not of the store's component type.
	ErrInvalidComponentValue = storage.ErrInvalidComponentValue

	// ErrEntityMustHaveComponents is returned when a spawn bundle is empty.
	ErrEntityMustHaveComponents = eris.New("entities must have at least 1 component")

	// ErrAccessConflict is returned at query construction when the same
	// component type is requested more than once and at least one of the
	// requests is Write.
	ErrAccessConflict = eris.New("query requests conflicting access to a component type")

	// ErrComponentNameClash is returned when two distinct Go types claim the
	// same component name within one World.
	ErrComponentNameClash = eris.New("component name is already registered to a different type")
)

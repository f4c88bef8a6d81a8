// Package storage holds the per-type component stores. One Store[T] exists
// per component type used with a World; it maps a live entity ID to at most
// one value of T.
package storage

import (
	"github.com/rotisserie/eris"

	"github.com/tabula-ecs/tabula/codec"
	"github.com/tabula-ecs/tabula/internal/assert"
	"github.com/tabula-ecs/tabula/types"
)

// AnyStore is the type-erased view of a component store. The World keeps its
// stores behind this interface, keyed by component name, and downcasts to the
// concrete Store[T] for typed access.
type AnyStore interface {
	types.ComponentMetadata

	// Set stores value for id. The value must be of the store's component
	// type (T or *T).
	Set(id types.EntityID, value any) error
	// Contains reports whether the store holds a value for id.
	Contains(id types.EntityID) bool
	// Discard removes the value for id, if any, and reports whether a value
	// was removed.
	Discard(id types.EntityID) bool
	// Value returns the stored value for id as an untyped copy.
	Value(id types.EntityID) (any, bool)
	// EntityAt returns the ID stored at dense position i.
	EntityAt(i int) types.EntityID
	// Len returns the number of stored entries.
	Len() int
}

// Store is a dense store for component values of type T. Entries are kept in
// insertion order; removal swaps the last entry into the vacated position, so
// order is only stable while no entries are removed, which holds for the
// duration of any single iteration pass (structural changes are excluded
// while iterating).
type Store[T types.Component] struct {
	id     types.ComponentID
	idSet  bool
	name   string
	schema []byte

	index map[uint32]int // slot index -> dense position
	ids   []types.EntityID
	comps []T
}

var _ AnyStore = &Store[types.Component]{}

// NewStore creates an empty store for T and captures T's JSON schema, which
// the World uses to diagnose two Go types claiming the same component name.
func NewStore[T types.Component]() (*Store[T], error) {
	var zero T
	schema, err := types.SerializeComponentSchema(zero)
	if err != nil {
		return nil, err
	}
	return &Store[T]{
		name:   zero.Name(),
		schema: schema,
		index:  make(map[uint32]int),
	}, nil
}

func (s *Store[T]) Name() string {
	return s.name
}

// SetID sets the registration ID of this store. It must only be set once.
func (s *Store[T]) SetID(id types.ComponentID) error {
	if s.idSet {
		return eris.Wrapf(ErrComponentIDAlreadySet, "component %q already has ID %d", s.name, s.id)
	}
	s.id = id
	s.idSet = true
	return nil
}

func (s *Store[T]) ID() types.ComponentID {
	return s.id
}

func (s *Store[T]) GetSchema() []byte {
	return s.schema
}

func (s *Store[T]) Encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case T:
		return codec.Encode(v)
	case *T:
		return codec.Encode(*v)
	default:
		return nil, eris.Wrapf(ErrInvalidComponentValue, "cannot encode %T as component %q", value, s.name)
	}
}

func (s *Store[T]) Decode(bz []byte) (any, error) {
	return codec.Decode[T](bz)
}

// Insert stores or overwrites the value for id. No liveness check happens
// here; the World only calls this for live entities.
func (s *Store[T]) Insert(id types.EntityID, value T) {
	if pos, ok := s.index[id.Index]; ok {
		s.ids[pos] = id
		s.comps[pos] = value
		return
	}
	s.index[id.Index] = len(s.ids)
	s.ids = append(s.ids, id)
	s.comps = append(s.comps, value)
}

// Set implements AnyStore. The value must be a T or a *T.
func (s *Store[T]) Set(id types.EntityID, value any) error {
	switch v := value.(type) {
	case T:
		s.Insert(id, v)
		return nil
	case *T:
		s.Insert(id, *v)
		return nil
	default:
		return eris.Wrapf(ErrInvalidComponentValue, "cannot store %T as component %q", value, s.name)
	}
}

// Remove removes and returns the prior value for id.
func (s *Store[T]) Remove(id types.EntityID) (T, bool) {
	var zero T
	pos, ok := s.lookup(id)
	if !ok {
		return zero, false
	}
	prior := s.comps[pos]

	last := len(s.ids) - 1
	if pos != last {
		s.ids[pos] = s.ids[last]
		s.comps[pos] = s.comps[last]
		s.index[s.ids[pos].Index] = pos
	}
	s.ids = s.ids[:last]
	s.comps = s.comps[:last]
	delete(s.index, id.Index)
	assert.That(len(s.ids) == len(s.comps), "store %q ids/components length mismatch", s.name)

	return prior, true
}

// Discard implements AnyStore.
func (s *Store[T]) Discard(id types.EntityID) bool {
	_, ok := s.Remove(id)
	return ok
}

// Get returns a copy of the value stored for id.
func (s *Store[T]) Get(id types.EntityID) (T, bool) {
	pos, ok := s.lookup(id)
	if !ok {
		var zero T
		return zero, false
	}
	return s.comps[pos], true
}

// Ref returns a pointer to the value stored for id for in-place mutation.
// The pointer is only valid until the next structural change to the store.
func (s *Store[T]) Ref(id types.EntityID) (*T, bool) {
	pos, ok := s.lookup(id)
	if !ok {
		return nil, false
	}
	return &s.comps[pos], true
}

func (s *Store[T]) Contains(id types.EntityID) bool {
	_, ok := s.lookup(id)
	return ok
}

func (s *Store[T]) Value(id types.EntityID) (any, bool) {
	return s.Get(id)
}

func (s *Store[T]) Len() int {
	return len(s.ids)
}

// At returns the entry at dense position i. It is the driving accessor for
// query iteration.
func (s *Store[T]) At(i int) (types.EntityID, *T) {
	return s.ids[i], &s.comps[i]
}

func (s *Store[T]) EntityAt(i int) types.EntityID {
	return s.ids[i]
}

// Each calls fn for every stored entry in dense order. Return false from fn
// to stop early.
func (s *Store[T]) Each(fn func(types.EntityID, *T) bool) {
	for i := range s.ids {
		if !fn(s.ids[i], &s.comps[i]) {
			return
		}
	}
}

// lookup resolves id to a dense position. The stored ID's generation must
// match; a stale handle whose slot index was recycled never sees the new
// occupant's data.
func (s *Store[T]) lookup(id types.EntityID) (int, bool) {
	pos, ok := s.index[id.Index]
	if !ok || s.ids[pos] != id {
		return 0, false
	}
	return pos, true
}

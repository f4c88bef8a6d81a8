// Package registry allocates and recycles entity identifiers. It tracks
// liveness with a per-slot generation counter so that a stale identifier can
// never be mistaken for a live one.
package registry

import (
	"math"

	"github.com/kelindar/bitmap"

	"github.com/tabula-ecs/tabula/internal/assert"
	"github.com/tabula-ecs/tabula/types"
)

// MaxEntityIndex is the maximum slot index the registry will hand out.
const MaxEntityIndex = math.MaxUint32 - 1

// Registry is a dense array of slots, each holding a generation counter, plus
// a bitmap of the slots that are currently live. Despawned slot indices are
// recycled FIFO with an incremented generation.
type Registry struct {
	generations []uint32
	live        bitmap.Bitmap
	free        []uint32
}

// New creates an empty registry. capacity is a pre-allocation hint only.
func New(capacity int) *Registry {
	if capacity < 0 {
		capacity = 0
	}
	return &Registry{
		generations: make([]uint32, 0, capacity),
		free:        make([]uint32, 0),
	}
}

// Allocate returns a fresh entity ID: either a recycled slot index carrying
// its incremented generation, or a brand new slot at generation zero.
func (r *Registry) Allocate() types.EntityID {
	var idx uint32
	if len(r.free) > 0 {
		// Pop from the front of the free list (FIFO).
		idx = r.free[0]
		r.free = r.free[1:]
	} else {
		assert.That(len(r.generations) <= MaxEntityIndex, "entity slot space exhausted")
		idx = uint32(len(r.generations))
		r.generations = append(r.generations, 0)
	}
	r.live.Set(idx)
	return types.EntityID{Index: idx, Generation: r.generations[idx]}
}

// Despawn marks the slot dead and bumps its generation so future allocations
// at this index carry a new generation. Returns false if id is already stale
// or unknown.
func (r *Registry) Despawn(id types.EntityID) bool {
	if !r.IsAlive(id) {
		return false
	}
	r.generations[id.Index]++
	r.live.Remove(id.Index)
	r.free = append(r.free, id.Index)
	return true
}

// IsAlive reports whether id refers to a live entity: the slot must be marked
// live and its stored generation must equal the ID's generation.
func (r *Registry) IsAlive(id types.EntityID) bool {
	if int(id.Index) >= len(r.generations) {
		return false
	}
	return r.live.Contains(id.Index) && r.generations[id.Index] == id.Generation
}

// Count returns the number of live entities.
func (r *Registry) Count() int {
	return r.live.Count()
}

// Range calls fn for every live entity in ascending slot order. Return false
// from fn to stop early.
func (r *Registry) Range(fn func(types.EntityID) bool) {
	stopped := false
	r.live.Range(func(idx uint32) {
		if stopped {
			return
		}
		id := types.EntityID{Index: idx, Generation: r.generations[idx]}
		if !fn(id) {
			stopped = true
		}
	})
}

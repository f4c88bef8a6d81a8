package tabula_test

import (
	"testing"

	"github.com/tabula-ecs/tabula"
	"github.com/tabula-ecs/tabula/assert"
	"github.com/tabula-ecs/tabula/types"
)

func TestEntityRefLookups(t *testing.T) {
	w := newWorld(t)

	id, err := tabula.Spawn2(w, Health{HP: 100}, Position{X: 1, Y: 2})
	assert.NilError(t, err)

	ref, err := w.Entity(id)
	assert.NilError(t, err)
	assert.Equal(t, ref.ID(), id)
	assert.True(t, ref.Alive())

	health, ok := tabula.Get[Health](ref)
	assert.True(t, ok)
	assert.Equal(t, health.HP, 100)

	assert.True(t, tabula.Has[Position](ref))
	assert.False(t, tabula.Has[Color](ref))

	_, ok = tabula.Get[Color](ref)
	assert.False(t, ok)
}

func TestEntityRefReturnsCopies(t *testing.T) {
	w := newWorld(t)

	id, err := tabula.Spawn1(w, Health{HP: 100})
	assert.NilError(t, err)

	ref, err := w.Entity(id)
	assert.NilError(t, err)

	health, ok := tabula.Get[Health](ref)
	assert.True(t, ok)
	health.HP = 1

	stored, err := tabula.GetComponent[Health](w, id)
	assert.NilError(t, err)
	assert.Equal(t, stored.HP, 100)
}

func TestEntityRefComponents(t *testing.T) {
	w := newWorld(t)

	id, err := tabula.Spawn2(w, Health{}, Position{})
	assert.NilError(t, err)

	ref, err := w.Entity(id)
	assert.NilError(t, err)

	names := make([]string, 0)
	for _, c := range ref.Components() {
		names = append(names, c.Name())
	}
	assert.DeepEqual(t, names, []string{"Health", "Position"})
}

func TestEntityRefGoesStaleOnDespawn(t *testing.T) {
	w := newWorld(t)

	id, err := tabula.Spawn1(w, Health{HP: 100})
	assert.NilError(t, err)

	ref, err := w.Entity(id)
	assert.NilError(t, err)
	assert.True(t, w.Despawn(id))

	assert.False(t, ref.Alive())
	_, ok := tabula.Get[Health](ref)
	assert.False(t, ok)
	assert.False(t, tabula.Has[Health](ref))
	assert.Len(t, ref.Components(), 0)
}

func TestEntityRejectsStaleID(t *testing.T) {
	w := newWorld(t)

	id, err := tabula.Spawn1(w, Health{HP: 100})
	assert.NilError(t, err)
	assert.True(t, w.Despawn(id))

	_, err = w.Entity(id)
	assert.ErrorIs(t, err, tabula.ErrEntityNotFound)

	_, err = w.Entity(types.EntityID{Index: 99})
	assert.ErrorIs(t, err, tabula.ErrEntityNotFound)
}

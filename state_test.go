package tabula_test

import (
	"testing"

	"github.com/goccy/go-json"

	"github.com/tabula-ecs/tabula"
	"github.com/tabula-ecs/tabula/assert"
	"github.com/tabula-ecs/tabula/filter"
	"github.com/tabula-ecs/tabula/search"
	"github.com/tabula-ecs/tabula/types"
)

func TestWorldSearch(t *testing.T) {
	w := newWorld(t)

	weak, err := tabula.Spawn1(w, Health{HP: 10})
	assert.NilError(t, err)
	strong, err := tabula.Spawn2(w, Health{HP: 300}, Position{X: 1})
	assert.NilError(t, err)
	_, err = tabula.Spawn1(w, Position{X: 2})
	assert.NilError(t, err)

	s, err := w.Search(filter.Contains(filter.Component[Health]()))
	assert.NilError(t, err)
	got, err := s.Collect()
	assert.NilError(t, err)
	assert.ElementsMatch(t, got, []types.EntityID{weak, strong})

	s, err = w.Search(filter.All())
	assert.NilError(t, err)
	count, err := s.Count()
	assert.NilError(t, err)
	assert.Equal(t, count, 3)
}

func TestWorldSearchWhere(t *testing.T) {
	w := newWorld(t)

	_, err := tabula.Spawn1(w, Health{HP: 10})
	assert.NilError(t, err)
	strong, err := tabula.Spawn1(w, Health{HP: 300})
	assert.NilError(t, err)

	s, err := w.Search(
		filter.Contains(filter.Component[Health]()),
		search.Where("Health.hp > 200"),
	)
	assert.NilError(t, err)
	got, err := s.Collect()
	assert.NilError(t, err)
	assert.DeepEqual(t, got, []types.EntityID{strong})
}

func TestComponentsFor(t *testing.T) {
	w := newWorld(t)

	id, err := tabula.Spawn2(w, Health{}, Position{})
	assert.NilError(t, err)

	names := make([]string, 0)
	for _, c := range w.ComponentsFor(id) {
		names = append(names, c.Name())
	}
	assert.DeepEqual(t, names, []string{"Health", "Position"})

	assert.True(t, w.Despawn(id))
	assert.Len(t, w.ComponentsFor(id), 0)
}

func TestStateFor(t *testing.T) {
	w := newWorld(t)

	id, err := tabula.Spawn2(w, Health{HP: 42}, Position{X: 1.5, Y: -2})
	assert.NilError(t, err)

	env, err := w.StateFor(id)
	assert.NilError(t, err)
	assert.DeepEqual(t, env, map[string]any{
		"Health":   map[string]any{"hp": 42.0},
		"Position": map[string]any{"x": 1.5, "y": -2.0},
	})

	assert.True(t, w.Despawn(id))
	_, err = w.StateFor(id)
	assert.ErrorIs(t, err, tabula.ErrEntityNotFound)
}

func TestWorldState(t *testing.T) {
	w := newWorld(t)

	a, err := tabula.Spawn1(w, Health{HP: 1})
	assert.NilError(t, err)
	b, err := tabula.Spawn2(w, Health{HP: 2}, Position{X: 3})
	assert.NilError(t, err)

	state, err := w.State()
	assert.NilError(t, err)
	assert.Len(t, state, 2)

	byID := make(map[types.EntityID]types.EntityStateElement)
	for _, element := range state {
		byID[element.ID] = element
	}

	assert.Len(t, byID[a].Components, 1)
	assert.Len(t, byID[b].Components, 2)

	var health Health
	assert.NilError(t, json.Unmarshal(byID[b].Components["Health"], &health))
	assert.Equal(t, health.HP, 2)
}

package tabula_test

import (
	"testing"

	"github.com/tabula-ecs/tabula"
	"github.com/tabula-ecs/tabula/assert"
	"github.com/tabula-ecs/tabula/types"
)

func TestQueryMatchesOnlyEntitiesWithAllComponents(t *testing.T) {
	w := newWorld(t)

	sky, err := tabula.Spawn2(w, EntityName{Value: "Sky"}, Color{Value: "blue"})
	assert.NilError(t, err)
	redBird, err := tabula.Spawn3(w, EntityName{Value: "Red Bird"}, Color{Value: "red"}, CanFly{})
	assert.NilError(t, err)
	_, err = tabula.Spawn2(w, EntityName{Value: "Airplane"}, CanFly{})
	assert.NilError(t, err)

	q, err := tabula.NewQuery3[EntityName, CanFly, Color](w, tabula.Read, tabula.Read, tabula.Write)
	assert.NilError(t, err)

	matched := make([]types.EntityID, 0)
	for q.Next() {
		name, _, color := q.Get()
		assert.Equal(t, name.Value, "Red Bird")
		color.Value = "green"
		matched = append(matched, q.Entity())
	}
	assert.DeepEqual(t, matched, []types.EntityID{redBird})

	// The write landed on the matched entity and nowhere else.
	color, err := tabula.GetComponent[Color](w, redBird)
	assert.NilError(t, err)
	assert.Equal(t, color.Value, "green")

	skyColor, err := tabula.GetComponent[Color](w, sky)
	assert.NilError(t, err)
	assert.Equal(t, skyColor.Value, "blue")
}

func TestQueryRejectsConflictingAccess(t *testing.T) {
	w := newWorld(t)

	_, err := tabula.NewQuery2[Color, Color](w, tabula.Write, tabula.Read)
	assert.ErrorIs(t, err, tabula.ErrAccessConflict)

	_, err = tabula.NewQuery2[Color, Color](w, tabula.Read, tabula.Write)
	assert.ErrorIs(t, err, tabula.ErrAccessConflict)

	_, err = tabula.NewQuery2[Color, Color](w, tabula.Write, tabula.Write)
	assert.ErrorIs(t, err, tabula.ErrAccessConflict)
}

func TestQueryAllowsDuplicateReads(t *testing.T) {
	w := newWorld(t)

	_, err := tabula.Spawn1(w, Color{Value: "red"})
	assert.NilError(t, err)

	q, err := tabula.NewQuery2[Color, Color](w, tabula.Read, tabula.Read)
	assert.NilError(t, err)

	count := 0
	for q.Next() {
		a, b := q.Get()
		assert.Equal(t, a.Value, b.Value)
		count++
	}
	assert.Equal(t, count, 1)
}

func TestQueryDistinctTypesMixAccessFreely(t *testing.T) {
	w := newWorld(t)

	id, err := tabula.Spawn2(w, Health{HP: 10}, Position{X: 1})
	assert.NilError(t, err)

	q, err := tabula.NewQuery2[Health, Position](w, tabula.Write, tabula.Write)
	assert.NilError(t, err)

	for q.Next() {
		health, pos := q.Get()
		health.HP += 5
		pos.X += 1
	}

	health, err := tabula.GetComponent[Health](w, id)
	assert.NilError(t, err)
	assert.Equal(t, health.HP, 15)
	pos, err := tabula.GetComponent[Position](w, id)
	assert.NilError(t, err)
	assert.Equal(t, pos.X, 2.0)
}

func TestQueryOnUnknownComponentTypeYieldsNothing(t *testing.T) {
	w := newWorld(t)

	_, err := tabula.Spawn1(w, Health{HP: 10})
	assert.NilError(t, err)

	q, err := tabula.NewQuery1[Color](w, tabula.Read)
	assert.NilError(t, err)
	assert.False(t, q.Next())
}

func TestQuerySkipsEntitiesMissingAComponent(t *testing.T) {
	w := newWorld(t)

	_, err := tabula.Spawn1(w, Health{HP: 1})
	assert.NilError(t, err)
	both, err := tabula.Spawn2(w, Health{HP: 2}, Position{X: 9})
	assert.NilError(t, err)
	_, err = tabula.Spawn1(w, Position{X: 5})
	assert.NilError(t, err)

	q, err := tabula.NewQuery2[Health, Position](w, tabula.Read, tabula.Read)
	assert.NilError(t, err)

	matched := make([]types.EntityID, 0)
	for q.Next() {
		matched = append(matched, q.Entity())
	}
	assert.DeepEqual(t, matched, []types.EntityID{both})
}

func TestQueryDoesNotYieldDespawnedEntities(t *testing.T) {
	w := newWorld(t)

	ids := make([]types.EntityID, 0, 3)
	for i := 1; i <= 3; i++ {
		id, err := tabula.Spawn1(w, Health{HP: i})
		assert.NilError(t, err)
		ids = append(ids, id)
	}
	assert.True(t, w.Despawn(ids[1]))

	q, err := tabula.NewQuery1[Health](w, tabula.Read)
	assert.NilError(t, err)

	matched := make([]types.EntityID, 0)
	for q.Next() {
		matched = append(matched, q.Entity())
	}
	assert.ElementsMatch(t, matched, []types.EntityID{ids[0], ids[2]})
}

func TestQueryPanicsOnStructuralChange(t *testing.T) {
	w := newWorld(t)

	_, err := tabula.Spawn1(w, Health{HP: 1})
	assert.NilError(t, err)
	_, err = tabula.Spawn1(w, Health{HP: 2})
	assert.NilError(t, err)

	q, err := tabula.NewQuery1[Health](w, tabula.Write)
	assert.NilError(t, err)
	assert.True(t, q.Next())

	_, err = tabula.Spawn1(w, Health{HP: 3})
	assert.NilError(t, err)

	assert.Panics(t, func() { q.Next() })
}

func TestQueryValueMutationIsNotStructural(t *testing.T) {
	w := newWorld(t)

	for i := 0; i < 3; i++ {
		_, err := tabula.Spawn1(w, Health{HP: i})
		assert.NilError(t, err)
	}

	q, err := tabula.NewQuery1[Health](w, tabula.Write)
	assert.NilError(t, err)

	// Overwriting values mid-iteration is fine; only membership changes
	// invalidate the query.
	count := 0
	for q.Next() {
		q.Get().HP = 100
		count++
	}
	assert.Equal(t, count, 3)
}

package tabula_test

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tabula-ecs/tabula"
)

func Example() {
	world, err := tabula.NewWorld(tabula.WithLogger(zerolog.Nop()))
	if err != nil {
		panic(err)
	}

	if _, err := tabula.Spawn2(world, EntityName{Value: "Sky"}, Color{Value: "blue"}); err != nil {
		panic(err)
	}
	if _, err := tabula.Spawn3(world, EntityName{Value: "Red Bird"}, Color{Value: "red"}, CanFly{}); err != nil {
		panic(err)
	}
	if _, err := tabula.Spawn2(world, EntityName{Value: "Airplane"}, CanFly{}); err != nil {
		panic(err)
	}

	// Find every flying entity that has a color, and repaint it.
	q, err := tabula.NewQuery3[EntityName, CanFly, Color](world, tabula.Read, tabula.Read, tabula.Write)
	if err != nil {
		panic(err)
	}
	for q.Next() {
		name, _, color := q.Get()
		fmt.Printf("%s was %s\n", name.Value, color.Value)
		color.Value = "green"
	}

	ref, err := world.Entity(q.Entity())
	if err != nil {
		panic(err)
	}
	color, _ := tabula.Get[Color](ref)
	fmt.Printf("now %s\n", color.Value)

	// Output:
	// Red Bird was red
	// now green
}

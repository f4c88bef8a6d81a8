package filter

import (
	"github.com/tabula-ecs/tabula/types"
)

type exact struct {
	components []types.Component
}

// Exact matches entities that hold exactly the components specified, and no
// others.
func Exact(components ...ComponentWrapper) ComponentFilter {
	return exact{components: unwrap(components)}
}

func (f exact) MatchesComponents(components []types.Component) bool {
	if len(components) != len(f.components) {
		return false
	}
	matchComponent := CreateComponentMatcher(f.components)
	for _, componentType := range components {
		if !matchComponent(componentType) {
			return false
		}
	}
	return true
}

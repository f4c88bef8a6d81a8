package filter

import (
	"github.com/tabula-ecs/tabula/types"
)

type contains struct {
	components []types.Component
}

// Contains matches entities that hold all the components specified, and
// possibly others.
func Contains(components ...ComponentWrapper) ComponentFilter {
	return &contains{components: unwrap(components)}
}

func (f *contains) MatchesComponents(components []types.Component) bool {
	for _, componentType := range f.components {
		if !MatchComponent(components, componentType) {
			return false
		}
	}
	return true
}

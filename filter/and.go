package filter

import (
	"github.com/tabula-ecs/tabula/types"
)

type and struct {
	filters []ComponentFilter
}

// And matches entities that match every given filter.
func And(filters ...ComponentFilter) ComponentFilter {
	return &and{filters: filters}
}

func (f *and) MatchesComponents(components []types.Component) bool {
	for _, filter := range f.filters {
		if !filter.MatchesComponents(components) {
			return false
		}
	}
	return true
}

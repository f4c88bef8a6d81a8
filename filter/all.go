package filter

import (
	"github.com/tabula-ecs/tabula/types"
)

type all struct{}

// All matches every live entity regardless of its components.
func All() ComponentFilter {
	return &all{}
}

func (f *all) MatchesComponents(_ []types.Component) bool {
	return true
}

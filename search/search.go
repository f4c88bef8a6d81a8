// Package search implements filter-driven entity searches over a World. A
// Search pairs a component filter with an optional expr where clause that is
// evaluated against the entity's component data.
package search

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rotisserie/eris"

	"github.com/tabula-ecs/tabula/filter"
	"github.com/tabula-ecs/tabula/types"
)

var ErrNoEntitiesFound = eris.New("no entity matches the search")

type CallbackFn func(types.EntityID) bool

// Reader is the read-only view of a World that a search iterates over.
type Reader interface {
	// EachEntity calls fn for every live entity. Return false from fn to stop.
	EachEntity(fn func(types.EntityID) bool)
	// ComponentsFor returns the component types currently on the entity.
	ComponentsFor(id types.EntityID) []types.Component
	// StateFor returns the entity's component data keyed by component name,
	// with each component decoded to a map of its JSON fields. This is the
	// environment a where clause is evaluated in.
	StateFor(id types.EntityID) (map[string]any, error)
}

// Search represents a search for entities possessing a given set of
// component types.
type Search struct {
	reader Reader
	filter filter.ComponentFilter
	where  *vm.Program
}

type Option func(*Search) error

// Where adds an expr language clause evaluated per candidate entity. The
// clause sees component data keyed by component name, e.g.
// "Health.hp > 200". Refer to the expr documentation for the syntax:
// https://expr-lang.org/docs/getting-started.
func Where(clause string) Option {
	return func(s *Search) error {
		// Compile the expression and check that the return type is boolean.
		program, err := expr.Compile(clause, expr.AsBool())
		if err != nil {
			return eris.Wrap(err, "failed to parse where clause")
		}
		s.where = program
		return nil
	}
}

// New creates a search over reader for entities matching f. Option errors
// (e.g. an unparseable where clause) are reported here, before any iteration.
func New(reader Reader, f filter.ComponentFilter, opts ...Option) (*Search, error) {
	s := &Search{
		reader: reader,
		filter: f,
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Each iterates over all entities that match the search. If you would like to
// stop the iteration, return false from the callback. To continue iterating,
// return true.
func (s *Search) Each(callback CallbackFn) error {
	var err error
	s.reader.EachEntity(func(id types.EntityID) bool {
		var match bool
		match, err = s.matches(id)
		if err != nil {
			return false
		}
		if !match {
			return true
		}
		return callback(id)
	})
	return err
}

// Count returns the number of entities that match the search.
func (s *Search) Count() (int, error) {
	ret := 0
	err := s.Each(func(types.EntityID) bool {
		ret++
		return true
	})
	if err != nil {
		return 0, err
	}
	return ret, nil
}

// First returns the first entity that matches the search, in slot order.
func (s *Search) First() (types.EntityID, error) {
	found := false
	var id types.EntityID
	err := s.Each(func(candidate types.EntityID) bool {
		id = candidate
		found = true
		return false
	})
	if err != nil {
		return types.EntityID{}, err
	}
	if !found {
		return types.EntityID{}, ErrNoEntitiesFound
	}
	return id, nil
}

// MustFirst returns the first entity that matches the search or panics.
func (s *Search) MustFirst() types.EntityID {
	id, err := s.First()
	if err != nil {
		panic("no entity matches the search")
	}
	return id
}

// Collect returns all matching entities, in slot order.
func (s *Search) Collect() ([]types.EntityID, error) {
	acc := make([]types.EntityID, 0)
	err := s.Each(func(id types.EntityID) bool {
		acc = append(acc, id)
		return true
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func (s *Search) matches(id types.EntityID) (bool, error) {
	if !s.filter.MatchesComponents(s.reader.ComponentsFor(id)) {
		return false, nil
	}
	if s.where == nil {
		return true, nil
	}

	env, err := s.reader.StateFor(id)
	if err != nil {
		return false, eris.Wrapf(err, "failed to build where clause environment for entity %s", id)
	}
	output, err := expr.Run(s.where, env)
	if err != nil {
		return false, eris.Wrap(err, "failed to run where clause")
	}
	// expr.Compile can't always prove the return type is a bool when the
	// clause dereferences component fields, so check again at run time.
	isMatch, ok := output.(bool)
	if !ok {
		return false, eris.New("where clause did not evaluate to a boolean")
	}
	return isMatch, nil
}

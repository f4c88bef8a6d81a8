package storage

import "github.com/rotisserie/eris"

var (
	ErrEntityNotFound           = eris.New("entity does not exist")
	ErrComponentNotOnEntity     = eris.New("component not on entity")
	ErrComponentAlreadyOnEntity = eris.New("component already on entity")
	ErrComponentNotRegistered   = eris.New("must register component")
	ErrComponentIDAlreadySet    = eris.New("component ID already set")
	ErrInvalidComponentValue    = eris.New("value is not of the store's component type")
)

package types

import (
	"github.com/invopop/jsonschema"
	"github.com/rotisserie/eris"
	"github.com/wI2L/jsondiff"
)

type ComponentID int

// Component is the interface that the user needs to implement to create a new
// component type. Any value type qualifies; no behavior beyond a stable name
// is required.
type Component interface {
	// Name returns the name of the component. It must be unique across all
	// component types used with a single World, and consistent across program
	// executions.
	Name() string
}

// ComponentMetadata wraps a user-defined Component type and provides the
// functionality the engine needs internally: a numeric ID assigned at store
// registration, a byte codec, and the component's JSON schema used to detect
// two distinct Go types claiming the same component name.
type ComponentMetadata interface { //revive:disable-line:exported
	// SetID sets the ID of this component. It must only be set once.
	SetID(ComponentID) error
	// ID returns the ID of the component.
	ID() ComponentID
	Encode(any) ([]byte, error)
	Decode([]byte) (any, error)
	GetSchema() []byte

	Component
}

func SerializeComponentSchema(component Component) ([]byte, error) {
	componentSchema := jsonschema.Reflect(component)
	schema, err := componentSchema.MarshalJSON()
	if err != nil {
		return nil, eris.Wrap(err, "component must be json serializable")
	}
	return schema, nil
}

func IsComponentValid(component Component, jsonSchemaBytes []byte) (bool, error) {
	componentSchema := jsonschema.Reflect(component)
	componentSchemaBytes, err := componentSchema.MarshalJSON()
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return IsSchemaValid(componentSchemaBytes, jsonSchemaBytes)
}

func IsSchemaValid(jsonSchemaBytes1 []byte, jsonSchemaBytes2 []byte) (bool, error) {
	patch, err := jsondiff.CompareJSON(jsonSchemaBytes1, jsonSchemaBytes2)
	if err != nil {
		return false, eris.Wrap(err, "")
	}
	return patch.String() == "", nil
}

package types_test

import (
	"testing"

	"github.com/tabula-ecs/tabula/assert"
	"github.com/tabula-ecs/tabula/types"
)

type ComponentDataA struct {
	Value string
}

func (ComponentDataA) Name() string { return "a" }

type ComponentDataB struct {
	Value string
}

func (ComponentDataB) Name() string { return "b" }

// ComponentDataRenamedA has the same shape as ComponentDataA under a different
// Go type name. Reflected schemas carry the type name, so the two do not
// compare equal.
type ComponentDataRenamedA struct {
	Value string
}

func (ComponentDataRenamedA) Name() string { return "renamed-a" }

func getNameOfComponent(c types.Component) string {
	return c.Name()
}

func TestComponentSchemaValidation(t *testing.T) {
	componentASchemaBytes, err := types.SerializeComponentSchema(ComponentDataA{Value: "test"})
	assert.NilError(t, err)
	valid, err := types.IsComponentValid(ComponentDataA{Value: "anything"}, componentASchemaBytes)
	assert.NilError(t, err)
	assert.Assert(t, valid)
	valid, err = types.IsComponentValid(ComponentDataB{Value: "blah"}, componentASchemaBytes)
	assert.NilError(t, err)
	assert.Assert(t, !valid)
}

func TestComponentSchemaIncludesTypeName(t *testing.T) {
	schemaA, err := types.SerializeComponentSchema(ComponentDataA{})
	assert.NilError(t, err)
	schemaRenamed, err := types.SerializeComponentSchema(ComponentDataRenamedA{})
	assert.NilError(t, err)
	valid, err := types.IsSchemaValid(schemaA, schemaRenamed)
	assert.NilError(t, err)
	assert.Assert(t, !valid)
}

func TestComponentInterfaceSignature(t *testing.T) {
	// The purpose of this test is to maintain api compatibility.
	// It is to prevent the interface signature of types.Component from changing.
	assert.Equal(t, getNameOfComponent(&ComponentDataA{}), "a")
}

func TestEntityIDString(t *testing.T) {
	id := types.EntityID{Index: 7, Generation: 3}
	assert.Equal(t, id.String(), "7.3")
}

package types

import (
	"encoding/json"
	"fmt"
)

// EntityID is a unique identifier for an entity. Index addresses a registry
// slot; Generation distinguishes successive reuses of that slot, so an ID held
// past a despawn can never resolve to the data of a newer entity occupying the
// same slot. Two IDs are equal only if both fields match.
type EntityID struct {
	Index      uint32 `json:"index"`
	Generation uint32 `json:"generation"`
}

func (id EntityID) String() string {
	return fmt.Sprintf("%d.%d", id.Index, id.Generation)
}

type EntityStateResponse []EntityStateElement

// EntityStateElement is the serialized view of a single entity used by
// World.State debug dumps.
type EntityStateElement struct {
	ID         EntityID                   `json:"id"`
	Components map[string]json.RawMessage `json:"components"`
}

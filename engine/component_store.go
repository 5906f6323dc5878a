package engine

import (
	"github.com/lixenwraith/shipwright/component"
)

// ComponentStore provides cached pointers to typed component stores
// Initialized once per world; pointers remain valid for application lifetime
type ComponentStore struct {
	Ship      *Store[component.ShipComponent]
	LocalShip *Store[component.LocalShipComponent]
	Transform *Store[component.TransformComponent]
	Outline   *Store[component.OutlineComponent]
	Engine    *Store[component.EngineComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Ship:      NewStore[component.ShipComponent](),
		LocalShip: NewStore[component.LocalShipComponent](),
		Transform: NewStore[component.TransformComponent](),
		Outline:   NewStore[component.OutlineComponent](),
		Engine:    NewStore[component.EngineComponent](),
	}
}

// all lists every store for uniform entity destruction
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{cs.Ship, cs.LocalShip, cs.Transform, cs.Outline, cs.Engine}
}

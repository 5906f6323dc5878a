package engine

import (
	"fmt"

	"github.com/lixenwraith/shipwright/core"
)

// SingleStatus classifies the outcome of a singleton lookup
type SingleStatus uint8

const (
	SingleFound SingleStatus = iota
	SingleNone
	SingleMultiple
)

func (s SingleStatus) String() string {
	switch s {
	case SingleFound:
		return "found"
	case SingleNone:
		return "none"
	case SingleMultiple:
		return "multiple"
	}
	return fmt.Sprintf("SingleStatus(%d)", uint8(s))
}

// SingleResult is the outcome of looking up the one entity carrying a marker component
type SingleResult struct {
	Entity core.Entity
	Status SingleStatus
	Count  int
}

// Single returns the only entity in store, classifying zero or several matches
func Single[T any](store *Store[T]) SingleResult {
	entities := store.GetAllEntities()
	switch len(entities) {
	case 0:
		return SingleResult{Status: SingleNone}
	case 1:
		return SingleResult{Entity: entities[0], Status: SingleFound, Count: 1}
	default:
		return SingleResult{Status: SingleMultiple, Count: len(entities)}
	}
}

// MustSingle returns the only entity in store and panics otherwise
// Used where the world setup guarantees exactly one match
func MustSingle[T any](store *Store[T], what string) core.Entity {
	res := Single(store)
	if res.Status != SingleFound {
		panic(fmt.Sprintf("engine: expected exactly one %s, got %s (%d)", what, res.Status, res.Count))
	}
	return res.Entity
}

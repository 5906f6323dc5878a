// Package fsm is a generic hierarchical state machine runtime with
// TOML-declared state trees and named, registry-resolved hook actions.
package fsm

import "github.com/lixenwraith/shipwright/event"

// StateID is a unique identifier for a node
type StateID int

const (
	StateNone StateID = 0
	StateRoot StateID = 1
)

// Machine is the generic Hierarchical Finite State Machine runtime
// T is the context type passed to actions (e.g., *engine.World)
// Not safe for concurrent use; drive it from the frame loop
type Machine[T any] struct {
	// Graph Data (Immutable after load)
	nodes map[StateID]*Node[T]

	// InitialStateID is entered by Init and Reset
	InitialStateID StateID

	// Runtime State
	activeStateID StateID   // The current leaf node
	activePath    []StateID // Root -> ... -> Leaf

	actionReg map[string]ActionFunc[T]
}

// Node represents a state in the hierarchy
type Node[T any] struct {
	ID       StateID
	Name     string
	ParentID StateID

	// Pre-calculated path from Root to this node for LCA lookup
	Path []StateID

	// Lifecycle Actions
	OnEnter []Action[T]
	OnExit  []Action[T]
}

// Action represents a side-effect
type Action[T any] struct {
	Func ActionFunc[T]
	Args any // Pre-compiled struct/payload
}

// ActionFunc executes a side effect
type ActionFunc[T any] func(ctx T, args any)

// EmitEventArgs is the compiled argument of the EmitEvent action
type EmitEventArgs struct {
	Type    event.EventType
	Payload any
}

package mode

import (
	_ "embed"
	"fmt"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/engine/fsm"
)

//go:embed modes.toml
var DefaultTree []byte

// Hook action names referenced by the state tree
const (
	ActionEmitEvent      = "EmitEvent"
	ActionSpawnShip      = "SpawnShip"
	ActionResetBuildTool = "ResetBuildTool"
	ActionDiscardAnchor  = "DiscardAnchor"
)

// Actions maps hook names to their implementations
type Actions map[string]fsm.ActionFunc[*engine.World]

// Machine mirrors the layered mode context into the state tree
type Machine struct {
	fsm    *fsm.Machine[*engine.World]
	leaves map[core.ModeContext]fsm.StateID
}

// LeafName returns the state tree leaf for a valid mode context
func LeafName(ctx core.ModeContext) string {
	if ctx.App == core.AppStartMenu {
		return "StartMenu"
	}
	if ctx.Play == core.PlayFlying {
		return "Flying"
	}
	switch ctx.Tool {
	case core.ToolWall:
		return "WallTool"
	case core.ToolEngine:
		return "EngineTool"
	}
	return "ToolNone"
}

// legalContexts enumerates every valid mode context
func legalContexts() []core.ModeContext {
	return []core.ModeContext{
		{App: core.AppStartMenu},
		{App: core.AppGame, Play: core.PlayFlying},
		{App: core.AppGame, Play: core.PlayBuilding, Tool: core.ToolNone},
		{App: core.AppGame, Play: core.PlayBuilding, Tool: core.ToolWall},
		{App: core.AppGame, Play: core.PlayBuilding, Tool: core.ToolEngine},
	}
}

// NewMachine loads tree with the given hooks; EmitEvent is provided here
// Every legal mode context must resolve to a state of the tree
func NewMachine(tree []byte, actions Actions) (*Machine, error) {
	m := &Machine{
		fsm:    fsm.NewMachine[*engine.World](),
		leaves: make(map[core.ModeContext]fsm.StateID),
	}

	m.fsm.RegisterAction(ActionEmitEvent, emitEvent)
	for name, fn := range actions {
		m.fsm.RegisterAction(name, fn)
	}
	if err := m.fsm.LoadConfig(tree); err != nil {
		return nil, fmt.Errorf("mode tree: %w", err)
	}

	for _, ctx := range legalContexts() {
		name := LeafName(ctx)
		id, ok := m.fsm.GetStateID(name)
		if !ok {
			return nil, fmt.Errorf("mode tree: missing state %q for %s", name, ctx)
		}
		m.leaves[ctx] = id
	}
	if m.fsm.InitialStateID != m.leaves[core.ModeContext{}] {
		return nil, fmt.Errorf("mode tree: initial state must be %q", LeafName(core.ModeContext{}))
	}
	return m, nil
}

// Init enters the initial state
func (m *Machine) Init(w *engine.World) error {
	return m.fsm.Init(w)
}

// Apply moves the tree to the leaf for ctx, running exit and enter hooks
// Panics on an invalid context
func (m *Machine) Apply(w *engine.World, ctx core.ModeContext) {
	Validate(ctx)
	m.fsm.TransitionTo(w, m.leaves[ctx])
}

// ActiveState returns the name of the active leaf
func (m *Machine) ActiveState() string {
	return m.fsm.ActiveStateName()
}

// InState reports whether the named state is active, as leaf or ancestor
func (m *Machine) InState(name string) bool {
	id, ok := m.fsm.GetStateID(name)
	return ok && m.fsm.IsActive(id)
}

func emitEvent(w *engine.World, args any) {
	a, ok := args.(*fsm.EmitEventArgs)
	if !ok {
		panic(fmt.Sprintf("mode: EmitEvent args %T", args))
	}
	w.PushEvent(a.Type, a.Payload)
}

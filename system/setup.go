package system

import (
	"fmt"

	"github.com/lixenwraith/shipwright/engine"
	"github.com/lixenwraith/shipwright/mode"
)

// Settings selects the mode tree and the local ship template
type Settings struct {
	// Tree is the mode state tree in TOML; nil uses mode.DefaultTree
	Tree []byte
	Ship ShipSettings
}

// Install builds the mode machine and registers every game system with ctx
func Install(ctx *engine.GameContext, settings Settings) (*ModeSystem, error) {
	tree := settings.Tree
	if tree == nil {
		tree = mode.DefaultTree
	}

	machine, err := mode.NewMachine(tree, ModeActions(settings.Ship))
	if err != nil {
		return nil, fmt.Errorf("install systems: %w", err)
	}

	modeSys, err := NewModeSystem(ctx.World, machine)
	if err != nil {
		return nil, fmt.Errorf("install systems: %w", err)
	}

	ctx.AddSystem(modeSys)
	ctx.AddSystem(NewWallToolSystem(ctx.World))
	ctx.AddSystem(NewEngineToolSystem(ctx.World))
	ctx.AddSystem(NewStatusSystem(ctx.World))
	ctx.AddHandler(NewAudioSystem(ctx.World))
	return modeSys, nil
}

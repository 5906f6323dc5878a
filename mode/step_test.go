package mode

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/input"
)

var (
	menu     = core.ModeContext{}
	flying   = core.ModeContext{App: core.AppGame, Play: core.PlayFlying}
	building = core.ModeContext{App: core.AppGame, Play: core.PlayBuilding}
	wallTool = core.ModeContext{App: core.AppGame, Play: core.PlayBuilding, Tool: core.ToolWall}
	engTool  = core.ModeContext{App: core.AppGame, Play: core.PlayBuilding, Tool: core.ToolEngine}
)

func edges(a ...input.Action) input.ActionSet { return input.NewActionSet(a...) }

func TestStep(t *testing.T) {
	tests := []struct {
		name  string
		prev  core.ModeContext
		edges input.ActionSet
		want  core.ModeContext
	}{
		{"menu idle", menu, 0, menu},
		{"start game", menu, edges(input.ActionStartGame), flying},
		{"start ignored in game", flying, edges(input.ActionStartGame), flying},
		{"toggle gated on start frame", menu, edges(input.ActionStartGame, input.ActionToggleBuildMode), flying},
		{"enter building", flying, edges(input.ActionToggleBuildMode), building},
		{"leave building", building, edges(input.ActionToggleBuildMode), flying},
		{"tool gated on building frame", flying, edges(input.ActionToggleBuildMode, input.ActionSelectWallTool), building},
		{"select wall", building, edges(input.ActionSelectWallTool), wallTool},
		{"select engine", building, edges(input.ActionSelectEngineTool), engTool},
		{"wall to engine", wallTool, edges(input.ActionSelectEngineTool), engTool},
		{"deselect", wallTool, edges(input.ActionDeselectTool), building},
		{"deselect with none is no-op", building, edges(input.ActionDeselectTool), building},
		{"deselect then wall same frame", engTool, edges(input.ActionDeselectTool, input.ActionSelectWallTool), wallTool},
		{"wall and engine, engine wins", building, edges(input.ActionSelectWallTool, input.ActionSelectEngineTool), engTool},
		{"reselect wall keeps wall", wallTool, edges(input.ActionSelectWallTool), wallTool},
		{"leaving building forces none", wallTool, edges(input.ActionToggleBuildMode, input.ActionSelectEngineTool), flying},
		{"tool keys ignored while flying", flying, edges(input.ActionSelectWallTool), flying},
		{"tool keys ignored in menu", menu, edges(input.ActionSelectWallTool, input.ActionDeselectTool), menu},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Step(tt.prev, tt.edges))
		})
	}
}

func TestStepReachesWallToolInThreeFrames(t *testing.T) {
	ctx := menu
	all := edges(input.ActionStartGame, input.ActionToggleBuildMode, input.ActionSelectWallTool)

	ctx = Step(ctx, all)
	assert.Equal(t, flying, ctx)
	ctx = Step(ctx, edges(input.ActionToggleBuildMode, input.ActionSelectWallTool))
	assert.Equal(t, building, ctx)
	ctx = Step(ctx, edges(input.ActionSelectWallTool))
	assert.Equal(t, wallTool, ctx)
}

// Random edge sequences must never produce an invalid context
func TestStepInvariantRandomSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	triggers := []input.Action{
		input.ActionStartGame,
		input.ActionToggleBuildMode,
		input.ActionDeselectTool,
		input.ActionSelectWallTool,
		input.ActionSelectEngineTool,
		input.ActionPrimary,
	}

	for run := 0; run < 200; run++ {
		ctx := menu
		for frame := 0; frame < 50; frame++ {
			var set input.ActionSet
			for _, a := range triggers {
				if rng.Intn(3) == 0 {
					set = set.With(a)
				}
			}
			prev := ctx
			assert.NotPanics(t, func() { ctx = Step(prev, set) })
			if !ctx.Valid() {
				t.Fatalf("invalid context %s after %s with %s", ctx, prev, set)
			}
			if ctx.Tool != core.ToolNone && prev.Play != core.PlayBuilding {
				t.Fatalf("tool selected without a building frame: %s -> %s", prev, ctx)
			}
		}
	}
}

func TestValidatePanics(t *testing.T) {
	assert.Panics(t, func() { Validate(core.ModeContext{App: core.AppGame, Tool: core.ToolWall}) })
	assert.Panics(t, func() { Validate(core.ModeContext{Play: core.PlayBuilding}) })
	assert.NotPanics(t, func() { Validate(engTool) })
}

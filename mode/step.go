// Package mode computes the layered application mode each frame and mirrors
// it into a hierarchical state machine whose hooks drive spawn and tool
// lifecycle side effects.
package mode

import (
	"fmt"

	"github.com/lixenwraith/shipwright/core"
	"github.com/lixenwraith/shipwright/input"
)

// StepApp advances the application layer
func StepApp(prev core.ModeContext, edges input.ActionSet) core.AppMode {
	if prev.App == core.AppStartMenu && edges.Has(input.ActionStartGame) {
		return core.AppGame
	}
	return prev.App
}

// StepPlay advances the play layer
// Evaluated only when the app layer was Game at the start of the frame
func StepPlay(prev core.ModeContext, app core.AppMode, edges input.ActionSet) core.PlayMode {
	if app != core.AppGame {
		return core.PlayFlying
	}
	if prev.App != core.AppGame {
		return prev.Play
	}
	if edges.Has(input.ActionToggleBuildMode) {
		if prev.Play == core.PlayBuilding {
			return core.PlayFlying
		}
		return core.PlayBuilding
	}
	return prev.Play
}

// StepTool advances the build tool layer
// Forced to None whenever play is not Building after this frame; otherwise
// evaluated only when play was Building at the start of the frame.
// Edges apply in order deselect, wall, engine; a later edge overrides an earlier one
func StepTool(prev core.ModeContext, play core.PlayMode, edges input.ActionSet) core.BuildToolMode {
	if play != core.PlayBuilding {
		return core.ToolNone
	}
	if prev.Play != core.PlayBuilding {
		return prev.Tool
	}

	tool := prev.Tool
	if edges.Has(input.ActionDeselectTool) && tool != core.ToolNone {
		tool = core.ToolNone
	}
	if edges.Has(input.ActionSelectWallTool) && tool != core.ToolWall {
		tool = core.ToolWall
	}
	if edges.Has(input.ActionSelectEngineTool) && tool != core.ToolEngine {
		tool = core.ToolEngine
	}
	return tool
}

// Step evaluates all layers outer to inner and validates the result
func Step(prev core.ModeContext, edges input.ActionSet) core.ModeContext {
	next := core.ModeContext{App: StepApp(prev, edges)}
	next.Play = StepPlay(prev, next.App, edges)
	next.Tool = StepTool(prev, next.Play, edges)
	Validate(next)
	return next
}

// Validate panics if ctx violates the layer nesting
func Validate(ctx core.ModeContext) {
	if !ctx.Valid() {
		panic(fmt.Sprintf("mode: invalid mode context %s", ctx))
	}
}

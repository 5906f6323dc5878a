package core

import "fmt"

// AppMode is the top-level application phase
type AppMode uint8

const (
	AppStartMenu AppMode = iota
	AppGame
)

// PlayMode is the player sub-mode, meaningful only while AppMode is AppGame
type PlayMode uint8

const (
	PlayFlying PlayMode = iota
	PlayBuilding
)

// BuildToolMode is the active build tool, meaningful only while PlayMode is PlayBuilding
type BuildToolMode uint8

const (
	ToolNone BuildToolMode = iota
	ToolWall
	ToolEngine
)

func (m AppMode) String() string {
	switch m {
	case AppStartMenu:
		return "StartMenu"
	case AppGame:
		return "Game"
	}
	return fmt.Sprintf("AppMode(%d)", uint8(m))
}

func (m PlayMode) String() string {
	switch m {
	case PlayFlying:
		return "Flying"
	case PlayBuilding:
		return "Building"
	}
	return fmt.Sprintf("PlayMode(%d)", uint8(m))
}

func (m BuildToolMode) String() string {
	switch m {
	case ToolNone:
		return "None"
	case ToolWall:
		return "WallTool"
	case ToolEngine:
		return "EngineTool"
	}
	return fmt.Sprintf("BuildToolMode(%d)", uint8(m))
}

// ModeContext is the full layered mode state
// Layers nest: Tool != ToolNone requires Play == PlayBuilding, which requires App == AppGame
type ModeContext struct {
	App  AppMode
	Play PlayMode
	Tool BuildToolMode
}

func (c ModeContext) String() string {
	return c.App.String() + "/" + c.Play.String() + "/" + c.Tool.String()
}

// Valid reports whether the layers form a declared combination
func (c ModeContext) Valid() bool {
	if c.Tool != ToolNone && c.Play != PlayBuilding {
		return false
	}
	if c.Play == PlayBuilding && c.App != AppGame {
		return false
	}
	return c.App <= AppGame && c.Play <= PlayBuilding && c.Tool <= ToolEngine
}

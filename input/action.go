package input

import (
	"fmt"
	"math/bits"
	"strings"
)

// Action is a semantic, rebindable input trigger
type Action uint8

const (
	ActionNone Action = iota
	ActionStartGame
	ActionToggleBuildMode
	ActionDeselectTool
	ActionSelectWallTool
	ActionSelectEngineTool
	ActionPrimary
	ActionQuit
	actionCount
)

// actionRegistry maps canonical action names used by keymap files
// "none" unbinds a key
var actionRegistry = map[string]Action{
	"none":               ActionNone,
	"start_game":         ActionStartGame,
	"toggle_build_mode":  ActionToggleBuildMode,
	"deselect_tool":      ActionDeselectTool,
	"select_wall_tool":   ActionSelectWallTool,
	"select_engine_tool": ActionSelectEngineTool,
	"primary":            ActionPrimary,
	"quit":               ActionQuit,
}

var actionNames = func() [actionCount]string {
	var names [actionCount]string
	for name, a := range actionRegistry {
		names[a] = name
	}
	return names
}()

func (a Action) String() string {
	if a < actionCount {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", uint8(a))
}

// ActionByName resolves a keymap action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return a, ok
}

// ActionSet is a bitset of actions, typically the edges of one frame
type ActionSet uint16

// NewActionSet builds a set from the given actions
func NewActionSet(actions ...Action) ActionSet {
	var s ActionSet
	for _, a := range actions {
		s = s.With(a)
	}
	return s
}

// With returns s plus a; ActionNone is never stored
func (s ActionSet) With(a Action) ActionSet {
	if a == ActionNone || a >= actionCount {
		return s
	}
	return s | 1<<a
}

// Without returns s minus a
func (s ActionSet) Without(a Action) ActionSet {
	return s &^ (1 << a)
}

// Has reports whether a is in the set
func (s ActionSet) Has(a Action) bool {
	return s&(1<<a) != 0
}

// Len returns the number of actions in the set
func (s ActionSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

func (s ActionSet) String() string {
	if s == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for a := ActionNone + 1; a < actionCount; a++ {
		if !s.Has(a) {
			continue
		}
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(a.String())
		first = false
	}
	b.WriteByte('}')
	return b.String()
}

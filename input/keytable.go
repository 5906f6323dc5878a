package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps terminal keys and mouse buttons to actions
type KeyTable struct {
	// Special keys (Ctrl+*, Escape, Enter, function keys)
	Keys map[tcell.Key]Action

	// Plain rune bindings, matched case-sensitively
	Runes map[rune]Action

	// Mouse buttons; reported as levels
	Buttons map[tcell.ButtonMask]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyEnter:  ActionStartGame,
			tcell.KeyEscape: ActionDeselectTool,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyCtrlQ:  ActionQuit,
		},
		Runes: map[rune]Action{
			'f': ActionToggleBuildMode,
			'F': ActionToggleBuildMode,
			'0': ActionDeselectTool,
			'1': ActionSelectWallTool,
			'2': ActionSelectEngineTool,
			' ': ActionPrimary,
			'q': ActionQuit,
		},
		Buttons: map[tcell.ButtonMask]Action{
			tcell.Button1: ActionPrimary,
		},
	}
}

// Clone returns a deep copy of the key table
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:    maps.Clone(kt.Keys),
		Runes:   maps.Clone(kt.Runes),
		Buttons: maps.Clone(kt.Buttons),
	}
}

// Lookup resolves a key event to an action
func (kt *KeyTable) Lookup(ev *tcell.EventKey) (Action, bool) {
	if ev.Key() == tcell.KeyRune {
		a, ok := kt.Runes[ev.Rune()]
		return a, ok
	}
	a, ok := kt.Keys[ev.Key()]
	return a, ok
}

package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/pelletier/go-toml/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key")
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

var buttonNames = map[string]tcell.ButtonMask{
	"mouse_left":   tcell.Button1,
	"mouse_right":  tcell.Button2,
	"mouse_middle": tcell.Button3,
}

// keyByName is built from tcell's own key names, lowercased
var keyByName = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// keymapFile is the TOML layout of a keymap override
//
//	[runes]
//	b = "toggle_build_mode"
//	[keys]
//	"ctrl-b" = "toggle_build_mode"
//	[buttons]
//	mouse_right = "deselect_tool"
type keymapFile struct {
	Runes   map[string]string `toml:"runes"`
	Keys    map[string]string `toml:"keys"`
	Buttons map[string]string `toml:"buttons"`
}

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Only sections/keys present in TOML are populated
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keymapFile
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}
	return raw.table()
}

// KeyTableFromMap builds an override table from a flat key name → action map
// Names resolve as rune, rune alias, mouse button, then tcell key name
func KeyTableFromMap(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{}
	for keyStr, actionName := range bindings {
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}
		if r, err := resolveRune(keyStr); err == nil {
			setBinding(&kt.Runes, r, a)
			continue
		}
		if b, ok := buttonNames[strings.ToLower(keyStr)]; ok {
			setBinding(&kt.Buttons, b, a)
			continue
		}
		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, keyStr)
		}
		setBinding(&kt.Keys, k, a)
	}
	return kt, nil
}

func (f keymapFile) table() (*KeyTable, error) {
	kt := &KeyTable{}

	for keyStr, actionName := range f.Runes {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[runes] key %q: %w", keyStr, err)
		}
		setBinding(&kt.Runes, r, a)
	}

	for keyStr, actionName := range f.Keys {
		k, ok := keyByName[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[keys] %w: %q", ErrUnknownKey, keyStr)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] key %q: %w", keyStr, err)
		}
		setBinding(&kt.Keys, k, a)
	}

	for keyStr, actionName := range f.Buttons {
		b, ok := buttonNames[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("[buttons] %w: %q", ErrUnknownKey, keyStr)
		}
		a, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[buttons] key %q: %w", keyStr, err)
		}
		setBinding(&kt.Buttons, b, a)
	}

	return kt, nil
}

func setBinding[K comparable](m *map[K]Action, k K, a Action) {
	if *m == nil {
		*m = make(map[K]Action)
	}
	(*m)[k] = a
}

// resolveRune converts a TOML key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("%w: %q (expected single character or alias)", ErrUnknownKey, s)
}

func resolveAction(name string) (Action, error) {
	a, ok := ActionByName(name)
	if !ok {
		return ActionNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return a, nil
}

// MergeKeyTable returns a new KeyTable with base values overridden by non-nil override maps
// Override entries bound to ActionNone delete the key from the result
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	result.Runes = mergeMap(result.Runes, override.Runes)
	result.Keys = mergeMap(result.Keys, override.Keys)
	result.Buttons = mergeMap(result.Buttons, override.Buttons)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) map[K]Action {
	if base == nil {
		base = make(map[K]Action)
	}
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
	return base
}

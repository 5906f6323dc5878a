package input

import (
	"github.com/gdamore/tcell/v2"
)

// Machine is the input state machine
// Parses tcell events into per-frame action edges and tracks the mouse cell
type Machine struct {
	keyTable *KeyTable
	state    State

	mouseX, mouseY int
	mouseSeen      bool
	width, height  int
}

// NewMachine creates an input machine with the given bindings, or the defaults when nil
func NewMachine(kt *KeyTable) *Machine {
	if kt == nil {
		kt = DefaultKeyTable()
	}
	return &Machine{keyTable: kt}
}

// SetKeyTable swaps bindings; pending edges are kept
func (m *Machine) SetKeyTable(kt *KeyTable) {
	m.keyTable = kt
}

// Resize records the screen bounds used for the mouse-inside test
func (m *Machine) Resize(width, height int) {
	m.width, m.height = width, height
}

// Process parses a terminal event, accumulating action edges until Drain
func (m *Machine) Process(ev tcell.Event) IntentType {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		m.Resize(ev.Size())
		return IntentResize
	case *tcell.EventKey:
		return m.processKey(ev)
	case *tcell.EventMouse:
		m.processMouse(ev)
	}
	return IntentNone
}

func (m *Machine) processKey(ev *tcell.EventKey) IntentType {
	a, ok := m.keyTable.Lookup(ev)
	if !ok || a == ActionNone {
		return IntentNone
	}
	if a == ActionQuit {
		return IntentQuit
	}
	m.state.Trigger(a)
	return IntentNone
}

func (m *Machine) processMouse(ev *tcell.EventMouse) {
	m.mouseX, m.mouseY = ev.Position()
	m.mouseSeen = true

	buttons := ev.Buttons()
	for mask, a := range m.keyTable.Buttons {
		m.state.SetHeld(a, buttons&mask != 0)
	}
}

// Drain returns the edges accumulated since the previous call
func (m *Machine) Drain() ActionSet {
	return m.state.Drain()
}

// Held returns currently held button actions
func (m *Machine) Held() ActionSet {
	return m.state.Held()
}

// MouseCell returns the last reported mouse cell
// ok is false before the first mouse event or when the cell lies outside the screen
func (m *Machine) MouseCell() (x, y int, ok bool) {
	if !m.mouseSeen {
		return 0, 0, false
	}
	if m.width > 0 && (m.mouseX < 0 || m.mouseX >= m.width) {
		return m.mouseX, m.mouseY, false
	}
	if m.height > 0 && (m.mouseY < 0 || m.mouseY >= m.height) {
		return m.mouseX, m.mouseY, false
	}
	return m.mouseX, m.mouseY, true
}

// Reset clears pending edges and held buttons
func (m *Machine) Reset() {
	m.state.Reset()
}

package fsm

// RootConfig represents the top-level config structure
type RootConfig struct {
	InitialState string                  `toml:"initial"`
	States       map[string]*StateConfig `toml:"states"`
}

// StateConfig represents a single state definition
type StateConfig struct {
	Parent  string         `toml:"parent,omitempty"`
	OnEnter []ActionConfig `toml:"on_enter,omitempty"`
	OnExit  []ActionConfig `toml:"on_exit,omitempty"`
}

// ActionConfig represents an action definition
type ActionConfig struct {
	Action  string         `toml:"action"`            // Action function name (e.g. "EmitEvent")
	Event   string         `toml:"event,omitempty"`   // For EmitEvent: Event Name
	Payload map[string]any `toml:"payload,omitempty"` // For EmitEvent: decoded into the event's payload struct
}

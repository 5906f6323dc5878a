package input

// IntentType classifies front-end requests that bypass the action set
type IntentType uint8

const (
	IntentNone IntentType = iota
	IntentResize
	IntentQuit
)

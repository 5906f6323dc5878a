package parameter

import "time"

// Game Loop & Engine Timing
const (
	// GameUpdateInterval is the fixed simulation tick
	GameUpdateInterval = 16 * time.Millisecond

	// FrameUpdateInterval is the rendering frame interval
	FrameUpdateInterval = 16 * time.Millisecond
)

// ECS & Resources Limits
const (
	// EventQueueSize is the fixed capacity of the event ring buffer
	EventQueueSize = 256

	// EventBufferMask is the bitmask for fast modulo operations (256 - 1)
	EventBufferMask = 255

	// EventDispatchRounds bounds how many times a frame re-drains events emitted by handlers
	EventDispatchRounds = 8
)

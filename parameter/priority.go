package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityMode       = 10 // Mode layers settle before any tool reads them
	PriorityWallTool   = 20
	PriorityEngineTool = 30
	PriorityStatus     = 900 // After game logic
)

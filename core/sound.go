package core

// SoundType represents different sound effects
type SoundType int

const (
	SoundAnchor  SoundType = iota // First point of a wall placed
	SoundCommit                   // Wall segment merged into hull
	SoundDiscard                  // Pending anchor dropped on tool exit
	SoundEngine                   // Engine placed
	SoundMode                     // Build mode entered/left
	SoundTypeCount
)

package input

// State tracks held actions and the just-pressed edges of the current frame
// Keys arrive from the terminal as discrete presses; buttons report level
// changes, so a held button produces exactly one edge
type State struct {
	held    ActionSet
	pressed ActionSet
}

// Trigger records a discrete press
func (s *State) Trigger(a Action) {
	s.pressed = s.pressed.With(a)
}

// SetHeld updates a level-reported action, emitting an edge on release→press
func (s *State) SetHeld(a Action, down bool) {
	if down {
		if !s.held.Has(a) {
			s.pressed = s.pressed.With(a)
		}
		s.held = s.held.With(a)
		return
	}
	s.held = s.held.Without(a)
}

// Held returns actions currently held down
func (s *State) Held() ActionSet {
	return s.held
}

// Drain returns the accumulated edges and clears them
func (s *State) Drain() ActionSet {
	p := s.pressed
	s.pressed = 0
	return p
}

// Reset clears both edges and held state
func (s *State) Reset() {
	*s = State{}
}

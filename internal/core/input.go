package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow, k - cursor up
	ActionDown            // Down arrow, j - cursor down
	ActionLeft            // Left arrow, h - cursor left
	ActionRight           // Right arrow, l - cursor right
	ActionNextTier        // Tab, t - next probability tier
	ActionPrevTier        // Shift+Tab, T - previous probability tier
	ActionPlace           // Enter, Space - place a piece at the cursor
	ActionPass            // P - pass the turn
	ActionRestart         // R - new match after game over
	ActionBack            // B, Escape - back to menu
	ActionQuit            // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionNextTier:
		return "NextTier"
	case ActionPrevTier:
		return "PrevTier"
	case ActionPlace:
		return "Place"
	case ActionPass:
		return "Pass"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered since the previous step.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

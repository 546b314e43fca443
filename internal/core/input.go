package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionMoveNorth          // W, Up arrow
	ActionMoveSouth          // S, Down arrow
	ActionMoveEast           // D, Right arrow
	ActionMoveWest           // A, Left arrow
	ActionCast               // Space - cast the active magic forward
	ActionSwitchMagic        // Tab - cycle the active magic type
	ActionReset              // R - restore the starting layout
	ActionDebug              // ` or F3 - toggle the debug window
	ActionPause              // P - pause/unpause game
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionQuit               // Q, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveNorth:
		return "MoveNorth"
	case ActionMoveSouth:
		return "MoveSouth"
	case ActionMoveEast:
		return "MoveEast"
	case ActionMoveWest:
		return "MoveWest"
	case ActionCast:
		return "Cast"
	case ActionSwitchMagic:
		return "SwitchMagic"
	case ActionReset:
		return "Reset"
	case ActionDebug:
		return "Debug"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action is one of the four movement actions.
func (a Action) IsMove() bool {
	switch a {
	case ActionMoveNorth, ActionMoveSouth, ActionMoveEast, ActionMoveWest:
		return true
	default:
		return false
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// order keeps movement presses in arrival order so two quick presses
	// within one tick still resolve as two steps.
	order []Action
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
	if a.IsMove() {
		f.order = append(f.order, a)
	}
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Moves returns the movement actions of this frame in press order.
func (f InputFrame) Moves() []Action {
	return f.order
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.order = f.order[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.order = append([]Action(nil), f.order...)
	return clone
}

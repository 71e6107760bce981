package core

// Action represents a semantic frontend action, abstracted from physical keys.
// Frontends map their device events onto actions and then onto paddle intents.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - move paddle up
	ActionDown              // S, Down arrow - move paddle down
	ActionServe             // Space - launch the ball
	ActionPause             // P - pause/unpause stepping
	ActionReset             // R - start a new session
	ActionQuit              // Q, Ctrl+C - exit
	ActionScreenshot        // Ctrl+S - save the current frame to disk
	ActionCopy              // Ctrl+Y - copy the current frame to the clipboard
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
	case ActionServe:
		return "Serve"
	case ActionPause:
		return "Pause"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	case ActionScreenshot:
		return "Screenshot"
	case ActionCopy:
		return "Copy"
	default:
		return "Unknown"
	}
}

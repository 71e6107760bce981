package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Phase is the match state.
type Phase int

const (
	PhaseWaitingServe Phase = iota // Ball parked at center, velocity zero
	PhaseRallying                  // Ball in motion
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseWaitingServe:
		return "waiting-serve"
	case PhaseRallying:
		return "rallying"
	default:
		return "unknown"
	}
}

// BallView is the renderable part of the ball.
type BallView struct {
	X, Y float64
	R    float64
}

// Snapshot is a read-only copy of everything a frontend draws.
// It shares no memory with the session, so renderers cannot mutate the match.
type Snapshot struct {
	Tick        uint64
	Arena       Arena
	Player      core.Rect
	Opponent    core.Rect
	Ball        BallView
	PlayerScore int
	CPUScore    int
	Phase       Phase
}

// EventKind classifies something that happened during a tick.
type EventKind int

const (
	EventServe      EventKind = iota + 1 // A serve launched the ball
	EventWallBounce                      // The ball reflected off the top or bottom
	EventPaddleHit                       // The ball reflected off a paddle; Side says which
	EventPoint                           // A rally ended; Side is the scorer
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventServe:
		return "serve"
	case EventWallBounce:
		return "wall-bounce"
	case EventPaddleHit:
		return "paddle-hit"
	case EventPoint:
		return "point"
	default:
		return "unknown"
	}
}

// Event is emitted by Step for frontends that react to gameplay (sound, logs).
type Event struct {
	Kind EventKind
	Side Side // Zero for serve and wall bounce
}

// StepResult is returned by Session.Step after each tick.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}

// Has reports whether an event of the given kind occurred this tick.
func (r StepResult) Has(kind EventKind) bool {
	for _, e := range r.Events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

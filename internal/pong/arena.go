// Package pong implements the match simulation: one player paddle, one
// computer-controlled paddle, a ball, and the serve/rally/score lifecycle.
//
// The package is frontend-agnostic. Frontends feed an IntentBuffer from device
// events, call Session.Step once per frame, and draw the returned Snapshot.
// Nothing here reads the clock or blocks: one Step is one physics step.
package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Arena is the fixed playing field every entity is constrained to.
type Arena struct {
	Width  float64
	Height float64
}

// CenterX returns the horizontal center of the arena.
func (a Arena) CenterX() float64 {
	return a.Width / 2
}

// CenterY returns the vertical center of the arena.
func (a Arena) CenterY() float64 {
	return a.Height / 2
}

// clampPaddleY keeps a paddle of the given height inside the vertical bounds.
func (a Arena) clampPaddleY(y, height float64) float64 {
	return core.ClampF(y, 0, a.Height-height)
}

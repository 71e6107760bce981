package pong

import (
	"math"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// scriptedSource replays fixed draws in order, wrapping around.
type scriptedSource struct {
	draws []float64
	calls int
}

func (s *scriptedSource) Float64() float64 {
	v := s.draws[s.calls%len(s.draws)]
	s.calls++
	return v
}

func newTestSession(t *testing.T, draws ...float64) (*Session, *scriptedSource) {
	t.Helper()
	if len(draws) == 0 {
		draws = []float64{0.75, 0.5}
	}
	src := &scriptedSource{draws: draws}
	return NewSession(config.Default(), src), src
}

// startRally puts the ball in play at (x, y) with velocity (vx, vy).
func startRally(s *Session, x, y, vx, vy float64) {
	s.phase = PhaseRallying
	s.ball.X, s.ball.Y = x, y
	s.ball.VX, s.ball.VY = vx, vy
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func defaultConfig() config.PongConfig {
	return config.Default()
}

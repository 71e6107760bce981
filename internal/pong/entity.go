package pong

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// Side identifies one end of the arena.
type Side int

const (
	SidePlayer   Side = iota + 1 // Left paddle, human controlled
	SideOpponent                 // Right paddle, computer controlled
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideOpponent:
		return "cpu"
	default:
		return "unknown"
	}
}

// Paddle is a vertical bar with a fixed x and a mutable y.
type Paddle struct {
	core.Rect
	Speed float64 // Units per tick
}

// moveBy shifts the paddle vertically without clamping.
func (p *Paddle) moveBy(dy float64) {
	p.Y += dy
}

// centerOn places the paddle's vertical center on y without clamping.
func (p *Paddle) centerOn(y float64) {
	p.Y = y - p.H/2
}

// spin returns the normalized impact offset in (-1, 1) for a ball center at y.
// Zero at the paddle's center, approaching ±1 at its ends.
func (p *Paddle) spin(y float64) float64 {
	return (y - p.CenterY()) / (p.H / 2)
}

// Ball is a circle with a velocity. Speed is its base speed.
type Ball struct {
	X, Y   float64
	R      float64
	VX, VY float64
	Speed  float64
}

// stop parks the ball at (x, y) with zero velocity.
func (b *Ball) stop(x, y float64) {
	b.X, b.Y = x, y
	b.VX, b.VY = 0, 0
}

// newPaddles builds both paddles vertically centered in the arena.
func newPaddles(cfg config.PongConfig, arena Arena) (player, opponent Paddle) {
	player = Paddle{
		Rect: core.NewRect(
			cfg.Player.Offset,
			arena.CenterY()-cfg.Player.Height/2,
			cfg.Player.Width,
			cfg.Player.Height,
		),
		Speed: cfg.Player.Speed,
	}
	opponent = Paddle{
		Rect: core.NewRect(
			arena.Width-cfg.Opponent.Offset-cfg.Opponent.Width,
			arena.CenterY()-cfg.Opponent.Height/2,
			cfg.Opponent.Width,
			cfg.Opponent.Height,
		),
		Speed: cfg.Opponent.Speed,
	}
	return player, opponent
}

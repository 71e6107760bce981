// Package config provides YAML-based loading of the game constants:
// arena size, paddle geometry and speeds, ball radius and base speed.
// These are fixed for the lifetime of a session.
package config

import "fmt"

// PongConfig contains every externally tunable constant of a match.
type PongConfig struct {
	Arena    ArenaConfig  `yaml:"arena"`
	Player   PaddleConfig `yaml:"player"`
	Opponent PaddleConfig `yaml:"opponent"`
	Ball     BallConfig   `yaml:"ball"`
}

// ArenaConfig defines the playing field bounds.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines one paddle.
type PaddleConfig struct {
	Offset float64 `yaml:"offset"` // Distance from the paddle's own side wall
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // Units per tick
}

// BallConfig defines the ball.
type BallConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"` // Base speed for serves and spin
}

// ValidationError describes a constant that cannot produce a playable arena.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("config: %s: %s", e.Field, e.Message)
}

// Validate checks that the constants describe a playable arena.
func (c PongConfig) Validate() error {
	positive := []struct {
		field string
		value float64
	}{
		{"arena.width", c.Arena.Width},
		{"arena.height", c.Arena.Height},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
		{"player.speed", c.Player.Speed},
		{"opponent.width", c.Opponent.Width},
		{"opponent.height", c.Opponent.Height},
		{"opponent.speed", c.Opponent.Speed},
		{"ball.radius", c.Ball.Radius},
		{"ball.speed", c.Ball.Speed},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return ValidationError{Field: p.field, Message: fmt.Sprintf("must be positive, got %g", p.value)}
		}
	}

	if c.Player.Offset < 0 {
		return ValidationError{Field: "player.offset", Message: "must not be negative"}
	}
	if c.Opponent.Offset < 0 {
		return ValidationError{Field: "opponent.offset", Message: "must not be negative"}
	}
	if c.Player.Height > c.Arena.Height {
		return ValidationError{Field: "player.height", Message: "taller than the arena"}
	}
	if c.Opponent.Height > c.Arena.Height {
		return ValidationError{Field: "opponent.height", Message: "taller than the arena"}
	}

	playerRight := c.Player.Offset + c.Player.Width
	opponentLeft := c.Arena.Width - c.Opponent.Offset - c.Opponent.Width
	if playerRight+2*c.Ball.Radius > opponentLeft {
		return ValidationError{Field: "arena.width", Message: "paddles leave no room for the ball"}
	}

	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// Default returns the built-in constants, used when the embedded YAML cannot be parsed.
func Default() PongConfig {
	return PongConfig{
		Arena: ArenaConfig{
			Width:  800,
			Height: 500,
		},
		Player: PaddleConfig{
			Offset: 20,
			Width:  12,
			Height: 80,
			Speed:  6,
		},
		Opponent: PaddleConfig{
			Offset: 20,
			Width:  12,
			Height: 80,
			Speed:  5,
		},
		Ball: BallConfig{
			Radius: 8,
			Speed:  6,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPongYAML
}

package pong

import (
	"math/rand"

	"github.com/vovakirdan/tui-pong/internal/config"
)

// Session owns all state of one match: arena, paddles, ball, scores, and phase.
// A Session is not safe for concurrent use; it is driven by a single frontend loop.
type Session struct {
	cfg      config.PongConfig
	arena    Arena
	player   Paddle
	opponent Paddle
	ball     Ball

	playerScore int
	cpuScore    int
	phase       Phase
	tick        uint64

	rng RandomSource
}

// NewSession creates a match in the WaitingServe phase with centered entities.
// cfg must already be validated (config.Load does this). A nil rng falls back to
// a fixed-seed source.
func NewSession(cfg config.PongConfig, rng RandomSource) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	s := &Session{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// NewSeededSession creates a match whose serves are drawn from math/rand with seed.
// Two sessions with equal config, seed, and intents evolve identically.
func NewSeededSession(cfg config.PongConfig, seed int64) *Session {
	return NewSession(cfg, rand.New(rand.NewSource(seed)))
}

// Reset restores the initial geometry, zeroes both scores, and waits for a serve.
// The random source is kept.
func (s *Session) Reset() {
	s.arena = Arena{Width: s.cfg.Arena.Width, Height: s.cfg.Arena.Height}
	s.player, s.opponent = newPaddles(s.cfg, s.arena)
	s.ball = Ball{R: s.cfg.Ball.Radius, Speed: s.cfg.Ball.Speed}
	s.ball.stop(s.arena.CenterX(), s.arena.CenterY())
	s.playerScore = 0
	s.cpuScore = 0
	s.phase = PhaseWaitingServe
	s.tick = 0
}

// Config returns the constants the session was built with.
func (s *Session) Config() config.PongConfig {
	return s.cfg
}

// Phase returns the current match phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Scores returns the player's and the computer's points.
func (s *Session) Scores() (player, cpu int) {
	return s.playerScore, s.cpuScore
}

// RequestServe launches the ball when waiting for a serve.
// It draws the horizontal direction and the vertical velocity once each.
// Returns false, changing nothing, while a rally is in progress.
func (s *Session) RequestServe() bool {
	if s.phase != PhaseWaitingServe {
		return false
	}
	s.phase = PhaseRallying
	s.ball.VX = serveDirection(s.rng.Float64()) * s.ball.Speed
	s.ball.VY = serveSpin(s.rng.Float64(), s.ball.Speed)
	return true
}

// MovePaddle shifts the player paddle by one speed step per active direction.
// Up is applied before down and the result is clamped once, so holding both
// nets zero displacement.
func (s *Session) MovePaddle(up, down bool) {
	if up {
		s.player.moveBy(-s.player.Speed)
	}
	if down {
		s.player.moveBy(s.player.Speed)
	}
	s.player.Y = s.arena.clampPaddleY(s.player.Y, s.player.H)
}

// MovePaddleTo centers the player paddle on y, clamped to the arena.
func (s *Session) MovePaddleTo(y float64) {
	s.player.centerOn(y)
	s.player.Y = s.arena.clampPaddleY(s.player.Y, s.player.H)
}

// Step advances the match by one tick:
// player intent, serve request, ball motion and collisions, then the opponent.
func (s *Session) Step(in Intent) StepResult {
	s.tick++
	var events []Event

	if in.HasTarget {
		s.MovePaddleTo(in.Target)
	} else {
		s.MovePaddle(in.Up, in.Down)
	}

	if in.Serve && s.RequestServe() {
		events = append(events, Event{Kind: EventServe})
	}

	if s.phase == PhaseRallying {
		events = s.advanceBall(events)
	}

	s.trackBall()

	return StepResult{Snapshot: s.Snapshot(), Events: events}
}

// Snapshot returns a copy of the renderable state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:        s.tick,
		Arena:       s.arena,
		Player:      s.player.Rect,
		Opponent:    s.opponent.Rect,
		Ball:        BallView{X: s.ball.X, Y: s.ball.Y, R: s.ball.R},
		PlayerScore: s.playerScore,
		CPUScore:    s.cpuScore,
		Phase:       s.phase,
	}
}

// awardPoint credits scorer, parks the ball at the center, and waits for a serve.
func (s *Session) awardPoint(scorer Side) {
	if scorer == SidePlayer {
		s.playerScore++
	} else {
		s.cpuScore++
	}
	s.ball.stop(s.arena.CenterX(), s.arena.CenterY())
	s.phase = PhaseWaitingServe
}

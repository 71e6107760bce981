package pong

// trackBall steers the opponent paddle one speed step toward the ball's height.
// It runs every tick in both phases and has no prediction or dead zone.
func (s *Session) trackBall() {
	o := &s.opponent
	target := s.ball.Y - o.H/2

	switch {
	case o.Y < target:
		o.moveBy(o.Speed)
	case o.Y > target:
		o.moveBy(-o.Speed)
	}
	o.Y = s.arena.clampPaddleY(o.Y, o.H)
}

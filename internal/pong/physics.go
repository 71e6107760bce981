package pong

// advanceBall moves the ball one step and resolves walls, paddles, and scoring.
// There is no sub-stepping: a fast enough ball can pass through a paddle.
func (s *Session) advanceBall(events []Event) []Event {
	b := &s.ball
	b.X += b.VX
	b.Y += b.VY

	// The ball is not pushed back inside; it may sit past the edge for a tick.
	if b.Y-b.R < 0 || b.Y+b.R > s.arena.Height {
		b.VY = -b.VY
		events = append(events, Event{Kind: EventWallBounce})
	}

	if b.X-b.R <= s.player.Right() && s.player.SpansY(b.Y) {
		s.deflect(&s.player)
		b.X = s.player.Right() + b.R
		events = append(events, Event{Kind: EventPaddleHit, Side: SidePlayer})
	}

	if b.X+b.R >= s.opponent.X && s.opponent.SpansY(b.Y) {
		s.deflect(&s.opponent)
		b.X = s.opponent.X - b.R
		events = append(events, Event{Kind: EventPaddleHit, Side: SideOpponent})
	}

	switch {
	case b.X < 0:
		s.awardPoint(SideOpponent)
		events = append(events, Event{Kind: EventPoint, Side: SideOpponent})
	case b.X > s.arena.Width:
		s.awardPoint(SidePlayer)
		events = append(events, Event{Kind: EventPoint, Side: SidePlayer})
	}

	return events
}

// deflect reverses the ball horizontally and replaces its vertical velocity
// with spin proportional to where it struck p.
func (s *Session) deflect(p *Paddle) {
	s.ball.VX = -s.ball.VX
	s.ball.VY = p.spin(s.ball.Y) * s.ball.Speed
}

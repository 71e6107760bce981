package pong

// RandomSource supplies uniform draws in [0, 1) for serves.
// *math/rand.Rand satisfies it; tests inject scripted sources.
type RandomSource interface {
	Float64() float64
}

// ServeSpread bounds the serve's vertical velocity to ±ServeSpread * ball speed.
const ServeSpread = 0.6

// serveDirection maps one draw to +1 (toward the opponent) or -1 (toward the player).
func serveDirection(draw float64) float64 {
	if draw > 0.5 {
		return 1
	}
	return -1
}

// serveSpin maps one draw in [0, 1) to a vertical velocity in [-spread*speed, spread*speed).
func serveSpin(draw, speed float64) float64 {
	return (draw*2 - 1) * speed * ServeSpread
}

package pong

import "sync"

// Direction is a discrete paddle intent.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionUp
	DirectionDown
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirectionUp:
		return "up"
	case DirectionDown:
		return "down"
	default:
		return "none"
	}
}

// Intent is the player's input for one tick, sampled once from an IntentBuffer.
type Intent struct {
	Up    bool // Move up by the paddle speed
	Down  bool // Move down by the paddle speed
	Serve bool // Request a serve

	// HasTarget makes Target, the paddle's desired vertical center, replace
	// Up/Down for this tick.
	HasTarget bool
	Target    float64
}

// IntentBuffer holds the latest input between ticks.
// Device callbacks write to it at any time; the frontend samples it once per tick.
// Held directions persist until released. Serve requests and absolute targets are
// consumed by Sample, so each event affects exactly one tick.
type IntentBuffer struct {
	mu        sync.Mutex
	up        bool
	down      bool
	serve     bool
	hasTarget bool
	target    float64
}

// NewIntentBuffer creates an empty buffer.
func NewIntentBuffer() *IntentBuffer {
	return &IntentBuffer{}
}

// SetPaddleDelta replaces the held direction: up, down, or none.
func (b *IntentBuffer) SetPaddleDelta(d Direction) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.up = d == DirectionUp
	b.down = d == DirectionDown
}

// Hold sets one direction independently of the other, for devices that
// report key-down and key-up separately. Both may be held at once.
func (b *IntentBuffer) Hold(d Direction, held bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	switch d {
	case DirectionUp:
		b.up = held
	case DirectionDown:
		b.down = held
	}
}

// SetPaddleAbsolute requests the paddle's vertical center at y on the next tick.
// Later calls before the tick overwrite earlier ones.
func (b *IntentBuffer) SetPaddleAbsolute(y float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hasTarget = true
	b.target = y
}

// RequestServe asks for a serve on the next tick.
func (b *IntentBuffer) RequestServe() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.serve = true
}

// Sample returns the intent for this tick and consumes one-shot requests.
func (b *IntentBuffer) Sample() Intent {
	b.mu.Lock()
	defer b.mu.Unlock()

	in := Intent{
		Up:        b.up,
		Down:      b.down,
		Serve:     b.serve,
		HasTarget: b.hasTarget,
		Target:    b.target,
	}
	b.serve = false
	b.hasTarget = false
	return in
}

// Reset drops all held and pending input.
func (b *IntentBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.up, b.down, b.serve, b.hasTarget = false, false, false, false
	b.target = 0
}

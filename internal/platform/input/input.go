// Package input holds the device-to-intent logic shared by the frontends:
// pointer dragging and key holds. It knows nothing about any UI toolkit.
package input

import "github.com/vovakirdan/tui-pong/internal/pong"

// DragZone is the fraction of the arena width, from the left, where a
// pointer press grabs the player paddle.
const DragZone = 0.6

// Pointer turns presses, moves, and releases of a mouse or touch into
// absolute paddle targets and serve requests. Coordinates are arena units.
type Pointer struct {
	dragging bool
}

// Press starts a drag when x is inside the drag zone and, while waiting for a
// serve, requests one regardless of where the press landed.
func (p *Pointer) Press(x, y float64, arena pong.Arena, waiting bool, buf *pong.IntentBuffer) {
	if x <= arena.Width*DragZone {
		p.dragging = true
		buf.SetPaddleAbsolute(y)
	}
	if waiting {
		buf.RequestServe()
	}
}

// Move retargets the paddle while dragging.
func (p *Pointer) Move(y float64, buf *pong.IntentBuffer) {
	if p.dragging {
		buf.SetPaddleAbsolute(y)
	}
}

// Release ends the drag.
func (p *Pointer) Release() {
	p.dragging = false
}

// Dragging reports whether a drag is in progress.
func (p *Pointer) Dragging() bool {
	return p.dragging
}

// KeyHold emulates a held direction key on devices that only report presses.
// Each press holds the direction for a number of ticks; auto-repeat renews it.
type KeyHold struct {
	dir   pong.Direction
	ticks int
}

// Press holds d for n ticks, replacing any other held direction.
func (h *KeyHold) Press(d pong.Direction, n int, buf *pong.IntentBuffer) {
	h.dir = d
	h.ticks = n
	buf.SetPaddleDelta(d)
}

// Tick counts down one tick and releases the direction when the hold expires.
// Call it after sampling the buffer.
func (h *KeyHold) Tick(buf *pong.IntentBuffer) {
	if h.ticks == 0 {
		return
	}
	h.ticks--
	if h.ticks == 0 {
		h.dir = pong.DirectionNone
		buf.SetPaddleDelta(pong.DirectionNone)
	}
}

// Release drops the hold immediately.
func (h *KeyHold) Release(buf *pong.IntentBuffer) {
	h.dir = pong.DirectionNone
	h.ticks = 0
	buf.SetPaddleDelta(pong.DirectionNone)
}

// Direction returns the held direction.
func (h *KeyHold) Direction() pong.Direction {
	return h.dir
}

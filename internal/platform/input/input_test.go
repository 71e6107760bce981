package input

import (
	"testing"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

var arena = pong.Arena{Width: 800, Height: 500}

func TestPointerPress(t *testing.T) {
	tests := []struct {
		name       string
		x          float64
		waiting    bool
		wantTarget bool
		wantServe  bool
	}{
		{"drag zone while waiting", 100, true, true, true},
		{"drag zone edge", 480, false, true, false},
		{"outside drag zone while waiting", 481, true, false, true},
		{"outside drag zone during rally", 700, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := pong.NewIntentBuffer()
			var p Pointer
			p.Press(tc.x, 123, arena, tc.waiting, buf)

			in := buf.Sample()
			if in.HasTarget != tc.wantTarget || in.Serve != tc.wantServe {
				t.Errorf("Sample() = %+v, expected target=%v serve=%v", in, tc.wantTarget, tc.wantServe)
			}
			if tc.wantTarget && in.Target != 123 {
				t.Errorf("Target = %f, expected 123", in.Target)
			}
			if p.Dragging() != tc.wantTarget {
				t.Errorf("Dragging() = %v", p.Dragging())
			}
		})
	}
}

func TestPointerDrag(t *testing.T) {
	buf := pong.NewIntentBuffer()
	var p Pointer

	p.Move(50, buf)
	if buf.Sample().HasTarget {
		t.Error("move without press should not target")
	}

	p.Press(10, 10, arena, false, buf)
	buf.Sample()
	p.Move(300, buf)
	if in := buf.Sample(); !in.HasTarget || in.Target != 300 {
		t.Errorf("Sample() = %+v, expected target 300", in)
	}

	p.Release()
	p.Move(400, buf)
	if buf.Sample().HasTarget {
		t.Error("move after release should not target")
	}
}

func TestKeyHoldExpires(t *testing.T) {
	buf := pong.NewIntentBuffer()
	var h KeyHold
	h.Press(pong.DirectionUp, 3, buf)

	for i := 0; i < 3; i++ {
		if in := buf.Sample(); !in.Up {
			t.Fatalf("tick %d: expected up held", i)
		}
		h.Tick(buf)
	}
	if in := buf.Sample(); in.Up || in.Down {
		t.Errorf("expected release after hold expired, got %+v", in)
	}
	if h.Direction() != pong.DirectionNone {
		t.Errorf("Direction() = %v", h.Direction())
	}
}

func TestKeyHoldRepeatRenews(t *testing.T) {
	buf := pong.NewIntentBuffer()
	var h KeyHold

	h.Press(pong.DirectionDown, 2, buf)
	buf.Sample()
	h.Tick(buf)
	h.Press(pong.DirectionDown, 2, buf)
	buf.Sample()
	h.Tick(buf)

	if in := buf.Sample(); !in.Down {
		t.Error("auto-repeat should renew the hold")
	}
}

func TestKeyHoldOppositeReplaces(t *testing.T) {
	buf := pong.NewIntentBuffer()
	var h KeyHold

	h.Press(pong.DirectionUp, 5, buf)
	h.Press(pong.DirectionDown, 5, buf)
	if in := buf.Sample(); in.Up || !in.Down {
		t.Errorf("Sample() = %+v, expected only down", in)
	}

	h.Release(buf)
	if in := buf.Sample(); in.Up || in.Down {
		t.Errorf("Sample() = %+v, expected released", in)
	}
}

package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestToneLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(1000)
	s := NewTone(100, 50*time.Millisecond, rate)

	buf := make([][2]float64, 40)
	n, ok := s.Stream(buf)
	if !ok || n != 40 {
		t.Fatalf("first Stream() = %d, %v; expected 40, true", n, ok)
	}
	for i := 0; i < n; i++ {
		if math.Abs(buf[i][0]) > 1 || buf[i][0] != buf[i][1] {
			t.Fatalf("sample %d = %v, expected equal channels within [-1, 1]", i, buf[i])
		}
	}

	n, ok = s.Stream(buf)
	if !ok || n != 10 {
		t.Errorf("second Stream() = %d, %v; expected 10, true", n, ok)
	}

	n, ok = s.Stream(buf)
	if ok || n != 0 {
		t.Errorf("drained Stream() = %d, %v; expected 0, false", n, ok)
	}
	if s.Err() != nil {
		t.Errorf("Err() = %v", s.Err())
	}
}

func TestToneDecays(t *testing.T) {
	rate := beep.SampleRate(8000)
	s := NewTone(400, 200*time.Millisecond, rate)

	buf := make([][2]float64, rate.N(200*time.Millisecond))
	n, _ := s.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for i := from; i < to; i++ {
			m = math.Max(m, math.Abs(buf[i][0]))
		}
		return m
	}
	if head, tail := peak(0, n/4), peak(3*n/4, n); tail >= head {
		t.Errorf("tail peak %f should be below head peak %f", tail, head)
	}
}

func TestCueFor(t *testing.T) {
	tests := []struct {
		event pong.Event
		want  Cue
	}{
		{pong.Event{Kind: pong.EventServe}, CueServe},
		{pong.Event{Kind: pong.EventWallBounce}, CueWall},
		{pong.Event{Kind: pong.EventPaddleHit, Side: pong.SideOpponent}, CuePaddle},
		{pong.Event{Kind: pong.EventPoint, Side: pong.SidePlayer}, CuePoint},
		{pong.Event{}, CueNone},
	}

	for _, tc := range tests {
		if got := CueFor(tc.event); got != tc.want {
			t.Errorf("CueFor(%v) = %v, expected %v", tc.event.Kind, got, tc.want)
		}
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(0.5)
	// Must not touch the speaker before Init.
	p.HandleEvents([]pong.Event{{Kind: pong.EventServe}, {Kind: pong.EventPoint}})
	p.Close()
}

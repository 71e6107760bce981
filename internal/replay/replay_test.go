package replay

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

func TestRecorderRunLength(t *testing.T) {
	r := NewRecorder()
	for i := 0; i < 5; i++ {
		r.Record(pong.Intent{Up: true})
	}
	r.Record(pong.Intent{Serve: true})
	r.Record(pong.Intent{HasTarget: true, Target: 120})
	r.Record(pong.Intent{HasTarget: true, Target: 120})
	r.Record(pong.Intent{HasTarget: true, Target: 121})

	runs := r.Runs()
	if len(runs) != 4 {
		t.Fatalf("len(runs) = %d, expected 4: %+v", len(runs), runs)
	}
	if runs[0].Count != 5 || !runs[0].Up {
		t.Errorf("runs[0] = %+v, expected 5 ticks of up", runs[0])
	}
	if runs[2].Count != 2 || runs[2].Target == nil || *runs[2].Target != 120 {
		t.Errorf("runs[2] = %+v, expected 2 ticks targeting 120", runs[2])
	}
	if r.Ticks() != 9 {
		t.Errorf("Ticks() = %d, expected 9", r.Ticks())
	}
}

func TestRecorderResetBreaksRuns(t *testing.T) {
	r := NewRecorder()
	r.Record(pong.Intent{})
	r.MarkReset()
	r.Record(pong.Intent{})

	runs := r.Runs()
	if len(runs) != 3 || !runs[1].Reset {
		t.Fatalf("runs = %+v, expected idle, reset, idle", runs)
	}
}

func TestEncodeDecode(t *testing.T) {
	r := NewRecorder()
	r.Record(pong.Intent{Down: true})
	r.Record(pong.Intent{HasTarget: true, Target: 0.1 + 0.2})
	r.MarkReset()

	data, err := r.Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}

	runs, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("decoded %d runs, expected 3", len(runs))
	}
	if got := runs[1].Intent(); !got.HasTarget || got.Target != 0.1+0.2 {
		t.Errorf("decoded target = %+v, expected exact float", got)
	}
}

func TestDecodeRejectsBadCounts(t *testing.T) {
	tests := []string{
		"- n: -1\n",
		"- up: true\n",
		"not: a list\n",
	}
	for _, data := range tests {
		if _, err := Decode([]byte(data)); err == nil {
			t.Errorf("Decode(%q) expected error", strings.TrimSpace(data))
		}
	}
}

func TestPlayMatchesLiveSession(t *testing.T) {
	cfg := config.Default()
	const seed = 2024

	live := pong.NewSeededSession(cfg, seed)
	rec := NewRecorder()
	rng := rand.New(rand.NewSource(8))

	var last pong.Snapshot
	for i := 0; i < 4000; i++ {
		if i == 2500 {
			live.Reset()
			rec.MarkReset()
		}
		in := pong.Intent{Up: rng.Intn(3) == 0, Down: rng.Intn(3) == 0, Serve: i%120 == 0}
		if rng.Intn(40) == 0 {
			in.HasTarget = true
			in.Target = rng.Float64() * cfg.Arena.Height
		}
		rec.Record(in)
		last = live.Step(in).Snapshot
	}

	data, err := rec.Encode()
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	runs, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	res := Play(cfg, seed, runs)
	if res.Final != last {
		t.Errorf("replayed snapshot differs:\nlive   %+v\nreplay %+v", last, res.Final)
	}
	if res.Ticks != 4000 || res.Resets != 1 {
		t.Errorf("Ticks=%d Resets=%d, expected 4000 and 1", res.Ticks, res.Resets)
	}
}

func TestArchiveLoadRoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Ball.Speed = 7
	cfg.Opponent.Speed = 4

	rec := NewRecorder()
	for i := 0; i < 600; i++ {
		rec.Record(pong.Intent{Serve: i == 0, Up: i%50 < 10})
	}

	row, err := rec.Archive("terminal", cfg, 77)
	if err != nil {
		t.Fatalf("Archive() failed: %v", err)
	}
	if row.Ticks != 600 || row.Seed != 77 || row.Frontend != "terminal" {
		t.Errorf("row = %+v", row)
	}

	gotCfg, runs, err := Load(row)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if gotCfg != cfg {
		t.Errorf("Load() config = %+v, expected %+v", gotCfg, cfg)
	}

	want := Play(cfg, 77, rec.Runs())
	got := Play(gotCfg, 77, runs)
	if got != want {
		t.Errorf("replay of archived recording differs:\n%+v\n%+v", got, want)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	row, err := NewRecorder().Archive("terminal", config.Default(), 1)
	if err != nil {
		t.Fatalf("Archive() failed: %v", err)
	}
	row.ConfigYAML = "arena:\n  width: -5\n"

	if _, _, err := Load(row); err == nil {
		t.Error("expected error for invalid constants")
	}
}

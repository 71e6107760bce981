// Package replay records the intents a frontend feeds into a session and
// re-simulates them. A session is deterministic for a given configuration,
// seed, and intent sequence, so these three are a complete recording.
package replay

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Run is Count consecutive ticks sampled with the same intent.
// A run with Reset set marks a session reset before the next tick and has no count.
type Run struct {
	Count  int      `yaml:"n,omitempty"`
	Up     bool     `yaml:"up,omitempty"`
	Down   bool     `yaml:"down,omitempty"`
	Serve  bool     `yaml:"serve,omitempty"`
	Target *float64 `yaml:"target,omitempty"`
	Reset  bool     `yaml:"reset,omitempty"`
}

// Intent returns the intent of one tick of the run.
func (r Run) Intent() pong.Intent {
	in := pong.Intent{Up: r.Up, Down: r.Down, Serve: r.Serve}
	if r.Target != nil {
		in.HasTarget = true
		in.Target = *r.Target
	}
	return in
}

func runOf(in pong.Intent) Run {
	r := Run{Count: 1, Up: in.Up, Down: in.Down, Serve: in.Serve}
	if in.HasTarget {
		target := in.Target
		r.Target = &target
	}
	return r
}

func (r Run) sameIntent(o Run) bool {
	if r.Reset || o.Reset {
		return false
	}
	if r.Up != o.Up || r.Down != o.Down || r.Serve != o.Serve {
		return false
	}
	if (r.Target == nil) != (o.Target == nil) {
		return false
	}
	return r.Target == nil || *r.Target == *o.Target
}

// Recorder accumulates intents as run-length encoded runs.
// It is driven by the same loop that steps the session and is not safe
// for concurrent use.
type Recorder struct {
	runs  []Run
	ticks int
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record appends the intent passed to one Session.Step.
func (r *Recorder) Record(in pong.Intent) {
	r.ticks++
	next := runOf(in)
	if n := len(r.runs); n > 0 && r.runs[n-1].sameIntent(next) {
		r.runs[n-1].Count++
		return
	}
	r.runs = append(r.runs, next)
}

// MarkReset records a Session.Reset between ticks.
func (r *Recorder) MarkReset() {
	r.runs = append(r.runs, Run{Reset: true})
}

// Ticks returns the number of recorded steps.
func (r *Recorder) Ticks() int {
	return r.ticks
}

// Runs returns a copy of the recorded runs.
func (r *Recorder) Runs() []Run {
	out := make([]Run, len(r.runs))
	copy(out, r.runs)
	return out
}

// Encode serializes the runs as YAML.
func (r *Recorder) Encode() ([]byte, error) {
	return Encode(r.runs)
}

// Encode serializes runs as YAML.
func Encode(runs []Run) ([]byte, error) {
	data, err := yaml.Marshal(runs)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot encode runs: %w", err)
	}
	return data, nil
}

// Decode parses runs produced by Encode.
func Decode(data []byte) ([]Run, error) {
	var runs []Run
	if err := yaml.Unmarshal(data, &runs); err != nil {
		return nil, fmt.Errorf("replay: cannot decode runs: %w", err)
	}
	for i, r := range runs {
		if r.Count < 0 || (r.Count == 0 && !r.Reset) {
			return nil, fmt.Errorf("replay: run %d: invalid count %d", i, r.Count)
		}
	}
	return runs, nil
}

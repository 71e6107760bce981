package replay

import (
	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Result summarizes a re-simulated recording.
type Result struct {
	Final  pong.Snapshot
	Ticks  int
	Serves int
	Hits   int
	Resets int
}

// Play rebuilds a seeded session and steps it through runs.
// Scores are derived here, never read from storage.
func Play(cfg config.PongConfig, seed int64, runs []Run) Result {
	s := pong.NewSeededSession(cfg, seed)
	res := Result{Final: s.Snapshot()}

	for _, r := range runs {
		if r.Reset {
			s.Reset()
			res.Resets++
			res.Final = s.Snapshot()
			continue
		}
		in := r.Intent()
		for i := 0; i < r.Count; i++ {
			step := s.Step(in)
			res.Ticks++
			for _, e := range step.Events {
				switch e.Kind {
				case pong.EventServe:
					res.Serves++
				case pong.EventPaddleHit:
					res.Hits++
				}
			}
			res.Final = step.Snapshot
		}
	}
	return res
}

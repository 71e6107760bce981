package replay

import (
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// Archive turns a finished recording into a storage row.
// The ID is left empty for the store to assign.
func (r *Recorder) Archive(frontend string, cfg config.PongConfig, seed int64) (storage.Recording, error) {
	cfgYAML, err := config.Marshal(cfg)
	if err != nil {
		return storage.Recording{}, fmt.Errorf("replay: %w", err)
	}
	inputs, err := r.Encode()
	if err != nil {
		return storage.Recording{}, err
	}

	return storage.Recording{
		Frontend:   frontend,
		Seed:       seed,
		ConfigYAML: string(cfgYAML),
		InputsYAML: string(inputs),
		Ticks:      r.ticks,
	}, nil
}

// Load decodes a stored recording back into constants and runs.
func Load(rec storage.Recording) (config.PongConfig, []Run, error) {
	cfg, err := config.Parse([]byte(rec.ConfigYAML))
	if err != nil {
		return config.PongConfig{}, nil, fmt.Errorf("replay: recording %s: %w", rec.ID, err)
	}
	runs, err := Decode([]byte(rec.InputsYAML))
	if err != nil {
		return config.PongConfig{}, nil, fmt.Errorf("replay: recording %s: %w", rec.ID, err)
	}
	return cfg, runs, nil
}

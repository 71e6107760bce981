package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/registry"
)

// FrontendID is the registry ID of the terminal frontend.
const FrontendID = "terminal"

func init() {
	registry.Register(FrontendID, func() registry.Frontend { return &Frontend{} })
}

// Frontend plays a match in the local terminal.
type Frontend struct {
	// Theme overrides the classic theme when set.
	Theme *Theme
}

// ID implements registry.Frontend.
func (f *Frontend) ID() string { return FrontendID }

// Title implements registry.Frontend.
func (f *Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run implements registry.Frontend.
func (f *Frontend) Run(ctx context.Context, opts registry.RunOptions) error {
	theme := DefaultTheme()
	if f.Theme != nil {
		theme = *f.Theme
	}

	model := NewModel(ModelOptions{
		Config:   opts.Config,
		Runtime:  opts.Runtime,
		Theme:    theme,
		Recorder: opts.Recorder,
		Sound:    opts.Sound,
	})

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

// Package tui is the terminal front end: comparison slider, style picker and
// conversation panel over a single studio session.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PabloGalante/lumina/internal/app/studio"
	"github.com/PabloGalante/lumina/internal/domain"
)

// Run starts the full-screen UI and blocks until the user quits or ctx is
// cancelled.
func Run(ctx context.Context, controller *studio.Controller, styles []domain.Style, initialImage string) error {
	p := tea.NewProgram(
		New(ctx, controller, styles, initialImage),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

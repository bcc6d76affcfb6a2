// Package launcher runs the board TUI until the user quits or the process
// is interrupted.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/bidboard/internal/app"
	"github.com/thenoetrevino/bidboard/internal/config"
	"github.com/thenoetrevino/bidboard/internal/tui/core"
)

// Launch starts the TUI on top of a. It returns when the program exits; an
// interrupt or SIGTERM ends it like a quit.
func Launch(ctx context.Context, a *app.App, cfg *config.Config, opts ...tea.ProgramOption) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	slog.Info("starting board", "cards", a.Board.Registry().Len(), "clients", len(a.ClientService.List()))

	// An in-flight drag must not outlive the program
	defer a.Board.EndDrag()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(core.New(a, cfg), opts...)

	_, err := p.Run()
	switch {
	case err == nil:
		slog.Info("board closed")
		return nil
	case errors.Is(err, tea.ErrProgramPanic):
		return fmt.Errorf("board crashed: %w", err)
	case errors.Is(err, tea.ErrProgramKilled), errors.Is(err, tea.ErrInterrupted):
		slog.Info("shutdown signal received", "error", err)
		return nil
	default:
		return fmt.Errorf("error running program: %w", err)
	}
}

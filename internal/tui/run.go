package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/tonematch/internal/common"
)

// Run starts the interactive UI and blocks until the user quits or ctx is
// cancelled. The capture controller is closed on every exit path.
func Run(ctx context.Context, opts ...Option) error {
	// Set up signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	m, err := New(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	defer func() {
		if closeErr := m.capture.Close(); closeErr != nil {
			common.LogError(closeErr, "Failed to release camera", nil)
		}
	}()

	// Set up terminal cleanup on any exit
	cleanupTerminal := func() {
		// Ignore errors as this is best-effort cleanup
		_, _ = os.Stdout.Write([]byte("\033[?1049l")) // Exit alternate screen
		_, _ = os.Stdout.Write([]byte("\033[?25h"))   // Show cursor
		_, _ = os.Stdout.Write([]byte("\033[m"))      // Reset colors
	}

	program := tea.NewProgram(m, tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		cleanupTerminal()
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

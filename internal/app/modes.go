package app

import (
	"context"

	"crmctl/internal/api"
	"crmctl/internal/tui/controller"
	"crmctl/internal/tui/design"
	"crmctl/pkg/logging"

	"github.com/charmbracelet/lipgloss"
)

const tuiLifecycleSubsystem = "TUI-Lifecycle"

// runTUIMode executes the interactive terminal UI mode
func runTUIMode(ctx context.Context, config *Config, gw api.Gateway) error {
	logging.Info(tuiLifecycleSubsystem, "Starting TUI mode...")

	design.Initialize(lipgloss.HasDarkBackground())

	// Log entries go to the activity log overlay from here on.
	logChan := logging.InitForTUI(logLevel(config))
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(*config.CrmConfig, gw, config.Debug, logChan)
	if err != nil {
		logging.Error(tuiLifecycleSubsystem, err, "Error creating TUI program")
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	if _, err := p.Run(); err != nil {
		logging.Error(tuiLifecycleSubsystem, err, "Error running TUI program")
		return err
	}

	logging.Info(tuiLifecycleSubsystem, "TUI exited.")
	return nil
}

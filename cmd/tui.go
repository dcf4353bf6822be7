package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive customer manager",
		Long: `Opens the interactive terminal interface. This is also what crmctl does
when run without a subcommand.

Keys:
  /        search customers (results refresh while typing)
  n        new customer          e   edit selected
  v, enter open detail view      d   delete selected
  L        activity log          ?   all shortcuts`,
		Args: cobra.NoArgs,
		RunE: runTUI,
	}
}

// runTUI is the entry point for the interactive mode
func runTUI(cmd *cobra.Command, args []string) error {
	application, err := newApplication(cmd)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return application.Run(ctx)
}

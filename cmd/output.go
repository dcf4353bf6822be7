package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"crmctl/internal/cli"

	"github.com/spf13/cobra"
)

// outputFlags are shared by the customer and address command groups.
type outputFlags struct {
	format string
	quiet  bool
}

func (o *outputFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVarP(&o.format, "output", "o", string(cli.OutputFormatTable), "output format (table, json, yaml)")
	cmd.PersistentFlags().BoolVarP(&o.quiet, "quiet", "q", false, "suppress confirmation messages")
}

// newExecutor bootstraps the application and returns an executor that
// writes to cmd's output.
func newExecutor(cmd *cobra.Command, o *outputFlags) (*cli.Executor, bool, error) {
	format, err := cli.ParseOutputFormat(o.format)
	if err != nil {
		return nil, false, err
	}
	application, err := newApplication(cmd)
	if err != nil {
		return nil, false, fmt.Errorf("failed to initialize application: %w", err)
	}
	exec := application.Executor(cli.ExecutorOptions{
		Format: format,
		Quiet:  o.quiet,
		Out:    cmd.OutOrStdout(),
	})
	return exec, application.CrmConfig().UI.DeletesNeedConfirmation(), nil
}

// confirm asks question on cmd's output and reads y/N from its input.
func confirm(cmd *cobra.Command, question string) bool {
	fmt.Fprintf(cmd.ErrOrStderr(), "%s [y/N]: ", question)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

package cmd

import (
	"os"
	"time"

	"crmctl/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// globalFlags holds the persistent flags shared by every subcommand.
var globalFlags struct {
	configPath string
	backendURL string
	timeout    time.Duration
	logLevel   string
	debug      bool
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "crmctl",
	Short: "Manage customers and their addresses from the terminal",
	Long: `crmctl is a terminal front end for a customer-records backend.

Run without a subcommand to open the interactive interface: a live-searchable
customer list, customer and address forms, and a detail view per customer.
The customer and address subcommands perform the same operations one at a
time for scripting.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. validation failures, unreachable backend)
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	RunE:         runTUI,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "crmctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

// addGlobalFlags registers the persistent flags on fs. The flag names match
// the override keys understood by the config package.
func addGlobalFlags(fs *pflag.FlagSet) {
	fs.StringVar(&globalFlags.configPath, "config", "", "config file (default layers ~/.config/crmctl/config.yaml and ./.crmctl/config.yaml)")
	fs.StringVar(&globalFlags.backendURL, "backend-url", "", "base URL of the customer backend")
	fs.DurationVar(&globalFlags.timeout, "timeout", 0, "per-request timeout, 0 disables it")
	fs.StringVar(&globalFlags.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	fs.BoolVar(&globalFlags.debug, "debug", false, "enable debug logging")
}

// newApplication bootstraps configuration, logging and the backend gateway
// for cmd.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(globalFlags.debug, globalFlags.configPath, cmd.Flags())
	return app.NewApplication(cfg, cmd.ErrOrStderr())
}

func init() {
	addGlobalFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newTUICmd())
	rootCmd.AddCommand(newCustomerCmd())
	rootCmd.AddCommand(newAddressCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
}

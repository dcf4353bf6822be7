package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"crmctl/internal/api"
	"crmctl/internal/cli"
	"crmctl/internal/config"
	"crmctl/pkg/logging"
)

const bootstrapSubsystem = "Bootstrap"

// Application is the main application structure that bootstraps and runs crmctl
type Application struct {
	config  *Config
	gateway api.Gateway
}

// NewApplication loads configuration, sets up CLI logging to logOut and
// builds the backend gateway.
func NewApplication(cfg *Config, logOut io.Writer) (*Application, error) {
	if logOut == nil {
		logOut = os.Stderr
	}

	crmCfg, err := loadConfiguration(cfg)
	if err != nil {
		return nil, err
	}
	cfg.CrmConfig = &crmCfg

	logging.InitForCLI(logLevel(cfg), logOut)
	logging.Debug(bootstrapSubsystem, "Using backend %s (timeout %s)", crmCfg.Backend.BaseURL, crmCfg.Backend.Timeout)

	gw, err := cli.NewGateway(crmCfg)
	if err != nil {
		logging.Error(bootstrapSubsystem, err, "Failed to create gateway")
		return nil, err
	}

	return &Application{
		config:  cfg,
		gateway: gw,
	}, nil
}

func loadConfiguration(cfg *Config) (config.CrmConfig, error) {
	var (
		crmCfg config.CrmConfig
		err    error
	)
	if cfg.ConfigPath != "" {
		crmCfg, err = config.LoadConfigFromPath(cfg.ConfigPath)
		if err != nil {
			return config.CrmConfig{}, fmt.Errorf("failed to load crmctl configuration from path %s: %w", cfg.ConfigPath, err)
		}
	} else {
		crmCfg, err = config.LoadConfig()
		if err != nil {
			return config.CrmConfig{}, fmt.Errorf("failed to load crmctl configuration: %w", err)
		}
	}

	crmCfg, err = config.ApplyOverrides(crmCfg, cfg.Flags)
	if err != nil {
		return config.CrmConfig{}, fmt.Errorf("failed to apply overrides: %w", err)
	}
	return crmCfg, nil
}

func logLevel(cfg *Config) logging.LogLevel {
	if cfg.Debug {
		return logging.LevelDebug
	}
	return logging.ParseLevel(cfg.CrmConfig.Logging.Level)
}

// Gateway returns the backend gateway.
func (a *Application) Gateway() api.Gateway { return a.gateway }

// CrmConfig returns the effective configuration.
func (a *Application) CrmConfig() config.CrmConfig { return *a.config.CrmConfig }

// Executor returns a CLI executor over the application's gateway.
func (a *Application) Executor(opts cli.ExecutorOptions) *cli.Executor {
	return cli.NewExecutor(a.gateway, opts)
}

// Run starts the interactive front end and blocks until it exits or ctx is
// cancelled.
func (a *Application) Run(ctx context.Context) error {
	return runTUIMode(ctx, a.config, a.gateway)
}

package cli

import (
	"fmt"

	"crmctl/internal/api"
	"crmctl/internal/config"
)

// NewGateway builds the HTTP gateway described by cfg.
func NewGateway(cfg config.CrmConfig) (*api.Client, error) {
	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("backend URL is not configured (set --backend-url or %s_BACKEND_URL)", config.EnvPrefix)
	}
	gw, err := api.NewClient(cfg.Backend.BaseURL, api.WithTimeout(cfg.Backend.Timeout))
	if err != nil {
		return nil, fmt.Errorf("failed to create gateway: %w", err)
	}
	return gw, nil
}

package config

import "time"

// DefaultBackendURL matches the address the reference backend listens on.
const DefaultBackendURL = "http://127.0.0.1:5000"

// GetDefaultConfig returns the built-in configuration.
func GetDefaultConfig() CrmConfig {
	confirm := true
	return CrmConfig{
		Backend: BackendConfig{
			BaseURL: DefaultBackendURL,
		},
		UI: UIConfig{
			StatusMessageDuration: 3 * time.Second,
			ConfirmDeletes:        &confirm,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

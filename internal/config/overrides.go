package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. CRMCTL_BACKEND_URL.
const EnvPrefix = "CRMCTL"

// Override keys and the flag names they bind to.
const (
	KeyBackendURL     = "backend.url"
	KeyBackendTimeout = "backend.timeout"
	KeySearchDebounce = "ui.search_debounce"
	KeyLogLevel       = "logging.level"
)

var flagBindings = map[string]string{
	KeyBackendURL:     "backend-url",
	KeyBackendTimeout: "timeout",
	KeyLogLevel:       "log-level",
}

// ApplyOverrides layers environment variables and explicitly set flags over
// cfg. Flags win over environment, environment wins over files.
func ApplyOverrides(cfg CrmConfig, flags *pflag.FlagSet) (CrmConfig, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for _, key := range []string{KeyBackendURL, KeyBackendTimeout, KeySearchDebounce, KeyLogLevel} {
		if err := v.BindEnv(key); err != nil {
			return cfg, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	if flags != nil {
		for key, name := range flagBindings {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return cfg, fmt.Errorf("binding flag --%s: %w", name, err)
				}
			}
		}
	}

	out := cfg
	if v.IsSet(KeyBackendURL) {
		out.Backend.BaseURL = v.GetString(KeyBackendURL)
	}
	if v.IsSet(KeyBackendTimeout) {
		out.Backend.Timeout = v.GetDuration(KeyBackendTimeout)
	}
	if v.IsSet(KeySearchDebounce) {
		out.UI.SearchDebounce = v.GetDuration(KeySearchDebounce)
	}
	if v.IsSet(KeyLogLevel) {
		out.Logging.Level = v.GetString(KeyLogLevel)
	}
	return out, nil
}

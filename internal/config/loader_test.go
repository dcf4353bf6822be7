package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to write a raw YAML config file
func writeConfigFile(t *testing.T, dir, content string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0755))
	path := filepath.Join(dir, configFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// isolatePaths points both config layers into tempDir for the duration of a test.
func isolatePaths(t *testing.T, tempDir string) {
	t.Helper()
	originalGetUserConfigPath := getUserConfigPath
	originalGetProjectConfigPath := getProjectConfigPath
	t.Cleanup(func() {
		getUserConfigPath = originalGetUserConfigPath
		getProjectConfigPath = originalGetProjectConfigPath
	})

	getUserConfigPath = func() (string, error) {
		return filepath.Join(tempDir, userConfigDir, configFileName), nil
	}
	getProjectConfigPath = func() (string, error) {
		return filepath.Join(tempDir, "project", projectConfigDir, configFileName), nil
	}
}

func TestLoadConfig_DefaultOnly(t *testing.T) {
	isolatePaths(t, t.TempDir())

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, GetDefaultConfig(), loaded)
	assert.Equal(t, DefaultBackendURL, loaded.Backend.BaseURL)
	assert.Zero(t, loaded.Backend.Timeout, "no request timeout by default")
	assert.True(t, loaded.UI.DeletesNeedConfirmation())
}

func TestLoadConfig_UserOverride(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	writeConfigFile(t, filepath.Join(tempDir, userConfigDir), `
backend:
  baseURL: http://crm.internal:8080
ui:
  searchDebounce: 150ms
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://crm.internal:8080", loaded.Backend.BaseURL)
	assert.Equal(t, 150*time.Millisecond, loaded.UI.SearchDebounce)
	// untouched values keep their defaults
	assert.Equal(t, 3*time.Second, loaded.UI.StatusMessageDuration)
	assert.Equal(t, "info", loaded.Logging.Level)
}

func TestLoadConfig_ProjectOverridesUser(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	writeConfigFile(t, filepath.Join(tempDir, userConfigDir), `
backend:
  baseURL: http://user.example:1
logging:
  level: debug
`)
	writeConfigFile(t, filepath.Join(tempDir, "project", projectConfigDir), `
backend:
  baseURL: http://project.example:2
ui:
  confirmDeletes: false
`)

	loaded, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "http://project.example:2", loaded.Backend.BaseURL)
	assert.Equal(t, "debug", loaded.Logging.Level, "user layer survives where project is silent")
	assert.False(t, loaded.UI.DeletesNeedConfirmation())
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	tempDir := t.TempDir()
	isolatePaths(t, tempDir)

	writeConfigFile(t, filepath.Join(tempDir, userConfigDir), "backend: [unterminated")

	_, err := LoadConfig()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error loading user config")
}

func TestLoadConfigFromPath(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, dir, `
backend:
  timeout: 10s
`)

	loaded, err := LoadConfigFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, 10*time.Second, loaded.Backend.Timeout)
	assert.Equal(t, DefaultBackendURL, loaded.Backend.BaseURL)

	_, err = LoadConfigFromPath(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*CrmConfig)
		wantErr string
	}{
		{name: "defaults are valid", mutate: func(*CrmConfig) {}},
		{name: "empty url", mutate: func(c *CrmConfig) { c.Backend.BaseURL = "" }, wantErr: "must be set"},
		{name: "bad scheme", mutate: func(c *CrmConfig) { c.Backend.BaseURL = "ftp://x" }, wantErr: "http or https"},
		{name: "no host", mutate: func(c *CrmConfig) { c.Backend.BaseURL = "http://" }, wantErr: "include a host"},
		{name: "negative timeout", mutate: func(c *CrmConfig) { c.Backend.Timeout = -time.Second }, wantErr: "timeout"},
		{name: "negative debounce", mutate: func(c *CrmConfig) { c.UI.SearchDebounce = -time.Second }, wantErr: "searchDebounce"},
		{name: "unknown level", mutate: func(c *CrmConfig) { c.Logging.Level = "loud" }, wantErr: "logging.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetDefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestApplyOverrides(t *testing.T) {
	t.Run("environment overrides file values", func(t *testing.T) {
		t.Setenv("CRMCTL_BACKEND_URL", "http://env.example:9000")
		t.Setenv("CRMCTL_BACKEND_TIMEOUT", "4s")

		out, err := ApplyOverrides(GetDefaultConfig(), nil)
		require.NoError(t, err)
		assert.Equal(t, "http://env.example:9000", out.Backend.BaseURL)
		assert.Equal(t, 4*time.Second, out.Backend.Timeout)
	})

	t.Run("explicit flag beats environment", func(t *testing.T) {
		t.Setenv("CRMCTL_BACKEND_URL", "http://env.example:9000")

		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("backend-url", "", "")
		require.NoError(t, flags.Parse([]string{"--backend-url", "http://flag.example:1"}))

		out, err := ApplyOverrides(GetDefaultConfig(), flags)
		require.NoError(t, err)
		assert.Equal(t, "http://flag.example:1", out.Backend.BaseURL)
	})

	t.Run("unset flag keeps file value", func(t *testing.T) {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.String("backend-url", "http://ignored.example", "")
		require.NoError(t, flags.Parse(nil))

		in := GetDefaultConfig()
		in.Backend.BaseURL = "http://file.example"
		out, err := ApplyOverrides(in, flags)
		require.NoError(t, err)
		assert.Equal(t, "http://file.example", out.Backend.BaseURL)
	})
}

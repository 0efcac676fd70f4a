package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	svc := NewConfigServiceAt(filepath.Join(t.TempDir(), "nope", "config.toml"))

	cfg, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.HTTP.Timeout.Duration)
	assert.True(t, cfg.UISettings.ShowImages)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	path := filepath.Join(t.TempDir(), "pupfinder", "config.toml")
	svc := NewConfigServiceAt(path)

	cfg := DefaultConfig()
	cfg.BaseURL = "http://localhost:9999"
	cfg.HTTP.Timeout = Duration{5 * time.Second}
	cfg.Login = LoginPrefill{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, svc.Save(cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "5s")
	assert.Contains(t, string(data), "[login]")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[login]\nname = \"Ada\"\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "Ada", cfg.Login.Name)
	assert.Equal(t, DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, 2, cfg.HTTP.Burst)
	assert.Equal(t, 5.0, cfg.HTTP.RequestsPerSecond)
}

func TestZeroRequestsPerSecondDisablesLimit(t *testing.T) {
	t.Setenv(EnvBaseURL, "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[http]\nrequests_per_second = 0.0\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Zero(t, cfg.HTTP.RequestsPerSecond)

	require.NoError(t, os.WriteFile(path, []byte("[http]\nrequests_per_second = -1.0\n"), 0644))
	cfg, err = NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, 5.0, cfg.HTTP.RequestsPerSecond)
}

func TestInvalidDurationIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[http]\ntimeout = \"soon\"\n"), 0644))

	_, err := NewConfigServiceAt(path).Load()
	require.Error(t, err)
}

func TestEnvOverridesBaseURL(t *testing.T) {
	t.Setenv(EnvBaseURL, "http://override.test")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("base_url = \"http://file.test\"\n"), 0644))

	cfg, err := NewConfigServiceAt(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "http://override.test", cfg.BaseURL)
}

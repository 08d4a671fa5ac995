package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`server:
  addr: ":9090"
  mode: debug
  allow_origins: ["https://packs.example.com"]
log:
  mode: prod
presets:
  file: /etc/packsim/presets.yaml
  watch: true
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Server.Mode)
	assert.Equal(t, []string{"https://packs.example.com"}, cfg.Server.AllowOrigins)
	assert.Equal(t, "prod", cfg.Log.Mode)
	assert.Equal(t, "/etc/packsim/presets.yaml", cfg.Presets.File)
	assert.True(t, cfg.Presets.Watch)
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packsim.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  mode: prod\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "release", cfg.Server.Mode)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv(EnvAddr, "127.0.0.1:7000")
	t.Setenv(EnvLogMode, "prod")
	t.Setenv(EnvPresetsFile, "extra.yaml")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, "prod", cfg.Log.Mode)
	assert.Equal(t, "extra.yaml", cfg.Presets.File)
}

func TestValidateCollectsAll(t *testing.T) {
	cfg := Config{
		Server:  ServerConfig{Addr: " ", Mode: "fast"},
		Log:     LogConfig{Mode: "loud"},
		Presets: PresetsConfig{Watch: true},
	}
	err := cfg.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	for _, frag := range []string{"server.addr", "server.mode", "log.mode", "presets.watch"} {
		assert.Contains(t, err.Error(), frag)
	}
}

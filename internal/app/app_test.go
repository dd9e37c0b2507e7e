package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"cactus/internal/app"
	"cactus/internal/store"
)

func TestLoadConfig_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := app.LoadConfig(filepath.Join(t.TempDir(), "cactus.yaml"))
	require.NoError(t, err)
	assert.Equal(t, app.DefaultConfig(), cfg)
}

func TestLoadConfig_OverlaysYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cactus.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
codec: yaml
verbose: true
store:
  filename: cache.yaml
  auto_save: false
`), 0o600))

	cfg, err := app.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Codec)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, "cache.yaml", cfg.Store.Filename)
	assert.False(t, cfg.Store.AutoSave)
	assert.True(t, cfg.Store.AutoLoad, "unset fields keep their defaults")
	assert.Equal(t, store.DefaultName, cfg.Store.EncryptionSalt)
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cactus.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store: [unclosed"), 0o600))

	_, err := app.LoadConfig(path)
	require.Error(t, err)
}

func TestApplyEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(app.EnvDir, dir)
	t.Setenv(app.EnvFile, "env.json")
	t.Setenv(app.EnvSalt, "pepper")
	t.Setenv(app.EnvKey, "hunter2")

	cfg := app.DefaultConfig()
	app.ApplyEnvOverrides(&cfg)

	assert.Equal(t, dir, cfg.Store.BaseDir)
	assert.Equal(t, "env.json", cfg.Store.Filename)
	assert.Equal(t, "pepper", cfg.Store.EncryptionSalt)
	assert.Equal(t, "hunter2", cfg.Key)
}

func TestOpen_EncryptedYAMLStore(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Codec = "yaml"
	cfg.Store.BaseDir = t.TempDir()
	cfg.Store.EnableEncryption = true
	cfg.Key = "k"

	s, err := app.Open(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, s.Store("n", 5))
	require.NoError(t, s.Close())

	r, err := app.Open(cfg, nil)
	require.NoError(t, err)
	n, err := store.Get[int](r, "n")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestOpen_UnknownCodec(t *testing.T) {
	cfg := app.DefaultConfig()
	cfg.Codec = "xml"
	cfg.Store.BaseDir = t.TempDir()

	_, err := app.Open(cfg, nil)
	require.Error(t, err)
}

func TestNewLogger(t *testing.T) {
	log, err := app.NewLogger(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel), "verbose logger should enable debug")

	log, err = app.NewLogger(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel), "quiet logger should drop info")
}

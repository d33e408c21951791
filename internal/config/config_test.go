package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/controls/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))
	return dir
}

func TestNewDefaults(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, "/metrics", cfg.Server.MetricsPath)
	assert.Equal(t, "/live", cfg.Server.WSPath)
	assert.Equal(t, DefaultTitle, cfg.Gallery.Title)
	assert.Equal(t, "dist", cfg.Publish.Dir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "localhost:3000", cfg.Address())
	assert.Equal(t, "http://localhost:3000", cfg.URL())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, New(), cfg)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), ConfigFileName))

	var ce *errors.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "C101", ce.Code)
}

func TestLoadMergesWithDefaults(t *testing.T) {
	dir := writeConfig(t, `
server:
  port: 8080
gallery:
  title: Showcase
publish:
  s3:
    bucket: site
    prefix: controls/
    region: eu-west-1
log:
  level: DEBUG
`)

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, DefaultHost, cfg.Server.Host)
	assert.Equal(t, "/live", cfg.Server.WSPath)
	assert.Equal(t, "Showcase", cfg.Gallery.Title)
	assert.Equal(t, "site", cfg.Publish.S3.Bucket)
	assert.Equal(t, "controls/", cfg.Publish.S3.Prefix)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), cfg.Path())
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: [1\n")

	_, err := Load(dir)

	var ce *errors.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "C102", ce.Code)
	require.NotNil(t, ce.Location)
	assert.Equal(t, filepath.Join(dir, ConfigFileName), ce.Location.File)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, "server.port: must be at most 65535"},
		{"negative buffer", func(c *Config) { c.Server.ReadBuffer = -1 }, "server.read_buffer: must be at least 0"},
		{"relative ws path", func(c *Config) { c.Server.WSPath = "live" }, `server.ws_path: must start with "/"`},
		{"bad level", func(c *Config) { c.Log.Level = "trace" }, "log.level: must be one of debug info warn error"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format: must be one of text json"},
		{"bucket without region", func(c *Config) { c.Publish.S3.Bucket = "b" }, "publish.s3.region: is required"},
		{"bad endpoint", func(c *Config) { c.Publish.S3.Endpoint = "not a url" }, "publish.s3.endpoint: must be a URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 99999\n")

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := New()
	cfg.Server.Port = 4000
	cfg.Publish.S3 = S3Config{Bucket: "b", Region: "us-east-1"}
	require.NoError(t, cfg.SaveTo(path))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4000, loaded.Server.Port)
	assert.Equal(t, "b", loaded.Publish.S3.Bucket)

	require.Error(t, New().Save(), "no path to save to")
}

func TestFindProjectRoot(t *testing.T) {
	root := writeConfig(t, "gallery:\n  title: x\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := FindProjectRoot(nested)
	require.NoError(t, err)
	assert.Equal(t, root, found)
	assert.True(t, Exists(root))
	assert.False(t, Exists(nested))
}

package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vango-dev/controls/internal/config"
	"github.com/vango-dev/controls/internal/errors"
	"github.com/vango-dev/controls/pkg/assets"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&app{})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestVersionShort(t *testing.T) {
	out, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "dev\n", out)
}

func TestRenderToFile(t *testing.T) {
	cfgPath := writeConfig(t, "gallery:\n  title: Test Controls\n")
	out := filepath.Join(t.TempDir(), "gallery.html")

	_, err := execute(t, "render", "--config", cfgPath, "-o", out)
	require.NoError(t, err)

	page, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(page), "<title>Test Controls</title>")
	assert.Contains(t, string(page), `role="button"`)
}

func TestRenderToStdout(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: warn\n")

	out, err := execute(t, "render", "--config", cfgPath, "--title", "Flagged")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Flagged</title>")
}

func TestPublishToDir(t *testing.T) {
	cfgPath := writeConfig(t, "log:\n  level: error\n")
	dir := t.TempDir()

	_, err := execute(t, "publish", "--config", cfgPath, "--dir", dir)
	require.NoError(t, err)

	f, err := os.Open(filepath.Join(dir, "manifest.json"))
	require.NoError(t, err)
	defer f.Close()
	manifest, err := assets.Load(f)
	require.NoError(t, err)
	css := manifest.Resolve("controls.css")
	assert.NotEqual(t, "controls.css", css)
	assert.FileExists(t, filepath.Join(dir, css))

	index, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(index), "vango-btn")
	assert.Contains(t, string(index), `href="`+css+`"`)
}

func TestInvalidLogLevel(t *testing.T) {
	cfgPath := writeConfig(t, "")

	_, err := execute(t, "render", "--config", cfgPath, "--log-level", "loud")
	require.Error(t, err)
	var ce *errors.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "C103", ce.Code)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestInvalidConfigFile(t *testing.T) {
	cfgPath := writeConfig(t, "server:\n  port: [1\n")

	_, err := execute(t, "render", "--config", cfgPath)
	var ce *errors.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "C102", ce.Code)
}

func TestNewPublisher(t *testing.T) {
	a := &app{cfg: config.New()}

	a.cfg.Publish.Dir = ""
	_, _, err := newPublisher(a)
	var ce *errors.Error
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, "P401", ce.Code)

	a.cfg.Publish.Dir = t.TempDir()
	_, target, err := newPublisher(a)
	require.NoError(t, err)
	assert.Equal(t, a.cfg.Publish.Dir, target)

	a.cfg.Publish.S3 = config.S3Config{Bucket: "site", Prefix: "/controls/", Region: "eu-west-1"}
	_, target, err = newPublisher(a)
	require.NoError(t, err)
	assert.Equal(t, "s3://site/controls", target)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "warn", "json")
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}

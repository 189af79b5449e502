package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "loopback", cfg.Server.Bind)
	assert.Equal(t, ".", cfg.Server.StaticDir)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 8000, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadValidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	yaml := `
server:
  port: 9090
  bind: lan
  staticDir: /srv/cineco/web
openai:
  apiKey: sk-test
  model: gpt-4o
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "lan", cfg.Server.Bind)
	assert.Equal(t, "/srv/cineco/web", cfg.Server.StaticDir)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.OpenAI.Model)
	assert.Equal(t, "debug", cfg.Logging.Level)
	// Unset fields fall back to defaults.
	assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAI.BaseURL)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not a map"), 0o600))

	_, err := Load(path)
	require.Error(t, err)
	var cerr *ConfigError
	assert.ErrorAs(t, err, &cerr)
}

func TestExpandEnvVarsInAPIKeys(t *testing.T) {
	t.Setenv("CINECO_TEST_KEY", "secret-value")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
openai:
  apiKey: ${CINECO_TEST_KEY}
youtube:
  apiKey: ${CINECO_UNSET_VAR}
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "secret-value", cfg.OpenAI.APIKey)
	// Unset variables are left unchanged.
	assert.Equal(t, "${CINECO_UNSET_VAR}", cfg.YouTube.APIKey)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CINECO_PORT", "7777")
	t.Setenv("CINECO_LOG_LEVEL", "WARN")
	t.Setenv("OPENAI_API_KEY", "sk-env")
	t.Setenv("YOUTUBE_API_KEY", "yt-env")

	cfg, err := Load("/nonexistent/path/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "sk-env", cfg.OpenAI.APIKey)
	assert.Equal(t, "yt-env", cfg.YouTube.APIKey)
}

func TestConfigFileKeyWinsOverEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-env")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("openai:\n  apiKey: sk-file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "sk-file", cfg.OpenAI.APIKey)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	cfg.OpenAI.APIKey = "sk-test"
	assert.Empty(t, Validate(&cfg))

	cfg.Server.Port = 99999
	cfg.Server.Bind = "everywhere"
	cfg.OpenAI.APIKey = ""
	cfg.Logging.Level = "verbose"

	issues := Validate(&cfg)
	require.Len(t, issues, 4)
	paths := make([]string, len(issues))
	for i, issue := range issues {
		paths[i] = issue.Path
	}
	assert.Contains(t, paths, "server.port")
	assert.Contains(t, paths, "server.bind")
	assert.Contains(t, paths, "openai.apiKey")
	assert.Contains(t, paths, "logging.level")
}

func TestResolvePathsHomeOverride(t *testing.T) {
	t.Setenv("CINECO_HOME", "/tmp/cineco-test")
	p, err := ResolvePaths()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/cineco-test", p.Base)
	assert.Equal(t, filepath.Join("/tmp/cineco-test", "config.yaml"), p.Config)
}

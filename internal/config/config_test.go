package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	home := isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".greenspot", "greenspot.db"), cfg.DB.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Log.UseCases)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr())
}

func TestLoad_DefaultFileIsRead(t *testing.T) {
	home := isolateHome(t)
	writeFile(t, filepath.Join(home, ".greenspot", "config.yaml"), `
log:
  level: debug
  use_cases: true
http:
  port: 9191
`)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.UseCases)
	assert.Equal(t, 9191, cfg.HTTP.Port)
	assert.Equal(t, "text", cfg.Log.Format, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, "db:\n  path: /tmp/from-file.db\nlog:\n  format: json\n")

	t.Setenv("GREENSPOT_DB_PATH", "/tmp/from-env.db")
	t.Setenv("GREENSPOT_LOG_USE_CASES", "true")
	t.Setenv("GREENSPOT_HTTP_PORT", "7000")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DB.Path)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Log.UseCases)
	assert.Equal(t, 7000, cfg.HTTP.Port)
}

func TestLoad_ExplicitMissingFileFails(t *testing.T) {
	isolateHome(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoad_MalformedYAML(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "log: [unterminated\n")

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config file")
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	isolateHome(t)
	t.Setenv("GREENSPOT_LOG_LEVEL", "loud")
	t.Setenv("GREENSPOT_HTTP_PORT", "70000")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
	assert.Contains(t, err.Error(), "http.port")
}

func TestValidate_NormalizesCase(t *testing.T) {
	cfg := Default()
	cfg.Log.Level = "INFO"
	cfg.Log.Format = "JSON"
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "db.path", envKey("GREENSPOT_DB_PATH"))
	assert.Equal(t, "log.use_cases", envKey("GREENSPOT_LOG_USE_CASES"))
	assert.Equal(t, "debug", envKey("GREENSPOT_DEBUG"))
}

func TestLoad_LLMSection(t *testing.T) {
	isolateHome(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.False(t, cfg.LLM.Enabled)
	assert.Equal(t, "llama3.2", cfg.LLM.Model)

	t.Setenv("GREENSPOT_LLM_ENABLED", "true")
	t.Setenv("GREENSPOT_LLM_MODEL", "qwen2.5")
	t.Setenv("GREENSPOT_LLM_TIMEOUT_MS", "2500")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.True(t, cfg.LLM.Enabled)
	assert.Equal(t, "qwen2.5", cfg.LLM.Model)
	assert.Equal(t, 2500, cfg.LLM.TimeoutMs)
	assert.Equal(t, "http://localhost:11434", cfg.LLM.Endpoint)
}

func TestValidate_LLM(t *testing.T) {
	cfg := Default()
	cfg.LLM.Enabled = true
	cfg.LLM.Model = ""
	cfg.LLM.TimeoutMs = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.model")
	assert.Contains(t, err.Error(), "llm.timeout_ms")

	off := Default()
	off.LLM.Model = ""
	assert.NoError(t, off.Validate(), "settings are only checked when enabled")

	neg := Default()
	neg.LLM.MaxRetries = -1
	assert.ErrorContains(t, neg.Validate(), "llm.max_retries")
}

package llm

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_MergesFileOverDefaults(t *testing.T) {
	path := writeConfig(t, `
provider: anthropic
anthropic:
  api_key: sk-ant-file
temperature: 0.2
timeout: 30s
`)
	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "sk-ant-file", cfg.Anthropic.APIKey)
	assert.Equal(t, "claude-haiku", cfg.Anthropic.Model, "unset keys keep defaults")
	assert.InDelta(t, 0.2, cfg.Temperature, 1e-9)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.Retry.MaxAttempts)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "provider: gemini\ngemini:\n  api_key: from-file\n")
	t.Setenv("NOTEQUIZ_GEMINI_API_KEY", "from-env")
	t.Setenv("NOTEQUIZ_LLM_RETRY_ATTEMPTS", "3")

	cfg, err := LoadConfig(path, true)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Gemini.APIKey)
	assert.Equal(t, 3, cfg.Retry.MaxAttempts)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.yaml")

	cfg, err := LoadConfig(missing, false)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig().Provider, cfg.Provider)

	_, err = LoadConfig(missing, true)
	assert.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	path := writeConfig(t, "provider: [unclosed")
	_, err := LoadConfig(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestApplyEnv_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("NOTEQUIZ_LLM_RETRY_ATTEMPTS", "zero")
	t.Setenv("NOTEQUIZ_LLM_TIMEOUT", "soon")

	cfg := ApplyEnv(DefaultConfig())
	assert.Equal(t, 1, cfg.Retry.MaxAttempts)
	assert.Equal(t, 60*time.Second, cfg.Timeout)
}

func TestDefaultConfigPath_UsesXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	path, err := DefaultConfigPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "notequiz", "config.yaml"), path)
}

func TestDiscoverConfig(t *testing.T) {
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY"} {
		t.Setenv(k, "")
	}

	_, ok := DiscoverConfig()
	assert.False(t, ok)

	t.Setenv("OPENAI_API_KEY", "sk-openai")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	cfg, ok := DiscoverConfig()
	require.True(t, ok)
	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-openai", cfg.OpenAI.APIKey)
}

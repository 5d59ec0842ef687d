package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearLLMEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "OPENAI_API_KEY", "ANTHROPIC_API_KEY", "OPENROUTER_API_KEY", "HF_TOKEN", "TELEGRAM_BOT_TOKEN"} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearLLMEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 3, cfg.Session.MaxLives)
	assert.Equal(t, "dutch", cfg.Session.Language)
	assert.Equal(t, 10*time.Second, cfg.Speech.Timeout)
	assert.Equal(t, 2*time.Hour, cfg.Telegram.IdleTimeout)
	assert.NoError(t, cfg.Validate())
	assert.ErrorIs(t, cfg.ValidateBot(), ErrMissingTelegramToken)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearLLMEnv(t)
	t.Chdir(t.TempDir())
	t.Setenv("TYPORAX_SESSION_MAX_LIVES", "5")
	t.Setenv("TYPORAX_LLM_PROVIDER", "openrouter")
	t.Setenv("TYPORAX_LLM_OPENROUTER_API_KEY", "or-key")
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Session.MaxLives)
	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.NoError(t, cfg.ValidateBot())

	lc, ok := cfg.LLM()
	require.True(t, ok)
	assert.Equal(t, "openrouter", lc.Provider)
	assert.Equal(t, "or-key", lc.OpenRouter.APIKey)
	assert.NotEmpty(t, lc.OpenRouter.Model)
}

func TestLoad_File(t *testing.T) {
	clearLLMEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "typorax.yaml")
	content := []byte(`
env: production
db:
  dsn: postgres://localhost/typorax
session:
  language: english
  strict_types: true
llm:
  provider: huggingface
  huggingface:
    api_key: hf-key
`)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "english", cfg.Session.Language)
	assert.True(t, cfg.Session.StrictTypes)

	assert.Equal(t, "postgres://localhost/typorax", cfg.DSN())

	lc, ok := cfg.LLM()
	require.True(t, ok)
	assert.Equal(t, "hf-key", lc.HuggingFace.APIKey)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLLM_DiscoversWhenUnset(t *testing.T) {
	clearLLMEnv(t)
	t.Setenv("HF_TOKEN", "hf-discovered")

	cfg := &Config{}
	lc, ok := cfg.LLM()
	require.True(t, ok)
	assert.Equal(t, "huggingface", lc.Provider)
	assert.Equal(t, "hf-discovered", lc.HuggingFace.APIKey)
}

func TestValidate_MaxLives(t *testing.T) {
	cfg := &Config{}
	assert.Error(t, cfg.Validate())
}

func TestValidate_BlankSpeechPlayer(t *testing.T) {
	cfg := &Config{Session: SessionConfig{MaxLives: 3}}
	cfg.Speech.Player = "   "
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "speech.player")

	cfg.Speech.Player = ""
	assert.NoError(t, cfg.Validate(), "unset player auto-detects")

	cfg.Speech.Player = "mpv --no-video"
	assert.NoError(t, cfg.Validate())
}

func TestValidateBot_NegativeIdleTimeout(t *testing.T) {
	cfg := &Config{Session: SessionConfig{MaxLives: 3}}
	cfg.Telegram.Token = "123:abc"
	assert.NoError(t, cfg.ValidateBot())

	cfg.Telegram.IdleTimeout = -time.Minute
	assert.Error(t, cfg.ValidateBot())
}

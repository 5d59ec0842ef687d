package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/Yusuprozimemet/TyporaX-AI/internal/llm"
)

// ErrMissingTelegramToken is returned by ValidateBot when no bot token is set.
var ErrMissingTelegramToken = errors.New("missing telegram token (TYPORAX_TELEGRAM_TOKEN)")

const envPrefix = "TYPORAX"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env      string         `mapstructure:"env"` // local, dev or production
	DB       DBConfig       `mapstructure:"db"`
	Log      LogConfig      `mapstructure:"log"`
	LLMConf  LLMConfig      `mapstructure:"llm"`
	Session  SessionConfig  `mapstructure:"session"`
	Speech   SpeechConfig   `mapstructure:"speech"`
	Telegram TelegramConfig `mapstructure:"telegram"`
}

// DBConfig selects the event store. DSN wins over Path when both are set.
type DBConfig struct {
	Path string `mapstructure:"path"`
	DSN  string `mapstructure:"dsn"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LLMConfig mirrors llm.Config in file/env form.
type LLMConfig struct {
	Provider    string         `mapstructure:"provider"`
	Timeout     time.Duration  `mapstructure:"timeout"`
	Anthropic   ProviderConfig `mapstructure:"anthropic"`
	OpenAI      ProviderConfig `mapstructure:"openai"`
	Gemini      ProviderConfig `mapstructure:"gemini"`
	OpenRouter  ProviderConfig `mapstructure:"openrouter"`
	HuggingFace ProviderConfig `mapstructure:"huggingface"`
}

// ProviderConfig is the common shape of one provider section.
type ProviderConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

// SessionConfig holds practice defaults.
type SessionConfig struct {
	MaxLives    int    `mapstructure:"max_lives"`
	StrictTypes bool   `mapstructure:"strict_types"`
	Language    string `mapstructure:"language"`
	Topic       string `mapstructure:"topic"`
}

// SpeechConfig holds text-to-speech settings.
type SpeechConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	CacheDir string        `mapstructure:"cache_dir"`
	Player   string        `mapstructure:"player"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// TelegramConfig holds bot settings.
type TelegramConfig struct {
	Token string `mapstructure:"token"`
	Debug bool   `mapstructure:"debug"`

	// IdleTimeout evicts a chat's session after this long without a
	// message. Zero keeps sessions forever.
	IdleTimeout time.Duration `mapstructure:"idle_timeout"`
}

// Load reads configuration from an optional .env file, an optional
// typorax.yaml and TYPORAX_* environment variables. An explicit path
// must exist.
func Load(path string) (*Config, error) {
	// .env is optional; real environment variables take precedence.
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Upstream key names without the prefix.
	_ = v.BindEnv("llm.huggingface.api_key", envPrefix+"_LLM_HUGGINGFACE_API_KEY", "HF_TOKEN")
	_ = v.BindEnv("telegram.token", envPrefix+"_TELEGRAM_TOKEN", "TELEGRAM_BOT_TOKEN")
	_ = v.BindEnv("db.path", envPrefix+"_DB_PATH", envPrefix+"_DB")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName("typorax")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "typorax"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")

	v.SetDefault("db.path", "")
	v.SetDefault("db.dsn", "")

	v.SetDefault("log.level", "")

	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", "")
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", "")
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", "")
	v.SetDefault("llm.huggingface.model", d.HuggingFace.Model)
	v.SetDefault("llm.huggingface.base_url", "")

	v.SetDefault("session.max_lives", 3)
	v.SetDefault("session.strict_types", false)
	v.SetDefault("session.language", "dutch")
	v.SetDefault("session.topic", "healthcare")

	v.SetDefault("speech.enabled", false)
	v.SetDefault("speech.cache_dir", "")
	v.SetDefault("speech.player", "")
	v.SetDefault("speech.timeout", 10*time.Second)

	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.debug", false)
	v.SetDefault("telegram.idle_timeout", 2*time.Hour)
}

// LLM converts the llm section to an llm.Config. When no provider is
// configured the standard API key variables are checked; ok is false if
// nothing usable was found.
func (c *Config) LLM() (cfg llm.Config, ok bool) {
	l := c.LLMConf
	if l.Provider == "" {
		cfg, ok = llm.DiscoverConfig()
		if ok && l.Timeout > 0 {
			cfg.Timeout = l.Timeout
		}
		return cfg, ok
	}

	cfg = llm.DefaultConfig()
	cfg.Provider = l.Provider
	if l.Timeout > 0 {
		cfg.Timeout = l.Timeout
	}
	cfg.Anthropic.APIKey = l.Anthropic.APIKey
	cfg.Anthropic.Model = orDefault(l.Anthropic.Model, cfg.Anthropic.Model)
	cfg.OpenAI.APIKey = l.OpenAI.APIKey
	cfg.OpenAI.Model = orDefault(l.OpenAI.Model, cfg.OpenAI.Model)
	cfg.OpenAI.BaseURL = l.OpenAI.BaseURL
	cfg.Gemini.APIKey = l.Gemini.APIKey
	cfg.Gemini.Model = orDefault(l.Gemini.Model, cfg.Gemini.Model)
	cfg.OpenRouter.APIKey = l.OpenRouter.APIKey
	cfg.OpenRouter.Model = orDefault(l.OpenRouter.Model, cfg.OpenRouter.Model)
	cfg.OpenRouter.BaseURL = l.OpenRouter.BaseURL
	cfg.HuggingFace.APIKey = l.HuggingFace.APIKey
	cfg.HuggingFace.Model = orDefault(l.HuggingFace.Model, cfg.HuggingFace.Model)
	cfg.HuggingFace.BaseURL = l.HuggingFace.BaseURL
	return cfg, true
}

// DSN returns the store connection string: the explicit DSN or the
// configured sqlite path. Empty means the default database file.
func (c *Config) DSN() string {
	if c.DB.DSN != "" {
		return c.DB.DSN
	}
	return c.DB.Path
}

// Validate checks values that every command needs.
func (c *Config) Validate() error {
	var errs []error
	if c.Session.MaxLives < 1 {
		errs = append(errs, fmt.Errorf("session.max_lives must be at least 1, got %d", c.Session.MaxLives))
	}
	if c.Speech.Timeout < 0 {
		errs = append(errs, fmt.Errorf("speech.timeout must not be negative"))
	}
	if c.Speech.Player != "" && strings.TrimSpace(c.Speech.Player) == "" {
		errs = append(errs, fmt.Errorf("speech.player is blank; unset it to auto-detect a player"))
	}
	return errors.Join(errs...)
}

// ValidateBot additionally checks the Telegram settings.
func (c *Config) ValidateBot() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.Telegram.Token == "" {
		return ErrMissingTelegramToken
	}
	if c.Telegram.IdleTimeout < 0 {
		return fmt.Errorf("telegram.idle_timeout must not be negative")
	}
	return nil
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BackendSQLite = "sqlite"
	BackendCSV    = "csv"
)

type Config struct {
	DBPath  string        `mapstructure:"db_path"`
	History HistoryConfig `mapstructure:"history"`
	Booster BoosterConfig `mapstructure:"booster"`
	OpenAI  OpenAIConfig  `mapstructure:"openai"`
	Claude  ClaudeConfig  `mapstructure:"claude"`
	Gemini  GeminiConfig  `mapstructure:"gemini"`
	Log     LogConfig     `mapstructure:"log"`

	// File is the config file that was read, empty when none existed.
	File string `mapstructure:"-"`
}

type HistoryConfig struct {
	Backend string `mapstructure:"backend"`
	CSVPath string `mapstructure:"csv_path"`
}

type BoosterConfig struct {
	Provider string        `mapstructure:"provider"` // "openai", "claude", "gemini", "none", or "" (auto-detect)
	Timeout  time.Duration `mapstructure:"timeout"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type ClaudeConfig struct {
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	MaxTokens int64  `mapstructure:"max_tokens"`
}

type GeminiConfig struct {
	APIKey string `mapstructure:"api_key"`
	Model  string `mapstructure:"model"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// providerKeyEnv maps the providers' conventional key variables onto
// config keys. REBOOTME_* variables still win when both are set.
var providerKeyEnv = map[string]string{
	"openai.api_key": "OPENAI_API_KEY",
	"claude.api_key": "ANTHROPIC_API_KEY",
	"gemini.api_key": "GOOGLE_API_KEY",
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetDefault("db_path", "")
	v.SetDefault("history.backend", BackendSQLite)
	v.SetDefault("history.csv_path", "")
	v.SetDefault("booster.provider", "")
	v.SetDefault("booster.timeout", 10*time.Second)
	v.SetDefault("openai.api_key", "")
	v.SetDefault("openai.model", "gpt-4")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("claude.api_key", "")
	v.SetDefault("claude.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("claude.max_tokens", 256)
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("log.level", "warn")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("rebootme")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads defaults, then the YAML file at path (a missing file is
// fine), then environment variables.
func Load(path string) (*Config, error) {
	v := newViper()

	file := ""
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		} else {
			file = path
		}
	}

	for key, env := range providerKeyEnv {
		if v.GetString(key) == "" {
			if val := os.Getenv(env); val != "" {
				v.Set(key, val)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.File = file
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	c.History.Backend = strings.ToLower(strings.TrimSpace(c.History.Backend))
	switch c.History.Backend {
	case BackendSQLite, BackendCSV:
	default:
		return fmt.Errorf("unsupported history backend %q (use sqlite or csv)", c.History.Backend)
	}
	if c.Booster.Timeout < 0 {
		return fmt.Errorf("booster timeout must be >= 0")
	}
	return nil
}

// WriteDefaults writes a config file holding the default values for the
// non-secret keys. It refuses to overwrite an existing file.
func WriteDefaults(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}
	v := viper.New()
	v.SetConfigType("yaml")
	v.Set("history.backend", BackendSQLite)
	v.Set("booster.provider", "")
	v.Set("booster.timeout", "10s")
	v.Set("openai.model", "gpt-4")
	v.Set("claude.model", "claude-sonnet-4-5-20250929")
	v.Set("gemini.model", "gemini-2.5-flash")
	v.Set("log.level", "warn")
	v.Set("log.format", "text")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func Mask(secret string) string {
	if secret == "" {
		return "(unset)"
	}
	if len(secret) <= 4 {
		return "****"
	}
	return "****" + secret[len(secret)-4:]
}

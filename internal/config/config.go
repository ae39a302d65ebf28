// Package config loads folioshell settings from defaults, an optional YAML file, an optional
// .env file and FOLIO_* environment variables, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"folioshell/internal/logger"
)

// EnvPrefix is the prefix of every environment variable folioshell reads.
const EnvPrefix = "FOLIO"

// Config holds the settings of one terminal session.
type Config struct {
	Prompt          string
	HistorySize     int
	TypingEnabled   bool
	TypingInterval  time.Duration
	ScrollThreshold int
	SubmitCooldown  time.Duration
	DataURL         string
	DataTimeout     time.Duration
	GitHubUser      string
	GitHubAPI       string
	Theme           string
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Prompt:          "guest@portfolio:~$",
		HistorySize:     50,
		TypingEnabled:   true,
		TypingInterval:  30 * time.Millisecond,
		ScrollThreshold: 5,
		SubmitCooldown:  100 * time.Millisecond,
		DataTimeout:     10 * time.Second,
		GitHubAPI:       "https://api.github.com",
		Theme:           "default",
	}
}

// SetDefaults registers the built-in settings on v.
func SetDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("prompt", d.Prompt)
	v.SetDefault("history_size", d.HistorySize)
	v.SetDefault("typing.enabled", d.TypingEnabled)
	v.SetDefault("typing.interval", d.TypingInterval)
	v.SetDefault("scroll.threshold", d.ScrollThreshold)
	v.SetDefault("submit.cooldown", d.SubmitCooldown)
	v.SetDefault("data.url", d.DataURL)
	v.SetDefault("data.timeout", d.DataTimeout)
	v.SetDefault("github.user", d.GitHubUser)
	v.SetDefault("github.api", d.GitHubAPI)
	v.SetDefault("theme", d.Theme)
}

// Load reads configuration into the global viper instance, which is where cobra flags are bound.
func Load(path string) (*Config, error) {
	return LoadWith(viper.GetViper(), path)
}

// LoadWith reads configuration into v. An empty path searches for folio.yaml in the working
// directory and the user config directory; a missing file is not an error.
func LoadWith(v *viper.Viper, path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(dir + "/folioshell")
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		logger.Debug("Loaded config file", "path", v.ConfigFileUsed())
	}

	cfg := &Config{
		Prompt:          v.GetString("prompt"),
		HistorySize:     v.GetInt("history_size"),
		TypingEnabled:   v.GetBool("typing.enabled"),
		TypingInterval:  v.GetDuration("typing.interval"),
		ScrollThreshold: v.GetInt("scroll.threshold"),
		SubmitCooldown:  v.GetDuration("submit.cooldown"),
		DataURL:         v.GetString("data.url"),
		DataTimeout:     v.GetDuration("data.timeout"),
		GitHubUser:      v.GetString("github.user"),
		GitHubAPI:       v.GetString("github.api"),
		Theme:           v.GetString("theme"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the terminal cannot run with.
func (c *Config) Validate() error {
	if c.HistorySize <= 0 {
		return fmt.Errorf("history_size must be positive, got %d", c.HistorySize)
	}
	if c.TypingInterval < 0 {
		return fmt.Errorf("typing.interval must not be negative, got %s", c.TypingInterval)
	}
	if c.ScrollThreshold < 0 {
		return fmt.Errorf("scroll.threshold must not be negative, got %d", c.ScrollThreshold)
	}
	if c.SubmitCooldown < 0 {
		return fmt.Errorf("submit.cooldown must not be negative, got %s", c.SubmitCooldown)
	}
	return nil
}

// loadDotEnv exports the values of an optional .env file without overriding variables that
// are already set in the process environment.
func loadDotEnv(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("failed to parse .env file %s: %w", path, err)
	}
	logger.Debug("Loaded .env file", "path", path)
	return nil
}

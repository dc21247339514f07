package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the portfolio chat service
type Config struct {
	General    GeneralConfig    `mapstructure:"general"`
	Server     ServerConfig     `mapstructure:"server"`
	OpenRouter OpenRouterConfig `mapstructure:"openrouter"`
	Telemetry  TelemetryConfig  `mapstructure:"telemetry"`
}

// GeneralConfig contains general application settings
type GeneralConfig struct {
	Debug    bool   `mapstructure:"debug"`
	LogLevel string `mapstructure:"log_level"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Address      string   `mapstructure:"address"`
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// OpenRouterConfig contains the completion-service settings. The API key
// and model are usually supplied through OPENROUTER_API_KEY and
// OPENROUTER_MODEL rather than the config file.
type OpenRouterConfig struct {
	APIKey           string        `mapstructure:"api_key"`
	Model            string        `mapstructure:"model"`
	BaseURL          string        `mapstructure:"base_url"`
	Temperature      float64       `mapstructure:"temperature"`
	MaxTokens        int           `mapstructure:"max_tokens"`
	TopP             float64       `mapstructure:"top_p"`
	FrequencyPenalty float64       `mapstructure:"frequency_penalty"`
	PresencePenalty  float64       `mapstructure:"presence_penalty"`
	Timeout          time.Duration `mapstructure:"timeout"`
	Referer          string        `mapstructure:"referer"`
	Title            string        `mapstructure:"title"`
}

// Validate reports whether the completion service can be constructed.
// A missing credential is a request-time configuration error, not a
// startup crash.
func (o OpenRouterConfig) Validate() error {
	if o.APIKey == "" {
		return errors.New("OPENROUTER_API_KEY is not configured")
	}
	if o.Model == "" {
		return errors.New("openrouter model is not configured")
	}
	return nil
}

// TelemetryConfig contains monitoring settings
type TelemetryConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// LoadConfig reads configuration from an optional JSON file plus
// PORTFOLIO_* environment variables. The file is optional so the
// service can run from environment alone.
func LoadConfig(path string) *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.SetDefault("general.log_level", "info")
	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("server.allow_origins", []string{"*"})
	viper.SetDefault("openrouter.model", "x-ai/grok-code-fast-1")
	viper.SetDefault("openrouter.base_url", "https://openrouter.ai/api/v1/chat/completions")
	viper.SetDefault("openrouter.temperature", 0.7)
	viper.SetDefault("openrouter.max_tokens", 1000)
	viper.SetDefault("openrouter.top_p", 1.0)
	viper.SetDefault("openrouter.frequency_penalty", 0.0)
	viper.SetDefault("openrouter.presence_penalty", 0.0)
	viper.SetDefault("openrouter.timeout", 30*time.Second)
	viper.SetDefault("openrouter.referer", "http://localhost:3000")
	viper.SetDefault("openrouter.title", "Mohamed Khairi Bouzid Portfolio Chatbot")
	viper.SetDefault("telemetry.enabled", true)

	if path == "" {
		viper.AddConfigPath("./config")
		viper.AddConfigPath(".")
	} else {
		viper.SetConfigFile(path)
	}

	viper.SetEnvPrefix("PORTFOLIO")
	replacer := strings.NewReplacer(".", "_")
	viper.SetEnvKeyReplacer(replacer)

	viper.AutomaticEnv() // read in environment variables that match (PORTFOLIO_*)

	// The credential and model keep their historical env names.
	_ = viper.BindEnv("openrouter.api_key", "OPENROUTER_API_KEY", "PORTFOLIO_OPENROUTER_API_KEY")
	_ = viper.BindEnv("openrouter.model", "OPENROUTER_MODEL", "PORTFOLIO_OPENROUTER_MODEL")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic(fmt.Errorf("fatal error config file: %w", err))
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Errorf("fatal error config file: %w", err))
	}

	return &config
}

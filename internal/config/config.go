package config

import (
	"log/slog"

	"github.com/caarlos0/env/v10"
)

// Config holds minimal runtime configuration. Extend as needed.
type Config struct {
	// Server
	Port     int    `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Input limits
	MaxTextLength int `env:"MAX_TEXT_LENGTH" envDefault:"2000"` // characters per analysis request

	// LLM
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"` // "gemini" (default) or "openai"
	GeminiKey   string `env:"GEMINI_API_KEY"`
	OpenAIKey   string `env:"OPENAI_API_KEY"`
	GeminiModel string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	OpenAIModel string `env:"OPENAI_MODEL" envDefault:"gpt-4o-mini"`
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		slog.Warn("failed to parse env; using defaults where set", "err", err)
	}
	return cfg
}

package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/g4brie11e/chatbot-backend/internal/logger"
)

// Config is the full runtime configuration, sourced from the environment.
// Secrets (LLM API key, admin key, Redis URL) live here; tunable keyword
// rules live in the optional rules file (see rules.go).
type Config struct {
	Log     logger.Config `envconfig:""`
	Server  ServerConfig  `envconfig:""`
	Session SessionConfig `envconfig:""`
	LLM     LLMConfig     `envconfig:""`
	Storage StorageConfig `envconfig:""`
	Report  ReportConfig  `envconfig:""`
}

type ServerConfig struct {
	Addr      string `envconfig:"SERVER_ADDR" default:"0.0.0.0:3000"`
	AdminKey  string `envconfig:"ADMIN_KEY" default:"secret123"`
	StaticDir string `envconfig:"STATIC_DIR" default:"public"`
}

type SessionConfig struct {
	TTL           time.Duration `envconfig:"SESSION_TTL" default:"1h"`
	SweepInterval time.Duration `envconfig:"SESSION_SWEEP_INTERVAL" default:"5m"`
}

// LLMConfig configures the fallback model. The default provider is any
// OpenAI-compatible endpoint; Mistral's /v1 works out of the box. Set
// LLM_PROVIDER=ollama for a local model.
type LLMConfig struct {
	Provider    string        `envconfig:"LLM_PROVIDER" default:"openai"`
	APIKey      string        `envconfig:"LLM_API_KEY"`
	BaseURL     string        `envconfig:"LLM_BASE_URL" default:"https://api.mistral.ai/v1"`
	Model       string        `envconfig:"LLM_MODEL" default:"mistral-small-latest"`
	MaxTokens   int           `envconfig:"LLM_MAX_TOKENS" default:"512"`
	Temperature float64       `envconfig:"LLM_TEMPERATURE" default:"0.7"`
	Timeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"15s"`
}

type StorageConfig struct {
	LeadsPath  string        `envconfig:"LEADS_PATH" default:"data/leads.jsonl"`
	RedisURL   string        `envconfig:"REDIS_URL"`
	ArchiveTTL time.Duration `envconfig:"ARCHIVE_TTL" default:"168h"`
}

type ReportConfig struct {
	Dir       string `envconfig:"REPORT_DIR" default:"public/reports"`
	QueueSize int    `envconfig:"REPORT_QUEUE" default:"16"`
}

func Load() (*Config, error) {
	var config Config
	err := envconfig.Process("", &config)
	if err != nil {
		return nil, fmt.Errorf("error processing environment configuration: %w", err)
	}

	return &config, nil
}

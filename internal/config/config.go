package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingSecretKey = errors.New("SECRET_KEY is required")
	ErrMissingAPIKey    = errors.New("llm provider api key is required")
	ErrUnknownProvider  = errors.New("unknown llm provider")
)

type Config struct {
	HTTP      HTTPConfig
	Security  SecurityConfig
	LLM       LLMConfig
	Log       LogConfig
	RateLimit RateLimitConfig
	Defaults  ContentDefaults
}

type HTTPConfig struct {
	Addr            string
	ShutdownTimeout time.Duration
}

type SecurityConfig struct {
	SecretKey string
}

type LLMConfig struct {
	Provider   string
	OpenAI     OpenAIConfig
	OpenRouter OpenRouterConfig
	Timeout    time.Duration
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type OpenRouterConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type LogConfig struct {
	Level string
}

type RateLimitConfig struct {
	RequestsPerMinute int
}

// ContentDefaults fill in request fields the caller left blank.
type ContentDefaults struct {
	ContentType    string
	TargetAudience string
	WordCount      int
	Tone           string
	ResearchDepth  string
}

func Load() (*Config, error) {
	// .env is optional; real env vars win either way
	_ = godotenv.Load()

	cfg := &Config{
		HTTP: HTTPConfig{
			Addr:            getEnvOrDefault("HTTP_ADDR", ":8080"),
			ShutdownTimeout: time.Duration(getEnvIntOrDefault("HTTP_SHUTDOWN_TIMEOUT_SEC", 10)) * time.Second,
		},
		Security: SecurityConfig{
			SecretKey: os.Getenv("SECRET_KEY"),
		},
		LLM: LLMConfig{
			Provider: getEnvOrDefault("LLM_PROVIDER", "openai"),
			OpenAI: OpenAIConfig{
				APIKey:  os.Getenv("OPENAI_API_KEY"),
				Model:   getEnvOrDefault("OPENAI_MODEL", "gpt-4"),
				BaseURL: os.Getenv("OPENAI_BASE_URL"),
			},
			OpenRouter: OpenRouterConfig{
				APIKey:  os.Getenv("OPENROUTER_API_KEY"),
				Model:   getEnvOrDefault("OPENROUTER_MODEL", "deepseek/deepseek-chat"),
				BaseURL: getEnvOrDefault("OPENROUTER_BASE_URL", "https://openrouter.ai/api/v1"),
			},
			Timeout: time.Duration(getEnvIntOrDefault("LLM_TIMEOUT_SEC", 60)) * time.Second,
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "info"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: getEnvIntOrDefault("RATE_LIMIT_PER_MINUTE", 10),
		},
		Defaults: ContentDefaults{
			ContentType:    getEnvOrDefault("DEFAULT_CONTENT_TYPE", "article"),
			TargetAudience: getEnvOrDefault("DEFAULT_TARGET_AUDIENCE", "general"),
			WordCount:      getEnvIntOrDefault("DEFAULT_WORD_COUNT", 1000),
			Tone:           getEnvOrDefault("DEFAULT_TONE", "professional"),
			ResearchDepth:  getEnvOrDefault("DEFAULT_RESEARCH_DEPTH", "comprehensive"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Security.SecretKey == "" {
		return ErrMissingSecretKey
	}

	switch c.LLM.Provider {
	case "openai":
		if c.LLM.OpenAI.APIKey == "" {
			return ErrMissingAPIKey
		}
	case "openrouter":
		if c.LLM.OpenRouter.APIKey == "" {
			return ErrMissingAPIKey
		}
	case "mock":
		// no credentials needed
	default:
		return ErrUnknownProvider
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

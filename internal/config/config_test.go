package config

import (
	"errors"
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SECRET_KEY", "test-secret")
	t.Setenv("LLM_PROVIDER", "mock")
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("OPENROUTER_API_KEY", "")
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("HTTP_ADDR", "")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "")
		t.Setenv("LLM_TIMEOUT_SEC", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}

		if cfg.HTTP.Addr != ":8080" {
			t.Errorf("addr = %q", cfg.HTTP.Addr)
		}
		if cfg.RateLimit.RequestsPerMinute != 10 {
			t.Errorf("rate limit = %d", cfg.RateLimit.RequestsPerMinute)
		}
		if cfg.LLM.Timeout != 60*time.Second {
			t.Errorf("llm timeout = %v", cfg.LLM.Timeout)
		}
		if cfg.Defaults.ContentType != "article" || cfg.Defaults.WordCount != 1000 {
			t.Errorf("content defaults = %+v", cfg.Defaults)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("HTTP_ADDR", ":9999")
		t.Setenv("RATE_LIMIT_PER_MINUTE", "42")
		t.Setenv("DEFAULT_TONE", "casual")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.HTTP.Addr != ":9999" {
			t.Errorf("addr = %q", cfg.HTTP.Addr)
		}
		if cfg.RateLimit.RequestsPerMinute != 42 {
			t.Errorf("rate limit = %d", cfg.RateLimit.RequestsPerMinute)
		}
		if cfg.Defaults.Tone != "casual" {
			t.Errorf("tone = %q", cfg.Defaults.Tone)
		}
	})

	t.Run("bad int falls back", func(t *testing.T) {
		setBaseEnv(t)
		t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.RateLimit.RequestsPerMinute != 10 {
			t.Errorf("rate limit = %d, want fallback 10", cfg.RateLimit.RequestsPerMinute)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "mock provider needs no key",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing secret key",
			mutate:  func(c *Config) { c.Security.SecretKey = "" },
			wantErr: ErrMissingSecretKey,
		},
		{
			name:    "openai without key",
			mutate:  func(c *Config) { c.LLM.Provider = "openai" },
			wantErr: ErrMissingAPIKey,
		},
		{
			name: "openai with key",
			mutate: func(c *Config) {
				c.LLM.Provider = "openai"
				c.LLM.OpenAI.APIKey = "sk-test"
			},
		},
		{
			name:    "openrouter without key",
			mutate:  func(c *Config) { c.LLM.Provider = "openrouter" },
			wantErr: ErrMissingAPIKey,
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.LLM.Provider = "llama-on-a-floppy" },
			wantErr: ErrUnknownProvider,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				Security: SecurityConfig{SecretKey: "s"},
				LLM:      LLMConfig{Provider: "mock"},
			}
			tt.mutate(cfg)

			if err := cfg.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP   HTTPConfig   `yaml:"http"`
	LLM    LLMConfig    `yaml:"llm"`
	Answer AnswerConfig `yaml:"answer"`
	Game   GameConfig   `yaml:"game"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address      string          `yaml:"address"`
	ReadTimeout  time.Duration   `yaml:"readTimeout"`
	WriteTimeout time.Duration   `yaml:"writeTimeout"`
	RateLimit    RateLimitConfig `yaml:"rateLimit"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// LLMConfig contains ChatGPT/OpenAI settings.
type LLMConfig struct {
	APIKey      string  `yaml:"apiKey"`
	BaseURL     string  `yaml:"baseUrl"`
	Model       string  `yaml:"model"`
	Temperature float32 `yaml:"temperature"`
}

// AnswerConfig controls the answer judging domain.
type AnswerConfig struct {
	SemanticEnabled bool          `yaml:"semanticEnabled"`
	SemanticTimeout time.Duration `yaml:"semanticTimeout"`
	Prompt          string        `yaml:"prompt"`
}

// GameConfig controls gameplay behavior and its storage backends.
type GameConfig struct {
	ResultTTL       time.Duration  `yaml:"resultTtl"`
	LeaderboardSize int            `yaml:"leaderboardSize"`
	Valkey          ValkeyConfig   `yaml:"valkey"`
	Postgres        PostgresConfig `yaml:"postgres"`
}

// ValkeyConfig contains connection information for the score store.
type ValkeyConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Addr      string `yaml:"addr"`
	KeyPrefix string `yaml:"keyPrefix"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("LLM_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 32); err == nil {
			cfg.LLM.Temperature = float32(parsed)
		}
	}
	if v := os.Getenv("ANSWER_SEMANTIC_ENABLED"); v != "" {
		cfg.Answer.SemanticEnabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("ANSWER_SEMANTIC_TIMEOUT"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Answer.SemanticTimeout = parsed
		}
	}
	if v := os.Getenv("ANSWER_PROMPT"); v != "" {
		cfg.Answer.Prompt = v
	}
	if v := os.Getenv("GAME_RESULT_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Game.ResultTTL = parsed
		}
	}
	if v := os.Getenv("GAME_LEADERBOARD_SIZE"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Game.LeaderboardSize = parsed
		}
	}
	if v := os.Getenv("GAME_VALKEY_ENABLED"); v != "" {
		cfg.Game.Valkey.Enabled = v == "1" || strings.EqualFold(v, "true")
	}
	if v := os.Getenv("GAME_VALKEY_ADDR"); v != "" {
		cfg.Game.Valkey.Addr = v
	}
	if v := os.Getenv("GAME_VALKEY_KEY_PREFIX"); v != "" {
		cfg.Game.Valkey.KeyPrefix = v
	}
	if v := os.Getenv("GAME_POSTGRES_DSN"); v != "" {
		cfg.Game.Postgres.DSN = v
	}
	if v := os.Getenv("GAME_POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Game.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("GAME_POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Game.Postgres.MinConns = int32(parsed)
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 60,
				Burst:             20,
			},
		},
		LLM: LLMConfig{
			Model:       "gpt-4o-mini",
			Temperature: 0,
		},
		Answer: AnswerConfig{
			SemanticEnabled: false,
			SemanticTimeout: 5 * time.Second,
			Prompt:          "You are a trivia judge. Given the accepted answer and a contestant response, reply with exactly YES when the response names the same thing as the accepted answer, otherwise reply with exactly NO.",
		},
		Game: GameConfig{
			ResultTTL:       24 * time.Hour,
			LeaderboardSize: 10,
			Valkey: ValkeyConfig{
				Enabled:   false,
				Addr:      "",
				KeyPrefix: "clueboard",
			},
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.Answer.SemanticEnabled {
		if strings.TrimSpace(c.LLM.APIKey) == "" {
			return errors.New("llm.apiKey cannot be empty when semantic judging is enabled")
		}
		if c.Answer.SemanticTimeout <= 0 {
			return errors.New("answer.semanticTimeout must be positive")
		}
		if strings.TrimSpace(c.Answer.Prompt) == "" {
			return errors.New("answer.prompt cannot be empty")
		}
	}
	if c.Game.ResultTTL < 0 {
		return errors.New("game.resultTtl cannot be negative")
	}
	if c.Game.LeaderboardSize <= 0 {
		return errors.New("game.leaderboardSize must be positive")
	}
	if c.Game.Valkey.Enabled && strings.TrimSpace(c.Game.Valkey.Addr) == "" {
		return errors.New("game.valkey.addr cannot be empty when the valkey store is enabled")
	}
	return nil
}

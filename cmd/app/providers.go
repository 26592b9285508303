package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/pbryant/clueboard/internal/domain/answer"
	"github.com/pbryant/clueboard/internal/domain/game"
	"github.com/pbryant/clueboard/internal/infra/cluerepo"
	"github.com/pbryant/clueboard/internal/infra/config"
	"github.com/pbryant/clueboard/internal/infra/llm/chatgpt"
	"github.com/pbryant/clueboard/internal/infra/scorestore"
)

func provideAnswerConfig(cfg *config.Config) answer.Config {
	return answer.Config{
		Model:           cfg.LLM.Model,
		Temperature:     cfg.LLM.Temperature,
		SemanticEnabled: cfg.Answer.SemanticEnabled,
		SemanticTimeout: cfg.Answer.SemanticTimeout,
		Prompt:          cfg.Answer.Prompt,
	}
}

func provideGameConfig(cfg *config.Config) game.Config {
	return game.Config{
		ResultTTL:       cfg.Game.ResultTTL,
		LeaderboardSize: cfg.Game.LeaderboardSize,
	}
}

// provideChatClient returns nil when semantic judging is disabled, which
// leaves the rule-based checker as the only signal.
func provideChatClient(cfg *config.Config, logger *slog.Logger) answer.ChatClient {
	if !cfg.Answer.SemanticEnabled {
		return nil
	}
	if strings.TrimSpace(cfg.LLM.APIKey) == "" {
		logger.Warn("semantic judging enabled without an api key, running rules only")
		return nil
	}
	client, err := chatgpt.NewClient(cfg.LLM.APIKey, cfg.LLM.BaseURL)
	if err != nil {
		logger.Error("failed to create chat client, running rules only", "error", err)
		return nil
	}
	return client
}

func provideClueRepository(cfg *config.Config, logger *slog.Logger) game.ClueRepository {
	fallback := cluerepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.Game.Postgres.DSN)
	if dsn == "" {
		logger.Info("postgres dsn not set, using memory clue repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory clue repository", "error", err)
		return fallback
	}
	if cfg.Game.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.Game.Postgres.MaxConns
	}
	if cfg.Game.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.Game.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory clue repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory clue repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("postgres clue repository enabled")
	return cluerepo.NewPostgresRepository(pool)
}

func provideScoreStore(cfg *config.Config, logger *slog.Logger) game.ScoreStore {
	if cfg.Game.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory score store", "error", err)
			return scorestore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory score store", "error", err)
			return scorestore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory score store", "error", err)
		} else {
			logger.Info("valkey score store enabled", "addr", cfg.Game.Valkey.Addr)
			return scorestore.NewValkeyStore(client, cfg.Game.Valkey.KeyPrefix)
		}
	}
	return scorestore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.Game.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.Game.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.Game.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}

package game

import (
	"context"
	"time"
)

// ScoreStore defines the persistence contract for scores, judged results,
// disputes, and daily-challenge streaks.
type ScoreStore interface {
	AddScore(ctx context.Context, player string, delta int64) error
	PlayerScore(ctx context.Context, player string) (int64, error)
	TopPlayers(ctx context.Context, limit int) ([]LeaderboardEntry, error)

	SaveResult(ctx context.Context, result Result, ttl time.Duration) error
	GetResult(ctx context.Context, submissionID string) (Result, bool, error)

	SaveDispute(ctx context.Context, dispute Dispute) error
	GetDispute(ctx context.Context, id string) (Dispute, bool, error)

	// Streaks track consecutive daily-challenge days per player as a
	// (last played date, length) pair.
	GetStreak(ctx context.Context, player string) (date string, length int64, err error)
	SetStreak(ctx context.Context, player, date string, length int64) error
}

package scorestore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/pbryant/clueboard/internal/domain/game"
)

type storedResult struct {
	payload   game.Result
	expiresAt time.Time
}

type storedStreak struct {
	date   string
	length int64
}

// MemoryStore is an in-memory implementation of the score store for
// tests and development.
type MemoryStore struct {
	mu       sync.RWMutex
	scores   map[string]int64
	results  map[string]storedResult
	disputes map[string]game.Dispute
	streaks  map[string]storedStreak
}

// NewMemoryStore constructs a store backed by process memory.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		scores:   make(map[string]int64),
		results:  make(map[string]storedResult),
		disputes: make(map[string]game.Dispute),
		streaks:  make(map[string]storedStreak),
	}
}

// AddScore implements game.ScoreStore.
func (s *MemoryStore) AddScore(_ context.Context, player string, delta int64) error {
	if player == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scores[player] += delta
	return nil
}

// PlayerScore returns the current total for a player, zero when unknown.
func (s *MemoryStore) PlayerScore(_ context.Context, player string) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scores[player], nil
}

// TopPlayers returns the highest scores, ties broken by name.
func (s *MemoryStore) TopPlayers(_ context.Context, limit int) ([]game.LeaderboardEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 {
		limit = len(s.scores)
	}
	entries := make([]game.LeaderboardEntry, 0, len(s.scores))
	for player, score := range s.scores {
		entries = append(entries, game.LeaderboardEntry{Player: player, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score == entries[j].Score {
			return entries[i].Player < entries[j].Player
		}
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// SaveResult caches the judged result with optional TTL.
func (s *MemoryStore) SaveResult(_ context.Context, result game.Result, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	exp := time.Time{}
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	s.results[result.SubmissionID] = storedResult{payload: result, expiresAt: exp}
	return nil
}

// GetResult implements game.ScoreStore.
func (s *MemoryStore) GetResult(_ context.Context, submissionID string) (game.Result, bool, error) {
	s.mu.RLock()
	record, ok := s.results[submissionID]
	s.mu.RUnlock()
	if !ok {
		return game.Result{}, false, nil
	}
	if hasExpired(record.expiresAt) {
		s.mu.Lock()
		delete(s.results, submissionID)
		s.mu.Unlock()
		return game.Result{}, false, nil
	}
	return record.payload, true, nil
}

// SaveDispute upserts a dispute record.
func (s *MemoryStore) SaveDispute(_ context.Context, dispute game.Dispute) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disputes[dispute.ID] = dispute
	return nil
}

// GetDispute implements game.ScoreStore.
func (s *MemoryStore) GetDispute(_ context.Context, id string) (game.Dispute, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.disputes[id]
	return d, ok, nil
}

// GetStreak implements game.ScoreStore.
func (s *MemoryStore) GetStreak(_ context.Context, player string) (string, int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	streak, ok := s.streaks[player]
	if !ok {
		return "", 0, nil
	}
	return streak.date, streak.length, nil
}

// SetStreak implements game.ScoreStore.
func (s *MemoryStore) SetStreak(_ context.Context, player, date string, length int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.streaks[player] = storedStreak{date: date, length: length}
	return nil
}

func hasExpired(ts time.Time) bool {
	if ts.IsZero() {
		return false
	}
	return ts.Before(time.Now())
}

var _ game.ScoreStore = (*MemoryStore)(nil)

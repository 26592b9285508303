package scorestore

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/pbryant/clueboard/internal/domain/game"
)

// ValkeyStore persists scores, results, disputes, and streaks using a
// Valkey-compatible database. Scores live in a sorted set so the
// leaderboard is a single ZREVRANGE away.
type ValkeyStore struct {
	client valkey.Client
	prefix string
}

// NewValkeyStore constructs a new store backed by Valkey.
func NewValkeyStore(client valkey.Client, prefix string) *ValkeyStore {
	if prefix == "" {
		prefix = "clueboard"
	}
	return &ValkeyStore{client: client, prefix: prefix}
}

func (s *ValkeyStore) AddScore(ctx context.Context, player string, delta int64) error {
	if player == "" {
		return nil
	}
	cmd := s.client.B().Zincrby().Key(s.scoresKey()).Increment(float64(delta)).Member(player).Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) PlayerScore(ctx context.Context, player string) (int64, error) {
	resp := s.client.Do(ctx, s.client.B().Zscore().Key(s.scoresKey()).Member(player).Build())
	score, err := resp.ToFloat64()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return 0, nil
		}
		return 0, err
	}
	return int64(score), nil
}

func (s *ValkeyStore) TopPlayers(ctx context.Context, limit int) ([]game.LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	resp := s.client.Do(ctx, s.client.B().Zrevrange().Key(s.scoresKey()).Start(0).Stop(int64(limit-1)).Withscores().Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, nil
		}
		return nil, err
	}
	out := make([]game.LeaderboardEntry, 0, len(arr))
	for i := 0; i < len(arr); {
		var (
			member string
			score  float64
		)
		if tuple, tupleErr := arr[i].ToArray(); tupleErr == nil && len(tuple) == 2 {
			if member, err = tuple[0].ToString(); err != nil {
				return nil, err
			}
			if score, err = tuple[1].ToFloat64(); err != nil {
				return nil, err
			}
			i++
		} else {
			// RESP2 returns a flat alternating array.
			if i+1 >= len(arr) {
				break
			}
			if member, err = arr[i].ToString(); err != nil {
				if valkey.IsValkeyNil(err) {
					i += 2
					continue
				}
				return nil, err
			}
			if score, err = arr[i+1].ToFloat64(); err != nil {
				return nil, err
			}
			i += 2
		}
		out = append(out, game.LeaderboardEntry{Player: member, Score: int64(score)})
	}
	return out, nil
}

func (s *ValkeyStore) SaveResult(ctx context.Context, result game.Result, ttl time.Duration) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return s.setString(ctx, s.resultKey(result.SubmissionID), string(payload), ttl)
}

func (s *ValkeyStore) GetResult(ctx context.Context, submissionID string) (game.Result, bool, error) {
	resp := s.client.Do(ctx, s.client.B().Get().Key(s.resultKey(submissionID)).Build())
	payload, err := resp.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return game.Result{}, false, nil
		}
		return game.Result{}, false, err
	}
	var result game.Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return game.Result{}, false, err
	}
	return result, true, nil
}

func (s *ValkeyStore) SaveDispute(ctx context.Context, dispute game.Dispute) error {
	payload, err := json.Marshal(dispute)
	if err != nil {
		return err
	}
	return s.setString(ctx, s.disputeKey(dispute.ID), string(payload), 0)
}

func (s *ValkeyStore) GetDispute(ctx context.Context, id string) (game.Dispute, bool, error) {
	resp := s.client.Do(ctx, s.client.B().Get().Key(s.disputeKey(id)).Build())
	payload, err := resp.ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return game.Dispute{}, false, nil
		}
		return game.Dispute{}, false, err
	}
	var dispute game.Dispute
	if err := json.Unmarshal([]byte(payload), &dispute); err != nil {
		return game.Dispute{}, false, err
	}
	return dispute, true, nil
}

func (s *ValkeyStore) GetStreak(ctx context.Context, player string) (string, int64, error) {
	resp := s.client.Do(ctx, s.client.B().Hmget().Key(s.streakKey(player)).Field("date", "length").Build())
	arr, err := resp.ToArray()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", 0, nil
		}
		return "", 0, err
	}
	if len(arr) != 2 {
		return "", 0, nil
	}
	date, err := arr[0].ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return "", 0, nil
		}
		return "", 0, err
	}
	raw, err := arr[1].ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return date, 0, nil
		}
		return "", 0, err
	}
	length, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return date, 0, nil
	}
	return date, length, nil
}

func (s *ValkeyStore) SetStreak(ctx context.Context, player, date string, length int64) error {
	cmd := s.client.B().Hset().Key(s.streakKey(player)).
		FieldValue().
		FieldValue("date", date).
		FieldValue("length", strconv.FormatInt(length, 10)).
		Build()
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) setString(ctx context.Context, key, value string, ttl time.Duration) error {
	builder := s.client.B().Set().Key(key).Value(value)
	var cmd valkey.Completed
	if ttl > 0 {
		if ttl < time.Second {
			ttl = time.Second
		}
		cmd = builder.Ex(ttl).Build()
	} else {
		cmd = builder.Build()
	}
	return s.client.Do(ctx, cmd).Error()
}

func (s *ValkeyStore) scoresKey() string {
	return fmt.Sprintf("%s:scores", s.prefix)
}

func (s *ValkeyStore) resultKey(submissionID string) string {
	return fmt.Sprintf("%s:result:%s", s.prefix, submissionID)
}

func (s *ValkeyStore) disputeKey(id string) string {
	return fmt.Sprintf("%s:dispute:%s", s.prefix, id)
}

func (s *ValkeyStore) streakKey(player string) string {
	return fmt.Sprintf("%s:streak:%s", s.prefix, player)
}

var _ game.ScoreStore = (*ValkeyStore)(nil)

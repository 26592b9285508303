package game

import (
	"context"
	"hash/fnv"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pbryant/clueboard/internal/domain/answer"
	apperrors "github.com/pbryant/clueboard/pkg/errors"
)

const dateLayout = "2006-01-02"

// Service exposes the gameplay operations built around the answer judge.
type Service interface {
	Submit(ctx context.Context, req SubmitRequest) (Result, error)
	DailyClue(ctx context.Context, date string) (DailyClue, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
	FileDispute(ctx context.Context, req DisputeRequest) (Dispute, error)
	ReviewDispute(ctx context.Context, req ReviewRequest) (Dispute, error)
}

type service struct {
	cfg    Config
	repo   ClueRepository
	store  ScoreStore
	judge  answer.Service
	logger *slog.Logger
	now    func() time.Time
}

// NewService wires up the game domain.
func NewService(cfg Config, repo ClueRepository, store ScoreStore, judge answer.Service, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		store:  store,
		judge:  judge,
		logger: logger.With("component", "game.service"),
		now:    time.Now,
	}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (Result, error) {
	player := strings.TrimSpace(req.Player)
	if player == "" {
		return Result{}, apperrors.Wrap("invalid_input", "player cannot be empty", nil)
	}

	clue, ok, err := s.repo.GetClue(ctx, req.ClueID)
	if err != nil {
		return Result{}, apperrors.Wrap("game_error", "clue lookup failed", err)
	}
	if !ok {
		return Result{}, apperrors.Wrap("not_found", "clue does not exist", nil)
	}

	base := clue.Value
	wager := 0
	if req.Final {
		if req.Wager < 0 {
			return Result{}, apperrors.Wrap("invalid_input", "wager cannot be negative", nil)
		}
		score, err := s.store.PlayerScore(ctx, player)
		if err != nil {
			return Result{}, apperrors.Wrap("game_error", "score lookup failed", err)
		}
		wager = req.Wager
		if score < 0 {
			score = 0
		}
		if int64(wager) > score {
			wager = int(score)
		}
		base = wager
	}

	verdict, err := s.judge.Judge(ctx, answer.Request{
		UserAnswer:    req.Answer,
		CorrectAnswer: clue.Answer,
		BasePoints:    base,
	})
	if err != nil {
		return Result{}, err
	}

	delta := 0
	switch {
	case verdict.Correct:
		delta = verdict.Points
	case req.Final:
		// A missed final response loses the wager.
		delta = -wager
	}

	result := Result{
		SubmissionID: uuid.NewString(),
		ClueID:       clue.ID,
		Player:       player,
		GivenAnswer:  req.Answer,
		Correct:      verdict.Correct,
		PointsDelta:  delta,
		Source:       verdict.Source,
		SubmittedAt:  s.now().UTC(),
	}

	if req.Daily && verdict.Correct {
		streak, err := s.bumpStreak(ctx, player)
		if err != nil {
			s.logger.Warn("streak update failed", "player", player, "error", err)
		} else {
			result.Streak = streak
		}
	}

	if err := s.store.SaveResult(ctx, result, s.cfg.ResultTTL); err != nil {
		return Result{}, apperrors.Wrap("game_error", "failed to record result", err)
	}
	if delta != 0 {
		if err := s.store.AddScore(ctx, player, int64(delta)); err != nil {
			return Result{}, apperrors.Wrap("game_error", "failed to update score", err)
		}
	}

	return result, nil
}

// bumpStreak extends a consecutive-day run: same day keeps the streak,
// yesterday extends it, anything older restarts at one.
func (s *service) bumpStreak(ctx context.Context, player string) (int64, error) {
	today := s.now().UTC().Format(dateLayout)
	yesterday := s.now().UTC().AddDate(0, 0, -1).Format(dateLayout)

	lastDate, length, err := s.store.GetStreak(ctx, player)
	if err != nil {
		return 0, err
	}
	switch lastDate {
	case today:
		return length, nil
	case yesterday:
		length++
	default:
		length = 1
	}
	if err := s.store.SetStreak(ctx, player, today, length); err != nil {
		return 0, err
	}
	return length, nil
}

func (s *service) DailyClue(ctx context.Context, date string) (DailyClue, error) {
	if strings.TrimSpace(date) == "" {
		date = s.now().UTC().Format(dateLayout)
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		return DailyClue{}, apperrors.Wrap("invalid_input", "date must be formatted YYYY-MM-DD", err)
	}

	count, err := s.repo.CountClues(ctx)
	if err != nil {
		return DailyClue{}, apperrors.Wrap("game_error", "clue count failed", err)
	}
	if count == 0 {
		return DailyClue{}, apperrors.Wrap("not_found", "no clues available", nil)
	}

	hasher := fnv.New64a()
	hasher.Write([]byte(date))
	offset := int64(hasher.Sum64() % uint64(count))

	clue, ok, err := s.repo.ClueAt(ctx, offset)
	if err != nil {
		return DailyClue{}, apperrors.Wrap("game_error", "daily clue lookup failed", err)
	}
	if !ok {
		return DailyClue{}, apperrors.Wrap("not_found", "no clues available", nil)
	}
	return DailyClue{Date: date, Clue: clue}, nil
}

func (s *service) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = s.cfg.LeaderboardSize
	}
	entries, err := s.store.TopPlayers(ctx, limit)
	if err != nil {
		return nil, apperrors.Wrap("game_error", "failed to load leaderboard", err)
	}
	return entries, nil
}

func (s *service) FileDispute(ctx context.Context, req DisputeRequest) (Dispute, error) {
	if strings.TrimSpace(req.SubmissionID) == "" {
		return Dispute{}, apperrors.Wrap("invalid_input", "submission id cannot be empty", nil)
	}

	result, ok, err := s.store.GetResult(ctx, req.SubmissionID)
	if err != nil {
		return Dispute{}, apperrors.Wrap("game_error", "result lookup failed", err)
	}
	if !ok {
		return Dispute{}, apperrors.Wrap("not_found", "submission does not exist", nil)
	}
	if result.Correct {
		return Dispute{}, apperrors.Wrap("invalid_input", "accepted answers cannot be disputed", nil)
	}

	dispute := Dispute{
		ID:           uuid.NewString(),
		SubmissionID: result.SubmissionID,
		Player:       result.Player,
		ClueID:       result.ClueID,
		GivenAnswer:  result.GivenAnswer,
		Reason:       strings.TrimSpace(req.Reason),
		Status:       DisputePending,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.store.SaveDispute(ctx, dispute); err != nil {
		return Dispute{}, apperrors.Wrap("game_error", "failed to record dispute", err)
	}
	return dispute, nil
}

func (s *service) ReviewDispute(ctx context.Context, req ReviewRequest) (Dispute, error) {
	dispute, ok, err := s.store.GetDispute(ctx, req.DisputeID)
	if err != nil {
		return Dispute{}, apperrors.Wrap("game_error", "dispute lookup failed", err)
	}
	if !ok {
		return Dispute{}, apperrors.Wrap("not_found", "dispute does not exist", nil)
	}
	if dispute.Status != DisputePending {
		return Dispute{}, apperrors.Wrap("invalid_input", "dispute already reviewed", nil)
	}

	reviewedAt := s.now().UTC()
	dispute.ReviewedAt = &reviewedAt
	dispute.ReviewNote = strings.TrimSpace(req.Note)
	dispute.Status = DisputeUpheld

	if req.Overturn {
		dispute.Status = DisputeOverturned
		clue, ok, err := s.repo.GetClue(ctx, dispute.ClueID)
		if err != nil {
			return Dispute{}, apperrors.Wrap("game_error", "clue lookup failed", err)
		}
		if ok {
			// Overturned answers score as rule-accepted, not exact.
			credit := int64(float64(clue.Value) * 0.8)
			if credit > 0 {
				if err := s.store.AddScore(ctx, dispute.Player, credit); err != nil {
					return Dispute{}, apperrors.Wrap("game_error", "failed to credit score", err)
				}
			}
		}
	}

	if err := s.store.SaveDispute(ctx, dispute); err != nil {
		return Dispute{}, apperrors.Wrap("game_error", "failed to update dispute", err)
	}
	return dispute, nil
}

package game

import (
	"context"
	"io"
	"log/slog"
	"sort"
	"testing"
	"time"

	"github.com/pbryant/clueboard/internal/domain/answer"
)

type fakeRepo struct {
	clues []Clue
}

func (r *fakeRepo) GetClue(_ context.Context, id int64) (Clue, bool, error) {
	for _, c := range r.clues {
		if c.ID == id {
			return c, true, nil
		}
	}
	return Clue{}, false, nil
}

func (r *fakeRepo) CountClues(_ context.Context) (int64, error) {
	return int64(len(r.clues)), nil
}

func (r *fakeRepo) ClueAt(_ context.Context, offset int64) (Clue, bool, error) {
	if offset < 0 || offset >= int64(len(r.clues)) {
		return Clue{}, false, nil
	}
	return r.clues[offset], true, nil
}

type fakeStore struct {
	scores   map[string]int64
	results  map[string]Result
	disputes map[string]Dispute
	streaks  map[string][2]any
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		scores:   make(map[string]int64),
		results:  make(map[string]Result),
		disputes: make(map[string]Dispute),
		streaks:  make(map[string][2]any),
	}
}

func (s *fakeStore) AddScore(_ context.Context, player string, delta int64) error {
	s.scores[player] += delta
	return nil
}

func (s *fakeStore) PlayerScore(_ context.Context, player string) (int64, error) {
	return s.scores[player], nil
}

func (s *fakeStore) TopPlayers(_ context.Context, limit int) ([]LeaderboardEntry, error) {
	entries := make([]LeaderboardEntry, 0, len(s.scores))
	for player, score := range s.scores {
		entries = append(entries, LeaderboardEntry{Player: player, Score: score})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *fakeStore) SaveResult(_ context.Context, result Result, _ time.Duration) error {
	s.results[result.SubmissionID] = result
	return nil
}

func (s *fakeStore) GetResult(_ context.Context, submissionID string) (Result, bool, error) {
	r, ok := s.results[submissionID]
	return r, ok, nil
}

func (s *fakeStore) SaveDispute(_ context.Context, dispute Dispute) error {
	s.disputes[dispute.ID] = dispute
	return nil
}

func (s *fakeStore) GetDispute(_ context.Context, id string) (Dispute, bool, error) {
	d, ok := s.disputes[id]
	return d, ok, nil
}

func (s *fakeStore) GetStreak(_ context.Context, player string) (string, int64, error) {
	v, ok := s.streaks[player]
	if !ok {
		return "", 0, nil
	}
	return v[0].(string), v[1].(int64), nil
}

func (s *fakeStore) SetStreak(_ context.Context, player, date string, length int64) error {
	s.streaks[player] = [2]any{date, length}
	return nil
}

func testClues() []Clue {
	return []Clue{
		{ID: 1, Category: "WORLD CAPITALS", Question: "Lights, please: the City of Light", Answer: "Paris", Value: 200},
		{ID: 2, Category: "LITERATURE", Question: "He wrote of an old man and the sea", Answer: "Ernest Hemingway", Value: 400},
		{ID: 3, Category: "MUSIC", Question: "Fab Four from Liverpool", Answer: "The Beatles", Value: 600},
	}
}

func newTestService(t *testing.T, store *fakeStore) *service {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	judge := answer.NewService(answer.Config{}, nil, logger)
	svc := NewService(Config{ResultTTL: time.Hour, LeaderboardSize: 10}, &fakeRepo{clues: testClues()}, store, judge, logger)
	return svc.(*service)
}

func TestSubmitExactAnswerAwardsFullValue(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	result, err := svc.Submit(context.Background(), SubmitRequest{ClueID: 1, Player: "ken", Answer: "what is Paris"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Correct {
		t.Fatal("expected a correct verdict")
	}
	if result.PointsDelta != 200 {
		t.Fatalf("expected 200 points, got %d", result.PointsDelta)
	}
	if store.scores["ken"] != 200 {
		t.Fatalf("expected score 200, got %d", store.scores["ken"])
	}
	if _, ok := store.results[result.SubmissionID]; !ok {
		t.Fatal("expected result to be recorded")
	}
}

func TestSubmitFuzzyAnswerIsDiscounted(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	result, err := svc.Submit(context.Background(), SubmitRequest{ClueID: 3, Player: "ken", Answer: "Beatles"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !result.Correct {
		t.Fatal("expected a correct verdict")
	}
	if result.PointsDelta != 480 {
		t.Fatalf("expected 480 points, got %d", result.PointsDelta)
	}
}

func TestSubmitWrongFinalLosesWager(t *testing.T) {
	store := newFakeStore()
	store.scores["ken"] = 1000
	svc := newTestService(t, store)

	result, err := svc.Submit(context.Background(), SubmitRequest{ClueID: 1, Player: "ken", Answer: "London", Final: true, Wager: 600})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Correct {
		t.Fatal("expected a rejection")
	}
	if result.PointsDelta != -600 {
		t.Fatalf("expected -600, got %d", result.PointsDelta)
	}
	if store.scores["ken"] != 400 {
		t.Fatalf("expected score 400, got %d", store.scores["ken"])
	}
}

func TestSubmitFinalWagerCappedAtScore(t *testing.T) {
	store := newFakeStore()
	store.scores["ken"] = 100
	svc := newTestService(t, store)

	result, err := svc.Submit(context.Background(), SubmitRequest{ClueID: 1, Player: "ken", Answer: "Paris", Final: true, Wager: 5000})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.PointsDelta != 100 {
		t.Fatalf("expected wager capped to 100, got %d", result.PointsDelta)
	}
}

func TestSubmitUnknownClue(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	if _, err := svc.Submit(context.Background(), SubmitRequest{ClueID: 99, Player: "ken", Answer: "Paris"}); err == nil {
		t.Fatal("expected an error for an unknown clue")
	}
}

func TestDailyClueIsDeterministic(t *testing.T) {
	svc := newTestService(t, newFakeStore())

	first, err := svc.DailyClue(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("daily clue: %v", err)
	}
	second, err := svc.DailyClue(context.Background(), "2026-09-01")
	if err != nil {
		t.Fatalf("daily clue: %v", err)
	}
	if first.Clue.ID != second.Clue.ID {
		t.Fatalf("expected the same clue for the same date, got %d and %d", first.Clue.ID, second.Clue.ID)
	}

	if _, err := svc.DailyClue(context.Background(), "not-a-date"); err == nil {
		t.Fatal("expected an error for a malformed date")
	}
}

func TestDailyStreakExtendsAcrossDays(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	day1 := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }
	result, err := svc.Submit(context.Background(), SubmitRequest{ClueID: 1, Player: "ken", Answer: "Paris", Daily: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Streak != 1 {
		t.Fatalf("expected streak 1, got %d", result.Streak)
	}

	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	result, err = svc.Submit(context.Background(), SubmitRequest{ClueID: 1, Player: "ken", Answer: "Paris", Daily: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Streak != 2 {
		t.Fatalf("expected streak 2, got %d", result.Streak)
	}

	// Skipping a day restarts the run.
	svc.now = func() time.Time { return day1.AddDate(0, 0, 5) }
	result, err = svc.Submit(context.Background(), SubmitRequest{ClueID: 1, Player: "ken", Answer: "Paris", Daily: true})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.Streak != 1 {
		t.Fatalf("expected streak reset to 1, got %d", result.Streak)
	}
}

func TestDisputeLifecycle(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	rejected, err := svc.Submit(context.Background(), SubmitRequest{ClueID: 2, Player: "ken", Answer: "Fitzgerald"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if rejected.Correct {
		t.Fatal("expected a rejection to dispute")
	}

	dispute, err := svc.FileDispute(context.Background(), DisputeRequest{SubmissionID: rejected.SubmissionID, Reason: "judge too strict"})
	if err != nil {
		t.Fatalf("file dispute: %v", err)
	}
	if dispute.Status != DisputePending {
		t.Fatalf("expected pending, got %s", dispute.Status)
	}

	reviewed, err := svc.ReviewDispute(context.Background(), ReviewRequest{DisputeID: dispute.ID, Overturn: true, Note: "close enough"})
	if err != nil {
		t.Fatalf("review dispute: %v", err)
	}
	if reviewed.Status != DisputeOverturned {
		t.Fatalf("expected overturned, got %s", reviewed.Status)
	}
	if store.scores["ken"] != 320 {
		t.Fatalf("expected credited score 320, got %d", store.scores["ken"])
	}

	if _, err := svc.ReviewDispute(context.Background(), ReviewRequest{DisputeID: dispute.ID}); err == nil {
		t.Fatal("expected a second review to fail")
	}
}

func TestDisputeRequiresRejectedResult(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)

	accepted, err := svc.Submit(context.Background(), SubmitRequest{ClueID: 1, Player: "ken", Answer: "Paris"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if _, err := svc.FileDispute(context.Background(), DisputeRequest{SubmissionID: accepted.SubmissionID}); err == nil {
		t.Fatal("expected disputing an accepted answer to fail")
	}
}

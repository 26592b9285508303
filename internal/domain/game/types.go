package game

import (
	"time"

	"github.com/pbryant/clueboard/internal/domain/answer"
)

// Clue is one board cell: a prompt, its canonical answer, and a value.
// The answer never leaves the server in API payloads.
type Clue struct {
	ID            int64  `json:"id"`
	Category      string `json:"category"`
	Question      string `json:"question"`
	Answer        string `json:"-"`
	Value         int    `json:"value"`
	TripleStumper bool   `json:"tripleStumper"`
}

// SubmitRequest carries a player's response to a clue.
type SubmitRequest struct {
	ClueID int64  `json:"clueId"`
	Player string `json:"player"`
	Answer string `json:"answer"`
	// Wager replaces the clue value in the final round. It is capped at
	// the player's current score and lost on an incorrect response.
	Final bool `json:"final"`
	Wager int  `json:"wager"`
	// Daily marks a daily-challenge submission, which maintains streaks.
	Daily bool `json:"daily"`
}

// Result records the judged outcome of one submission.
type Result struct {
	SubmissionID string        `json:"submissionId"`
	ClueID       int64         `json:"clueId"`
	Player       string        `json:"player"`
	GivenAnswer  string        `json:"givenAnswer"`
	Correct      bool          `json:"correct"`
	PointsDelta  int           `json:"pointsDelta"`
	Source       answer.Source `json:"source"`
	Streak       int64         `json:"streak,omitempty"`
	SubmittedAt  time.Time     `json:"submittedAt"`
}

// DisputeStatus tracks the review lifecycle of a dispute.
type DisputeStatus string

const (
	DisputePending    DisputeStatus = "pending"
	DisputeUpheld     DisputeStatus = "upheld"
	DisputeOverturned DisputeStatus = "overturned"
)

// Dispute is a player's objection to a rejected answer.
type Dispute struct {
	ID           string        `json:"id"`
	SubmissionID string        `json:"submissionId"`
	Player       string        `json:"player"`
	ClueID       int64         `json:"clueId"`
	GivenAnswer  string        `json:"givenAnswer"`
	Reason       string        `json:"reason"`
	Status       DisputeStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
	ReviewedAt   *time.Time    `json:"reviewedAt,omitempty"`
	ReviewNote   string        `json:"reviewNote,omitempty"`
}

// DisputeRequest opens a dispute for a recorded submission.
type DisputeRequest struct {
	SubmissionID string `json:"submissionId"`
	Reason       string `json:"reason"`
}

// ReviewRequest resolves a pending dispute.
type ReviewRequest struct {
	DisputeID string `json:"-"`
	Overturn  bool   `json:"overturn"`
	Note      string `json:"note"`
}

// LeaderboardEntry is one row of the score ranking.
type LeaderboardEntry struct {
	Player string `json:"player"`
	Score  int64  `json:"score"`
}

// DailyClue is the deterministic clue-of-the-day.
type DailyClue struct {
	Date string `json:"date"`
	Clue Clue   `json:"clue"`
}

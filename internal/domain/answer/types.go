package answer

import "github.com/pbryant/clueboard/pkg/metrics"

// Source identifies which signal produced a verdict.
type Source string

const (
	// SourceRule means the deterministic checker decided.
	SourceRule Source = "rule"
	// SourceSemantic means the optional semantic signal overturned a
	// rule rejection.
	SourceSemantic Source = "semantic"
)

// Request carries one player submission to judge.
type Request struct {
	UserAnswer    string `json:"userAnswer"`
	CorrectAnswer string `json:"correctAnswer"`
	BasePoints    int    `json:"basePoints"`
}

// Verdict is the judging outcome returned to callers.
type Verdict struct {
	Correct    bool                `json:"correct"`
	Points     int                 `json:"points"`
	Source     Source              `json:"source"`
	TokenUsage *metrics.TokenUsage `json:"tokenUsage,omitempty"`
}

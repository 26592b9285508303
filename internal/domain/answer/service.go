package answer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pbryant/clueboard/internal/infra/llm/chatgpt"
	apperrors "github.com/pbryant/clueboard/pkg/errors"
	"github.com/pbryant/clueboard/pkg/metrics"
)

// Service judges player submissions. The deterministic checker is
// authoritative; a configured semantic client is consulted only as a
// secondary signal when the rules reject, and its failures never surface
// to the caller.
type Service interface {
	Judge(ctx context.Context, req Request) (Verdict, error)
}

// ChatClient is the slice of the ChatGPT client the judge needs.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, req chatgpt.ChatCompletionRequest) (chatgpt.ChatCompletionResponse, error)
	CountTokens(model, text string) int
}

type service struct {
	cfg    Config
	client ChatClient
	logger *slog.Logger
}

// NewService wires up the judging domain. client may be nil, in which case
// only the rule-based checker runs.
func NewService(cfg Config, client ChatClient, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		client: client,
		logger: logger.With("component", "answer.service"),
	}
}

func (s *service) Judge(ctx context.Context, req Request) (Verdict, error) {
	correct := strings.TrimSpace(req.CorrectAnswer)
	if correct == "" {
		return Verdict{}, apperrors.Wrap("invalid_input", "correct answer cannot be empty", nil)
	}
	if req.BasePoints < 0 {
		return Verdict{}, apperrors.Wrap("invalid_input", "base points cannot be negative", nil)
	}

	if Check(req.UserAnswer, correct) {
		return Verdict{
			Correct: true,
			Points:  Points(req.UserAnswer, correct, req.BasePoints),
			Source:  SourceRule,
		}, nil
	}

	rejected := Verdict{Correct: false, Source: SourceRule}
	if !s.cfg.SemanticEnabled || s.client == nil {
		return rejected, nil
	}

	accepted, usage, err := s.consultSemantic(ctx, req.UserAnswer, correct)
	if err != nil {
		s.logger.Warn("semantic check failed, keeping rule verdict", "error", err)
		return rejected, nil
	}
	if !accepted {
		rejected.TokenUsage = usage
		return rejected, nil
	}

	return Verdict{
		Correct:    true,
		Points:     fuzzyPoints(req.BasePoints),
		Source:     SourceSemantic,
		TokenUsage: usage,
	}, nil
}

// consultSemantic asks the model for a YES/NO equivalence verdict. The
// answer is advisory: acceptance awards discounted points, never full.
func (s *service) consultSemantic(ctx context.Context, userAnswer, correctAnswer string) (bool, *metrics.TokenUsage, error) {
	if s.cfg.SemanticTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.SemanticTimeout)
		defer cancel()
	}

	prompt := strings.TrimSpace(s.cfg.Prompt)
	if prompt == "" {
		prompt = "You are a trivia judge. Decide whether a player's answer refers to the same thing as the canonical answer. Reply with YES or NO only."
	}
	question := fmt.Sprintf("Canonical answer: %q\nPlayer answer: %q\nAre they equivalent?", correctAnswer, userAnswer)

	resp, err := s.client.CreateChatCompletion(ctx, chatgpt.ChatCompletionRequest{
		Model: s.cfg.Model,
		Messages: []chatgpt.Message{
			{Role: "system", Content: prompt},
			{Role: "user", Content: question},
		},
		Temperature: s.cfg.Temperature,
		MaxTokens:   4,
	})
	if err != nil {
		return false, nil, err
	}
	if len(resp.Choices) == 0 {
		return false, nil, apperrors.Wrap("llm_error", "chatgpt returned no choices", nil)
	}

	reply := strings.ToUpper(strings.TrimSpace(resp.Choices[0].Message.Content))
	promptTokens := s.client.CountTokens(s.cfg.Model, prompt+"\n"+question)
	completionTokens := s.client.CountTokens(s.cfg.Model, reply)
	usage := &metrics.TokenUsage{
		PromptTokens:     promptTokens,
		CompletionTokens: completionTokens,
		TotalTokens:      promptTokens + completionTokens,
	}
	return strings.HasPrefix(reply, "YES"), usage, nil
}

func fuzzyPoints(basePoints int) int {
	if basePoints <= 0 {
		return 0
	}
	return int(float64(basePoints) * fuzzyPointsFactor)
}

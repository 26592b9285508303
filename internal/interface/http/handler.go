package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pbryant/clueboard/internal/domain/answer"
	"github.com/pbryant/clueboard/internal/domain/game"
	apperrors "github.com/pbryant/clueboard/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	answerSvc answer.Service
	gameSvc   game.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(answerSvc answer.Service, gameSvc game.Service, logger *slog.Logger) *Handler {
	return &Handler{
		answerSvc: answerSvc,
		gameSvc:   gameSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// CheckAnswer judges a free-form response against an accepted answer.
func (h *Handler) CheckAnswer(c *gin.Context) {
	var req answer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	verdict, err := h.answerSvc.Judge(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "judge_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, verdict)
}

// ScoreAnswer judges a response and reports the points it is worth.
func (h *Handler) ScoreAnswer(c *gin.Context) {
	var req answer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	verdict, err := h.answerSvc.Judge(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "judge_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"correct": verdict.Correct, "points": verdict.Points, "source": verdict.Source})
}

// SubmitAnswer records a player's response to a clue and updates scores.
func (h *Handler) SubmitAnswer(c *gin.Context) {
	var req game.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	result, err := h.gameSvc.Submit(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, gameError(err, "submit_failed"))
		return
	}

	c.JSON(http.StatusOK, result)
}

// DailyClue returns the deterministic clue-of-the-day.
func (h *Handler) DailyClue(c *gin.Context) {
	date := c.Query("date")

	daily, err := h.gameSvc.DailyClue(c.Request.Context(), date)
	if err != nil {
		abortWithError(c, gameError(err, "daily_clue_failed"))
		return
	}

	c.JSON(http.StatusOK, daily)
}

// Leaderboard returns the top ranked players.
func (h *Handler) Leaderboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be an integer", err))
			return
		}
		limit = parsed
	}

	entries, err := h.gameSvc.Leaderboard(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, gameError(err, "leaderboard_failed"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"leaderboard": entries})
}

// FileDispute opens a dispute against a rejected submission.
func (h *Handler) FileDispute(c *gin.Context) {
	var req game.DisputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	dispute, err := h.gameSvc.FileDispute(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, gameError(err, "dispute_failed"))
		return
	}

	c.JSON(http.StatusCreated, dispute)
}

// ReviewDispute resolves a pending dispute, optionally crediting the player.
func (h *Handler) ReviewDispute(c *gin.Context) {
	var req game.ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	req.DisputeID = c.Param("id")

	dispute, err := h.gameSvc.ReviewDispute(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, gameError(err, "review_failed"))
		return
	}

	c.JSON(http.StatusOK, dispute)
}

func gameError(err error, fallback string) *HTTPError {
	status := http.StatusInternalServerError
	code := fallback
	switch {
	case apperrors.IsCode(err, "invalid_input"):
		status = http.StatusBadRequest
		code = "invalid_request"
	case apperrors.IsCode(err, "not_found"):
		status = http.StatusNotFound
		code = "not_found"
	}
	return NewHTTPError(status, code, errMessage(err), err)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

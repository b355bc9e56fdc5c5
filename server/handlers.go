package server

import (
	stderrors "errors"
	"log/slog"
	"net/http"
	"time"

	"social-intel/contract"
	"social-intel/domain"
	"social-intel/errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

var validate = validator.New()

type Handler struct {
	analyzer contract.Analyzer
	log      *slog.Logger
}

func NewHandler(log *slog.Logger, analyzer contract.Analyzer) *Handler {
	return &Handler{analyzer: analyzer, log: log}
}

type AnalyzeRequest struct {
	Text     string `json:"text" validate:"required"`
	Language string `json:"language" validate:"omitempty,oneof=en ta hi te"`
	Platform string `json:"platform"`
	Author   string `json:"author"`
	District string `json:"district"`
}

// BatchAnalyzeRequest deliberately does not validate item fields: a bad
// item inside a batch degrades to the safe default downstream instead of
// rejecting the whole call. Only the batch itself must be non-empty.
type BatchAnalyzeRequest struct {
	Posts []AnalyzeRequest `json:"posts" validate:"required,min=1"`
}

type BatchAnalyzeResponse struct {
	Results []domain.Analysis `json:"results"`
}

func (r AnalyzeRequest) toPost() domain.Post {
	return domain.Post{
		ID:        uuid.NewString(),
		Platform:  domain.Platform(r.Platform),
		Content:   r.Text,
		Author:    r.Author,
		District:  r.District,
		Language:  r.Language,
		CreatedAt: time.Now().UTC(),
	}
}

// Analyze handles POST /api/analyze.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	start := time.Now()
	analysis, err := h.analyzer.Analyze(req.toPost())
	if err != nil {
		h.fail(c, err)
		return
	}
	analysisDuration.Observe(time.Since(start).Seconds())
	analysesTotal.WithLabelValues(string(analysis.Language), string(analysis.ThreatLevel)).Inc()

	c.JSON(http.StatusOK, analysis)
}

// AnalyzeBatch handles POST /api/analyze/batch. Results come back in
// request order; a bad item inside the batch degrades to the safe
// default instead of failing the call.
func (h *Handler) AnalyzeBatch(c *gin.Context) {
	var req BatchAnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := validate.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	posts := make([]domain.Post, len(req.Posts))
	for i, item := range req.Posts {
		posts[i] = item.toPost()
	}

	results, err := h.analyzer.AnalyzeBatch(c.Request.Context(), posts)
	if err != nil {
		h.fail(c, err)
		return
	}
	batchSize.Observe(float64(len(results)))
	for _, analysis := range results {
		analysesTotal.WithLabelValues(string(analysis.Language), string(analysis.ThreatLevel)).Inc()
	}

	c.JSON(http.StatusOK, BatchAnalyzeResponse{Results: results})
}

// Languages handles GET /api/languages.
func (h *Handler) Languages(c *gin.Context) {
	c.JSON(http.StatusOK, h.analyzer.Languages())
}

// Health handles GET /healthz.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) fail(c *gin.Context, err error) {
	switch {
	case stderrors.Is(err, errors.ErrEmptyContent), stderrors.Is(err, errors.ErrEmptyBatch):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case stderrors.Is(err, errors.ErrNotInitialized):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		h.log.Error("analysis request failed", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

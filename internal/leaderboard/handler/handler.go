package handler

import (
	"net/http"

	"growth-server/internal/apierrors"
	"growth-server/internal/auth"
	"growth-server/internal/leaderboard"
	"growth-server/internal/observability"
	"growth-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler handles HTTP requests for the leaderboard API
type Handler struct {
	processor *leaderboard.Processor
	logger    *observability.Logger
}

func New(processor *leaderboard.Processor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// LeaderboardQuery selects a bucket. An empty period means the current one.
type LeaderboardQuery struct {
	Type   string `form:"type" binding:"required"`
	Period string `form:"period"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type EntryResponse struct {
	Rank        int       `json:"rank"`
	CreatorID   uuid.UUID `json:"creator_id"`
	DisplayName string    `json:"display_name"`
	Handle      string    `json:"handle"`
	Value       float64   `json:"value"`
}

type LeaderboardResponse struct {
	Type    string          `json:"type"`
	Period  string          `json:"period"`
	Entries []EntryResponse `json:"entries"`
}

func toEntryResponse(e store.LeaderboardEntry) EntryResponse {
	return EntryResponse{
		Rank:        e.Rank,
		CreatorID:   e.CreatorID,
		DisplayName: e.DisplayName,
		Handle:      e.Handle,
		Value:       e.Value,
	}
}

func (h *Handler) resolvePeriod(q LeaderboardQuery) (string, error) {
	if q.Period != "" {
		return q.Period, nil
	}
	return h.processor.CurrentPeriod(q.Type)
}

// HandleGetLeaderboard handles GET /api/leaderboard
func (h *Handler) HandleGetLeaderboard(c *gin.Context) {
	ctx := c.Request.Context()

	var q LeaderboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	period, err := h.resolvePeriod(q)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	entries, err := h.processor.GetTop(ctx, q.Type, period, q.Limit)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	resp := LeaderboardResponse{Type: q.Type, Period: period, Entries: make([]EntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

// HandleGetMyStanding handles GET /api/leaderboard/me
func (h *Handler) HandleGetMyStanding(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var q LeaderboardQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	period, err := h.resolvePeriod(q)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	entry, err := h.processor.GetStanding(ctx, q.Type, period, actor.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, toEntryResponse(entry))
}

type ImportEntriesRequest struct {
	Type    string `json:"type" binding:"required"`
	Period  string `json:"period" binding:"required"`
	Entries []struct {
		CreatorID uuid.UUID `json:"creator_id" binding:"required"`
		Value     float64   `json:"value" binding:"min=0"`
	} `json:"entries" binding:"required,min=1,dive"`
}

// HandleImportEntries handles POST /api/admin/leaderboard/entries
func (h *Handler) HandleImportEntries(c *gin.Context) {
	ctx := c.Request.Context()

	var req ImportEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	values := make([]leaderboard.EntryValue, len(req.Entries))
	for i, e := range req.Entries {
		values[i] = leaderboard.EntryValue{CreatorID: e.CreatorID, Value: e.Value}
	}

	ranked, err := h.processor.ImportEntries(ctx, req.Type, req.Period, values)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	resp := LeaderboardResponse{Type: req.Type, Period: req.Period, Entries: make([]EntryResponse, 0, len(ranked))}
	for _, e := range ranked {
		resp.Entries = append(resp.Entries, toEntryResponse(e))
	}
	c.JSON(http.StatusOK, resp)
}

type RecomputeRequest struct {
	Type   string `json:"type" binding:"required"`
	Period string `json:"period" binding:"required"`
}

// HandleRecompute handles POST /api/admin/leaderboard/recompute
func (h *Handler) HandleRecompute(c *gin.Context) {
	ctx := c.Request.Context()

	var req RecomputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}
	if err := leaderboard.ValidatePeriod(req.Type, req.Period); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	ranked, err := h.processor.Recompute(ctx, req.Type, req.Period)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"type": req.Type, "period": req.Period, "entries": len(ranked)})
}

package handler

import (
	"net/http"

	"growth-server/internal/apierrors"
	"growth-server/internal/auth"
	"growth-server/internal/competitions/processor"
	"growth-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CompetitionProcessor
	logger    *observability.Logger
}

func New(processor processor.CompetitionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// StartCompetitionRequest represents the HTTP request for starting a competition
type StartCompetitionRequest struct {
	Type         string `json:"type" binding:"required,oneof=volume gmv"`
	Name         string `json:"name" binding:"required,max=255"`
	DurationDays int    `json:"duration_days" binding:"required,min=1,max=365"`
}

// FinalizePeriodRequest represents the HTTP request for paying a closed week or month
type FinalizePeriodRequest struct {
	Type   string `json:"type" binding:"required,oneof=volume gmv"`
	Period string `json:"period" binding:"required,max=16"`
}

// ActiveQuery selects the competition type
type ActiveQuery struct {
	Type string `form:"type" binding:"required,oneof=volume gmv"`
}

// ListQuery holds paging and filter parameters
type ListQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=active ended finalized"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func parseCompetitionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("competition_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid competition id"))
		return uuid.Nil, false
	}
	return id, true
}

// HandleStart handles POST /api/admin/competitions
func (h *Handler) HandleStart(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req StartCompetitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	competition, err := h.processor.Start(ctx, actor.ID, processor.StartRequest{
		Type:         req.Type,
		Name:         req.Name,
		DurationDays: req.DurationDays,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, competition)
}

// HandleEnd handles PUT /api/admin/competitions/:competition_id/end
func (h *Handler) HandleEnd(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	competitionID, ok := parseCompetitionID(c)
	if !ok {
		return
	}

	competition, err := h.processor.End(ctx, actor.ID, competitionID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// HandleFinalize handles POST /api/admin/competitions/:competition_id/finalize
func (h *Handler) HandleFinalize(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	competitionID, ok := parseCompetitionID(c)
	if !ok {
		return
	}

	competition, err := h.processor.Finalize(ctx, actor.ID, competitionID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// HandleFinalizePeriod handles POST /api/admin/leaderboard/finalize
func (h *Handler) HandleFinalizePeriod(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req FinalizePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.FinalizePeriod(ctx, actor.ID, req.Type, req.Period)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetActive handles GET /api/competitions/active
func (h *Handler) HandleGetActive(c *gin.Context) {
	ctx := c.Request.Context()

	var q ActiveQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	competition, err := h.processor.GetActive(ctx, q.Type)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// HandleGet handles GET /api/competitions/:competition_id
func (h *Handler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()

	competitionID, ok := parseCompetitionID(c)
	if !ok {
		return
	}

	competition, err := h.processor.Get(ctx, competitionID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, competition)
}

// HandleList handles GET /api/competitions
func (h *Handler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	competitions, err := h.processor.List(ctx, q.Status, q.Limit, q.Offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"competitions": competitions})
}

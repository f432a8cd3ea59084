package handler

import (
	"net/http"

	"growth-server/internal/apierrors"
	"growth-server/internal/auth"
	"growth-server/internal/milestones/processor"
	"growth-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.MilestoneProcessor
	logger    *observability.Logger
}

func New(processor processor.MilestoneProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ReviewRequest represents the HTTP request for deciding a milestone claim
type ReviewRequest struct {
	Decision        string `json:"decision" binding:"required,oneof=approved rejected"`
	VerifiedViews   *int64 `json:"verified_views" binding:"omitempty,min=0"`
	RejectionReason string `json:"rejection_reason" binding:"max=2000"`
}

// HandleReview handles PUT /api/admin/submissions/:submission_id/review
func (h *Handler) HandleReview(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	submissionID, err := uuid.Parse(c.Param("submission_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid submission id"))
		return
	}

	var req ReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.Review(ctx, actor.ID, submissionID, processor.ReviewRequest{
		Decision:        req.Decision,
		VerifiedViews:   req.VerifiedViews,
		RejectionReason: req.RejectionReason,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

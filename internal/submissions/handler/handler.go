package handler

import (
	"net/http"

	"growth-server/internal/apierrors"
	"growth-server/internal/auth"
	"growth-server/internal/observability"
	"growth-server/internal/submissions/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.SubmissionProcessor
	logger    *observability.Logger
}

func New(processor processor.SubmissionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// LinkSubmissionRequest represents the HTTP request for submitting a published post
type LinkSubmissionRequest struct {
	URL string `json:"url" binding:"required,url,max=2048"`
}

// MilestoneSubmissionRequest represents the HTTP request for claiming a view milestone
type MilestoneSubmissionRequest struct {
	URL  string `json:"url" binding:"required,url,max=2048"`
	Tier string `json:"tier" binding:"required,oneof=100k 500k 1m"`
}

// UploadRequest represents the HTTP request for a presigned video upload
type UploadRequest struct {
	ContentType string `json:"content_type" binding:"required,oneof=video/mp4 video/quicktime video/webm"`
}

// ConfirmUploadRequest represents the HTTP request sent after the upload finished
type ConfirmUploadRequest struct {
	StoragePath string `json:"storage_path" binding:"required,max=1024"`
}

// ListQuery holds paging and filter parameters
type ListQuery struct {
	Status string `form:"status"`
	Kind   string `form:"kind" binding:"omitempty,oneof=link file milestone"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

// HandleSubmitLink handles POST /api/submissions
func (h *Handler) HandleSubmitLink(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req LinkSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SubmitLink(ctx, actor.ID, req.URL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandlePrepareUpload handles POST /api/submissions/uploads
func (h *Handler) HandlePrepareUpload(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	target, err := h.processor.PrepareUpload(ctx, actor.ID, req.ContentType)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, target)
}

// HandleConfirmUpload handles POST /api/submissions/files
func (h *Handler) HandleConfirmUpload(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req ConfirmUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.ConfirmUpload(ctx, actor.ID, req.StoragePath)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleSubmitMilestone handles POST /api/submissions/milestones
func (h *Handler) HandleSubmitMilestone(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req MilestoneSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SubmitMilestone(ctx, actor.ID, req.URL, req.Tier)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleSubmitCollab handles POST /api/submissions/collabs
func (h *Handler) HandleSubmitCollab(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req LinkSubmissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.SubmitCollab(ctx, actor.ID, req.URL)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// HandleGet handles GET /api/submissions/:submission_id
func (h *Handler) HandleGet(c *gin.Context) {
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

	submission, err := h.processor.Get(ctx, actor.ID, actor.IsAdmin(), submissionID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, submission)
}

// HandleListMine handles GET /api/me/submissions
func (h *Handler) HandleListMine(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	submissions, err := h.processor.ListForCreator(ctx, actor.ID, q.Limit, q.Offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

// HandleListForReview handles GET /api/admin/submissions
func (h *Handler) HandleListForReview(c *gin.Context) {
	ctx := c.Request.Context()

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	submissions, err := h.processor.ListByStatus(ctx, q.Status, q.Kind, q.Limit, q.Offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"submissions": submissions})
}

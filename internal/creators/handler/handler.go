package handler

import (
	"net/http"

	"growth-server/internal/apierrors"
	"growth-server/internal/auth"
	"growth-server/internal/creators/processor"
	"growth-server/internal/observability"
	"growth-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CreatorProcessor
	logger    *observability.Logger
}

func New(processor processor.CreatorProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateCreatorRequest represents the HTTP request for registering a creator
type CreateCreatorRequest struct {
	DisplayName     string         `json:"display_name" binding:"required,max=255"`
	Handle          string         `json:"handle" binding:"required,max=100"`
	Email           string         `json:"email" binding:"omitempty,email"`
	ShippingAddress *store.Address `json:"shipping_address,omitempty"`
}

// UpdateCreatorRequest represents the HTTP request for changing a creator profile
type UpdateCreatorRequest struct {
	DisplayName     *string        `json:"display_name" binding:"omitempty,max=255"`
	Handle          *string        `json:"handle" binding:"omitempty,max=100"`
	Email           *string        `json:"email" binding:"omitempty,email"`
	ShippingAddress *store.Address `json:"shipping_address,omitempty"`
}

// OpenCollaborationRequest represents the HTTP request for starting a brand collaboration
type OpenCollaborationRequest struct {
	BrandName string `json:"brand_name" binding:"required,max=255"`
}

func parseCreatorID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("creator_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid creator id"))
		return uuid.Nil, false
	}
	return id, true
}

// HandleCreate handles POST /api/admin/creators
func (h *Handler) HandleCreate(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	creator, err := h.processor.Create(ctx, processor.CreateCreatorRequest{
		DisplayName:     req.DisplayName,
		Handle:          req.Handle,
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, creator)
}

// HandleGet handles GET /api/admin/creators/:creator_id
func (h *Handler) HandleGet(c *gin.Context) {
	creatorID, ok := parseCreatorID(c)
	if !ok {
		return
	}
	h.respondWithCreator(c, creatorID)
}

// HandleGetMe handles GET /api/me
func (h *Handler) HandleGetMe(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	h.respondWithCreator(c, actor.ID)
}

func (h *Handler) respondWithCreator(c *gin.Context, creatorID uuid.UUID) {
	creator, err := h.processor.Get(c.Request.Context(), creatorID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, creator)
}

// HandleUpdate handles PUT /api/admin/creators/:creator_id
func (h *Handler) HandleUpdate(c *gin.Context) {
	creatorID, ok := parseCreatorID(c)
	if !ok {
		return
	}
	h.update(c, creatorID)
}

// HandleUpdateMe handles PUT /api/me
func (h *Handler) HandleUpdateMe(c *gin.Context) {
	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	h.update(c, actor.ID)
}

func (h *Handler) update(c *gin.Context, creatorID uuid.UUID) {
	var req UpdateCreatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	creator, err := h.processor.Update(c.Request.Context(), creatorID, processor.UpdateCreatorRequest{
		DisplayName:     req.DisplayName,
		Handle:          req.Handle,
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, creator)
}

// HandleResync handles POST /api/admin/creators/:creator_id/resync
func (h *Handler) HandleResync(c *gin.Context) {
	ctx := c.Request.Context()

	creatorID, ok := parseCreatorID(c)
	if !ok {
		return
	}

	result, err := h.processor.Resync(ctx, creatorID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleOpenCollaboration handles POST /api/admin/creators/:creator_id/collaborations
func (h *Handler) HandleOpenCollaboration(c *gin.Context) {
	ctx := c.Request.Context()

	creatorID, ok := parseCreatorID(c)
	if !ok {
		return
	}

	var req OpenCollaborationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	collab, err := h.processor.OpenCollaboration(ctx, creatorID, req.BrandName)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collab)
}

// HandleCompleteCollaboration handles PUT /api/admin/creators/:creator_id/collaborations/complete
func (h *Handler) HandleCompleteCollaboration(c *gin.Context) {
	ctx := c.Request.Context()

	creatorID, ok := parseCreatorID(c)
	if !ok {
		return
	}

	collab, err := h.processor.CompleteCollaboration(ctx, creatorID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, collab)
}

// HandleGetMyCollaboration handles GET /api/me/collaboration
func (h *Handler) HandleGetMyCollaboration(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	collab, err := h.processor.GetActiveCollaboration(ctx, actor.ID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, collab)
}

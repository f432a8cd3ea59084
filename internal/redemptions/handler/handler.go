package handler

import (
	"net/http"

	"growth-server/internal/apierrors"
	"growth-server/internal/auth"
	"growth-server/internal/observability"
	"growth-server/internal/redemptions/processor"
	"growth-server/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.RedemptionProcessor
	logger    *observability.Logger
}

func New(processor processor.RedemptionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ClaimRequest represents the HTTP request a creator sends to claim a reward
type ClaimRequest struct {
	PaymentMethod   string         `json:"payment_method" binding:"omitempty,max=50"`
	PaymentHandle   string         `json:"payment_handle" binding:"omitempty,max=255"`
	ShippingAddress *store.Address `json:"shipping_address,omitempty"`
}

// FulfillRequest represents the HTTP request an admin sends after delivering a reward
type FulfillRequest struct {
	TrackingNumber  string `json:"tracking_number" binding:"omitempty,max=255"`
	StoreCreditCode string `json:"store_credit_code" binding:"omitempty,max=255"`
	PaymentMethod   string `json:"payment_method" binding:"omitempty,max=50"`
	Note            string `json:"note" binding:"omitempty,max=2000"`
}

// ManualRedemptionRequest represents the HTTP request for granting a reward by hand
type ManualRedemptionRequest struct {
	CreatorID uuid.UUID `json:"creator_id" binding:"required"`
	RewardID  uuid.UUID `json:"reward_id" binding:"required"`
	SourceID  string    `json:"source_id" binding:"required,max=255"`
}

// ListQuery holds paging and filter parameters
type ListQuery struct {
	Status string `form:"status"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=200"`
	Offset int    `form:"offset" binding:"omitempty,min=0"`
}

func parseRedemptionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("redemption_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid redemption id"))
		return uuid.Nil, false
	}
	return id, true
}

// HandleClaim handles POST /api/redemptions/:redemption_id/claim
func (h *Handler) HandleClaim(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	redemptionID, ok := parseRedemptionID(c)
	if !ok {
		return
	}

	var req ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	redemption, err := h.processor.Claim(ctx, actor.ID, redemptionID, processor.ClaimRequest{
		PaymentMethod:   req.PaymentMethod,
		PaymentHandle:   req.PaymentHandle,
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, redemption)
}

// HandleFulfill handles PUT /api/redemptions/:redemption_id
func (h *Handler) HandleFulfill(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	redemptionID, ok := parseRedemptionID(c)
	if !ok {
		return
	}

	var req FulfillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	redemption, err := h.processor.Fulfill(ctx, actor.ID, redemptionID, processor.FulfillRequest{
		TrackingNumber:  req.TrackingNumber,
		StoreCreditCode: req.StoreCreditCode,
		PaymentMethod:   req.PaymentMethod,
		Note:            req.Note,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, redemption)
}

// HandleApprove handles PUT /api/admin/redemptions/:redemption_id/approve
func (h *Handler) HandleApprove(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	redemptionID, ok := parseRedemptionID(c)
	if !ok {
		return
	}

	redemption, err := h.processor.Approve(ctx, actor.ID, redemptionID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, redemption)
}

// HandleCreateManual handles POST /api/admin/redemptions
func (h *Handler) HandleCreateManual(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	var req ManualRedemptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	redemption, err := h.processor.CreateManual(ctx, actor.ID, processor.ManualRequest{
		CreatorID: req.CreatorID,
		RewardID:  req.RewardID,
		SourceID:  req.SourceID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, redemption)
}

// HandleGet handles GET /api/redemptions/:redemption_id
func (h *Handler) HandleGet(c *gin.Context) {
	ctx := c.Request.Context()

	actor, err := auth.ActorFromContext(c)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}
	redemptionID, ok := parseRedemptionID(c)
	if !ok {
		return
	}

	redemption, err := h.processor.Get(ctx, actor.ID, actor.IsAdmin(), redemptionID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, redemption)
}

// HandleListMine handles GET /api/me/redemptions
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

	redemptions, err := h.processor.ListForCreator(ctx, actor.ID, q.Limit, q.Offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redemptions": redemptions})
}

// HandleList handles GET /api/admin/redemptions
func (h *Handler) HandleList(c *gin.Context) {
	ctx := c.Request.Context()

	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	redemptions, err := h.processor.ListByStatus(ctx, q.Status, q.Limit, q.Offset)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"redemptions": redemptions})
}

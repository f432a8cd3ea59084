package handler

import (
	"net/http"

	"growth-server/internal/apierrors"
	"growth-server/internal/observability"
	"growth-server/internal/rewards/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.RewardProcessor
	logger    *observability.Logger
}

func New(processor processor.RewardProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// CreateRewardRequest represents the HTTP request for adding a reward to the catalog
type CreateRewardRequest struct {
	Name             string  `json:"name" binding:"required,max=255"`
	Description      *string `json:"description,omitempty"`
	Category         string  `json:"category" binding:"required,oneof=milestone volume gmv competition"`
	Tier             *string `json:"tier,omitempty" binding:"omitempty,oneof=100k 500k 1m"`
	Rank             *int    `json:"rank,omitempty" binding:"omitempty,min=1"`
	FulfillmentType  string  `json:"fulfillment_type" binding:"required,oneof=cash store_credit product mixed"`
	CashAmountCents  int64   `json:"cash_amount_cents" binding:"min=0"`
	StoreCreditCents int64   `json:"store_credit_cents" binding:"min=0"`
	ProductName      *string `json:"product_name,omitempty"`
}

// SetRewardStatusRequest represents the HTTP request for retiring or restoring a reward
type SetRewardStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=active inactive"`
}

// HandleCreateReward creates a new reward
func (h *Handler) HandleCreateReward(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateRewardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	reward, err := h.processor.CreateReward(ctx, processor.CreateRewardRequest{
		Name:             req.Name,
		Description:      req.Description,
		Category:         req.Category,
		Tier:             req.Tier,
		Rank:             req.Rank,
		FulfillmentType:  req.FulfillmentType,
		CashAmountCents:  req.CashAmountCents,
		StoreCreditCents: req.StoreCreditCents,
		ProductName:      req.ProductName,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reward)
}

// HandleListRewards lists the catalog. ?category= filters.
func (h *Handler) HandleListRewards(c *gin.Context) {
	ctx := c.Request.Context()

	rewards, err := h.processor.ListRewards(ctx, c.Query("category"))
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, rewards)
}

// HandleGetReward retrieves one reward
func (h *Handler) HandleGetReward(c *gin.Context) {
	ctx := c.Request.Context()

	rewardID, err := uuid.Parse(c.Param("reward_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid reward id"))
		return
	}

	reward, err := h.processor.GetReward(ctx, rewardID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reward)
}

// HandleSetRewardStatus activates or deactivates a reward
func (h *Handler) HandleSetRewardStatus(c *gin.Context) {
	ctx := c.Request.Context()

	rewardID, err := uuid.Parse(c.Param("reward_id"))
	if err != nil {
		apierrors.RespondWithError(c, apierrors.BadRequest(apierrors.CodeInvalidInput, "invalid reward id"))
		return
	}

	var req SetRewardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	reward, err := h.processor.SetRewardActive(ctx, rewardID, req.Status == "active")
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, reward)
}

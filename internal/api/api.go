package api

import (
	"net/http"

	"growth-server/internal/auth"
	competitionHandler "growth-server/internal/competitions/handler"
	creatorHandler "growth-server/internal/creators/handler"
	leaderboardHandler "growth-server/internal/leaderboard/handler"
	milestoneHandler "growth-server/internal/milestones/handler"
	redemptionHandler "growth-server/internal/redemptions/handler"
	rewardHandler "growth-server/internal/rewards/handler"
	submissionHandler "growth-server/internal/submissions/handler"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP handler the API exposes
type Handlers struct {
	Submissions  submissionHandler.Handler
	Leaderboard  leaderboardHandler.Handler
	Competitions competitionHandler.Handler
	Milestones   milestoneHandler.Handler
	Redemptions  redemptionHandler.Handler
	Rewards      rewardHandler.Handler
	Creators     creatorHandler.Handler
}

type API struct {
	router       *gin.RouterGroup
	authenticate gin.HandlerFunc
	handlers     Handlers
}

func New(router *gin.RouterGroup, authenticate gin.HandlerFunc, handlers Handlers) API {
	return API{
		router:       router,
		authenticate: authenticate,
		handlers:     handlers,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	h := &a.handlers

	apiGroup := a.router.Group("/api", a.authenticate)
	creatorOnly := auth.RequireRole(auth.RoleCreator)
	{
		submissions := apiGroup.Group("/submissions")
		submissions.POST("", creatorOnly, h.Submissions.HandleSubmitLink)
		submissions.POST("/uploads", creatorOnly, h.Submissions.HandlePrepareUpload)
		submissions.POST("/files", creatorOnly, h.Submissions.HandleConfirmUpload)
		submissions.POST("/milestones", creatorOnly, h.Submissions.HandleSubmitMilestone)
		submissions.POST("/collabs", creatorOnly, h.Submissions.HandleSubmitCollab)
		submissions.GET("/:submission_id", h.Submissions.HandleGet)

		apiGroup.GET("/leaderboard", h.Leaderboard.HandleGetLeaderboard)
		apiGroup.GET("/leaderboard/me", h.Leaderboard.HandleGetMyStanding)

		competitions := apiGroup.Group("/competitions")
		competitions.GET("", h.Competitions.HandleList)
		competitions.GET("/active", h.Competitions.HandleGetActive)
		competitions.GET("/:competition_id", h.Competitions.HandleGet)

		redemptions := apiGroup.Group("/redemptions")
		redemptions.GET("/:redemption_id", h.Redemptions.HandleGet)
		redemptions.POST("/:redemption_id/claim", creatorOnly, h.Redemptions.HandleClaim)

		// the caller's own creator profile; admins have none
		me := apiGroup.Group("/me", creatorOnly)
		me.GET("", h.Creators.HandleGetMe)
		me.PUT("", h.Creators.HandleUpdateMe)
		me.GET("/collaboration", h.Creators.HandleGetMyCollaboration)
		me.GET("/submissions", h.Submissions.HandleListMine)
		me.GET("/redemptions", h.Redemptions.HandleListMine)
	}

	adminGroup := apiGroup.Group("/admin", auth.RequireRole(auth.RoleAdmin))
	{
		adminGroup.GET("/submissions", h.Submissions.HandleListForReview)
		adminGroup.PUT("/submissions/:submission_id/review", h.Milestones.HandleReview)

		adminGroup.POST("/leaderboard/entries", h.Leaderboard.HandleImportEntries)
		adminGroup.POST("/leaderboard/recompute", h.Leaderboard.HandleRecompute)
		adminGroup.POST("/leaderboard/finalize", h.Competitions.HandleFinalizePeriod)

		adminGroup.POST("/competitions", h.Competitions.HandleStart)
		adminGroup.PUT("/competitions/:competition_id/end", h.Competitions.HandleEnd)
		adminGroup.POST("/competitions/:competition_id/finalize", h.Competitions.HandleFinalize)

		adminGroup.GET("/redemptions", h.Redemptions.HandleList)
		adminGroup.POST("/redemptions", h.Redemptions.HandleCreateManual)
		adminGroup.PUT("/redemptions/:redemption_id", h.Redemptions.HandleFulfill)
		adminGroup.PUT("/redemptions/:redemption_id/approve", h.Redemptions.HandleApprove)

		adminGroup.GET("/rewards", h.Rewards.HandleListRewards)
		adminGroup.POST("/rewards", h.Rewards.HandleCreateReward)
		adminGroup.GET("/rewards/:reward_id", h.Rewards.HandleGetReward)
		adminGroup.PUT("/rewards/:reward_id/status", h.Rewards.HandleSetRewardStatus)

		adminGroup.POST("/creators", h.Creators.HandleCreate)
		adminGroup.GET("/creators/:creator_id", h.Creators.HandleGet)
		adminGroup.PUT("/creators/:creator_id", h.Creators.HandleUpdate)
		adminGroup.POST("/creators/:creator_id/resync", h.Creators.HandleResync)
		adminGroup.POST("/creators/:creator_id/collaborations", h.Creators.HandleOpenCollaboration)
		adminGroup.PUT("/creators/:creator_id/collaborations/complete", h.Creators.HandleCompleteCollaboration)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}

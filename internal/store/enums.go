package store

// Submission ENUMs
const (
	SubmissionKindLink      = "link"
	SubmissionKindFile      = "file"
	SubmissionKindMilestone = "milestone"
)

const (
	SubmissionStatusAutoApproved = "auto_approved"
	SubmissionStatusPending      = "pending"
	SubmissionStatusApproved     = "approved"
	SubmissionStatusRejected     = "rejected"
)

// Milestone tiers
const (
	MilestoneTier100K = "100k"
	MilestoneTier500K = "500k"
	MilestoneTier1M   = "1m"
)

// Leaderboard ENUMs
const (
	LeaderboardTypeVolume = "volume"
	LeaderboardTypeGMV    = "gmv"
)

// Competition ENUMs
const (
	CompetitionStatusActive    = "active"
	CompetitionStatusEnded     = "ended"
	CompetitionStatusFinalized = "finalized"
)

// Reward ENUMs
const (
	RewardCategoryMilestone   = "milestone"
	RewardCategoryVolume      = "volume"
	RewardCategoryGMV         = "gmv"
	RewardCategoryCompetition = "competition"
)

const (
	RewardStatusActive   = "active"
	RewardStatusInactive = "inactive"
)

const (
	FulfillmentTypeCash        = "cash"
	FulfillmentTypeStoreCredit = "store_credit"
	FulfillmentTypeProduct     = "product"
	FulfillmentTypeMixed       = "mixed"
)

// Redemption ENUMs
const (
	RedemptionSourceMilestone   = "milestone_submission"
	RedemptionSourceVolumeWin   = "volume_win"
	RedemptionSourceGMVWin      = "gmv_win"
	RedemptionSourceCompetition = "competition_win"
	RedemptionSourceManual      = "manual"
)

const (
	RedemptionStatusPending       = "pending"
	RedemptionStatusApproved      = "approved"
	RedemptionStatusAwaitingClaim = "awaiting_claim"
	RedemptionStatusClaimed       = "claimed"
	RedemptionStatusFulfilled     = "fulfilled"
)

// Collaboration ENUMs
const (
	CollaborationStatusActive    = "active"
	CollaborationStatusCompleted = "completed"
)

// Counter names
const (
	CounterSubmissions  = "submissions"
	CounterRedemptions  = "redemptions"
	CounterCompetitions = "competitions"
)

package apierrors

import (
	"errors"
	"net/http"
	"strings"

	"growth-server/internal/auth"
	competitionProcessor "growth-server/internal/competitions/processor"
	creatorProcessor "growth-server/internal/creators/processor"
	"growth-server/internal/leaderboard"
	milestoneProcessor "growth-server/internal/milestones/processor"
	redemptionProcessor "growth-server/internal/redemptions/processor"
	rewardProcessor "growth-server/internal/rewards/processor"
	"growth-server/internal/store"
	submissionProcessor "growth-server/internal/submissions/processor"
)

// MapError converts domain/processor errors to APIErrors.
// This function centralizes all error mapping logic to ensure consistent
// error responses across the entire API.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	// Check if already an APIError
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	// Period finalization carries its own message
	var periodErr *competitionProcessor.PeriodFinalizedError
	if errors.As(err, &periodErr) {
		return Conflict(CodePeriodFinalized, periodErr.Error())
	}

	if mapped := mapAuthError(err); mapped != nil {
		return mapped
	}
	if mapped := mapSubmissionError(err); mapped != nil {
		return mapped
	}
	if mapped := mapLeaderboardError(err); mapped != nil {
		return mapped
	}
	if mapped := mapCompetitionError(err); mapped != nil {
		return mapped
	}
	if mapped := mapMilestoneError(err); mapped != nil {
		return mapped
	}
	if mapped := mapRedemptionError(err); mapped != nil {
		return mapped
	}
	if mapped := mapRewardError(err); mapped != nil {
		return mapped
	}
	if mapped := mapCreatorError(err); mapped != nil {
		return mapped
	}

	// Map store errors
	switch {
	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")
	case errors.Is(err, store.ErrStoreConflict):
		return ServiceUnavailable(CodeStoreConflict, "The request conflicted with concurrent updates. Please try again.", err)
	}

	return mapExternalServiceError(err)
}

func mapAuthError(err error) *APIError {
	switch {
	case errors.Is(err, auth.ErrMissingToken):
		return Unauthorized("Authorization token is required")
	case errors.Is(err, auth.ErrExpiredToken):
		return Unauthorized("Authorization token has expired")
	case errors.Is(err, auth.ErrInvalidToken):
		return Unauthorized("Invalid authorization token")
	case errors.Is(err, auth.ErrForbidden):
		return Forbidden("You do not have permission to perform this action")
	}
	return nil
}

func mapSubmissionError(err error) *APIError {
	switch {
	case errors.Is(err, submissionProcessor.ErrDuplicateSubmission):
		return Conflict(CodeDuplicateSubmission, "You have already submitted this video")
	case errors.Is(err, submissionProcessor.ErrInvalidURL):
		return BadRequest(CodeInvalidURL, "Please submit a link to a published post")
	case errors.Is(err, submissionProcessor.ErrInvalidTier):
		return BadRequest(CodeInvalidTier, "Milestone tier must be 100k, 500k or 1m")
	case errors.Is(err, submissionProcessor.ErrInvalidUpload):
		return BadRequest(CodeInvalidUpload, "Invalid upload")
	case errors.Is(err, submissionProcessor.ErrUploadNotFound):
		return NotFound(CodeUploadNotFound, "Uploaded file not found. Please upload it again.")
	case errors.Is(err, submissionProcessor.ErrNoActiveCollaboration):
		return Conflict(CodeNoActiveCollaboration, "You do not have an active collaboration")
	case errors.Is(err, submissionProcessor.ErrCollaborationFull):
		return Conflict(CodeCollaborationFull, "Your collaboration has reached its submission limit")
	case errors.Is(err, submissionProcessor.ErrCreatorNotFound):
		return NotFound(CodeCreatorNotFound, "Creator not found")
	case errors.Is(err, submissionProcessor.ErrSubmissionNotFound):
		return NotFound(CodeSubmissionNotFound, "Submission not found")
	case errors.Is(err, submissionProcessor.ErrInvalidSubmissionState):
		return BadRequest(CodeSubmissionStatus, "Invalid submission status filter")
	}
	return nil
}

func mapLeaderboardError(err error) *APIError {
	switch {
	case errors.Is(err, leaderboard.ErrInvalidType):
		return BadRequest(CodeInvalidLeaderboardType, "Invalid leaderboard type")
	case errors.Is(err, leaderboard.ErrInvalidPeriod):
		return BadRequest(CodeInvalidPeriod, "Invalid leaderboard period")
	case errors.Is(err, leaderboard.ErrInvalidValue):
		return BadRequest(CodeInvalidValue, "Leaderboard values must not be negative")
	case errors.Is(err, leaderboard.ErrNoEntries):
		return BadRequest(CodeNoEntries, "At least one entry is required")
	case errors.Is(err, leaderboard.ErrEntryNotFound):
		return NotFound(CodeEntryNotFound, "You have no entry on this leaderboard yet")
	case errors.Is(err, leaderboard.ErrCompetitionNotFound):
		return NotFound(CodeCompetitionNotFound, "Competition not found")
	case errors.Is(err, leaderboard.ErrCompetitionClosed):
		return Conflict(CodeNotActive, "Competition is no longer accepting entries")
	case errors.Is(err, leaderboard.ErrCreatorNotFound):
		return NotFound(CodeCreatorNotFound, "Creator not found")
	}
	return nil
}

func mapCompetitionError(err error) *APIError {
	switch {
	case errors.Is(err, competitionProcessor.ErrCompetitionNotFound):
		return NotFound(CodeCompetitionNotFound, "Competition not found")
	case errors.Is(err, competitionProcessor.ErrAlreadyActive):
		return Conflict(CodeAlreadyActive, "A competition of this type is already active")
	case errors.Is(err, competitionProcessor.ErrNotActive):
		return Conflict(CodeNotActive, "Competition is not active")
	case errors.Is(err, competitionProcessor.ErrNotEnded):
		return Conflict(CodeNotEnded, "Competition is still active. End it first.")
	case errors.Is(err, competitionProcessor.ErrAlreadyFinalized):
		return Conflict(CodeAlreadyFinalized, "Competition already finalized")
	case errors.Is(err, competitionProcessor.ErrNoEntries):
		return Conflict(CodeNoEntries, "Leaderboard has no entries")
	case errors.Is(err, competitionProcessor.ErrPeriodOpen):
		return Conflict(CodePeriodOpen, "This period has not ended yet")
	case errors.Is(err, competitionProcessor.ErrInvalidType):
		return BadRequest(CodeInvalidLeaderboardType, "Competition type must be volume or gmv")
	case errors.Is(err, competitionProcessor.ErrInvalidName):
		return BadRequest(CodeInvalidName, "Competition name is required")
	case errors.Is(err, competitionProcessor.ErrInvalidDuration):
		return BadRequest(CodeInvalidDuration, "Duration must be between 1 and 365 days")
	case errors.Is(err, competitionProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid competition status")
	}
	return nil
}

func mapMilestoneError(err error) *APIError {
	switch {
	case errors.Is(err, milestoneProcessor.ErrSubmissionNotFound):
		return NotFound(CodeSubmissionNotFound, "Submission not found")
	case errors.Is(err, milestoneProcessor.ErrNotReviewable):
		return Conflict(CodeNotReviewable, "Only milestone submissions can be reviewed")
	case errors.Is(err, milestoneProcessor.ErrAlreadyReviewed):
		return Conflict(CodeAlreadyReviewed, "Submission has already been reviewed")
	case errors.Is(err, milestoneProcessor.ErrInvalidDecision):
		return BadRequest(CodeInvalidDecision, "Decision must be approved or rejected")
	case errors.Is(err, milestoneProcessor.ErrReasonRequired):
		return BadRequest(CodeReasonRequired, "A rejection reason is required")
	case errors.Is(err, milestoneProcessor.ErrInvalidViews):
		return BadRequest(CodeInvalidViews, "Verified views must be a non-negative number")
	case errors.Is(err, milestoneProcessor.ErrViewsBelowThreshold):
		return BadRequest(CodeBelowThreshold, "Verified views are below the claimed milestone")
	}
	return nil
}

func mapRedemptionError(err error) *APIError {
	switch {
	case errors.Is(err, redemptionProcessor.ErrRedemptionNotFound):
		return NotFound(CodeRedemptionNotFound, "Redemption not found")
	case errors.Is(err, redemptionProcessor.ErrNotOwner):
		return &APIError{StatusCode: http.StatusForbidden, Code: CodeNotOwner, Message: "This reward belongs to another creator"}
	case errors.Is(err, redemptionProcessor.ErrNotAwaitingClaim):
		return Conflict(CodeNotAwaitingClaim, "This reward is not waiting to be claimed")
	case errors.Is(err, redemptionProcessor.ErrNotPending):
		return Conflict(CodeNotPending, "This redemption is not pending approval")
	case errors.Is(err, redemptionProcessor.ErrAlreadyFulfilled):
		return Conflict(CodeAlreadyFulfilled, "Redemption already fulfilled")
	case errors.Is(err, redemptionProcessor.ErrPaymentRequired):
		return BadRequest(CodePaymentRequired, "Payment method and handle are required for cash rewards")
	case errors.Is(err, redemptionProcessor.ErrShippingRequired):
		return BadRequest(CodeShippingRequired, "A shipping address is required for product rewards")
	case errors.Is(err, redemptionProcessor.ErrFulfillmentDetails):
		return BadRequest(CodeFulfillmentDetails, "Missing fulfillment details for this reward type")
	case errors.Is(err, redemptionProcessor.ErrRedemptionExists):
		return Conflict(CodeRedemptionExists, "A redemption already exists for this source")
	case errors.Is(err, redemptionProcessor.ErrInvalidSource):
		return BadRequest(CodeInvalidSource, "Invalid redemption source")
	case errors.Is(err, redemptionProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid redemption status")
	case errors.Is(err, redemptionProcessor.ErrCreatorNotFound):
		return NotFound(CodeCreatorNotFound, "Creator not found")
	case errors.Is(err, redemptionProcessor.ErrRewardNotFound):
		return NotFound(CodeRewardNotFound, "Reward not found")
	}
	return nil
}

func mapRewardError(err error) *APIError {
	switch {
	case errors.Is(err, rewardProcessor.ErrRewardNotFound):
		return NotFound(CodeRewardNotFound, "Reward not found")
	case errors.Is(err, rewardProcessor.ErrInvalidCategory):
		return BadRequest(CodeInvalidCategory, "Invalid reward category")
	case errors.Is(err, rewardProcessor.ErrInvalidFulfillmentType):
		return BadRequest(CodeInvalidFulfillment, "Invalid fulfillment type")
	case errors.Is(err, rewardProcessor.ErrInvalidTier):
		return BadRequest(CodeInvalidTier, "Milestone tier must be 100k, 500k or 1m")
	case errors.Is(err, rewardProcessor.ErrRewardTargetMissing):
		return BadRequest(CodeRewardTargetMissing, "Milestone rewards need a tier and ranked rewards need a rank")
	case errors.Is(err, rewardProcessor.ErrInvalidAmount):
		return BadRequest(CodeInvalidAmount, "Reward amounts do not match its fulfillment type")
	case errors.Is(err, rewardProcessor.ErrRewardSlotTaken):
		return Conflict(CodeRewardSlotTaken, "An active reward already exists for this tier or rank")
	}
	return nil
}

func mapCreatorError(err error) *APIError {
	switch {
	case errors.Is(err, creatorProcessor.ErrCreatorNotFound):
		return NotFound(CodeCreatorNotFound, "Creator not found")
	case errors.Is(err, creatorProcessor.ErrHandleTaken):
		return Conflict(CodeHandleTaken, "Handle is already taken")
	case errors.Is(err, creatorProcessor.ErrInvalidCreator):
		return BadRequest(CodeInvalidCreator, "Display name and handle are required")
	case errors.Is(err, creatorProcessor.ErrInvalidBrand):
		return BadRequest(CodeInvalidBrand, "Brand name is required")
	case errors.Is(err, creatorProcessor.ErrCollaborationActive):
		return Conflict(CodeCollaborationActive, "Creator already has an active collaboration")
	case errors.Is(err, creatorProcessor.ErrCollaborationNotFound):
		return NotFound(CodeCollaborationNotFound, "No active collaboration")
	}
	return nil
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	// Object storage errors (S3)
	if strings.Contains(errMsg, "storage:") {
		return ServiceUnavailable(
			CodeStorageServiceError,
			"File storage is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Email service errors (Resend)
	if strings.Contains(errMsg, "resend") || strings.Contains(errMsg, "email service") {
		return ServiceUnavailable(
			CodeEmailServiceError,
			"Email service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	// Default: Unknown error - return sanitized 500
	return InternalError(err)
}

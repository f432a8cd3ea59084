package apierrors

import (
	"fmt"
	"net/http"
)

// APIError is an error that already knows how it should be rendered to a client.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// Error codes returned to API clients
const (
	CodeInvalidInput        = "INVALID_INPUT"
	CodeNotFound            = "NOT_FOUND"
	CodeUnauthorized        = "UNAUTHORIZED"
	CodeForbidden           = "FORBIDDEN"
	CodeInternalError       = "INTERNAL_ERROR"
	CodeStoreConflict       = "STORE_CONFLICT"
	CodeEmailServiceError   = "EMAIL_SERVICE_ERROR"
	CodeStorageServiceError = "STORAGE_SERVICE_ERROR"

	// Submissions
	CodeDuplicateSubmission   = "DUPLICATE_SUBMISSION"
	CodeInvalidURL            = "INVALID_URL"
	CodeInvalidTier           = "INVALID_TIER"
	CodeInvalidUpload         = "INVALID_UPLOAD"
	CodeUploadNotFound        = "UPLOAD_NOT_FOUND"
	CodeNoActiveCollaboration = "NO_ACTIVE_COLLABORATION"
	CodeCollaborationFull     = "COLLABORATION_FULL"
	CodeCreatorNotFound       = "CREATOR_NOT_FOUND"
	CodeHandleTaken           = "HANDLE_TAKEN"
	CodeSubmissionStatus      = "INVALID_SUBMISSION_STATUS"

	// Creators
	CodeInvalidCreator        = "INVALID_CREATOR"
	CodeInvalidBrand          = "INVALID_BRAND"
	CodeCollaborationActive   = "COLLABORATION_ACTIVE"
	CodeCollaborationNotFound = "COLLABORATION_NOT_FOUND"

	// Leaderboards
	CodeInvalidLeaderboardType = "INVALID_LEADERBOARD_TYPE"
	CodeInvalidPeriod          = "INVALID_PERIOD"
	CodeEntryNotFound          = "ENTRY_NOT_FOUND"
	CodeInvalidValue           = "INVALID_VALUE"

	// Competitions
	CodeCompetitionNotFound = "COMPETITION_NOT_FOUND"
	CodeAlreadyActive       = "ALREADY_ACTIVE"
	CodeNotActive           = "NOT_ACTIVE"
	CodeNotEnded            = "NOT_ENDED"
	CodeAlreadyFinalized    = "ALREADY_FINALIZED"
	CodeNoEntries           = "NO_ENTRIES"
	CodePeriodOpen          = "PERIOD_OPEN"
	CodeInvalidDuration     = "INVALID_DURATION"
	CodeInvalidName         = "INVALID_NAME"
	CodeInvalidStatus       = "INVALID_STATUS"
	CodePeriodFinalized     = "PERIOD_ALREADY_FINALIZED"

	// Milestones
	CodeSubmissionNotFound = "SUBMISSION_NOT_FOUND"
	CodeNotReviewable      = "NOT_REVIEWABLE"
	CodeAlreadyReviewed    = "ALREADY_REVIEWED"
	CodeReasonRequired     = "REASON_REQUIRED"
	CodeInvalidViews       = "INVALID_VIEWS"
	CodeBelowThreshold     = "BELOW_THRESHOLD"
	CodeInvalidDecision    = "INVALID_DECISION"

	// Redemptions
	CodeRedemptionNotFound  = "REDEMPTION_NOT_FOUND"
	CodeNotOwner            = "NOT_OWNER"
	CodeNotAwaitingClaim    = "NOT_AWAITING_CLAIM"
	CodeNotPending          = "NOT_PENDING"
	CodeAlreadyFulfilled    = "ALREADY_FULFILLED"
	CodePaymentRequired     = "PAYMENT_DETAILS_REQUIRED"
	CodeShippingRequired    = "SHIPPING_ADDRESS_REQUIRED"
	CodeFulfillmentDetails  = "FULFILLMENT_DETAILS_REQUIRED"
	CodeRedemptionExists    = "REDEMPTION_EXISTS"
	CodeInvalidSource       = "INVALID_SOURCE"
	CodeRewardNotFound      = "REWARD_NOT_FOUND"
	CodeInvalidCategory     = "INVALID_CATEGORY"
	CodeInvalidFulfillment  = "INVALID_FULFILLMENT_TYPE"
	CodeRewardTargetMissing = "REWARD_TARGET_REQUIRED"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeRewardSlotTaken     = "REWARD_SLOT_TAKEN"
)

// BadRequest creates a 400 error
func BadRequest(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Code: code, Message: message}
}

// Unauthorized creates a 401 error
func Unauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Code: CodeUnauthorized, Message: message}
}

// Forbidden creates a 403 error
func Forbidden(message string) *APIError {
	return &APIError{StatusCode: http.StatusForbidden, Code: CodeForbidden, Message: message}
}

// NotFound creates a 404 error
func NotFound(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Code: code, Message: message}
}

// Conflict creates a 409 error
func Conflict(code, message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Code: code, Message: message}
}

// ServiceUnavailable creates a 503 error, keeping the internal cause for logging
func ServiceUnavailable(code, message string, err error) *APIError {
	return &APIError{StatusCode: http.StatusServiceUnavailable, Code: code, Message: message, Err: err}
}

// InternalError creates a sanitized 500 error - never exposes internal details
func InternalError(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       CodeInternalError,
		Message:    "An internal error occurred. Please try again later.",
		Err:        err,
	}
}

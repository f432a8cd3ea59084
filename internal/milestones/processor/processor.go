package processor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"growth-server/internal/notifications"
	"growth-server/internal/observability"
	redemptionProcessor "growth-server/internal/redemptions/processor"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrSubmissionNotFound  = errors.New("submission not found")
	ErrNotReviewable       = errors.New("only milestone submissions can be reviewed")
	ErrAlreadyReviewed     = errors.New("submission has already been reviewed")
	ErrInvalidDecision     = errors.New("decision must be approved or rejected")
	ErrReasonRequired      = errors.New("a rejection reason is required")
	ErrInvalidViews        = errors.New("verified views must be a non-negative number")
	ErrViewsBelowThreshold = errors.New("verified views are below the claimed tier")
)

const (
	DecisionApproved = "approved"
	DecisionRejected = "rejected"
)

// tierThresholds is the minimum verified view count of each milestone tier
var tierThresholds = map[string]int64{
	store.MilestoneTier100K: 100_000,
	store.MilestoneTier500K: 500_000,
	store.MilestoneTier1M:   1_000_000,
}

// TierThreshold returns the minimum views for tier
func TierThreshold(tier string) (int64, bool) {
	threshold, ok := tierThresholds[tier]
	return threshold, ok
}

// Config holds review policy
type Config struct {
	// EnforceThreshold rejects approvals whose verified views are below the
	// claimed tier. When false the reviewing admin is trusted.
	EnforceThreshold bool
}

type MilestoneProcessor struct {
	store       MilestoneStore
	rewards     RewardCatalog
	redemptions RedemptionIssuer
	notifier    Notifier
	config      Config
	logger      *observability.Logger
	now         func() time.Time
}

func New(store MilestoneStore, rewards RewardCatalog, redemptions RedemptionIssuer, notifier Notifier, config Config, logger *observability.Logger) MilestoneProcessor {
	return MilestoneProcessor{
		store:       store,
		rewards:     rewards,
		redemptions: redemptions,
		notifier:    notifier,
		config:      config,
		logger:      logger,
		now:         time.Now,
	}
}

// ReviewRequest is an admin decision on a milestone claim
type ReviewRequest struct {
	Decision        string
	VerifiedViews   *int64
	RejectionReason string
}

// ReviewResult is the decided submission and, for an approval with a configured
// tier reward, the redemption it produced
type ReviewResult struct {
	Submission store.Submission  `json:"submission"`
	Redemption *store.Redemption `json:"redemption,omitempty"`
}

// Review decides a pending milestone submission. Both outcomes are terminal. An
// approval issues the tier's reward keyed by the submission id.
func (p *MilestoneProcessor) Review(ctx context.Context, adminID, submissionID uuid.UUID, req ReviewRequest) (ReviewResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "admin_id", Value: adminID.String()},
		observability.Field{Key: "submission_id", Value: submissionID.String()},
		observability.Field{Key: "decision", Value: req.Decision},
	)

	params, err := p.reviewParams(adminID, req)
	if err != nil {
		return ReviewResult{}, err
	}

	var result ReviewResult
	err = p.store.WithTx(ctx, func(ctx context.Context) error {
		result = ReviewResult{}
		submission, err := p.store.GetSubmissionByIDForUpdate(ctx, submissionID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrSubmissionNotFound
			}
			return err
		}
		if submission.Kind != store.SubmissionKindMilestone {
			return ErrNotReviewable
		}
		if submission.Status != store.SubmissionStatusPending {
			return ErrAlreadyReviewed
		}

		tier := ""
		if submission.ClaimedTier != nil {
			tier = *submission.ClaimedTier
		}
		if req.Decision == DecisionApproved && p.config.EnforceThreshold {
			if threshold, ok := TierThreshold(tier); ok && *req.VerifiedViews < threshold {
				return fmt.Errorf("%w: %s needs %d views", ErrViewsBelowThreshold, tier, threshold)
			}
		}

		result.Submission, err = p.store.ReviewSubmission(ctx, submissionID, params)
		if err != nil {
			if errors.Is(err, store.ErrConditionNotMet) {
				return ErrAlreadyReviewed
			}
			return err
		}
		if req.Decision != DecisionApproved {
			return nil
		}

		reward, err := p.rewards.RewardForTier(ctx, tier)
		if err != nil {
			return err
		}
		if reward == nil {
			p.logger.Warn(ctx, "no reward configured for milestone tier")
			return nil
		}

		creator, err := p.store.GetCreatorByID(ctx, submission.CreatorID)
		if err != nil {
			return err
		}
		redemption, _, err := p.redemptions.Issue(ctx, redemptionProcessor.IssueParams{
			CreatorID:          creator.ID,
			CreatorDisplayName: creator.DisplayName,
			CreatorHandle:      creator.Handle,
			Reward:             *reward,
			Source:             store.RedemptionSourceMilestone,
			SourceID:           submission.ID.String(),
		})
		if err != nil {
			return err
		}
		result.Redemption = &redemption
		return nil
	})
	if err != nil {
		if isBusinessError(err) {
			p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "reason", Value: err.Error()}), "milestone review rejected")
		} else {
			p.logger.Error(ctx, "failed to review milestone", err)
		}
		return ReviewResult{}, err
	}

	p.logger.Info(ctx, "milestone reviewed")
	p.notify(ctx, result)
	return result, nil
}

func (p *MilestoneProcessor) reviewParams(adminID uuid.UUID, req ReviewRequest) (store.ReviewSubmissionParams, error) {
	params := store.ReviewSubmissionParams{
		ReviewedBy: adminID,
		ReviewedAt: p.now().UTC(),
	}
	switch req.Decision {
	case DecisionApproved:
		if req.VerifiedViews == nil || *req.VerifiedViews < 0 {
			return params, ErrInvalidViews
		}
		params.Status = store.SubmissionStatusApproved
		params.VerifiedViews = req.VerifiedViews
	case DecisionRejected:
		reason := strings.TrimSpace(req.RejectionReason)
		if reason == "" {
			return params, ErrReasonRequired
		}
		params.Status = store.SubmissionStatusRejected
		params.RejectionReason = &reason
		params.VerifiedViews = req.VerifiedViews
	default:
		return params, ErrInvalidDecision
	}
	return params, nil
}

func (p *MilestoneProcessor) notify(ctx context.Context, result ReviewResult) {
	submission := result.Submission
	payload := map[string]interface{}{
		"submission_id": submission.ID.String(),
		"display_id":    submission.DisplayID,
	}
	if submission.ClaimedTier != nil {
		payload["tier"] = *submission.ClaimedTier
	}

	kind := notifications.KindMilestoneRejected
	if submission.Status == store.SubmissionStatusApproved {
		kind = notifications.KindMilestoneApproved
		if result.Redemption != nil {
			payload["redemption_id"] = result.Redemption.ID.String()
			payload["reward_name"] = result.Redemption.RewardName
		}
	} else if submission.RejectionReason != nil {
		payload["reason"] = *submission.RejectionReason
	}

	p.notifier.Notify(ctx, notifications.Notification{
		Kind:      kind,
		Recipient: submission.CreatorID,
		Payload:   payload,
	})
}

func isBusinessError(err error) bool {
	switch {
	case errors.Is(err, ErrSubmissionNotFound),
		errors.Is(err, ErrNotReviewable),
		errors.Is(err, ErrAlreadyReviewed),
		errors.Is(err, ErrViewsBelowThreshold):
		return true
	}
	return false
}

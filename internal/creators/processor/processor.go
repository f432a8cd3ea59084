package processor

import (
	"context"
	"errors"
	"strings"

	"growth-server/internal/observability"
	"growth-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrCreatorNotFound       = errors.New("creator not found")
	ErrHandleTaken           = errors.New("handle is already taken")
	ErrInvalidCreator        = errors.New("display name and handle are required")
	ErrCollaborationActive   = errors.New("creator already has an active collaboration")
	ErrCollaborationNotFound = errors.New("active collaboration not found")
	ErrInvalidBrand          = errors.New("brand name is required")
)

type CreatorProcessor struct {
	store  CreatorStore
	logger *observability.Logger
}

func New(store CreatorStore, logger *observability.Logger) CreatorProcessor {
	return CreatorProcessor{
		store:  store,
		logger: logger,
	}
}

// CreateCreatorRequest describes a new creator
type CreateCreatorRequest struct {
	DisplayName     string
	Handle          string
	Email           string
	ShippingAddress *store.Address
}

// NormalizeHandle lowercases a handle and drops a leading @
func NormalizeHandle(handle string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(handle), "@"))
}

func (p *CreatorProcessor) Create(ctx context.Context, req CreateCreatorRequest) (store.Creator, error) {
	displayName := strings.TrimSpace(req.DisplayName)
	handle := NormalizeHandle(req.Handle)
	if displayName == "" || handle == "" {
		return store.Creator{}, ErrInvalidCreator
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "handle", Value: handle})

	creator, err := p.store.CreateCreator(ctx, store.CreateCreatorParams{
		DisplayName:     displayName,
		Handle:          handle,
		Email:           strings.TrimSpace(req.Email),
		ShippingAddress: req.ShippingAddress,
	})
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			return store.Creator{}, ErrHandleTaken
		}
		p.logger.Error(ctx, "failed to create creator", err)
		return store.Creator{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creator.ID.String()}), "creator created")
	return creator, nil
}

func (p *CreatorProcessor) Get(ctx context.Context, creatorID uuid.UUID) (store.Creator, error) {
	creator, err := p.store.GetCreatorByID(ctx, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Creator{}, ErrCreatorNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()}), "failed to get creator", err)
		return store.Creator{}, err
	}
	return creator, nil
}

// UpdateCreatorRequest holds the profile fields to change; nil fields are kept
type UpdateCreatorRequest struct {
	DisplayName     *string
	Handle          *string
	Email           *string
	ShippingAddress *store.Address
}

// Update changes a creator profile. Denormalized snapshots keep the old name and
// handle until Resync is called.
func (p *CreatorProcessor) Update(ctx context.Context, creatorID uuid.UUID, req UpdateCreatorRequest) (store.Creator, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	params := store.UpdateCreatorParams{
		Email:           req.Email,
		ShippingAddress: req.ShippingAddress,
	}
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return store.Creator{}, ErrInvalidCreator
		}
		params.DisplayName = &name
	}
	if req.Handle != nil {
		handle := NormalizeHandle(*req.Handle)
		if handle == "" {
			return store.Creator{}, ErrInvalidCreator
		}
		params.Handle = &handle
	}

	creator, err := p.store.UpdateCreator(ctx, creatorID, params)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return store.Creator{}, ErrCreatorNotFound
		case errors.Is(err, store.ErrUniqueViolation):
			return store.Creator{}, ErrHandleTaken
		}
		p.logger.Error(ctx, "failed to update creator", err)
		return store.Creator{}, err
	}

	p.logger.Info(ctx, "creator updated")
	return creator, nil
}

// ResyncResult reports how many snapshots a resync refreshed
type ResyncResult struct {
	Creator            store.Creator `json:"creator"`
	EntriesUpdated     int64         `json:"entries_updated"`
	RedemptionsUpdated int64         `json:"redemptions_updated"`
}

// Resync copies the creator's current display name and handle onto their
// leaderboard entries and unfulfilled redemptions
func (p *CreatorProcessor) Resync(ctx context.Context, creatorID uuid.UUID) (ResyncResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	var result ResyncResult
	err := p.store.WithTx(ctx, func(ctx context.Context) error {
		creator, err := p.store.GetCreatorByID(ctx, creatorID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCreatorNotFound
			}
			return err
		}
		entries, redemptions, err := p.store.ResyncCreatorSnapshots(ctx, creator)
		if err != nil {
			return err
		}
		result = ResyncResult{Creator: creator, EntriesUpdated: entries, RedemptionsUpdated: redemptions}
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrCreatorNotFound) {
			p.logger.Error(ctx, "failed to resync creator snapshots", err)
		}
		return ResyncResult{}, err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "entries_updated", Value: result.EntriesUpdated},
		observability.Field{Key: "redemptions_updated", Value: result.RedemptionsUpdated},
	), "creator snapshots resynced")
	return result, nil
}

// OpenCollaboration starts a brand collaboration. A creator has at most one active
// collaboration at a time.
func (p *CreatorProcessor) OpenCollaboration(ctx context.Context, creatorID uuid.UUID, brandName string) (store.Collaboration, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	brandName = strings.TrimSpace(brandName)
	if brandName == "" {
		return store.Collaboration{}, ErrInvalidBrand
	}

	var collab store.Collaboration
	err := p.store.WithTx(ctx, func(ctx context.Context) error {
		if _, err := p.store.GetCreatorByID(ctx, creatorID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrCreatorNotFound
			}
			return err
		}
		if _, err := p.store.GetActiveCollaborationByCreator(ctx, creatorID); err == nil {
			return ErrCollaborationActive
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		var err error
		collab, err = p.store.CreateCollaboration(ctx, creatorID, brandName)
		return err
	})
	if err != nil {
		if !errors.Is(err, ErrCreatorNotFound) && !errors.Is(err, ErrCollaborationActive) {
			p.logger.Error(ctx, "failed to open collaboration", err)
		}
		return store.Collaboration{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "collaboration_id", Value: collab.ID.String()}), "collaboration opened")
	return collab, nil
}

// CompleteCollaboration closes the creator's active collaboration
func (p *CreatorProcessor) CompleteCollaboration(ctx context.Context, creatorID uuid.UUID) (store.Collaboration, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()})

	active, err := p.store.GetActiveCollaborationByCreator(ctx, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Collaboration{}, ErrCollaborationNotFound
		}
		p.logger.Error(ctx, "failed to get active collaboration", err)
		return store.Collaboration{}, err
	}

	collab, err := p.store.CompleteCollaboration(ctx, active.ID)
	if err != nil {
		if errors.Is(err, store.ErrConditionNotMet) {
			return store.Collaboration{}, ErrCollaborationNotFound
		}
		p.logger.Error(ctx, "failed to complete collaboration", err)
		return store.Collaboration{}, err
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "collaboration_id", Value: collab.ID.String()}), "collaboration completed")
	return collab, nil
}

// GetActiveCollaboration returns the creator's active collaboration
func (p *CreatorProcessor) GetActiveCollaboration(ctx context.Context, creatorID uuid.UUID) (store.Collaboration, error) {
	collab, err := p.store.GetActiveCollaborationByCreator(ctx, creatorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Collaboration{}, ErrCollaborationNotFound
		}
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "creator_id", Value: creatorID.String()}), "failed to get active collaboration", err)
		return store.Collaboration{}, err
	}
	return collab, nil
}

package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"

	"growth-server/internal/store"

	"github.com/google/uuid"
)

// CreatorStore defines the database operations required by CreatorProcessor
type CreatorStore interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
	CreateCreator(ctx context.Context, params store.CreateCreatorParams) (store.Creator, error)
	GetCreatorByID(ctx context.Context, creatorID uuid.UUID) (store.Creator, error)
	UpdateCreator(ctx context.Context, creatorID uuid.UUID, params store.UpdateCreatorParams) (store.Creator, error)
	ResyncCreatorSnapshots(ctx context.Context, creator store.Creator) (int64, int64, error)
	CreateCollaboration(ctx context.Context, creatorID uuid.UUID, brandName string) (store.Collaboration, error)
	GetActiveCollaborationByCreator(ctx context.Context, creatorID uuid.UUID) (store.Collaboration, error)
	CompleteCollaboration(ctx context.Context, collaborationID uuid.UUID) (store.Collaboration, error)
}

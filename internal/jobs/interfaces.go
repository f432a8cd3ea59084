package jobs

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=jobs

import (
	"context"
)

// CompetitionSweeper ends competitions whose end time has passed
type CompetitionSweeper interface {
	SweepExpired(ctx context.Context) (int, error)
}

// CollaborationReconciler repairs collab submissions missing from their collaboration
type CollaborationReconciler interface {
	ReconcileCollaborations(ctx context.Context, batchSize int) (int, error)
}

// Package sequence issues human-readable, year-scoped sequential identifiers such as
// SUB-2026-00042.
package sequence

//go:generate go run go.uber.org/mock/mockgen@latest -source=allocator.go -destination=mocks_test.go -package=sequence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"growth-server/internal/observability"
	"growth-server/internal/store"
)

var ErrUnknownCounter = errors.New("unknown counter")

// Allocator hands out display ids. Implementations must never issue the same value
// twice for a counter within a year.
type Allocator interface {
	Allocate(ctx context.Context, counter string) (string, error)
}

// CounterStore defines the database operations required by StoreAllocator
type CounterStore interface {
	NextCounterValue(ctx context.Context, name string, year int) (int, int, error)
}

var prefixes = map[string]string{
	store.CounterSubmissions:  "SUB",
	store.CounterRedemptions:  "RDM",
	store.CounterCompetitions: "CMP",
}

// StoreAllocator allocates from a transactional counter row. Called with a ctx that
// carries a store transaction, the increment commits or rolls back with the caller's
// insert, so an aborted insert leaves no gap.
type StoreAllocator struct {
	store  CounterStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store CounterStore, logger *observability.Logger) *StoreAllocator {
	return &StoreAllocator{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// Allocate issues the next display id for counter
func (a *StoreAllocator) Allocate(ctx context.Context, counter string) (string, error) {
	prefix, ok := prefixes[counter]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownCounter, counter)
	}

	value, year, err := a.store.NextCounterValue(ctx, counter, a.now().UTC().Year())
	if err != nil {
		a.logger.Error(observability.WithFields(ctx, observability.Field{Key: "counter", Value: counter}), "failed to allocate display id", err)
		return "", err
	}
	return FormatID(prefix, year, value), nil
}

// FormatID renders a display id as PREFIX-YEAR-NNNNN
func FormatID(prefix string, year, value int) string {
	return fmt.Sprintf("%s-%d-%05d", prefix, year, value)
}

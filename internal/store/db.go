package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"growth-server/internal/observability"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib" // Import the pgx stdlib for sqlx
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound = errors.New("not found")
	// ErrUniqueViolation is returned when an insert collides with a unique constraint
	ErrUniqueViolation = errors.New("unique constraint violation")
	// ErrConditionNotMet is returned when a conditional update matched no rows
	ErrConditionNotMet = errors.New("update condition not met")
	// ErrStoreConflict is returned once transactional write contention outlasts the retry budget
	ErrStoreConflict = errors.New("store write conflict")
)

const (
	pgUniqueViolation      = "23505"
	pgSerializationFailure = "40001"
	pgDeadlockDetected     = "40P01"

	defaultTxAttempts = 5
	baseTxBackoff     = 20 * time.Millisecond
)

type Store struct {
	db            *sqlx.DB
	logger        *observability.Logger
	maxTxAttempts int
}

func New(connectionString string, maxTxAttempts int, logger *observability.Logger) (Store, error) {
	db, err := sqlx.Open("pgx", connectionString)
	if err != nil {
		return Store{}, fmt.Errorf("failed to open database: %w", err)
	}
	if maxTxAttempts <= 0 {
		maxTxAttempts = defaultTxAttempts
	}
	return Store{db: db, logger: logger, maxTxAttempts: maxTxAttempts}, nil
}

// DB returns the underlying database connection
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the underlying database connection
func (s *Store) Close() error {
	return s.db.Close()
}

type txKey struct{}

// querier is satisfied by both *sqlx.DB and *sqlx.Tx
type querier interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// conn returns the transaction carried by ctx, or the pool when there is none
func (s *Store) conn(ctx context.Context) querier {
	if tx, ok := ctx.Value(txKey{}).(*sqlx.Tx); ok {
		return tx
	}
	return s.db
}

// InTx reports whether ctx already carries a transaction
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sqlx.Tx)
	return ok
}

// WithTx runs fn inside a transaction. Every store call made with the ctx handed
// to fn joins that transaction. Calls nested inside an outer WithTx join the outer
// transaction and leave retries to it. Serialization failures and deadlocks are
// retried with backoff; once attempts run out ErrStoreConflict is returned.
func (s *Store) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTx(ctx) {
		return fn(ctx)
	}

	var lastErr error
	for attempt := 1; attempt <= s.maxTxAttempts; attempt++ {
		lastErr = s.runTx(ctx, fn)
		if lastErr == nil || !isRetryable(lastErr) {
			return lastErr
		}

		s.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "attempt", Value: attempt},
			observability.Field{Key: "error", Value: lastErr.Error()},
		), "transaction conflict, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt*attempt) * baseTxBackoff):
		}
	}
	return fmt.Errorf("%w: %v", ErrStoreConflict, lastErr)
}

func (s *Store) runTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

func isRetryable(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == pgSerializationFailure || pgErr.Code == pgDeadlockDetected
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

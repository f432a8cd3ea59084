package store

import (
	"context"
	"fmt"
)

// The row lock taken by the upsert serializes concurrent allocations on the same
// counter. A year newer than the stored one restarts the sequence at 1 in the same
// statement that issues the value.
const sqlNextCounterValue = `
INSERT INTO counters (name, value, year)
VALUES ($1, 1, $2)
ON CONFLICT (name) DO UPDATE
SET value = CASE WHEN counters.year >= EXCLUDED.year THEN counters.value + 1 ELSE 1 END,
    year = GREATEST(counters.year, EXCLUDED.year),
    updated_at = CURRENT_TIMESTAMP
RETURNING value, year
`

// NextCounterValue atomically increments the named counter and returns the issued
// value and the year it belongs to.
func (s *Store) NextCounterValue(ctx context.Context, name string, year int) (int, int, error) {
	var row struct {
		Value int `db:"value"`
		Year  int `db:"year"`
	}
	if err := s.conn(ctx).GetContext(ctx, &row, sqlNextCounterValue, name, year); err != nil {
		return 0, 0, fmt.Errorf("failed to advance counter %s: %w", name, err)
	}
	return row.Value, row.Year, nil
}

const sqlGetCounter = `
SELECT name, value, year, updated_at
FROM counters
WHERE name = $1
`

// GetCounter retrieves the current state of a counter
func (s *Store) GetCounter(ctx context.Context, name string) (Counter, error) {
	var counter Counter
	if err := s.conn(ctx).GetContext(ctx, &counter, sqlGetCounter, name); err != nil {
		if isNoRows(err) {
			return Counter{}, ErrNotFound
		}
		return Counter{}, fmt.Errorf("failed to get counter: %w", err)
	}
	return counter, nil
}

package leaderboard

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"growth-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrInvalidType   = errors.New("invalid leaderboard type")
	ErrInvalidPeriod = errors.New("invalid leaderboard period")
)

const competitionTypePrefix = "competition:"

// WeekKey returns the ISO week bucket of t, e.g. 2026-W42
func WeekKey(t time.Time) string {
	year, week := t.UTC().ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// MonthKey returns the calendar month bucket of t, e.g. 2026-10
func MonthKey(t time.Time) string {
	return t.UTC().Format("2006-01")
}

// CompetitionType returns the leaderboard type that holds a competition's standings
func CompetitionType(competitionID uuid.UUID) string {
	return competitionTypePrefix + competitionID.String()
}

// CompetitionPeriod returns the period key of a competition bucket
func CompetitionPeriod(competitionID uuid.UUID) string {
	return competitionID.String()
}

// IsCompetitionType reports whether lbType names a competition bucket
func IsCompetitionType(lbType string) bool {
	return strings.HasPrefix(lbType, competitionTypePrefix)
}

// ValidateType checks that lbType is volume, gmv or competition:<id>
func ValidateType(lbType string) error {
	switch lbType {
	case store.LeaderboardTypeVolume, store.LeaderboardTypeGMV:
		return nil
	}
	if IsCompetitionType(lbType) {
		if _, err := uuid.Parse(strings.TrimPrefix(lbType, competitionTypePrefix)); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidType, lbType)
}

// CurrentPeriod returns the bucket that is open at now for a periodic type. For a
// competition type it returns the competition id.
func CurrentPeriod(lbType string, now time.Time) (string, error) {
	switch lbType {
	case store.LeaderboardTypeVolume:
		return WeekKey(now), nil
	case store.LeaderboardTypeGMV:
		return MonthKey(now), nil
	}
	if err := ValidateType(lbType); err != nil {
		return "", err
	}
	return strings.TrimPrefix(lbType, competitionTypePrefix), nil
}

// PeriodBounds returns the [start, end) interval of a periodic bucket
func PeriodBounds(lbType, period string) (time.Time, time.Time, error) {
	switch lbType {
	case store.LeaderboardTypeVolume:
		start, err := parseWeek(period)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		return start, start.AddDate(0, 0, 7), nil
	case store.LeaderboardTypeGMV:
		start, err := time.Parse("2006-01", period)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, period)
		}
		return start, start.AddDate(0, 1, 0), nil
	}
	return time.Time{}, time.Time{}, fmt.Errorf("%w: %q has no calendar periods", ErrInvalidType, lbType)
}

// PeriodClosed reports whether a periodic bucket has fully elapsed at now
func PeriodClosed(lbType, period string, now time.Time) (bool, error) {
	_, end, err := PeriodBounds(lbType, period)
	if err != nil {
		return false, err
	}
	return !now.Before(end), nil
}

// ValidatePeriod checks that period is well formed for lbType
func ValidatePeriod(lbType, period string) error {
	if period == "" {
		return fmt.Errorf("%w: empty period", ErrInvalidPeriod)
	}
	if IsCompetitionType(lbType) {
		if period != strings.TrimPrefix(lbType, competitionTypePrefix) {
			return fmt.Errorf("%w: competition period must be the competition id", ErrInvalidPeriod)
		}
		return nil
	}
	_, _, err := PeriodBounds(lbType, period)
	return err
}

// parseWeek returns the Monday 00:00 UTC that starts an ISO week key
func parseWeek(key string) (time.Time, error) {
	var year, week int
	if _, err := fmt.Sscanf(key, "%d-W%d", &year, &week); err != nil || week < 1 || week > 53 {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, key)
	}

	// January 4th always falls in ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	weekday := int(jan4.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	start := jan4.AddDate(0, 0, -(weekday-1)+(week-1)*7)

	if WeekKey(start) != key {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, key)
	}
	return start, nil
}

package services

import (
	"errors"
	"fmt"
	"time"

	"ledger-agent/internal/models"
)

var (
	ErrInvalidRangeToken = errors.New("invalid range token")
)

type windowResolver struct{}

// NewWindowResolver creates the calendar window resolver. Every computation is done in UTC.
func NewWindowResolver() WindowResolverInterface {
	return &windowResolver{}
}

func (r *windowResolver) Resolve(token models.RangeToken, now time.Time) (models.TimeWindow, error) {
	now = now.UTC()

	var start, end time.Time
	switch token {
	case models.RangeCurrentMonth:
		start = startOfMonth(now)
		end = now

	case models.RangePreviousMonth:
		// The day before this month's first day is always the last day of the previous month.
		lastDay := startOfDay(startOfMonth(now).AddDate(0, 0, -1))
		start = startOfMonth(lastDay)
		end = endOfDay(lastDay)

	case models.RangeLast7Days:
		start = startOfDay(now.AddDate(0, 0, -7))
		end = now

	case models.RangeLast30Days:
		start = startOfDay(now.AddDate(0, 0, -30))
		end = now

	default:
		return models.TimeWindow{}, fmt.Errorf("%w: %q", ErrInvalidRangeToken, string(token))
	}

	return models.NewTimeWindow(start, end), nil
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999999000, time.UTC)
}

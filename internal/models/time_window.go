package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format used on every window boundary.
const DateLayout = "2006-01-02"

// TimeWindow is an inclusive calendar-date interval, both ends in UTC.
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewTimeWindow formats two instants as UTC calendar dates.
func NewTimeWindow(start, end time.Time) TimeWindow {
	return TimeWindow{
		Start: start.UTC().Format(DateLayout),
		End:   end.UTC().Format(DateLayout),
	}
}

// DayBounds expands the window to [start 00:00:00.000000, end 23:59:59.999999] UTC.
func (w TimeWindow) DayBounds() (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, w.Start, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window start %q: %w", w.Start, err)
	}

	end, err := time.ParseInLocation(DateLayout, w.End, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("invalid window end %q: %w", w.End, err)
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, fmt.Errorf("window end %s is before start %s", w.End, w.Start)
	}

	return start, end.Add(24*time.Hour - time.Microsecond), nil
}

func (w TimeWindow) String() string {
	return w.Start + ".." + w.End
}

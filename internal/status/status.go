package status

import (
	"time"

	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/schedule"
)

// Status is the derived display label for an event.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusOngoing   Status = "ongoing"
	StatusEnded     Status = "ended"
	StatusCancelled Status = "cancelled"
	StatusDraft     Status = "draft"
)

// Compute derives the display status from the event's schedule. Lifecycle
// states stored on the record (draft, cancelled) pass through untouched;
// everything else is a date comparison against now.
func Compute(e model.Event, now time.Time) Status {
	switch e.Status {
	case "cancelled":
		return StatusCancelled
	case "draft":
		return StatusDraft
	}

	day := e.DateOnly()
	if day.IsZero() {
		return StatusUpcoming
	}

	start := atClock(day, schedule.ParseClock(e.Time, schedule.DefaultStart))
	end := atClock(day, schedule.ParseClock(e.EndTime, schedule.DefaultEnd))
	if end.Before(start) {
		end = start
	}

	switch {
	case now.Before(start):
		return StatusUpcoming
	case now.After(end):
		return StatusEnded
	default:
		return StatusOngoing
	}
}

// Options lists the statuses offered by the listing view's filter dropdown.
func Options() []Status {
	return []Status{StatusUpcoming, StatusOngoing, StatusEnded, StatusCancelled}
}

// Color returns the badge color for a status.
func Color(s Status) string {
	switch s {
	case StatusUpcoming:
		return "#3B82F6"
	case StatusOngoing:
		return "#10B981"
	case StatusEnded:
		return "#6B7280"
	case StatusCancelled:
		return "#EF4444"
	case StatusDraft:
		return "#F59E0B"
	default:
		return "#6B7280"
	}
}

func atClock(day time.Time, c schedule.Clock) time.Time {
	t, err := time.Parse("15:04", c.String())
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location())
}

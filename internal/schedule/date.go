package schedule

import (
	"errors"
	"time"
)

// ErrDateInPast is returned when an edited date is neither the original date
// nor strictly after today.
var ErrDateInPast = errors.New("event date must be after today")

// MinEditableDate computes the earliest date the edit form should allow.
// If the event's original date is today or earlier the organizer may keep the
// already-elapsed schedule, so the minimum is the original date itself.
// Otherwise the minimum is tomorrow.
func MinEditableDate(original, today time.Time) time.Time {
	original = startOfDay(original)
	today = startOfDay(today)
	if !original.After(today) {
		return original
	}
	return today.AddDate(0, 0, 1)
}

// ValidateDateEdit checks an edited event date against the original.
// Keeping the original date always passes, no matter how far in the past it
// now is. Any changed date must be strictly after today. Comparison is
// date-only; time-of-day is ignored.
func ValidateDateEdit(original, edited, today time.Time) error {
	original = startOfDay(original)
	edited = startOfDay(edited)
	today = startOfDay(today)

	if edited.Equal(original) {
		return nil
	}
	if edited.After(today) {
		return nil
	}
	return ErrDateInPast
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

package schedule

import (
	"testing"
	"time"
)

var today = time.Date(2026, 8, 30, 14, 45, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestMinEditableDatePastOriginal(t *testing.T) {
	yesterday := date(2026, 8, 29)
	got := MinEditableDate(yesterday, today)
	if !got.Equal(yesterday) {
		t.Errorf("min = %v, want original date %v", got, yesterday)
	}
}

func TestMinEditableDateTodayOriginal(t *testing.T) {
	// Original on today's date, with a time-of-day that must be truncated.
	original := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	got := MinEditableDate(original, today)
	if !got.Equal(date(2026, 8, 30)) {
		t.Errorf("min = %v, want today %v", got, date(2026, 8, 30))
	}
}

func TestMinEditableDateFutureOriginal(t *testing.T) {
	original := date(2026, 9, 9) // 10 days out
	got := MinEditableDate(original, today)
	tomorrow := date(2026, 8, 31)
	if !got.Equal(tomorrow) {
		t.Errorf("min = %v, want tomorrow %v", got, tomorrow)
	}
}

func TestValidateDateEditUnchangedPastDate(t *testing.T) {
	yesterday := date(2026, 8, 29)
	if err := ValidateDateEdit(yesterday, yesterday, today); err != nil {
		t.Errorf("keeping original past date should pass, got %v", err)
	}
}

func TestValidateDateEditOtherPastDate(t *testing.T) {
	yesterday := date(2026, 8, 29)
	otherPast := date(2026, 8, 20)
	if err := ValidateDateEdit(yesterday, otherPast, today); err == nil {
		t.Error("changing to a different past date should fail")
	}
}

func TestValidateDateEditTodayRejected(t *testing.T) {
	original := date(2026, 9, 9)
	if err := ValidateDateEdit(original, date(2026, 8, 30), today); err == nil {
		t.Error("changing a future event to today should fail")
	}
}

func TestValidateDateEditTomorrowAccepted(t *testing.T) {
	original := date(2026, 9, 9)
	if err := ValidateDateEdit(original, date(2026, 8, 31), today); err != nil {
		t.Errorf("tomorrow should pass, got %v", err)
	}
}

func TestValidateDateEditIgnoresTimeOfDay(t *testing.T) {
	original := time.Date(2026, 8, 29, 18, 30, 0, 0, time.UTC)
	edited := time.Date(2026, 8, 29, 7, 0, 0, 0, time.UTC)
	if err := ValidateDateEdit(original, edited, today); err != nil {
		t.Errorf("same calendar day should count as unchanged, got %v", err)
	}
}

package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Clock is the editable form of a stored time-of-day string: a 12-hour triple
// with zero-padded fields, the way the edit form's selects present it.
type Clock struct {
	Hour   string // "01".."12"
	Minute string // "00".."59"
	Period string // "AM" or "PM"
}

// Defaults used when a stored time string is missing or unparseable.
var (
	DefaultStart = Clock{Hour: "09", Minute: "00", Period: "AM"}
	DefaultEnd   = Clock{Hour: "11", Minute: "00", Period: "AM"}
)

var (
	twelveHourRe = regexp.MustCompile(`(?i)^(\d{1,2}):(\d{2})\s*(am|pm)$`)
	twentyFourRe = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
)

// ParseClock normalizes a stored time string into a Clock. It tries the
// 12-hour form first, then strict 24-hour "HH:MM". Anything else yields the
// fallback unchanged.
func ParseClock(s string, fallback Clock) Clock {
	s = strings.TrimSpace(s)

	if m := twelveHourRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour >= 1 && hour <= 12 && minute <= 59 {
			return Clock{
				Hour:   fmt.Sprintf("%02d", hour),
				Minute: fmt.Sprintf("%02d", minute),
				Period: strings.ToUpper(m[3]),
			}
		}
		return fallback
	}

	if m := twentyFourRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute, _ := strconv.Atoi(m[2])
		if hour > 23 || minute > 59 {
			return fallback
		}
		period := "AM"
		switch {
		case hour == 0:
			hour = 12
		case hour == 12:
			period = "PM"
		case hour > 12:
			hour -= 12
			period = "PM"
		}
		return Clock{
			Hour:   fmt.Sprintf("%02d", hour),
			Minute: fmt.Sprintf("%02d", minute),
			Period: period,
		}
	}

	return fallback
}

// String converts the triple back to the canonical 24-hour "HH:MM" storage
// form. It is the exact inverse of ParseClock for every value the form can
// produce.
func (c Clock) String() string {
	hour, _ := strconv.Atoi(c.Hour)
	minute, _ := strconv.Atoi(c.Minute)
	if c.Period == "PM" && hour != 12 {
		hour += 12
	} else if c.Period == "AM" && hour == 12 {
		hour = 0
	}
	return fmt.Sprintf("%02d:%02d", hour, minute)
}

// Label renders the triple for display, e.g. "09:30 AM".
func (c Clock) Label() string {
	return c.Hour + ":" + c.Minute + " " + c.Period
}

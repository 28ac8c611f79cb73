package events

import (
	"sort"
	"strings"

	"github.com/eventease/eventease/internal/model"
)

// Filters holds the listing view's search and dropdown state. The zero value
// ("all" for both dropdowns is equivalent to empty) matches everything.
type Filters struct {
	Query    string
	Category string
	Status   string
}

// Filter applies the listing view's search over an in-memory list. An event is
// kept when the query is a case-insensitive substring of its title or
// description, its category matches the category filter, and its display
// status (computed by statusOf) matches the status filter. "all" or empty
// disables a dropdown filter.
func Filter(list []model.Event, f Filters, statusOf func(model.Event) string) []model.Event {
	query := strings.ToLower(strings.TrimSpace(f.Query))

	var out []model.Event
	for _, e := range list {
		if query != "" &&
			!strings.Contains(strings.ToLower(e.Title), query) &&
			!strings.Contains(strings.ToLower(e.Description), query) {
			continue
		}
		if !matchesAll(f.Category, e.Category) {
			continue
		}
		if f.Status != "" && f.Status != "all" && statusOf(e) != f.Status {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SortBySchedule orders events by date, then start time, then title.
func SortBySchedule(list []model.Event) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if !a.DateOnly().Equal(b.DateOnly()) {
			return a.DateOnly().Before(b.DateOnly())
		}
		if a.Time != b.Time {
			return a.Time < b.Time
		}
		return a.Title < b.Title
	})
}

func matchesAll(filter, value string) bool {
	return filter == "" || filter == "all" || filter == value
}

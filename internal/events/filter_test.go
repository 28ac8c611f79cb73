package events

import (
	"testing"

	"github.com/eventease/eventease/internal/model"
)

func sampleEvents() []model.Event {
	return []model.Event{
		{ID: 1, Title: "Go Conference 2026", Description: "Talks and workshops", Category: "technology"},
		{ID: 2, Title: "Farmers Market", Description: "Local produce", Category: "community"},
		{ID: 3, Title: "Jazz Night", Description: "Live band in the old conference hall", Category: "music"},
	}
}

func allUpcoming(model.Event) string { return "upcoming" }

func TestFilterQueryTitle(t *testing.T) {
	got := Filter(sampleEvents(), Filters{Query: "conf", Category: "all"}, allUpcoming)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (title + description matches)", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 3 {
		t.Errorf("matched %d and %d, want events 1 (title) and 3 (description)", got[0].ID, got[1].ID)
	}
}

func TestFilterQuerySingleTitleMatch(t *testing.T) {
	list := []model.Event{
		{ID: 1, Title: "Go Conference 2026", Description: "Talks", Category: "technology"},
		{ID: 2, Title: "Farmers Market", Description: "Local produce", Category: "community"},
		{ID: 3, Title: "Jazz Night", Description: "Live band", Category: "music"},
	}
	got := Filter(list, Filters{Query: "CONF", Category: "all"}, allUpcoming)
	if len(got) != 1 || got[0].ID != 1 {
		t.Fatalf("got %v, want exactly event 1", got)
	}
}

func TestFilterCategory(t *testing.T) {
	got := Filter(sampleEvents(), Filters{Category: "music"}, allUpcoming)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got %v, want exactly event 3", got)
	}

	got = Filter(sampleEvents(), Filters{Category: "all"}, allUpcoming)
	if len(got) != 3 {
		t.Errorf("category=all kept %d events, want 3", len(got))
	}
}

func TestFilterStatus(t *testing.T) {
	statusOf := func(e model.Event) string {
		if e.ID == 2 {
			return "ended"
		}
		return "upcoming"
	}

	got := Filter(sampleEvents(), Filters{Status: "ended"}, statusOf)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("got %v, want exactly event 2", got)
	}

	got = Filter(sampleEvents(), Filters{Status: "all"}, statusOf)
	if len(got) != 3 {
		t.Errorf("status=all kept %d events, want 3", len(got))
	}
}

func TestFilterConjunction(t *testing.T) {
	// Query matches events 1 and 3 but category keeps only music.
	got := Filter(sampleEvents(), Filters{Query: "con", Category: "music", Status: "all"}, allUpcoming)
	if len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("got %v, want exactly event 3", got)
	}
}

func TestFilterEmptyMatchesEverything(t *testing.T) {
	got := Filter(sampleEvents(), Filters{}, allUpcoming)
	if len(got) != 3 {
		t.Errorf("len = %d, want 3", len(got))
	}
}

func TestSortBySchedule(t *testing.T) {
	list := []model.Event{
		{ID: 1, Title: "Beta", Date: "2026-09-02", Time: "10:00"},
		{ID: 2, Title: "Alpha", Date: "2026-09-02", Time: "10:00"},
		{ID: 3, Title: "Gamma", Date: "2026-09-01", Time: "18:00"},
		{ID: 4, Title: "Delta", Date: "2026-09-02", Time: "08:00"},
	}
	SortBySchedule(list)

	wantOrder := []int64{3, 4, 2, 1}
	for i, want := range wantOrder {
		if list[i].ID != want {
			t.Errorf("position %d: got event %d, want %d", i, list[i].ID, want)
		}
	}
}

package handler

import (
	"html/template"
	"log/slog"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/eventease/eventease/internal/auth"
	"github.com/eventease/eventease/internal/events"
	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/schedule"
	"github.com/eventease/eventease/internal/status"
)

// EventHandler serves the event listing/management view.
type EventHandler struct {
	events    *events.Client
	templates *template.Template
	logger    *slog.Logger
}

func NewEventHandler(ec *events.Client, logger *slog.Logger) *EventHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/*.html"))
	return &EventHandler{
		events:    ec,
		templates: tmpl,
		logger:    logger,
	}
}

// eventRow decorates an event with everything the listing needs to paint one
// card: display status, badge color, participant count, 12-hour time labels.
type eventRow struct {
	model.Event
	DisplayStatus status.Status
	StatusColor   string
	Participants  int
	Capacity      string
	StartLabel    string
	EndLabel      string
}

func (h *EventHandler) EventsPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	list, err := h.events.ListByOwner(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		h.logger.Error("list events", "error", err)
		render(h.logger, h.templates, w, "error.html", map[string]any{
			"Title":   "My Events",
			"Message": "Could not load your events. Please try again.",
		})
		return
	}

	rows := h.decorate(r, sess.Token, list)
	render(h.logger, h.templates, w, "events.html", map[string]any{
		"Title":      "My Events",
		"Email":      sess.Email,
		"Rows":       rows,
		"Categories": categoriesOf(list),
		"Statuses":   status.Options(),
		"Query":      "",
		"Category":   "all",
		"Status":     "all",
	})
}

// EventListPartial re-renders the event cards for the current search box and
// dropdown state. Filtering happens here, in memory, over the owner's full
// list; nothing is pushed down to the backend.
func (h *EventHandler) EventListPartial(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	list, err := h.events.ListByOwner(r.Context(), sess.Token, sess.UserID)
	if err != nil {
		h.logger.Error("list events", "error", err)
		formError(h.logger, h.templates, w, "Could not load your events. Please try again.")
		return
	}

	now := time.Now()
	filters := events.Filters{
		Query:    r.URL.Query().Get("q"),
		Category: r.URL.Query().Get("category"),
		Status:   r.URL.Query().Get("status"),
	}
	filtered := events.Filter(list, filters, func(e model.Event) string {
		return string(status.Compute(e, now))
	})

	rows := h.decorate(r, sess.Token, filtered)
	renderPartial(h.logger, h.templates, w, "event-list", map[string]any{"Rows": rows})
}

// Delete removes one of the organizer's events and re-renders the list.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	event, err := h.events.GetByID(r.Context(), sess.Token, id)
	if err != nil {
		h.logger.Error("get event", "event_id", id, "error", err)
		formError(h.logger, h.templates, w, "Could not delete the event. Please try again.")
		return
	}
	if event == nil || event.UserID != sess.UserID {
		http.Error(w, "event not found", http.StatusNotFound)
		return
	}

	if err := h.events.Delete(r.Context(), sess.Token, id); err != nil {
		h.logger.Error("delete event", "event_id", id, "error", err)
		formError(h.logger, h.templates, w, "Could not delete the event. Please try again.")
		return
	}

	h.EventListPartial(w, r)
}

func (h *EventHandler) decorate(r *http.Request, token string, list []model.Event) []eventRow {
	events.SortBySchedule(list)
	now := time.Now()

	rows := make([]eventRow, 0, len(list))
	for _, e := range list {
		st := status.Compute(e, now)

		count, err := h.events.ParticipantCount(r.Context(), token, e.ID)
		if err != nil {
			h.logger.Warn("participant count", "event_id", e.ID, "error", err)
			count = 0
		}
		capacity := strconv.Itoa(count)
		if e.MaxParticipants != nil {
			capacity += " / " + strconv.Itoa(*e.MaxParticipants)
		}

		rows = append(rows, eventRow{
			Event:         e,
			DisplayStatus: st,
			StatusColor:   status.Color(st),
			Participants:  count,
			Capacity:      capacity,
			StartLabel:    schedule.ParseClock(e.Time, schedule.DefaultStart).Label(),
			EndLabel:      schedule.ParseClock(e.EndTime, schedule.DefaultEnd).Label(),
		})
	}
	return rows
}

// categoriesOf collects the distinct categories present in the list, sorted,
// for the filter dropdown.
func categoriesOf(list []model.Event) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range list {
		if e.Category != "" && !seen[e.Category] {
			seen[e.Category] = true
			out = append(out, e.Category)
		}
	}
	sort.Strings(out)
	return out
}

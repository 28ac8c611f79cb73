package handler

import (
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/eventease/eventease/internal/auth"
	"github.com/eventease/eventease/internal/events"
	"github.com/eventease/eventease/internal/model"
	"github.com/eventease/eventease/internal/schedule"
	"github.com/eventease/eventease/internal/storage"
)

const maxUploadForm = 8 << 20

// EventEditHandler serves the single-event edit view.
type EventEditHandler struct {
	events    *events.Client
	storage   *storage.Service
	templates *template.Template
	logger    *slog.Logger
}

func NewEventEditHandler(ec *events.Client, st *storage.Service, logger *slog.Logger) *EventEditHandler {
	tmpl := template.Must(template.ParseGlob("web/templates/*.html"))
	return &EventEditHandler{
		events:    ec,
		storage:   st,
		templates: tmpl,
		logger:    logger,
	}
}

// editForm is the template model for the edit view: the event with its stored
// times normalized into editable 12-hour triples.
type editForm struct {
	Event     model.Event
	Start     schedule.Clock
	End       schedule.Clock
	MinDate   string
	TagsValue string
	Hours     []string
	Minutes   []string
	Periods   []string
	Saved     bool
}

func (h *EventEditHandler) newEditForm(e model.Event, saved bool) editForm {
	return editForm{
		Event:     e,
		Start:     schedule.ParseClock(e.Time, schedule.DefaultStart),
		End:       schedule.ParseClock(e.EndTime, schedule.DefaultEnd),
		MinDate:   schedule.MinEditableDate(e.DateOnly(), time.Now()).Format("2006-01-02"),
		TagsValue: strings.Join(e.Tags, ", "),
		Hours:     clockHours,
		Minutes:   clockMinutes,
		Periods:   clockPeriods,
		Saved:     saved,
	}
}

var (
	clockHours   = []string{"01", "02", "03", "04", "05", "06", "07", "08", "09", "10", "11", "12"}
	clockMinutes = []string{"00", "15", "30", "45"}
	clockPeriods = []string{"AM", "PM"}
)

// EditPage loads the event and renders the full edit view. A missing or
// foreign event is a full-page error state.
func (h *EventEditHandler) EditPage(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	event, ok := h.loadOwned(w, r, sess, false)
	if !ok {
		return
	}

	render(h.logger, h.templates, w, "event_edit.html", map[string]any{
		"Title": "Edit Event",
		"Email": sess.Email,
		"Form":  h.newEditForm(*event, false),
	})
}

// Update validates the submitted form, converts the 12-hour triples back to
// the canonical storage form, and sends the edit to the backend. All field
// validation happens before any external call.
func (h *EventEditHandler) Update(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	event, ok := h.loadOwned(w, r, sess, true)
	if !ok {
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form data", http.StatusBadRequest)
		return
	}

	params, msg := h.validateForm(r, *event)
	if msg != "" {
		formError(h.logger, h.templates, w, msg)
		return
	}

	updated, err := h.events.Update(r.Context(), sess.Token, event.ID, params)
	if err != nil {
		h.logger.Error("update event", "event_id", event.ID, "error", err)
		formError(h.logger, h.templates, w, "Could not save the event. Please try again.")
		return
	}

	renderPartial(h.logger, h.templates, w, "event-edit-form", h.newEditForm(*updated, true))
}

// validateForm checks every field rule and assembles the update payload.
// Returns a non-empty message on the first violation.
func (h *EventEditHandler) validateForm(r *http.Request, original model.Event) (events.UpdateParams, string) {
	var params events.UpdateParams

	params.Title = strings.TrimSpace(r.FormValue("title"))
	if params.Title == "" {
		return params, "Title is required"
	}

	params.Date = strings.TrimSpace(r.FormValue("date"))
	if params.Date == "" {
		return params, "Date is required"
	}
	edited, err := time.Parse("2006-01-02", params.Date)
	if err != nil {
		return params, "Date must be in YYYY-MM-DD format"
	}
	if err := schedule.ValidateDateEdit(original.DateOnly(), edited, time.Now()); err != nil {
		return params, "Event date must be after today"
	}

	start, err := clockFromForm(r, "start")
	if err != nil {
		return params, "Start time is invalid"
	}
	end, err := clockFromForm(r, "end")
	if err != nil {
		return params, "End time is invalid"
	}
	params.Time = start.String()
	params.EndTime = end.String()
	if params.EndTime <= params.Time {
		return params, "End time must be after start time"
	}

	if raw := strings.TrimSpace(r.FormValue("max_participants")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return params, "Maximum participants must be a positive number"
		}
		params.MaxParticipants = &n
	}

	params.ContactEmail = strings.TrimSpace(r.FormValue("contact_email"))
	if params.ContactEmail != "" && !validEmail(params.ContactEmail) {
		return params, "Contact email is not a valid email address"
	}

	params.Description = strings.TrimSpace(r.FormValue("description"))
	params.Location = strings.TrimSpace(r.FormValue("location"))
	params.Category = strings.TrimSpace(r.FormValue("category"))
	params.Requirements = strings.TrimSpace(r.FormValue("requirements"))
	params.ContactPhone = strings.TrimSpace(r.FormValue("contact_phone"))
	params.Tags = splitTags(r.FormValue("tags"))
	params.ImageURL = original.ImageURL

	params.IsVirtual = r.FormValue("is_virtual") == "on"
	params.VirtualLink = strings.TrimSpace(r.FormValue("virtual_link"))
	if !params.IsVirtual {
		params.VirtualLink = ""
	}

	return params, ""
}

// ImageUpload stores a new event image and records its public URL.
func (h *EventEditHandler) ImageUpload(w http.ResponseWriter, r *http.Request) {
	sess, ok := auth.FromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	event, ok := h.loadOwned(w, r, sess, true)
	if !ok {
		return
	}

	if err := r.ParseMultipartForm(maxUploadForm); err != nil {
		formError(h.logger, h.templates, w, "Image upload is too large")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		formError(h.logger, h.templates, w, "Choose an image to upload")
		return
	}
	defer file.Close()

	url, err := h.storage.UploadImage(r.Context(), sess.UserID, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.logger.Error("upload image", "event_id", event.ID, "error", err)
		formError(h.logger, h.templates, w, "Could not upload the image. Please try again.")
		return
	}

	if err := h.events.SetImage(r.Context(), sess.Token, event.ID, url); err != nil {
		h.logger.Error("set image url", "event_id", event.ID, "error", err)
		formError(h.logger, h.templates, w, "Could not save the image. Please try again.")
		return
	}

	renderPartial(h.logger, h.templates, w, "image-field", map[string]any{
		"EventID":  event.ID,
		"ImageURL": url,
	})
}

// loadOwned fetches the event and enforces that it belongs to the signed-in
// organizer. On failure it writes the error response and returns ok=false.
// Partial requests get an inline error, full pages an error page.
func (h *EventEditHandler) loadOwned(w http.ResponseWriter, r *http.Request, sess auth.Session, partial bool) (*model.Event, bool) {
	id, err := parseIDParam(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	event, err := h.events.GetByID(r.Context(), sess.Token, id)
	if err != nil {
		h.logger.Error("get event", "event_id", id, "error", err)
		if partial {
			formError(h.logger, h.templates, w, "Could not load the event. Please try again.")
		} else {
			render(h.logger, h.templates, w, "error.html", map[string]any{
				"Title":   "Edit Event",
				"Message": "Could not load the event. Please try again.",
			})
		}
		return nil, false
	}
	if event == nil || event.UserID != sess.UserID {
		if partial {
			http.Error(w, "event not found", http.StatusNotFound)
		} else {
			w.WriteHeader(http.StatusNotFound)
			render(h.logger, h.templates, w, "error.html", map[string]any{
				"Title":   "Event Not Found",
				"Message": "This event does not exist or you do not have access to it.",
			})
		}
		return nil, false
	}
	return event, true
}

func clockFromForm(r *http.Request, prefix string) (schedule.Clock, error) {
	c := schedule.Clock{
		Hour:   r.FormValue(prefix + "_hour"),
		Minute: r.FormValue(prefix + "_minute"),
		Period: r.FormValue(prefix + "_period"),
	}
	hour, err := strconv.Atoi(c.Hour)
	if err != nil || hour < 1 || hour > 12 {
		return c, fmt.Errorf("hour %q out of range", c.Hour)
	}
	minute, err := strconv.Atoi(c.Minute)
	if err != nil || minute < 0 || minute > 59 || len(c.Minute) != 2 {
		return c, fmt.Errorf("minute %q out of range", c.Minute)
	}
	if c.Period != "AM" && c.Period != "PM" {
		return c, fmt.Errorf("period %q invalid", c.Period)
	}
	return c, nil
}

func splitTags(raw string) []string {
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

package model

import "time"

// Event mirrors a row in the hosted events table. Apart from title and date it
// is a flat bag of optional fields owned entirely by the backend.
type Event struct {
	ID              int64    `json:"id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`     // calendar date, YYYY-MM-DD
	Time            string   `json:"time"`     // start time of day, as stored
	EndTime         string   `json:"end_time"` // end time of day, as stored
	Location        string   `json:"location"`
	MaxParticipants *int     `json:"max_participants"`
	Category        string   `json:"category"`
	Tags            []string `json:"tags"`
	ImageURL        string   `json:"image_url"`
	IsVirtual       bool     `json:"is_virtual"`
	VirtualLink     string   `json:"virtual_link"`
	Requirements    string   `json:"requirements"`
	ContactEmail    string   `json:"contact_email"`
	ContactPhone    string   `json:"contact_phone"`
	Status          string   `json:"status"` // lifecycle field: draft, published, cancelled
	UserID          string   `json:"user_id"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateOnly parses the event's calendar date. The zero time is returned for a
// missing or malformed date.
func (e Event) DateOnly() time.Time {
	t, err := time.Parse("2006-01-02", e.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

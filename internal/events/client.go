package events

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/eventease/eventease/internal/model"
)

// Client talks to the hosted events API. Every call is a one-shot
// request/response pair authenticated with the signed-in user's access token;
// no retries are attempted.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

type Option func(*Client)

func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// UpdateParams carries the fields the edit form may change. Times are the
// canonical 24-hour "HH:MM" storage form.
type UpdateParams struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	EndTime         string   `json:"end_time"`
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
}

// GetByID fetches a single event. Returns (nil, nil) when the record does not
// exist or is not visible to the caller.
func (c *Client) GetByID(ctx context.Context, token string, id int64) (*model.Event, error) {
	var event model.Event
	found, err := c.do(ctx, token, "GET", fmt.Sprintf("/events/%d", id), nil, &event)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &event, nil
}

// ListByOwner fetches every event owned by the given user.
func (c *Client) ListByOwner(ctx context.Context, token, userID string) ([]model.Event, error) {
	var list []model.Event
	path := "/events?user_id=" + url.QueryEscape(userID)
	if _, err := c.do(ctx, token, "GET", path, nil, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Update replaces the editable fields of an event and returns the stored
// record.
func (c *Client) Update(ctx context.Context, token string, id int64, params UpdateParams) (*model.Event, error) {
	var event model.Event
	found, err := c.do(ctx, token, "PATCH", fmt.Sprintf("/events/%d", id), params, &event)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("event %d not found", id)
	}
	return &event, nil
}

// SetImage updates only the event's image reference, leaving every other
// field untouched.
func (c *Client) SetImage(ctx context.Context, token string, id int64, imageURL string) error {
	payload := struct {
		ImageURL string `json:"image_url"`
	}{imageURL}
	found, err := c.do(ctx, token, "PATCH", fmt.Sprintf("/events/%d", id), payload, nil)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("event %d not found", id)
	}
	return nil
}

// Delete removes an event.
func (c *Client) Delete(ctx context.Context, token string, id int64) error {
	_, err := c.do(ctx, token, "DELETE", fmt.Sprintf("/events/%d", id), nil, nil)
	return err
}

// ParticipantCount returns the number of registered participants for an event.
func (c *Client) ParticipantCount(ctx context.Context, token string, eventID int64) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	path := fmt.Sprintf("/events/%d/participants/count", eventID)
	found, err := c.do(ctx, token, "GET", path, nil, &resp)
	if err != nil {
		return 0, err
	}
	if !found {
		return 0, nil
	}
	return resp.Count, nil
}

// do issues one API request. The bool result is false when the API answered
// 404 for the target resource.
func (c *Client) do(ctx context.Context, token, method, path string, payload, out any) (bool, error) {
	var body *bytes.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return false, fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(b)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("events API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode >= 400 {
		return false, fmt.Errorf("events API returned status %d", resp.StatusCode)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return false, fmt.Errorf("decode events response: %w", err)
		}
	}
	return true, nil
}

// Package adminapi is the outbound client for the hotel's remote admin API:
// room roster, availability, maintenance windows, online holds, the live
// occupancy feed, and booking submission.
package adminapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/catalodge/roomboard/internal/models"
	"github.com/catalodge/roomboard/internal/timeutil"
)

// Common errors returned by the client.
var (
	ErrUnexpectedStatus = errors.New("admin api returned unexpected status")
	ErrBadPayload       = errors.New("admin api returned unexpected payload")
)

// Client talks to the admin API. Construct it once and inject it; it holds no
// hidden global state.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates an admin API client for the given base URL.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// RoomsByType fetches the roster for a room type and normalizes it. The
// primary endpoint is tried first; older deployments only expose the generic
// rooms listing, so that is used as a fallback.
func (c *Client) RoomsByType(ctx context.Context, roomTypeID string) ([]models.Room, error) {
	raw, err := c.getList(ctx, "/rooms-by-type", url.Values{"room_type_id": {roomTypeID}})
	if err != nil {
		raw, err = c.getList(ctx, "/rooms", url.Values{"room_type_id": {roomTypeID}, "all": {"1"}})
		if err != nil {
			return nil, err
		}
	}

	rooms := make([]models.Room, 0, len(raw))
	for _, entry := range raw {
		if room, ok := NormalizeRoom(entry); ok {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

// AvailableRoomIDs fetches the set of room ids the admin system considers
// bookable for the window.
func (c *Client) AvailableRoomIDs(ctx context.Context, roomTypeID string, window models.BookingWindow) (map[string]struct{}, error) {
	raw, err := c.getList(ctx, "/available-rooms", url.Values{
		"arrival":      {window.Arrival.Format("2006-01-02")},
		"departure":    {window.Departure.Format("2006-01-02")},
		"room_type_id": {roomTypeID},
	})
	if err != nil {
		return nil, err
	}
	return idSet(raw), nil
}

// OnlineHoldIDs fetches the set of room ids held by online bookings awaiting
// confirmation for the window.
func (c *Client) OnlineHoldIDs(ctx context.Context, roomTypeID string, from, to string) (map[string]struct{}, error) {
	raw, err := c.getList(ctx, "/online-holds", url.Values{
		"room_type_id": {roomTypeID},
		"from":         {from},
		"to":           {to},
	})
	if err != nil {
		return nil, err
	}
	return idSet(raw), nil
}

// UnavailabilityWindows fetches the maintenance blocks per room id for the
// given date range.
func (c *Client) UnavailabilityWindows(ctx context.Context, roomTypeID string, from, to string) (map[string][]models.UnavailabilityWindow, error) {
	raw, err := c.getList(ctx, "/unavailable-rooms", url.Values{
		"room_type_id": {roomTypeID},
		"from":         {from},
		"to":           {to},
	})
	if err != nil {
		return nil, err
	}

	windows := make(map[string][]models.UnavailabilityWindow)
	for _, entry := range raw {
		id := stringField(entry, "room_id", "id")
		if id == "" {
			continue
		}
		fromTS := timeField(entry, "date_from", "from")
		toTS := timeField(entry, "date_to", "to")
		if fromTS == nil || toTS == nil {
			continue
		}
		windows[id] = append(windows[id], models.UnavailabilityWindow{
			RoomID: id,
			From:   *fromTS,
			To:     *toTS,
		})
	}
	return windows, nil
}

// OccupancyByRoom fetches the live occupancy feed, keyed by room id.
func (c *Client) OccupancyByRoom(ctx context.Context) (map[string]LiveOccupancy, error) {
	body, err := c.get(ctx, "/rooms-live-overview", nil)
	if err != nil {
		return nil, err
	}

	var overview liveOverviewResponse
	if err := json.Unmarshal(body, &overview); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}

	byRoom := make(map[string]LiveOccupancy)
	for _, group := range overview.Data {
		for _, entry := range group.Rooms {
			id := anyToString(entry.RoomID)
			if id == "" {
				continue
			}
			live := LiveOccupancy{Status: entry.Status}
			if ts, ok := timeutil.ParseTimestamp(entry.DepartureISO); ok {
				live.DepartureAt = &ts
			}
			if sec, ok := anyToInt64(entry.SecToDeparture); ok {
				live.SecondsLeft = &sec
			}
			byRoom[id] = live
		}
	}
	return byRoom, nil
}

// SubmitBooking forwards a completed booking to the admin API.
func (c *Client) SubmitBooking(ctx context.Context, booking BookingSubmission) error {
	payload, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/bookings", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to submit booking: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
	return nil
}

// get performs one GET request and returns the raw body.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to call admin api: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d: %s", ErrUnexpectedStatus, resp.StatusCode, string(body))
	}
	return body, nil
}

// getList performs a GET and unwraps the list envelope.
func (c *Client) getList(ctx context.Context, path string, params url.Values) ([]map[string]any, error) {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return nil, err
	}
	list, err := decodeList(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadPayload, err)
	}
	return list, nil
}

// idSet extracts normalized room ids from a list response.
func idSet(raw []map[string]any) map[string]struct{} {
	ids := make(map[string]struct{}, len(raw))
	for _, entry := range raw {
		if id := stringField(entry, "id", "room_id", "ID"); id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids
}

func anyToString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	}
	return ""
}

func anyToInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case string:
		if n, err := strconv.ParseInt(t, 10, 64); err == nil {
			return n, true
		}
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n, true
		}
	}
	return 0, false
}

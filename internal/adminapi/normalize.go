package adminapi

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/catalodge/roomboard/internal/models"
	"github.com/catalodge/roomboard/internal/timeutil"
)

// The admin API has grown several generations of field names for the same
// facts. This file is the single normalization boundary: it maps any of the
// known shapes onto the canonical Room record so the rest of the service
// never deals with aliases.

// departureAliases lists every field name observed to carry the occupancy end
// timestamp, in preference order.
var departureAliases = []string{
	"hms_booking_departure_date_time",
	"next_checkout_at",
	"check_out",
	"departure_datetime",
	"occupied_until",
	"departure_date_time",
	"checkout_at",
	"checkout_time",
	"checkout_datetime",
	"checkout_date_time",
}

// cleaningAliases lists the field names carrying the cleaning-window end.
var cleaningAliases = []string{
	"cleaning_until",
	"clean_until",
	"cleaning_till",
	"cleaning_end",
}

// adminStatusAliases lists the fields that may carry a back-office status.
var adminStatusAliases = []string{
	"admin_status",
	"booking_status",
	"status_name",
	"adminStatus",
	"bookingStatus",
	"statusName",
}

// NormalizeRoom maps one raw roster entry to the canonical Room record.
// Returns false when the entry has no usable id.
func NormalizeRoom(raw map[string]any) (models.Room, bool) {
	id := stringField(raw, "id", "room_id", "ID")
	if id == "" {
		return models.Room{}, false
	}

	room := models.Room{
		ID:            id,
		RoomNumber:    stringField(raw, "room_number", "name", "number"),
		Floor:         stringField(raw, "floor", "level"),
		DepartureAt:   timeField(raw, departureAliases...),
		CleaningUntil: timeField(raw, cleaningAliases...),
		AdminStatus:   stringField(raw, adminStatusAliases...),
	}
	if room.RoomNumber == "" {
		room.RoomNumber = id
	}

	// A generic "status" field only counts as an admin signal when it looks
	// like transaction wording; "vacant"/"occupied" style occupancy values
	// belong to the live feed.
	if room.AdminStatus == "" {
		if s := stringField(raw, "status"); meaningfulAdmin(s) {
			room.AdminStatus = s
		} else {
			room.LiveStatus = s
		}
	}

	return room, true
}

// meaningfulAdmin reports whether a free-text status looks like back-office
// transaction wording rather than a bare occupancy signal.
func meaningfulAdmin(s string) bool {
	n := strings.ToLower(s)
	for _, kw := range []string{"pending", "confirm", "cancel", "depart", "clean", "maint", "await", "hold"} {
		if strings.Contains(n, kw) {
			return true
		}
	}
	return false
}

// decodeList unwraps the API's envelope variants: {"data": [...]} or a bare
// JSON array.
func decodeList(body []byte) ([]map[string]any, error) {
	var envelope struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}

	var list []map[string]any
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// stringField returns the first present alias rendered as a string. Numeric
// ids come back from the API as JSON numbers and are normalized to their
// integer spelling.
func stringField(raw map[string]any, keys ...string) string {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		case float64:
			return strconv.FormatFloat(t, 'f', -1, 64)
		case json.Number:
			return t.String()
		case int:
			return strconv.Itoa(t)
		case int64:
			return strconv.FormatInt(t, 10)
		}
	}
	return ""
}

// timeField returns the first alias that parses as a timestamp, or nil.
// Unparseable values are treated as absent, never as errors.
func timeField(raw map[string]any, keys ...string) *time.Time {
	for _, key := range keys {
		v, ok := raw[key]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case string:
			if ts, ok := timeutil.ParseTimestamp(t); ok {
				return &ts
			}
		case float64:
			ts := timeutil.FromUnix(int64(t))
			return &ts
		case json.Number:
			if n, err := t.Int64(); err == nil {
				ts := timeutil.FromUnix(n)
				return &ts
			}
		}
	}
	return nil
}

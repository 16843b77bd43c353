package models

import "time"

// Room is the canonical record for a bookable unit, produced by the admin-API
// normalization boundary. The availability engine only ever sees this shape;
// it never touches the remote API's variant field names.
type Room struct {
	// ID is the opaque stable identifier, always compared as a string.
	ID string `json:"id"`

	// RoomNumber is the display label ("101", "Sea View 2").
	RoomNumber string `json:"room_number"`

	// Floor is optional display metadata.
	Floor string `json:"floor,omitempty"`

	// DepartureAt is when the current/most-recent occupancy ends. Nil when
	// unknown or unparseable.
	DepartureAt *time.Time `json:"departure_at,omitempty"`

	// CleaningUntil is when a post-checkout cleaning window ends. Nil when
	// unknown or unparseable.
	CleaningUntil *time.Time `json:"cleaning_until,omitempty"`

	// AdminStatus is the raw back-office transaction status ("Confirmed",
	// "Awaiting Payment", ...). Authoritative when it normalizes to a known
	// admin vocabulary value.
	AdminStatus string `json:"admin_status,omitempty"`

	// LiveStatus is the raw status from the live occupancy feed. Lower
	// precedence than AdminStatus.
	LiveStatus string `json:"live_status,omitempty"`
}

// BookingWindow is the guest's requested stay.
type BookingWindow struct {
	Arrival   time.Time `json:"arrival"`
	Departure time.Time `json:"departure"`
}

// Valid reports whether the departure is on or after the arrival.
func (w BookingWindow) Valid() bool {
	return !w.Departure.Before(w.Arrival)
}

// Nights returns the whole-day difference between arrival and departure,
// never negative.
func (w BookingWindow) Nights() int {
	a := dateOnly(w.Arrival)
	d := dateOnly(w.Departure)
	nights := int(d.Sub(a).Hours() / 24)
	if nights < 0 {
		return 0
	}
	return nights
}

// UnavailabilityWindow is a maintenance block for a room. Overlap with a
// booking window is inclusive at day granularity.
type UnavailabilityWindow struct {
	RoomID string    `json:"room_id"`
	From   time.Time `json:"date_from"`
	To     time.Time `json:"date_to"`
}

// dateOnly truncates a time to its calendar day, keeping the location.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

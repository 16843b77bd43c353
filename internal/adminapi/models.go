package adminapi

import "time"

// LiveOccupancy is one room's entry in the live occupancy feed.
type LiveOccupancy struct {
	// DepartureAt is the feed's occupancy end, nil when absent or
	// unparseable.
	DepartureAt *time.Time

	// SecondsLeft is the feed's own countdown, nil when absent. Some feed
	// versions deliver only this.
	SecondsLeft *int64

	// Status is the raw live status string ("occupied", "vacant", ...).
	Status string
}

// BookingSubmission is the opaque payload forwarded to the admin API when a
// guest completes a booking. The service fills in the computed total and the
// verified payment reference; it does not interpret the rest.
type BookingSubmission struct {
	FullName      string   `json:"full_name"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email,omitempty"`
	ArrivalDate   string   `json:"arrival_date"`
	DepartureDate string   `json:"departure_date"`
	BookingDate   string   `json:"booking_date"`
	RoomIDs       []string `json:"room_ids"`
	TotalAmount   int64    `json:"total_amount"`
	AmountPaid    int64    `json:"amount_paid"`
	PaymentStatus string   `json:"payment_status"`
	PaymentRef    string   `json:"payment_ref"`
	Status        string   `json:"status"`
	CapturedImage string   `json:"captured_image,omitempty"`
}

// liveOverviewResponse mirrors the grouped live-overview payload.
type liveOverviewResponse struct {
	Data []struct {
		Rooms []liveRoomEntry `json:"rooms"`
	} `json:"data"`
}

type liveRoomEntry struct {
	RoomID         any    `json:"room_id"`
	DepartureISO   string `json:"departure_iso"`
	SecToDeparture any    `json:"sec_to_departure"`
	Status         string `json:"status"`
}

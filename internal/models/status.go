package models

import "strings"

// RoomStatus is the closed set of statuses a room can be presented with.
// Exactly one applies at any time; precedence between the underlying signals
// is resolved by the availability engine.
type RoomStatus string

const (
	StatusInactive    RoomStatus = "INACTIVE"    // no dates selected
	StatusAvailable   RoomStatus = "AVAILABLE"   // bookable
	StatusOccupied    RoomStatus = "OCCUPIED"    // guest currently in the room
	StatusCleaning    RoomStatus = "CLEANING"    // post-checkout cleaning window
	StatusPending     RoomStatus = "PENDING"     // transaction pending, not bookable
	StatusMaintenance RoomStatus = "MAINTENANCE" // blocked by a maintenance window
	StatusOnlineHold  RoomStatus = "ONLINE_HOLD" // held by an online booking awaiting confirmation
)

// AdminStatus is the closed vocabulary the back-office free-text statuses
// normalize into.
type AdminStatus string

const (
	AdminDeparture   AdminStatus = "DEPARTURE"
	AdminConfirmed   AdminStatus = "CONFIRMED"
	AdminPending     AdminStatus = "PENDING"
	AdminCancelled   AdminStatus = "CANCELLED"
	AdminMaintenance AdminStatus = "MAINTENANCE"
	AdminCleaning    AdminStatus = "CLEANING"
	AdminOnlineHold  AdminStatus = "ONLINE_HOLD"
)

// NormalizeAdminStatus maps a free-text back-office status to the closed admin
// vocabulary. Matching is case-insensitive and substring-tolerant so that
// variants like "Pending Payment" or "CANCELED" land on the right value.
// Returns false when the text carries no admin signal.
func NormalizeAdminStatus(s string) (AdminStatus, bool) {
	n := strings.ToUpper(strings.TrimSpace(s))
	if n == "" {
		return "", false
	}

	// Online-hold variants must be checked before the broad PENDING catches,
	// since "Awaiting Confirmation" would otherwise match "AWAIT".
	switch {
	case strings.Contains(n, "AWAITING CONFIRMATION"),
		strings.Contains(n, "AWAITING VERIFICATION"),
		strings.Contains(n, "ONLINE HOLD"):
		return AdminOnlineHold, true
	}

	switch {
	case n == "PENDING",
		strings.Contains(n, "PEND"),   // "Pending", "Pending Payment"
		strings.Contains(n, "AWAIT"),  // "Awaiting Approval/Payment"
		strings.Contains(n, "UNPAID"), // "Unpaid"
		strings.Contains(n, "HOLD"):   // "On Hold"
		return AdminPending, true
	case strings.HasPrefix(n, "DEPARTURE"):
		return AdminDeparture, true
	case strings.HasPrefix(n, "CONFIRMED"):
		return AdminConfirmed, true
	case strings.Contains(n, "MAINTENANCE"):
		return AdminMaintenance, true
	case strings.HasPrefix(n, "CLEAN"):
		return AdminCleaning, true
	case strings.HasPrefix(n, "CANCEL"): // CANCEL/CANCELED/CANCELLED
		return AdminCancelled, true
	}

	return "", false
}

// bookableByStatus is the single source of truth for which statuses a guest
// may select for booking.
var bookableByStatus = map[RoomStatus]bool{
	StatusAvailable:   true,
	StatusInactive:    false,
	StatusOccupied:    false,
	StatusCleaning:    false,
	StatusPending:     false,
	StatusMaintenance: false,
	StatusOnlineHold:  false,
}

// IsBookable reports whether a room in the given status may be selected for
// booking.
func IsBookable(s RoomStatus) bool {
	return bookableByStatus[s]
}

// Presentation carries the display metadata for a status: the chip label shown
// to guests and a color tone the UI maps to its palette.
type Presentation struct {
	Label string `json:"label"`
	Tone  string `json:"tone"`
}

var statusPresentation = map[RoomStatus]Presentation{
	StatusAvailable:   {Label: "Vacant", Tone: "emerald"},
	StatusOccupied:    {Label: "Occupied", Tone: "rose"},
	StatusPending:     {Label: "Pending", Tone: "amber"},
	StatusMaintenance: {Label: "Under maintenance", Tone: "violet"},
	StatusCleaning:    {Label: "Cleaning", Tone: "sky"},
	StatusOnlineHold:  {Label: "Awaiting confirmation", Tone: "amber"},
	StatusInactive:    {Label: "Unavailable", Tone: "slate"},
}

// adminLabelOverride replaces the generic status label with the back-office
// wording when an admin signal is present.
var adminLabelOverride = map[AdminStatus]string{
	AdminDeparture:   "Vacant",
	AdminConfirmed:   "Occupied",
	AdminPending:     "Pending",
	AdminCancelled:   "Available",
	AdminMaintenance: "Under maintenance",
	AdminCleaning:    "Cleaning",
	AdminOnlineHold:  "Awaiting confirmation",
}

// PresentationFor returns the display metadata for a status, with the label
// overridden by the admin vocabulary when one applies.
func PresentationFor(status RoomStatus, admin AdminStatus, hasAdmin bool) Presentation {
	p, ok := statusPresentation[status]
	if !ok {
		p = statusPresentation[StatusInactive]
	}
	if hasAdmin {
		if label, ok := adminLabelOverride[admin]; ok {
			p.Label = label
		}
	}
	return p
}

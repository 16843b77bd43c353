package availability

import (
	"time"

	"github.com/catalodge/roomboard/internal/models"
	"github.com/catalodge/roomboard/internal/timeutil"
)

// RoomView is one roster entry as the UI consumes it: the canonical room plus
// the resolved status, countdown, and presentation.
type RoomView struct {
	models.Room

	Status      models.RoomStatus `json:"status"`
	RemainingMS int64             `json:"remaining_ms"`
	Countdown   string            `json:"countdown,omitempty"`
	Label       string            `json:"label"`
	Tone        string            `json:"tone"`
	Bookable    bool              `json:"bookable"`
	Selected    bool              `json:"selected"`
}

// RosterInput bundles the shared state one roster computation reads. The maps
// may be nil; a nil entry simply means "not in the set".
type RosterInput struct {
	Now          time.Time
	Window       *models.BookingWindow
	Rooms        []models.Room
	Maintenance  map[string][]models.UnavailabilityWindow
	AvailableIDs map[string]struct{}
	HoldIDs      map[string]struct{}
	SelectedIDs  map[string]struct{}
}

// ComputeRoster resolves every room in the roster. Pure: identical inputs
// yield identical output.
func ComputeRoster(in RosterInput) []RoomView {
	views := make([]RoomView, 0, len(in.Rooms))
	for _, room := range in.Rooms {
		res := Resolve(Input{
			Now:         in.Now,
			Window:      in.Window,
			Room:        room,
			Maintenance: in.Maintenance[room.ID],
			Available:   contains(in.AvailableIDs, room.ID),
			OnHold:      contains(in.HoldIDs, room.ID),
		})

		admin, hasAdmin := models.NormalizeAdminStatus(room.AdminStatus)
		pres := models.PresentationFor(res.Status, admin, hasAdmin)

		view := RoomView{
			Room:        room,
			Status:      res.Status,
			RemainingMS: res.Remaining.Milliseconds(),
			Label:       pres.Label,
			Tone:        pres.Tone,
			Bookable:    models.IsBookable(res.Status),
			Selected:    contains(in.SelectedIDs, room.ID),
		}
		if res.Remaining > 0 {
			view.Countdown = timeutil.FormatRemaining(res.Remaining)
		}
		views = append(views, view)
	}
	return views
}

func contains(set map[string]struct{}, id string) bool {
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}

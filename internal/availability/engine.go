// Package availability implements the room-status engine: a pure function
// that resolves exactly one status per room from the guest's booking window,
// the room's back-office and live signals, and its maintenance windows.
package availability

import (
	"strings"
	"time"

	"github.com/catalodge/roomboard/internal/models"
	"github.com/catalodge/roomboard/internal/timeutil"
)

const (
	// CheckInHour is the hotel's standard check-in time used by the
	// same-day turnover rule.
	CheckInHour = 12

	// TurnoverFence is the grace period before a departure during which a
	// same-day arrival at or after check-in time may treat the room as
	// available.
	TurnoverFence = 30 * time.Minute
)

// Input carries everything the engine needs to resolve one room. The clock is
// injected so resolution stays deterministic under test.
type Input struct {
	Now         time.Time
	Window      *models.BookingWindow
	Room        models.Room
	Maintenance []models.UnavailabilityWindow

	// Available reports membership in the remotely computed available set
	// for the current window.
	Available bool

	// OnHold reports membership in the online-hold set for the current
	// window.
	OnHold bool
}

// Result is the engine's output for one room.
type Result struct {
	Status    models.RoomStatus
	Remaining time.Duration
}

// Resolve determines the status of a single room. It is pure and total: no
// I/O, no mutation, and every well-formed input yields exactly one status
// with a non-negative remaining duration.
//
// Precedence, first match wins:
//  1. maintenance (window overlap, active-now block, or literal signal)
//  2. online hold
//  3. admin CONFIRMED -> OCCUPIED with countdown
//  4. admin PENDING -> PENDING
//  5. admin CLEANING -> CLEANING with countdown
//     (admin CANCELLED and DEPARTURE fall through to the time-based rules)
//  6. no booking window -> INACTIVE
//  7. future cleaning window -> CLEANING with countdown
//  8. known departure -> day comparison plus the same-day turnover fence
//  9. fallback on the available set and the live signal
func Resolve(in Input) Result {
	admin, hasAdmin := models.NormalizeAdminStatus(in.Room.AdminStatus)

	// 1. Maintenance wins unconditionally.
	if blocked, remaining := maintenanceState(in, admin, hasAdmin); blocked {
		return Result{Status: models.StatusMaintenance, Remaining: remaining}
	}

	// 2. Online holds block booking but carry no countdown.
	if in.OnHold || (hasAdmin && admin == models.AdminOnlineHold) {
		return Result{Status: models.StatusOnlineHold}
	}

	// 3-5. Admin transaction state overrides the time-based rules.
	if hasAdmin {
		switch admin {
		case models.AdminConfirmed:
			return Result{Status: models.StatusOccupied, Remaining: remainingUntil(in.Room.DepartureAt, in.Now)}
		case models.AdminPending:
			return Result{Status: models.StatusPending}
		case models.AdminCleaning:
			return Result{Status: models.StatusCleaning, Remaining: remainingUntil(in.Room.CleaningUntil, in.Now)}
		}
		// CANCELLED and DEPARTURE mean the booking no longer constrains
		// the room; let the time-based rules decide.
	}

	// 6. Without a window there is nothing to offer.
	if in.Window == nil {
		return Result{Status: models.StatusInactive}
	}

	// 7. A cleaning window still in the future keeps the room blocked.
	if in.Room.CleaningUntil != nil && in.Room.CleaningUntil.After(in.Now) {
		return Result{Status: models.StatusCleaning, Remaining: in.Room.CleaningUntil.Sub(in.Now)}
	}

	// 8. A known occupancy end drives the day-level comparison.
	if in.Room.DepartureAt != nil {
		return resolveAgainstDeparture(in.Now, in.Window.Arrival, *in.Room.DepartureAt)
	}

	// 9. No departure known: trust the remote available set, then the live
	// signal, defaulting conservatively.
	if in.Available {
		return Result{Status: models.StatusAvailable}
	}
	if MeaninglessLive(in.Room.LiveStatus) {
		return Result{Status: models.StatusPending}
	}
	return Result{Status: models.StatusOccupied}
}

// resolveAgainstDeparture applies the calendar-day rules between the guest's
// arrival and the current occupancy's departure, including the same-day
// turnover fence.
func resolveAgainstDeparture(now, arrival, departure time.Time) Result {
	arrDay := timeutil.DateOnly(arrival)
	depDay := timeutil.DateOnly(departure.In(arrival.Location()))
	left := departure.Sub(now)
	if left < 0 {
		left = 0
	}

	// Arrival strictly after the departure day: free regardless of time.
	if arrDay.After(depDay) {
		return Result{Status: models.StatusAvailable}
	}

	// Same-day turnover: the room counts as free only when check-in time is
	// at or after the departure and the departure is within the fence.
	if arrDay.Equal(depDay) {
		arrivalAtNoon := time.Date(arrDay.Year(), arrDay.Month(), arrDay.Day(),
			CheckInHour, 0, 0, 0, arrDay.Location())
		if !arrivalAtNoon.Before(departure) && left <= TurnoverFence {
			return Result{Status: models.StatusAvailable}
		}
		return Result{Status: models.StatusOccupied, Remaining: left}
	}

	// Arrival before the departure day: still occupied.
	return Result{Status: models.StatusOccupied, Remaining: left}
}

// maintenanceState checks the unconditional maintenance rule. With a booking
// window it looks for day-inclusive overlap; without one it looks for a window
// active right now. A literal "maintenance" signal from either feed also
// counts. The countdown runs to the latest blocking window's end when now is
// inside that window.
func maintenanceState(in Input, admin models.AdminStatus, hasAdmin bool) (bool, time.Duration) {
	blocked := (hasAdmin && admin == models.AdminMaintenance) ||
		strings.EqualFold(strings.TrimSpace(in.Room.LiveStatus), "maintenance")

	var latestEnd time.Time
	for _, w := range in.Maintenance {
		if in.Window != nil {
			if !windowsOverlap(*in.Window, w) {
				continue
			}
		} else if !containsInstant(w, in.Now) {
			continue
		}
		blocked = true
		if end := endOfDay(w.To); containsInstant(w, in.Now) && end.After(latestEnd) {
			latestEnd = end
		}
	}

	if !blocked {
		return false, 0
	}
	if latestEnd.IsZero() || !latestEnd.After(in.Now) {
		return true, 0
	}
	return true, latestEnd.Sub(in.Now)
}

// windowsOverlap reports day-inclusive overlap between a booking window and a
// maintenance window: arrival.day <= to.day AND departure.day >= from.day.
func windowsOverlap(b models.BookingWindow, m models.UnavailabilityWindow) bool {
	arr := timeutil.DateOnly(b.Arrival)
	dep := timeutil.DateOnly(b.Departure)
	from := timeutil.DateOnly(m.From.In(b.Arrival.Location()))
	to := timeutil.DateOnly(m.To.In(b.Arrival.Location()))
	return !arr.After(to) && !dep.Before(from)
}

// containsInstant reports whether t falls inside the maintenance window,
// inclusive of the whole final day.
func containsInstant(m models.UnavailabilityWindow, t time.Time) bool {
	return !t.Before(timeutil.DateOnly(m.From)) && t.Before(endOfDay(m.To))
}

// endOfDay is the first instant after the window's final day.
func endOfDay(t time.Time) time.Time {
	return timeutil.DateOnly(t).AddDate(0, 0, 1)
}

// remainingUntil clamps the countdown to a nullable deadline at zero.
func remainingUntil(deadline *time.Time, now time.Time) time.Duration {
	if deadline == nil {
		return 0
	}
	left := deadline.Sub(now)
	if left < 0 {
		return 0
	}
	return left
}

// MeaninglessLive reports whether a live-feed status carries no occupancy
// signal. Shared with the occupancy merge, which must not let "vacant" style
// values masquerade as admin state.
func MeaninglessLive(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "vacant", "available", "free":
		return true
	}
	return false
}

// Package service holds the business logic between the HTTP surface and the
// admin API: roster state, the guest's window and selection, booking
// submission, and menu carts.
package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/catalodge/roomboard/internal/adminapi"
	"github.com/catalodge/roomboard/internal/availability"
	"github.com/catalodge/roomboard/internal/models"
	"github.com/catalodge/roomboard/internal/repository"
	"github.com/catalodge/roomboard/internal/utils"
)

// UpdateCallback is invoked after any state change that affects computed
// statuses. Listeners pull a fresh Snapshot.
type UpdateCallback func()

// RosterService owns all roster state for one room type. All mutation goes
// through its merge methods; the availability engine itself stays pure.
type RosterService struct {
	client     AdminAPI
	repo       repository.Repository
	roomTypeID string

	// PricePerNight is the configured per-night rate in currency subunits.
	pricePerNight int64

	mu          sync.Mutex
	rooms       []models.Room
	window      *models.BookingWindow
	available   map[string]struct{}
	holds       map[string]struct{}
	maintenance map[string][]models.UnavailabilityWindow
	selection   map[string]struct{}
	fetching    bool

	// fetchCancel aborts the in-flight window fetch when a newer window
	// supersedes it.
	fetchCancel context.CancelFunc

	callbacks []UpdateCallback

	// clock is injected so status resolution stays testable.
	clock func() time.Time
}

// NewRosterService creates a roster service for the given room type.
func NewRosterService(client AdminAPI, repo repository.Repository, roomTypeID string, pricePerNight int64) *RosterService {
	return &RosterService{
		client:        client,
		repo:          repo,
		roomTypeID:    roomTypeID,
		pricePerNight: pricePerNight,
		selection:     make(map[string]struct{}),
		clock:         time.Now,
	}
}

// SetClock overrides the service clock. Intended for tests.
func (s *RosterService) SetClock(clock func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock = clock
}

// RegisterUpdateCallback registers a callback invoked after state changes.
func (s *RosterService) RegisterUpdateCallback(cb UpdateCallback) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.callbacks = append(s.callbacks, cb)
}

func (s *RosterService) notifyUpdate() {
	s.mu.Lock()
	callbacks := make([]UpdateCallback, len(s.callbacks))
	copy(callbacks, s.callbacks)
	s.mu.Unlock()

	for _, cb := range callbacks {
		cb()
	}
}

// LoadRoster fetches the room roster and the initial occupancy feed, merging
// them into service state. When the admin API is unreachable it falls back to
// the repository's cached snapshot so the roster still renders.
func (s *RosterService) LoadRoster(ctx context.Context) error {
	rooms, err := s.client.RoomsByType(ctx, s.roomTypeID)
	if err != nil {
		log.Printf("Roster fetch failed, trying cached snapshot: %v", err)
		cached, cacheErr := s.repo.GetRoster(ctx)
		if cacheErr != nil {
			return err
		}
		rooms = cached
	} else {
		if saveErr := s.repo.SaveRoster(ctx, rooms); saveErr != nil {
			log.Printf("Failed to cache roster snapshot: %v", saveErr)
		}
	}

	// Initial occupancy merge is best-effort; the poller will catch up.
	if live, occErr := s.client.OccupancyByRoom(ctx); occErr != nil {
		log.Printf("Initial occupancy fetch failed: %v", occErr)
	} else {
		rooms = mergeLive(rooms, live, s.now())
	}

	s.mu.Lock()
	s.rooms = rooms
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// SetWindow installs the guest's booking window and refreshes the three
// window-scoped data sets concurrently: availability, maintenance windows,
// and online holds. All three must resolve before statuses recompute. Any
// previous in-flight refresh is aborted so a late response cannot overwrite a
// newer selection. Passing nil clears the window; "active today" maintenance
// is still fetched so rooms under repair stay flagged.
func (s *RosterService) SetWindow(window *models.BookingWindow) error {
	if window != nil && !window.Valid() {
		return ErrInvalidWindow
	}

	s.mu.Lock()
	if s.fetchCancel != nil {
		s.fetchCancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.fetchCancel = cancel
	s.fetching = true

	if window != nil {
		w := *window
		s.window = &w
	} else {
		s.window = nil
	}
	// The selection is only meaningful against one window.
	s.selection = make(map[string]struct{})
	s.mu.Unlock()

	if window == nil {
		s.refreshTodayMaintenance(ctx)
	} else {
		s.refreshWindowData(ctx, *window)
	}
	return nil
}

// refreshWindowData runs the three window-scoped fetches concurrently and
// installs the results once all have resolved. Individual failures degrade to
// empty sets; a superseded refresh is discarded silently.
func (s *RosterService) refreshWindowData(ctx context.Context, window models.BookingWindow) {
	from := window.Arrival.Format("2006-01-02")
	to := window.Departure.Format("2006-01-02")

	var (
		wg        sync.WaitGroup
		available map[string]struct{}
		maint     map[string][]models.UnavailabilityWindow
		holds     map[string]struct{}
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		ids, err := s.client.AvailableRoomIDs(ctx, s.roomTypeID, window)
		if err != nil {
			logFetchError(ctx, "availability", err)
			ids = map[string]struct{}{}
		}
		available = ids
	}()
	go func() {
		defer wg.Done()
		windows, err := s.client.UnavailabilityWindows(ctx, s.roomTypeID, from, to)
		if err != nil {
			logFetchError(ctx, "maintenance", err)
			windows = map[string][]models.UnavailabilityWindow{}
		}
		maint = windows
	}()
	go func() {
		defer wg.Done()
		ids, err := s.client.OnlineHoldIDs(ctx, s.roomTypeID, from, to)
		if err != nil {
			logFetchError(ctx, "online-hold", err)
			ids = map[string]struct{}{}
		}
		holds = ids
	}()
	wg.Wait()

	if ctx.Err() != nil {
		// Superseded by a newer window; discard without touching state.
		return
	}

	s.mu.Lock()
	s.available = available
	s.maintenance = maint
	s.holds = holds
	s.fetching = false
	s.mu.Unlock()

	s.notifyUpdate()
}

// refreshTodayMaintenance fetches maintenance windows active today, keeping
// rooms under repair flagged while no dates are selected.
func (s *RosterService) refreshTodayMaintenance(ctx context.Context) {
	today := s.now().Format("2006-01-02")
	windows, err := s.client.UnavailabilityWindows(ctx, s.roomTypeID, today, today)
	if err != nil {
		logFetchError(ctx, "maintenance", err)
		windows = map[string][]models.UnavailabilityWindow{}
	}

	if ctx.Err() != nil {
		return
	}

	s.mu.Lock()
	s.available = nil
	s.holds = nil
	s.maintenance = windows
	s.fetching = false
	s.mu.Unlock()

	s.notifyUpdate()
}

// RefreshOccupancy re-fetches the live occupancy feed and merges it into the
// roster without disturbing the guest's window or selection. Called by the
// background poller.
func (s *RosterService) RefreshOccupancy(ctx context.Context) error {
	live, err := s.client.OccupancyByRoom(ctx)
	if err != nil {
		return err
	}

	now := s.now()
	s.mu.Lock()
	s.rooms = mergeLive(s.rooms, live, now)
	s.mu.Unlock()

	s.notifyUpdate()
	return nil
}

// mergeLive folds the occupancy feed into the roster. Concurrent fetches
// write disjoint fields, so a plain last-write-wins merge is safe here.
func mergeLive(rooms []models.Room, live map[string]adminapi.LiveOccupancy, now time.Time) []models.Room {
	merged := make([]models.Room, len(rooms))
	copy(merged, rooms)

	for i := range merged {
		entry, ok := live[merged[i].ID]
		if !ok {
			continue
		}

		switch {
		case entry.DepartureAt != nil:
			merged[i].DepartureAt = entry.DepartureAt
		case entry.SecondsLeft != nil:
			// Some feed versions deliver only a countdown; anchor it to
			// the merge instant.
			dep := now.Add(time.Duration(*entry.SecondsLeft) * time.Second)
			merged[i].DepartureAt = &dep
		}

		merged[i].LiveStatus = entry.Status

		// A meaningful live status backfills a missing admin signal but
		// never overrides one.
		if merged[i].AdminStatus == "" && !availability.MeaninglessLive(entry.Status) {
			merged[i].AdminStatus = entry.Status
		}
	}
	return merged
}

// Snapshot resolves the current status of every room via the availability
// engine. The result is derived state; calling it twice without a state
// change yields identical output for the same instant.
func (s *RosterService) Snapshot() []availability.RoomView {
	s.mu.Lock()
	defer s.mu.Unlock()

	var window *models.BookingWindow
	if s.window != nil {
		w := *s.window
		window = &w
	}

	return availability.ComputeRoster(availability.RosterInput{
		Now:          s.clock(),
		Window:       window,
		Rooms:        s.rooms,
		Maintenance:  s.maintenance,
		AvailableIDs: s.available,
		HoldIDs:      s.holds,
		SelectedIDs:  s.selection,
	})
}

// Window returns a copy of the current booking window, or nil.
func (s *RosterService) Window() *models.BookingWindow {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.window == nil {
		return nil
	}
	w := *s.window
	return &w
}

// ToggleSelect flips a room in or out of the guest's selection. Selecting
// requires a window, no refresh in flight, and the room resolving AVAILABLE;
// deselecting is always allowed.
func (s *RosterService) ToggleSelect(roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, selected := s.selection[roomID]; selected {
		delete(s.selection, roomID)
		return nil
	}

	if s.window == nil {
		return ErrNoWindow
	}
	if s.fetching {
		return ErrRefreshing
	}

	var room *models.Room
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			room = &s.rooms[i]
			break
		}
	}
	if room == nil {
		return ErrUnknownRoom
	}

	res := availability.Resolve(availability.Input{
		Now:         s.clock(),
		Window:      s.window,
		Room:        *room,
		Maintenance: s.maintenance[roomID],
		Available:   setContains(s.available, roomID),
		OnHold:      setContains(s.holds, roomID),
	})
	if !models.IsBookable(res.Status) {
		return ErrNotBookable
	}

	s.selection[roomID] = struct{}{}
	return nil
}

// Selection returns the selected room ids.
func (s *RosterService) Selection() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]string, 0, len(s.selection))
	for id := range s.selection {
		ids = append(ids, id)
	}
	return ids
}

// Totals computes the booking arithmetic: nights in the window, selected room
// count, and total = nights x price x count.
func (s *RosterService) Totals() (nights int, selected int, total int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.window != nil {
		nights = s.window.Nights()
	}
	selected = len(s.selection)
	total = int64(nights) * s.pricePerNight * int64(selected)
	return nights, selected, total
}

// HasCountdown reports whether any room currently carries a running
// countdown. The SSE layer uses this to start and stop its per-second tick.
func (s *RosterService) HasCountdown() bool {
	for _, view := range s.Snapshot() {
		if view.RemainingMS > 0 {
			return true
		}
	}
	return false
}

// clearSelection resets the guest's selection after a completed booking.
func (s *RosterService) clearSelection() {
	s.mu.Lock()
	s.selection = make(map[string]struct{})
	s.mu.Unlock()

	s.notifyUpdate()
}

// now returns the injected clock's current instant.
func (s *RosterService) now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock()
}

// logFetchError logs a collaborator failure unless the fetch was deliberately
// aborted by a newer window. The error text can embed remote response bodies,
// so it is sanitized before logging.
func logFetchError(ctx context.Context, what string, err error) {
	if ctx.Err() != nil {
		return
	}
	log.Printf("Failed to fetch %s data: %s", what, utils.SanitizeLogString(err.Error()))
}

func setContains(set map[string]struct{}, id string) bool {
	if set == nil {
		return false
	}
	_, ok := set[id]
	return ok
}

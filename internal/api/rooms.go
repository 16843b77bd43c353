package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/catalodge/roomboard/internal/models"
	"github.com/catalodge/roomboard/internal/service"
)

// RoomsHandler serves the computed roster and the guest's booking window and
// selection.
type RoomsHandler struct {
	roster *service.RosterService
}

// NewRoomsHandler creates a rooms handler over the roster service.
func NewRoomsHandler(roster *service.RosterService) *RoomsHandler {
	return &RoomsHandler{roster: roster}
}

// rosterResponse is the full roster payload the UI renders from.
type rosterResponse struct {
	Window    *models.BookingWindow `json:"window,omitempty"`
	Rooms     any                   `json:"rooms"`
	Nights    int                   `json:"nights"`
	Selected  int                   `json:"selected"`
	Total     int64                 `json:"total"`
	Selection []string              `json:"selection"`
}

func (h *RoomsHandler) buildResponse() rosterResponse {
	nights, selected, total := h.roster.Totals()
	return rosterResponse{
		Window:    h.roster.Window(),
		Rooms:     h.roster.Snapshot(),
		Nights:    nights,
		Selected:  selected,
		Total:     total,
		Selection: h.roster.Selection(),
	}
}

// GetRooms handles GET /api/rooms.
func (h *RoomsHandler) GetRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.buildResponse())
}

// windowRequest carries the guest's date range as YYYY-MM-DD strings.
type windowRequest struct {
	Arrival   string `json:"arrival"`
	Departure string `json:"departure"`
}

// SetWindow handles PUT /api/window: it installs the range and refreshes the
// window-scoped availability, maintenance, and hold data before responding.
func (h *RoomsHandler) SetWindow(w http.ResponseWriter, r *http.Request) {
	var req windowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	arrival, err := time.ParseInLocation("2006-01-02", req.Arrival, time.Local)
	if err != nil {
		http.Error(w, "Invalid arrival date", http.StatusBadRequest)
		return
	}
	departure, err := time.ParseInLocation("2006-01-02", req.Departure, time.Local)
	if err != nil {
		http.Error(w, "Invalid departure date", http.StatusBadRequest)
		return
	}

	window := models.BookingWindow{Arrival: arrival, Departure: departure}
	if err := h.roster.SetWindow(&window); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, h.buildResponse())
}

// ClearWindow handles DELETE /api/window.
func (h *RoomsHandler) ClearWindow(w http.ResponseWriter, r *http.Request) {
	if err := h.roster.SetWindow(nil); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.buildResponse())
}

// ToggleSelection handles POST /api/selection/{roomID}/toggle.
func (h *RoomsHandler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	roomID := mux.Vars(r)["roomID"]
	if err := h.roster.ToggleSelect(roomID); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, h.buildResponse())
}

// GetSelection handles GET /api/selection.
func (h *RoomsHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	nights, selected, total := h.roster.Totals()
	writeJSON(w, http.StatusOK, map[string]any{
		"selection": h.roster.Selection(),
		"nights":    nights,
		"selected":  selected,
		"total":     total,
	})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// writeServiceError maps service sentinel errors onto HTTP status codes.
// Anything unrecognized is a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidWindow),
		errors.Is(err, service.ErrNoWindow),
		errors.Is(err, service.ErrMissingGuestInfo),
		errors.Is(err, service.ErrEmptySelection),
		errors.Is(err, service.ErrZeroTotal),
		errors.Is(err, service.ErrEmptyCart):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrUnknownRoom):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrNotBookable),
		errors.Is(err, service.ErrRefreshing):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrPaymentUnverified):
		http.Error(w, err.Error(), http.StatusPaymentRequired)
	default:
		log.Printf("Internal error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

package api

import (
	"encoding/json"
	"net/http"

	"github.com/catalodge/roomboard/internal/service"
)

// BookingsHandler serves the payment handoff and booking submission.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler creates a bookings handler.
func NewBookingsHandler(bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// paymentRequest carries the guest email the gateway wants for a transaction.
type paymentRequest struct {
	Email string `json:"email"`
}

// InitializePayment handles POST /api/payments: it opens a gateway
// transaction for the current selection's total.
func (h *BookingsHandler) InitializePayment(w http.ResponseWriter, r *http.Request) {
	var req paymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	reference, authURL, err := h.bookings.InitializePayment(r.Context(), req.Email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"reference":         reference,
		"authorization_url": authURL,
	})
}

// SubmitBooking handles POST /api/bookings: guest details plus a verified
// payment reference become an admin-API booking.
func (h *BookingsHandler) SubmitBooking(w http.ResponseWriter, r *http.Request) {
	var req service.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	defer r.Body.Close()

	if err := h.bookings.Submit(r.Context(), req); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{
		"message": "Booking submitted",
	})
}

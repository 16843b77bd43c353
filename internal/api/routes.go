package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/catalodge/roomboard/internal/metrics"
	"github.com/catalodge/roomboard/internal/service"
)

// SetupRoutes configures the HTTP routes for the API. The events handler is
// passed in so the SSE layer stays decoupled from routing.
func SetupRoutes(
	roster *service.RosterService,
	bookings *service.BookingService,
	carts *service.CartService,
	m *metrics.Metrics,
	events http.Handler,
) *mux.Router {
	r := mux.NewRouter()

	if m != nil {
		r.Use(MetricsMiddleware(m))
		r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	}

	// Health check endpoints for Kubernetes
	r.HandleFunc("/health/live", HealthLiveHandler).Methods(http.MethodGet)
	r.HandleFunc("/health/ready", HealthReadyHandler).Methods(http.MethodGet)

	// Live updates stream
	if events != nil {
		r.Handle("/events", events).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api").Subrouter()

	// Roster, booking window, and selection
	roomsHandler := NewRoomsHandler(roster)
	api.HandleFunc("/rooms", roomsHandler.GetRooms).Methods(http.MethodGet)
	api.HandleFunc("/window", roomsHandler.SetWindow).Methods(http.MethodPut)
	api.HandleFunc("/window", roomsHandler.ClearWindow).Methods(http.MethodDelete)
	api.HandleFunc("/selection", roomsHandler.GetSelection).Methods(http.MethodGet)
	api.HandleFunc("/selection/{roomID}/toggle", roomsHandler.ToggleSelection).Methods(http.MethodPost)

	// Payment handoff and booking submission
	bookingsHandler := NewBookingsHandler(bookings)
	api.HandleFunc("/payments", bookingsHandler.InitializePayment).Methods(http.MethodPost)
	api.HandleFunc("/bookings", bookingsHandler.SubmitBooking).Methods(http.MethodPost)

	// Menu cart
	cartHandler := NewCartHandler(carts)
	api.HandleFunc("/cart", cartHandler.GetCart).Methods(http.MethodGet)
	api.HandleFunc("/cart", cartHandler.ClearCart).Methods(http.MethodDelete)
	api.HandleFunc("/cart/items", cartHandler.AddItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{itemID}/decrement", cartHandler.DecrementItem).Methods(http.MethodPost)
	api.HandleFunc("/cart/items/{itemID}", cartHandler.RemoveItem).Methods(http.MethodDelete)
	api.HandleFunc("/cart/checkout", cartHandler.Checkout).Methods(http.MethodPost)

	return r
}

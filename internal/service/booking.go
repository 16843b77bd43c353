package service

import (
	"context"
	"fmt"

	"github.com/catalodge/roomboard/internal/adminapi"
)

// BookingRequest carries the guest details collected by the UI plus the
// payment reference handed back by the gateway.
type BookingRequest struct {
	FullName      string `json:"full_name"`
	Phone         string `json:"phone"`
	Email         string `json:"email"`
	CapturedImage string `json:"captured_image"`
	PaymentRef    string `json:"payment_ref"`
}

// BookingService assembles and submits bookings: it validates the guest's
// state, verifies the payment reference with the gateway, and forwards the
// opaque payload to the admin API.
type BookingService struct {
	roster  *RosterService
	client  AdminAPI
	gateway PaymentGateway
}

// NewBookingService creates a booking service on top of the roster state.
func NewBookingService(roster *RosterService, client AdminAPI, gateway PaymentGateway) *BookingService {
	return &BookingService{
		roster:  roster,
		client:  client,
		gateway: gateway,
	}
}

// Submit validates the booking, verifies payment, and forwards it. On
// success the guest's selection is cleared. Validation failures come back as
// the service sentinel errors so the API layer can map them to 4xx responses.
func (s *BookingService) Submit(ctx context.Context, req BookingRequest) error {
	if req.FullName == "" || req.Phone == "" {
		return ErrMissingGuestInfo
	}

	window := s.roster.Window()
	if window == nil {
		return ErrNoWindow
	}

	roomIDs := s.roster.Selection()
	if len(roomIDs) == 0 {
		return ErrEmptySelection
	}

	nights, _, total := s.roster.Totals()
	if nights <= 0 || total <= 0 {
		return ErrZeroTotal
	}

	if req.PaymentRef == "" {
		return ErrPaymentUnverified
	}
	verified, err := s.gateway.VerifyTransaction(ctx, req.PaymentRef)
	if err != nil {
		return fmt.Errorf("payment verification failed: %w", err)
	}
	if !verified {
		return ErrPaymentUnverified
	}

	now := s.roster.now()
	submission := adminapi.BookingSubmission{
		FullName:      req.FullName,
		Phone:         req.Phone,
		Email:         req.Email,
		ArrivalDate:   window.Arrival.Format("2006-01-02"),
		DepartureDate: window.Departure.Format("2006-01-02"),
		BookingDate:   now.Format("2006-01-02"),
		RoomIDs:       roomIDs,
		TotalAmount:   total,
		AmountPaid:    total,
		PaymentStatus: "paid",
		PaymentRef:    req.PaymentRef,
		Status:        "pending",
		CapturedImage: req.CapturedImage,
	}

	if err := s.client.SubmitBooking(ctx, submission); err != nil {
		return fmt.Errorf("booking submission failed: %w", err)
	}

	// The booking now lives in the admin system; reset the local selection.
	s.roster.clearSelection()

	return nil
}

// InitializePayment opens a gateway transaction for the current selection's
// total and returns the reference the guest completes payment against.
func (s *BookingService) InitializePayment(ctx context.Context, email string) (string, string, error) {
	_, selected, total := s.roster.Totals()
	if selected == 0 {
		return "", "", ErrEmptySelection
	}
	if total <= 0 {
		return "", "", ErrZeroTotal
	}

	tx, err := s.gateway.InitializeTransaction(ctx, email, total)
	if err != nil {
		return "", "", fmt.Errorf("payment initialization failed: %w", err)
	}
	return tx.Reference, tx.AuthorizationURL, nil
}

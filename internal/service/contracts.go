package service

import (
	"context"

	"github.com/catalodge/roomboard/internal/adminapi"
	"github.com/catalodge/roomboard/internal/models"
	"github.com/catalodge/roomboard/internal/payment"
)

// AdminAPI is the slice of the admin API client the roster service consumes.
type AdminAPI interface {
	RoomsByType(ctx context.Context, roomTypeID string) ([]models.Room, error)
	AvailableRoomIDs(ctx context.Context, roomTypeID string, window models.BookingWindow) (map[string]struct{}, error)
	OnlineHoldIDs(ctx context.Context, roomTypeID string, from, to string) (map[string]struct{}, error)
	UnavailabilityWindows(ctx context.Context, roomTypeID string, from, to string) (map[string][]models.UnavailabilityWindow, error)
	OccupancyByRoom(ctx context.Context) (map[string]adminapi.LiveOccupancy, error)
	SubmitBooking(ctx context.Context, booking adminapi.BookingSubmission) error
}

// PaymentGateway is the slice of the payment client the services consume.
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, email string, amountSubunits int64) (*payment.Transaction, error)
	VerifyTransaction(ctx context.Context, reference string) (bool, error)
}

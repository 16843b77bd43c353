package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/catalodge/roomboard/internal/payment"
	"github.com/catalodge/roomboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bookingFixture wires a roster with a window and two selected rooms, ready
// for payment and submission.
func bookingFixture(t *testing.T, gateway *fakeGateway) (*service.BookingService, *service.RosterService, *fakeAdminAPI) {
	t.Helper()
	api := &fakeAdminAPI{
		rooms:     threeRooms(),
		available: map[string]struct{}{"r1": {}, "r2": {}},
	}
	roster := newTestRoster(t, api)
	require.NoError(t, roster.SetWindow(testWindow(12, 14)))
	require.NoError(t, roster.ToggleSelect("r1"))
	require.NoError(t, roster.ToggleSelect("r2"))

	return service.NewBookingService(roster, api, gateway), roster, api
}

func validRequest() service.BookingRequest {
	return service.BookingRequest{
		FullName:   "Ada Guest",
		Phone:      "+2348000000000",
		Email:      "ada@example.com",
		PaymentRef: "ref123",
	}
}

func TestSubmitBooking(t *testing.T) {
	gateway := &fakeGateway{verified: true}
	bookings, roster, api := bookingFixture(t, gateway)

	require.NoError(t, bookings.Submit(context.Background(), validRequest()))

	require.Len(t, api.submitted, 1)
	sub := api.submitted[0]
	assert.Equal(t, "Ada Guest", sub.FullName)
	assert.Equal(t, "2026-03-12", sub.ArrivalDate)
	assert.Equal(t, "2026-03-14", sub.DepartureDate)
	assert.Equal(t, "2026-03-10", sub.BookingDate)
	assert.ElementsMatch(t, []string{"r1", "r2"}, sub.RoomIDs)

	// 2 nights x 25000 x 2 rooms
	assert.Equal(t, int64(100000), sub.TotalAmount)
	assert.Equal(t, int64(100000), sub.AmountPaid)
	assert.Equal(t, "paid", sub.PaymentStatus)
	assert.Equal(t, "pending", sub.Status)
	assert.Equal(t, "ref123", sub.PaymentRef)

	assert.Equal(t, []string{"ref123"}, gateway.verifiedRefs)
	assert.Empty(t, roster.Selection(), "selection resets once the booking is placed")
}

func TestSubmitValidation(t *testing.T) {
	gateway := &fakeGateway{verified: true}
	bookings, roster, _ := bookingFixture(t, gateway)
	ctx := context.Background()

	// Guest details are checked first.
	req := validRequest()
	req.FullName = ""
	assert.ErrorIs(t, bookings.Submit(ctx, req), service.ErrMissingGuestInfo)

	req = validRequest()
	req.Phone = ""
	assert.ErrorIs(t, bookings.Submit(ctx, req), service.ErrMissingGuestInfo)

	// A missing reference never reaches the gateway.
	req = validRequest()
	req.PaymentRef = ""
	assert.ErrorIs(t, bookings.Submit(ctx, req), service.ErrPaymentUnverified)
	assert.Empty(t, gateway.verifiedRefs)

	// Deselecting everything invalidates submission.
	require.NoError(t, roster.ToggleSelect("r1"))
	require.NoError(t, roster.ToggleSelect("r2"))
	assert.ErrorIs(t, bookings.Submit(ctx, validRequest()), service.ErrEmptySelection)
}

func TestSubmitWithoutWindow(t *testing.T) {
	api := &fakeAdminAPI{rooms: threeRooms()}
	roster := newTestRoster(t, api)
	bookings := service.NewBookingService(roster, api, &fakeGateway{verified: true})

	err := bookings.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, service.ErrNoWindow)
}

func TestSubmitUnverifiedPayment(t *testing.T) {
	gateway := &fakeGateway{verified: false}
	bookings, _, api := bookingFixture(t, gateway)

	err := bookings.Submit(context.Background(), validRequest())
	assert.ErrorIs(t, err, service.ErrPaymentUnverified)
	assert.Empty(t, api.submitted)
}

func TestSubmitGatewayError(t *testing.T) {
	gateway := &fakeGateway{verifyErr: errors.New("gateway down")}
	bookings, roster, api := bookingFixture(t, gateway)

	err := bookings.Submit(context.Background(), validRequest())
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrPaymentUnverified)
	assert.Empty(t, api.submitted)
	assert.Len(t, roster.Selection(), 2, "selection survives a failed submission")
}

func TestInitializePayment(t *testing.T) {
	gateway := &fakeGateway{
		tx: &payment.Transaction{Reference: "ref123", AuthorizationURL: "https://gateway.example/pay"},
	}
	bookings, _, _ := bookingFixture(t, gateway)

	ref, authURL, err := bookings.InitializePayment(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ref123", ref)
	assert.Equal(t, "https://gateway.example/pay", authURL)
	assert.Equal(t, []int64{100000}, gateway.initAmounts)
}

func TestInitializePaymentRequiresSelection(t *testing.T) {
	api := &fakeAdminAPI{rooms: threeRooms(), available: map[string]struct{}{"r1": {}}}
	roster := newTestRoster(t, api)
	require.NoError(t, roster.SetWindow(testWindow(12, 14)))
	bookings := service.NewBookingService(roster, api, &fakeGateway{})

	_, _, err := bookings.InitializePayment(context.Background(), "ada@example.com")
	assert.ErrorIs(t, err, service.ErrEmptySelection)
}

package models_test

import (
	"testing"

	"github.com/catalodge/roomboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeAdminStatus(t *testing.T) {
	cases := []struct {
		in   string
		want models.AdminStatus
	}{
		{"Pending", models.AdminPending},
		{"PENDING", models.AdminPending},
		{"pending-confirmation", models.AdminPending},
		{"Pending Payment", models.AdminPending},
		{"Awaiting Payment", models.AdminPending},
		{"Awaiting Approval", models.AdminPending},
		{"Unpaid", models.AdminPending},
		{"On Hold", models.AdminPending},
		{"Awaiting Confirmation", models.AdminOnlineHold},
		{"awaiting verification", models.AdminOnlineHold},
		{"Online Hold", models.AdminOnlineHold},
		{"Confirmed", models.AdminConfirmed},
		{"CONFIRMED ", models.AdminConfirmed},
		{"Departure", models.AdminDeparture},
		{"departure today", models.AdminDeparture},
		{"Cancelled", models.AdminCancelled},
		{"CANCELED", models.AdminCancelled},
		{"Cancel", models.AdminCancelled},
		{"Maintenance", models.AdminMaintenance},
		{"Under Maintenance", models.AdminMaintenance},
		{"Cleaning", models.AdminCleaning},
		{"Clean-up", models.AdminCleaning},
	}
	for _, c := range cases {
		got, ok := models.NormalizeAdminStatus(c.in)
		require.Truef(t, ok, "expected %q to normalize", c.in)
		assert.Equalf(t, c.want, got, "input %q", c.in)
	}
}

func TestNormalizeAdminStatusNoSignal(t *testing.T) {
	for _, s := range []string{"", "   ", "vacant", "whatever"} {
		_, ok := models.NormalizeAdminStatus(s)
		assert.Falsef(t, ok, "expected %q to carry no signal", s)
	}
}

func TestIsBookable(t *testing.T) {
	// Only AVAILABLE is selectable; every other status blocks booking.
	assert.True(t, models.IsBookable(models.StatusAvailable))

	for _, s := range []models.RoomStatus{
		models.StatusInactive,
		models.StatusOccupied,
		models.StatusCleaning,
		models.StatusPending,
		models.StatusMaintenance,
		models.StatusOnlineHold,
	} {
		assert.Falsef(t, models.IsBookable(s), "status %s", s)
	}
}

func TestPresentationFor(t *testing.T) {
	p := models.PresentationFor(models.StatusAvailable, "", false)
	assert.Equal(t, "Vacant", p.Label)
	assert.Equal(t, "emerald", p.Tone)

	// The admin vocabulary overrides the label, not the tone.
	p = models.PresentationFor(models.StatusOccupied, models.AdminConfirmed, true)
	assert.Equal(t, "Occupied", p.Label)
	assert.Equal(t, "rose", p.Tone)

	p = models.PresentationFor(models.StatusAvailable, models.AdminCancelled, true)
	assert.Equal(t, "Available", p.Label)
	assert.Equal(t, "emerald", p.Tone)

	// Unknown statuses fall back to the inactive presentation.
	p = models.PresentationFor(models.RoomStatus("BOGUS"), "", false)
	assert.Equal(t, "Unavailable", p.Label)
}

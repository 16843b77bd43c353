package adminapi

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeRoomFieldAliases(t *testing.T) {
	raw := map[string]any{
		"room_id":          float64(42),
		"name":             "Sea View 2",
		"level":            "4",
		"next_checkout_at": "2026-03-10 11:00:00",
		"clean_until":      "2026-03-10 11:45",
		"booking_status":   "Confirmed",
	}

	room, ok := NormalizeRoom(raw)
	require.True(t, ok)
	assert.Equal(t, "42", room.ID)
	assert.Equal(t, "Sea View 2", room.RoomNumber)
	assert.Equal(t, "4", room.Floor)
	assert.Equal(t, "Confirmed", room.AdminStatus)

	require.NotNil(t, room.DepartureAt)
	assert.Equal(t, time.Date(2026, 3, 10, 11, 0, 0, 0, time.Local), *room.DepartureAt)
	require.NotNil(t, room.CleaningUntil)
	assert.Equal(t, time.Date(2026, 3, 10, 11, 45, 0, 0, time.Local), *room.CleaningUntil)
}

func TestNormalizeRoomCamelCaseAliases(t *testing.T) {
	room, ok := NormalizeRoom(map[string]any{
		"id":          "r1",
		"adminStatus": "Awaiting Payment",
	})
	require.True(t, ok)
	assert.Equal(t, "Awaiting Payment", room.AdminStatus)
}

func TestNormalizeRoomAliasPreference(t *testing.T) {
	// The newest generation of the departure field wins over older ones.
	room, ok := NormalizeRoom(map[string]any{
		"id":                              "r1",
		"hms_booking_departure_date_time": "2026-03-10T11:00:00Z",
		"checkout_time":                   "2026-03-10T15:00:00Z",
	})
	require.True(t, ok)
	require.NotNil(t, room.DepartureAt)
	assert.Equal(t, 11, room.DepartureAt.UTC().Hour())
}

func TestNormalizeRoomGenericStatusRouting(t *testing.T) {
	// Transaction wording in a generic "status" field counts as admin state.
	room, ok := NormalizeRoom(map[string]any{"id": "r1", "status": "Pending Payment"})
	require.True(t, ok)
	assert.Equal(t, "Pending Payment", room.AdminStatus)
	assert.Empty(t, room.LiveStatus)

	// Bare occupancy wording goes to the live signal instead.
	room, ok = NormalizeRoom(map[string]any{"id": "r2", "status": "vacant"})
	require.True(t, ok)
	assert.Empty(t, room.AdminStatus)
	assert.Equal(t, "vacant", room.LiveStatus)

	// A dedicated admin field is never displaced by the generic one.
	room, ok = NormalizeRoom(map[string]any{"id": "r3", "admin_status": "Confirmed", "status": "occupied"})
	require.True(t, ok)
	assert.Equal(t, "Confirmed", room.AdminStatus)
}

func TestNormalizeRoomDefaults(t *testing.T) {
	room, ok := NormalizeRoom(map[string]any{"id": "r9"})
	require.True(t, ok)
	assert.Equal(t, "r9", room.RoomNumber, "room number falls back to the id")
	assert.Nil(t, room.DepartureAt)
	assert.Nil(t, room.CleaningUntil)

	// Unparseable timestamps are treated as absent.
	room, ok = NormalizeRoom(map[string]any{"id": "r9", "check_out": "soon"})
	require.True(t, ok)
	assert.Nil(t, room.DepartureAt)
}

func TestNormalizeRoomRejectsMissingID(t *testing.T) {
	_, ok := NormalizeRoom(map[string]any{"name": "101"})
	assert.False(t, ok)
}

func TestDecodeList(t *testing.T) {
	list, err := decodeList([]byte(`{"data":[{"id":"a"},{"id":"b"}]}`))
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = decodeList([]byte(`[{"id":"a"}]`))
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = decodeList([]byte(`{"rooms":[]}`))
	assert.Error(t, err)
}

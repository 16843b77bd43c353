package service_test

import (
	"testing"
	"time"

	"github.com/catalodge/roomboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOccupancyPollerRefreshesImmediately(t *testing.T) {
	api := &fakeAdminAPI{rooms: threeRooms()}
	svc := newTestRoster(t, api)
	// LoadRoster already hit the feed once.
	require.Equal(t, 1, api.liveCallCount())

	poller := service.NewOccupancyPoller(svc, time.Second, nil)
	require.NoError(t, poller.Start())
	defer poller.Stop()

	// The first refresh is not deferred until the first interval elapses.
	assert.Eventually(t, func() bool {
		return api.liveCallCount() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

// Package web pushes live roster updates to connected UIs over server-sent
// events.
package web

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/r3labs/sse/v2"

	"github.com/catalodge/roomboard/internal/metrics"
	"github.com/catalodge/roomboard/internal/service"
)

// streamName is the single SSE stream clients subscribe to
// (GET /events?stream=rooms).
const streamName = "rooms"

// Broadcaster publishes two kinds of events: "update" whenever roster state
// changes, and a per-second "tick" while any room carries a countdown. The
// tick is derived display state only; it stops on its own when the last
// countdown-bearing room leaves that status.
type Broadcaster struct {
	roster  *service.RosterService
	metrics *metrics.Metrics
	server  *sse.Server

	mu      sync.Mutex
	ticking bool
	closed  bool
}

// NewBroadcaster creates the SSE broadcaster and its stream.
func NewBroadcaster(roster *service.RosterService, m *metrics.Metrics) *Broadcaster {
	server := sse.New()
	server.AutoReplay = false
	server.CreateStream(streamName)

	return &Broadcaster{
		roster:  roster,
		metrics: m,
		server:  server,
	}
}

// Server returns the SSE endpoint handler.
func (b *Broadcaster) Server() *sse.Server {
	return b.server
}

// NotifyUpdate is registered as the roster service's update callback. It
// pushes a fresh snapshot to all clients and makes sure the countdown tick is
// running when needed.
func (b *Broadcaster) NotifyUpdate() {
	views := b.roster.Snapshot()

	if b.metrics != nil {
		counts := make(map[string]int)
		for _, v := range views {
			counts[string(v.Status)]++
		}
		b.metrics.ObserveStatuses(counts)
	}

	data, err := json.Marshal(views)
	if err != nil {
		log.Printf("Error encoding roster update: %v", err)
		return
	}
	b.server.Publish(streamName, &sse.Event{
		Event: []byte("update"),
		Data:  data,
	})

	b.ensureTicker()
}

// countdownTick is the per-room payload of a tick event. Only rooms with a
// running countdown are included.
type countdownTick struct {
	RoomID      string `json:"room_id"`
	Status      string `json:"status"`
	RemainingMS int64  `json:"remaining_ms"`
	Countdown   string `json:"countdown"`
}

// ensureTicker starts the once-per-second countdown loop when a countdown
// exists and no loop is running.
func (b *Broadcaster) ensureTicker() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.ticking || b.closed || !b.roster.HasCountdown() {
		return
	}
	b.ticking = true
	go b.tickLoop()
}

func (b *Broadcaster) tickLoop() {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for range ticker.C {
		b.mu.Lock()
		if b.closed {
			b.ticking = false
			b.mu.Unlock()
			return
		}
		b.mu.Unlock()

		ticks := b.currentTicks()
		if len(ticks) == 0 {
			// No room holds a countdown anymore; the loop cancels itself.
			b.mu.Lock()
			b.ticking = false
			b.mu.Unlock()
			return
		}

		data, err := json.Marshal(ticks)
		if err != nil {
			log.Printf("Error encoding countdown tick: %v", err)
			continue
		}
		b.server.Publish(streamName, &sse.Event{
			Event: []byte("tick"),
			Data:  data,
		})
	}
}

func (b *Broadcaster) currentTicks() []countdownTick {
	var ticks []countdownTick
	for _, v := range b.roster.Snapshot() {
		if v.RemainingMS <= 0 {
			continue
		}
		ticks = append(ticks, countdownTick{
			RoomID:      v.ID,
			Status:      string(v.Status),
			RemainingMS: v.RemainingMS,
			Countdown:   v.Countdown,
		})
	}
	return ticks
}

// Shutdown closes all client connections and stops the tick loop.
func (b *Broadcaster) Shutdown() {
	b.mu.Lock()
	b.closed = true
	b.mu.Unlock()

	b.server.Close()
}

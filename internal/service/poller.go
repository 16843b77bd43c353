package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/catalodge/roomboard/internal/metrics"
	"github.com/robfig/cron/v3"
)

// OccupancyPoller refreshes the live occupancy feed on a fixed schedule,
// independently of user action. Its lifecycle is tied to the process: Start
// once, Stop on shutdown.
type OccupancyPoller struct {
	roster   *RosterService
	interval time.Duration
	metrics  *metrics.Metrics
	cron     *cron.Cron
}

// NewOccupancyPoller creates a poller for the given refresh interval.
func NewOccupancyPoller(roster *RosterService, interval time.Duration, m *metrics.Metrics) *OccupancyPoller {
	return &OccupancyPoller{
		roster:   roster,
		interval: interval,
		metrics:  m,
		cron:     cron.New(),
	}
}

// Start schedules the poll and runs one refresh immediately so the roster is
// never stale at startup.
func (p *OccupancyPoller) Start() error {
	spec := fmt.Sprintf("@every %s", p.interval)
	if _, err := p.cron.AddFunc(spec, p.runOnce); err != nil {
		return fmt.Errorf("failed to schedule occupancy poll: %w", err)
	}
	p.cron.Start()

	go p.runOnce()

	log.Printf("Occupancy poller started (interval %s)", p.interval)
	return nil
}

// Stop cancels the schedule and waits for a running poll to finish.
func (p *OccupancyPoller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	log.Println("Occupancy poller stopped")
}

func (p *OccupancyPoller) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	if err := p.roster.RefreshOccupancy(ctx); err != nil {
		if p.metrics != nil {
			p.metrics.OccupancyPollsTotal.WithLabelValues("error").Inc()
		}
		log.Printf("Occupancy poll failed: %v", err)
		return
	}
	if p.metrics != nil {
		p.metrics.OccupancyPollsTotal.WithLabelValues("ok").Inc()
	}
}

package tasks

import (
	"context"
	"time"

	"github.com/binarakost/kostctl/internal/api"
)

// HealthStatus is one probe outcome.
type HealthStatus struct {
	Up        bool
	Detail    string
	CheckedAt time.Time
}

// HealthPoller probes the backend health endpoint on a fixed interval and
// publishes the outcome for a status indicator.
type HealthPoller struct {
	public   *api.PublicService
	interval time.Duration
}

// NewHealthPoller creates a HealthPoller. A non-positive interval defaults to
// 30 seconds.
func NewHealthPoller(public *api.PublicService, interval time.Duration) *HealthPoller {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &HealthPoller{public: public, interval: interval}
}

// Probe performs one health check. A transport failure or a status other
// than "ok" reads as down.
func (p *HealthPoller) Probe(ctx context.Context) HealthStatus {
	status := HealthStatus{CheckedAt: time.Now()}

	health, err := p.public.Health(ctx)
	if err != nil {
		status.Detail = err.Error()
		return status
	}

	status.Up = health.Status == "ok"
	status.Detail = health.Status
	return status
}

// Run probes immediately and then on every tick until the context is
// cancelled, publishing outcomes on the returned channel. A slow consumer
// misses intermediate updates rather than stalling the poller; the channel
// closes when polling stops.
func (p *HealthPoller) Run(ctx context.Context) <-chan HealthStatus {
	updates := make(chan HealthStatus, 1)

	go func() {
		defer close(updates)

		publish := func(status HealthStatus) {
			select {
			case updates <- status:
			default:
				// Drop the stale update and queue the fresh one.
				select {
				case <-updates:
				default:
				}
				select {
				case updates <- status:
				default:
				}
			}
		}

		publish(p.Probe(ctx))

		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				publish(p.Probe(ctx))
			}
		}
	}()

	return updates
}

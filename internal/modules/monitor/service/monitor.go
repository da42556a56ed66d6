package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"dash_gateway/internal/modules/config"
	gateway "dash_gateway/internal/modules/gateway/service"
	health "dash_gateway/internal/modules/health/service"
	journal "dash_gateway/internal/modules/journal/service"
	"dash_gateway/internal/notify"
)

// Monitor runs the combined health check on an interval, keeps the health
// state fresh for /readyz, journals every check, and alerts on
// healthy<->unhealthy transitions.
type Monitor struct {
	gw       *gateway.Gateway
	state    *health.State
	n        notify.Notifier
	jr       journal.Journal
	log      *zap.Logger
	interval time.Duration
}

func NewMonitor(gw *gateway.Gateway, state *health.State, n notify.Notifier, jr journal.Journal, cfg *config.Config, log *zap.Logger) *Monitor {
	return &Monitor{
		gw:       gw,
		state:    state,
		n:        n,
		jr:       jr,
		log:      log,
		interval: cfg.HealthInterval,
	}
}

func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	var last *bool
	for {
		m.check(ctx, &last)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *Monitor) check(ctx context.Context, last **bool) {
	report := m.gw.HealthCheck(ctx)
	m.state.SetLastReport(report)
	m.state.SetReady(report.Overall)

	if err := m.jr.RecordHealth(ctx, report); err != nil {
		m.log.Warn("health journaling failed", zap.Error(err))
	}

	if *last != nil && **last == report.Overall {
		return
	}
	if *last == nil && report.Overall {
		// nothing to say on a healthy first check
		*last = &report.Overall
		return
	}

	if report.Overall {
		m.n.Send("✅ backends recovered: engine and ai healthy")
	} else {
		m.n.Sendf("❌ backend degraded: engine healthy=%v ai healthy=%v (engine: %s; ai: %s)",
			report.Engine.Healthy, report.AI.Healthy,
			report.Engine.Error, report.AI.Error)
	}
	overall := report.Overall
	*last = &overall
}

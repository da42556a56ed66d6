package service

import (
	"sync/atomic"
	"time"

	gateway "dash_gateway/internal/modules/gateway/service"
)

// State is the process-local view of how healthy we currently are. Written
// by the monitor loop and the price stream, read by the HTTP handlers.
type State struct {
	ready     atomic.Bool
	startedAt time.Time

	streamConnected atomic.Bool
	lastTickUnix    atomic.Int64 // unix seconds

	lastReport atomic.Pointer[gateway.HealthReport]
}

func NewState() *State {
	s := &State{startedAt: time.Now()}
	s.ready.Store(false)
	return s
}

func (s *State) SetReady(v bool) { s.ready.Store(v) }
func (s *State) Ready() bool     { return s.ready.Load() }

func (s *State) SetStreamConnected(v bool) { s.streamConnected.Store(v) }
func (s *State) StreamConnected() bool     { return s.streamConnected.Load() }

func (s *State) TouchTick(t time.Time) { s.lastTickUnix.Store(t.Unix()) }
func (s *State) LastTick() time.Time {
	u := s.lastTickUnix.Load()
	if u == 0 {
		return time.Time{}
	}
	return time.Unix(u, 0)
}

func (s *State) SetLastReport(r gateway.HealthReport) { s.lastReport.Store(&r) }
func (s *State) LastReport() (gateway.HealthReport, bool) {
	p := s.lastReport.Load()
	if p == nil {
		return gateway.HealthReport{}, false
	}
	return *p, true
}

func (s *State) Uptime() time.Duration { return time.Since(s.startedAt) }

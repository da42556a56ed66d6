package service

import (
	"testing"
	"time"

	gateway "dash_gateway/internal/modules/gateway/service"
)

func TestStateStartsNotReady(t *testing.T) {
	s := NewState()
	if s.Ready() {
		t.Error("fresh state must not report ready")
	}
	if s.StreamConnected() {
		t.Error("fresh state must not report a connected stream")
	}
	if rep, ok := s.LastReport(); ok {
		t.Errorf("expected no report yet, got %+v", rep)
	}
}

func TestStateRoundTrips(t *testing.T) {
	s := NewState()

	s.SetReady(true)
	if !s.Ready() {
		t.Error("ready flag lost")
	}
	s.SetReady(false)
	if s.Ready() {
		t.Error("ready flag stuck")
	}

	s.SetStreamConnected(true)
	if !s.StreamConnected() {
		t.Error("stream flag lost")
	}

	s.SetLastReport(gateway.HealthReport{Overall: true})
	got, ok := s.LastReport()
	if !ok || !got.Overall {
		t.Errorf("expected stored report, got %+v ok=%v", got, ok)
	}
}

func TestTouchTick(t *testing.T) {
	s := NewState()
	if !s.LastTick().IsZero() {
		t.Error("expected zero tick time before any tick")
	}

	now := time.Now().Truncate(time.Second)
	s.TouchTick(now)
	if got := s.LastTick(); !got.Equal(now) {
		t.Errorf("expected tick at %v, got %v", now, got)
	}
}

package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	ai "dash_gateway/internal/modules/ai_client/service"
	engine "dash_gateway/internal/modules/engine_client/service"
	"dash_gateway/pkg/httpclient"
)

func fastPolicy() httpclient.Policy {
	return httpclient.Policy{MaxAttempts: 1, InitialBackoff: time.Millisecond, Sleep: func(time.Duration) {}}
}

func newTestGateway(t *testing.T, engineHandler, aiHandler http.Handler) *Gateway {
	t.Helper()
	engineSrv := httptest.NewServer(engineHandler)
	t.Cleanup(engineSrv.Close)
	aiSrv := httptest.NewServer(aiHandler)
	t.Cleanup(aiSrv.Close)

	e := engine.NewClient(engine.Config{BaseURL: engineSrv.URL, Timeout: 2 * time.Second, Retry: fastPolicy()}, zap.NewNop())
	a := ai.NewClient(ai.Config{BaseURL: aiSrv.URL, Timeout: 2 * time.Second, Retry: fastPolicy()}, zap.NewNop())
	return New(e, a, zap.NewNop())
}

func engineOKHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/api/bot/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"running","active_positions":1,"total_trades":10,"total_pnl":5.5}`))
	})
	mux.HandleFunc("/api/positions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"symbol":"BTCUSDT","side":"buy","size":0.5,"entry_price":48000,"current_price":50000,"unrealized_pnl":1000}]`))
	})
	mux.HandleFunc("/api/performance/stats", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total_trades":10,"winning_trades":6,"losing_trades":4,"win_rate":0.6}`))
	})
	mux.HandleFunc("/api/trades/history", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":"t1","symbol":"BTCUSDT","side":"sell","quantity":1,"entry_price":47000,"status":"closed"}]`))
	})
	return mux
}

func aiOKHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","model_loaded":true}`))
	})
	mux.HandleFunc("/api/model/info", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"model_type":"lstm","loaded":true,"accuracy":0.71,"version":"3"}`))
	})
	return mux
}

func TestHealthCheckBothHealthy(t *testing.T) {
	gw := newTestGateway(t, engineOKHandler(), aiOKHandler())

	report := gw.HealthCheck(context.Background())
	if !report.Engine.Healthy || !report.AI.Healthy {
		t.Errorf("expected both healthy, got %+v", report)
	}
	if !report.AI.ModelLoaded {
		t.Error("expected model_loaded carried through")
	}
	if !report.Overall {
		t.Error("expected overall=true")
	}
}

func TestHealthCheckToleratesPartialFailure(t *testing.T) {
	// a dead AI service must not hide the engine's state
	deadSrv := httptest.NewServer(nil)
	deadURL := deadSrv.URL
	deadSrv.Close()

	engineSrv := httptest.NewServer(engineOKHandler())
	t.Cleanup(engineSrv.Close)

	e := engine.NewClient(engine.Config{BaseURL: engineSrv.URL, Timeout: 2 * time.Second, Retry: fastPolicy()}, zap.NewNop())
	a := ai.NewClient(ai.Config{BaseURL: deadURL, Timeout: 2 * time.Second, Retry: fastPolicy()}, zap.NewNop())
	gw := New(e, a, zap.NewNop())

	report := gw.HealthCheck(context.Background())
	if !report.Engine.Healthy {
		t.Error("expected engine healthy")
	}
	if report.AI.Healthy {
		t.Error("expected ai unhealthy")
	}
	if report.AI.Error == "" {
		t.Error("expected the ai failure to be reported")
	}
	if report.Overall {
		t.Error("expected overall=false")
	}
}

func TestDashboardDataFetchesEverything(t *testing.T) {
	gw := newTestGateway(t, engineOKHandler(), aiOKHandler())

	data, err := gw.DashboardData(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if data.BotStatus.Status != "running" {
		t.Errorf("unexpected bot status %+v", data.BotStatus)
	}
	if len(data.Positions) != 1 || data.Positions[0].Symbol != "BTCUSDT" {
		t.Errorf("unexpected positions %+v", data.Positions)
	}
	if data.ModelInfo.ModelType != "lstm" {
		t.Errorf("unexpected model info %+v", data.ModelInfo)
	}
	if data.Performance.WinRate != 0.6 {
		t.Errorf("unexpected performance %+v", data.Performance)
	}
	if len(data.RecentTrades) != 1 {
		t.Errorf("unexpected trades %+v", data.RecentTrades)
	}
}

func TestDashboardDataIsAtomic(t *testing.T) {
	// model info failing must sink the whole bootstrap call
	aiMux := http.NewServeMux()
	aiMux.HandleFunc("/api/model/info", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	gw := newTestGateway(t, engineOKHandler(), aiMux)

	data, err := gw.DashboardData(context.Background())
	if err == nil {
		t.Fatal("expected an error")
	}
	if data != nil {
		t.Errorf("expected no partial result, got %+v", data)
	}
}

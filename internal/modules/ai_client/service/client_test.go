package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"dash_gateway/internal/models"
	"dash_gateway/pkg/httpclient"
)

func newTestAI(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
		Retry: httpclient.Policy{
			MaxAttempts:    3,
			InitialBackoff: time.Millisecond,
			Sleep:          func(time.Duration) {},
		},
	}, zap.NewNop())
}

func TestTrainModelIsNeverRetried(t *testing.T) {
	attempts := 0
	c := newTestAI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := c.TrainModel(context.Background(), models.TrainRequest{Symbol: "BTCUSDT", Timeframe: "1h"})
	if err == nil {
		t.Fatal("expected an error")
	}
	if attempts != 1 {
		t.Errorf("training must not be retried, got %d attempts", attempts)
	}
}

func TestAnalyzeMarketDecodesSignal(t *testing.T) {
	var gotPath string
	c := newTestAI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(`{"signal":"long","confidence":0.82,"probability":0.64,"timestamp":"2026-01-02T15:04:05Z","model_type":"lstm","symbol":"BTCUSDT","timeframe":"1h"}`))
	}))

	sig, err := c.AnalyzeMarket(context.Background(), models.AnalyzeRequest{Symbol: "BTCUSDT", Timeframe: "1h"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotPath != "/api/analyze" {
		t.Errorf("unexpected path %s", gotPath)
	}
	if sig.Signal != "long" || sig.Confidence != 0.82 || sig.ModelType != "lstm" {
		t.Errorf("unexpected signal %+v", sig)
	}
}

func TestCleanupOldModelsDefaultKeep(t *testing.T) {
	var gotBody string
	c := newTestAI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		_, _ = w.Write([]byte(`{"success":true,"message":"removed 2 models"}`))
	}))

	res, err := c.CleanupOldModels(context.Background(), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Error("expected success")
	}
	if gotBody != `{"keep_count":5}` {
		t.Errorf("expected default keep_count 5, got %s", gotBody)
	}
}

func TestLoadModelOmitsEmptyPath(t *testing.T) {
	var gotBody string
	c := newTestAI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	if _, err := c.LoadModel(context.Background(), ""); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotBody != `{}` {
		t.Errorf("expected empty body object, got %s", gotBody)
	}
}

func TestAIHealthReportsModelLoaded(t *testing.T) {
	c := newTestAI(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"ok","model_loaded":true}`))
	}))

	hs, err := c.Health(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hs.Status != "ok" || !hs.ModelLoaded {
		t.Errorf("unexpected health %+v", hs)
	}
}

package httpclient

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestRetryExhaustsAttempts(t *testing.T) {
	sentinel := errors.New("connection refused")
	calls := 0

	_, err := Retry(context.Background(), zap.NewNop(),
		Policy{MaxAttempts: 3, InitialBackoff: time.Millisecond, Sleep: func(time.Duration) {}},
		"test.op",
		func(ctx context.Context) (int, error) {
			calls++
			return 0, sentinel
		})

	if calls != 3 {
		t.Errorf("expected exactly 3 attempts, got %d", calls)
	}
	if err != sentinel {
		t.Errorf("expected the original error back unchanged, got %v", err)
	}
}

func TestRetryBackoffTiming(t *testing.T) {
	var slept []time.Duration

	_, _ = Retry(context.Background(), zap.NewNop(),
		Policy{MaxAttempts: 4, InitialBackoff: time.Second, Sleep: func(d time.Duration) { slept = append(slept, d) }},
		"test.op",
		func(ctx context.Context) (int, error) {
			return 0, errors.New("boom")
		})

	want := []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
	if len(slept) != len(want) {
		t.Fatalf("expected %d sleeps, got %d (%v)", len(want), len(slept), slept)
	}
	for i := range want {
		if slept[i] != want[i] {
			t.Errorf("sleep %d: expected %v, got %v", i, want[i], slept[i])
		}
	}
}

func TestRetrySucceedsMidway(t *testing.T) {
	calls := 0
	v, err := Retry(context.Background(), zap.NewNop(),
		Policy{MaxAttempts: 3, InitialBackoff: time.Millisecond, Sleep: func(time.Duration) {}},
		"test.op",
		func(ctx context.Context) (string, error) {
			calls++
			if calls < 3 {
				return "", errors.New("transient")
			}
			return "ok", nil
		})

	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if v != "ok" {
		t.Errorf("expected ok, got %q", v)
	}
	if calls != 3 {
		t.Errorf("expected 3 attempts, got %d", calls)
	}
}

func TestNoRetryPropagatesImmediately(t *testing.T) {
	sentinel := errors.New("boom")
	calls := 0
	slept := 0

	_, err := Retry(context.Background(), zap.NewNop(),
		Policy{MaxAttempts: 1, InitialBackoff: time.Second, Sleep: func(time.Duration) { slept++ }},
		"test.op",
		func(ctx context.Context) (int, error) {
			calls++
			return 0, sentinel
		})

	if calls != 1 {
		t.Errorf("expected a single attempt, got %d", calls)
	}
	if slept != 0 {
		t.Errorf("expected no backoff sleeps, got %d", slept)
	}
	if err != sentinel {
		t.Errorf("expected the original error, got %v", err)
	}
}

func TestRetryZeroPolicyDefaults(t *testing.T) {
	calls := 0
	_, _ = Retry(context.Background(), zap.NewNop(),
		Policy{Sleep: func(time.Duration) {}},
		"test.op",
		func(ctx context.Context) (int, error) {
			calls++
			return 0, errors.New("boom")
		})

	if calls != defaultMaxAttempts {
		t.Errorf("expected %d attempts from defaults, got %d", defaultMaxAttempts, calls)
	}
}

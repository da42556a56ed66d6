package service

import (
	"sync"
	"testing"
	"time"
)

func TestPriceBookSetGet(t *testing.T) {
	b := NewPriceBook()

	if _, ok := b.Get("BTCUSDT"); ok {
		t.Error("expected miss on empty book")
	}

	b.Set("BTCUSDT", 64120.5, time.Now())
	got, ok := b.Get("BTCUSDT")
	if !ok || got != 64120.5 {
		t.Errorf("expected 64120.5, got %v ok=%v", got, ok)
	}

	b.Set("BTCUSDT", 64121.0, time.Now())
	if got, _ := b.Get("BTCUSDT"); got != 64121.0 {
		t.Errorf("expected latest write to win, got %v", got)
	}
}

func TestPriceBookSnapshotIsCopy(t *testing.T) {
	b := NewPriceBook()
	b.Set("ETHUSDT", 3200, time.Now())

	snap := b.Snapshot()
	snap["ETHUSDT"] = 0

	if got, _ := b.Get("ETHUSDT"); got != 3200 {
		t.Errorf("snapshot mutation leaked into the book: %v", got)
	}
}

func TestPriceBookConcurrentWrites(t *testing.T) {
	b := NewPriceBook()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(p float64) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b.Set("BTCUSDT", p, time.Now())
				b.Get("BTCUSDT")
				b.Snapshot()
			}
		}(float64(i))
	}
	wg.Wait()

	if _, ok := b.Get("BTCUSDT"); !ok {
		t.Error("expected a price after concurrent writes")
	}
}

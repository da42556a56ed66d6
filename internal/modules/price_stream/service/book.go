package service

import (
	"sync"
	"time"
)

// PriceBook holds the last streamed price per symbol. Read by the
// /api/prices/live handler; written only by the stream client.
type PriceBook struct {
	mu     sync.RWMutex
	prices map[string]float64
	asOf   map[string]time.Time
}

func NewPriceBook() *PriceBook {
	return &PriceBook{
		prices: make(map[string]float64),
		asOf:   make(map[string]time.Time),
	}
}

func (b *PriceBook) Set(symbol string, price float64, at time.Time) {
	b.mu.Lock()
	b.prices[symbol] = price
	b.asOf[symbol] = at
	b.mu.Unlock()
}

func (b *PriceBook) Get(symbol string) (float64, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	p, ok := b.prices[symbol]
	return p, ok
}

func (b *PriceBook) Snapshot() map[string]float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make(map[string]float64, len(b.prices))
	for k, v := range b.prices {
		out[k] = v
	}
	return out
}

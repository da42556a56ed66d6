package models

import "time"

// Position is one live position as reported by the engine. One per
// symbol-direction on the backend; the gateway never merges or dedupes.
type Position struct {
	Symbol        string    `json:"symbol"`
	Side          string    `json:"side"` // buy/sell
	Size          float64   `json:"size"`
	EntryPrice    float64   `json:"entry_price"`
	CurrentPrice  float64   `json:"current_price"`
	UnrealizedPnl float64   `json:"unrealized_pnl"`
	StopLoss      *float64  `json:"stop_loss,omitempty"`
	TakeProfit    *float64  `json:"take_profit,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

// TradeRecord is immutable once Status is "closed"; we only ever fetch.
type TradeRecord struct {
	ID         string     `json:"id"`
	Symbol     string     `json:"symbol"`
	Side       string     `json:"side"`
	Quantity   float64    `json:"quantity"`
	EntryPrice float64    `json:"entry_price"`
	ExitPrice  *float64   `json:"exit_price,omitempty"`
	Pnl        *float64   `json:"pnl,omitempty"`
	EntryTime  time.Time  `json:"entry_time"`
	ExitTime   *time.Time `json:"exit_time,omitempty"`
	Status     string     `json:"status"` // open/closed
}

package models

import "time"

type Candle struct {
	Timestamp time.Time `json:"timestamp"`
	Open      float64   `json:"open"`
	High      float64   `json:"high"`
	Low       float64   `json:"low"`
	Close     float64   `json:"close"`
	Volume    float64   `json:"volume"`
}

type ChartData struct {
	Symbol      string   `json:"symbol"`
	Timeframe   string   `json:"timeframe"`
	Candles     []Candle `json:"candles"`
	LatestPrice float64  `json:"latest_price"`
	Volume24h   float64  `json:"volume_24h"`
	Change24h   float64  `json:"change_24h"`
}

type MarketData struct {
	Symbol    string   `json:"symbol"`
	Timeframe string   `json:"timeframe"`
	Candles   []Candle `json:"candles"`
}

type SymbolInfo struct {
	Symbol        string  `json:"symbol"`
	BaseAsset     string  `json:"base_asset"`
	QuoteAsset    string  `json:"quote_asset"`
	PricePrecision int    `json:"price_precision"`
	MinQty        float64 `json:"min_qty"`
	Active        bool    `json:"active"`
}

type AddSymbolRequest struct {
	Symbol    string `json:"symbol"`
	Timeframe string `json:"timeframe,omitempty"`
}

// PriceTick is one update from the engine's websocket price feed.
type PriceTick struct {
	Symbol    string    `json:"symbol"`
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

package models

import "time"

// AISignal is an ephemeral snapshot of one analysis run; nothing here is
// persisted by the gateway itself (the journal keeps its own copy).
type AISignal struct {
	Signal      string    `json:"signal"` // long/short/neutral
	Confidence  float64   `json:"confidence"`
	Probability float64   `json:"probability"`
	Timestamp   time.Time `json:"timestamp"`
	ModelType   string    `json:"model_type"`
	Symbol      string    `json:"symbol"`
	Timeframe   string    `json:"timeframe"`
}

type AIModelInfo struct {
	ModelType   string    `json:"model_type"`
	Loaded      bool      `json:"loaded"`
	TrainedAt   time.Time `json:"trained_at"`
	Accuracy    float64   `json:"accuracy"`
	FeatureSize int       `json:"feature_size"`
	Version     string    `json:"version"`
}

type AnalyzeRequest struct {
	Symbol    string   `json:"symbol"`
	Timeframe string   `json:"timeframe"`
	Candles   []Candle `json:"candles"`
}

type TrainRequest struct {
	Symbol    string   `json:"symbol"`
	Timeframe string   `json:"timeframe"`
	Candles   []Candle `json:"candles"`
	Epochs    int      `json:"epochs,omitempty"`
}

type TrainResult struct {
	Success  bool    `json:"success"`
	Message  string  `json:"message,omitempty"`
	Error    string  `json:"error,omitempty"`
	Accuracy float64 `json:"accuracy,omitempty"`
	Duration float64 `json:"duration_sec,omitempty"`
}

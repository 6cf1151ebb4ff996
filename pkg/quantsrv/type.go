package quantsrv

import (
	"time"

	"portfolio-srv/pkg/httpclient"
)

// QuantConfig holds configuration for the quant engine client.
type QuantConfig struct {
	BaseURL    string
	Timeout    time.Duration // zero means DefaultTimeout
	HTTPClient httpclient.IClient
	Metrics    *httpclient.Metrics
}

// RiskSummary is the quant engine's risk report for a bundle.
type RiskSummary struct {
	BundleID         string  `json:"bundle_id"`
	VolatilityAnnual float64 `json:"volatility_annual"`
	MaxDrawdown      float64 `json:"max_drawdown"`
	SharpeRatio      float64 `json:"sharpe_ratio"`
	Level            string  `json:"risk_level"`
}

// ValuePoint is one sample of portfolio value history.
type ValuePoint struct {
	Timestamp int64   `json:"timestamp"`
	ValueUSD  float64 `json:"value_usd"`
}

// Performance is the quant engine's return report for a bundle.
type Performance struct {
	BundleID     string  `json:"bundle_id"`
	Return24h    float64 `json:"return_24h"`
	Return7d     float64 `json:"return_7d"`
	Return30d    float64 `json:"return_30d"`
	ReturnAll    float64 `json:"return_all"`
	BestDay      float64 `json:"best_day"`
	WorstDay     float64 `json:"worst_day"`
}

// quantImpl implements IQuant.
type quantImpl struct {
	httpClient httpclient.IClient
}

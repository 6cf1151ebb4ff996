package risk

import "time"

const (
	// SummaryCacheTTL is how long a computed risk summary stays fresh.
	SummaryCacheTTL = 15 * time.Minute

	// FallbackHistoryDays is the value-history window the local engine uses
	// when the quant engine is unavailable.
	FallbackHistoryDays = 90

	// MinHistoryPoints is the minimum number of daily samples the local
	// engine needs to produce meaningful metrics.
	MinHistoryPoints = 7
)

// Annualized volatility thresholds for level classification.
const (
	VolatilityMediumThreshold   = 0.30
	VolatilityHighThreshold     = 0.60
	VolatilityCriticalThreshold = 1.00
)

// AlertLevel is the lowest level that triggers a risk alert event.
const AlertLevel = "high"

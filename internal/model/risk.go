package model

import "time"

// RiskLevel classifies a portfolio's risk posture.
type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelMedium   RiskLevel = "medium"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

// Rank orders levels for threshold comparisons. Unknown levels rank lowest.
func (l RiskLevel) Rank() int {
	switch l {
	case RiskLevelLow:
		return 1
	case RiskLevelMedium:
		return 2
	case RiskLevelHigh:
		return 3
	case RiskLevelCritical:
		return 4
	default:
		return 0
	}
}

// RiskSource records which engine produced a risk summary.
type RiskSource string

const (
	// RiskSourceQuant means the summary came from the quant engine.
	RiskSourceQuant RiskSource = "quant_engine"
	// RiskSourceLocal means the summary was computed locally from value
	// history because the quant engine was unavailable.
	RiskSourceLocal RiskSource = "local_fallback"
)

// RiskSummary holds the risk metrics for one bundle.
type RiskSummary struct {
	BundleID         string
	VolatilityAnnual float64
	MaxDrawdown      float64
	SharpeRatio      float64
	Level            RiskLevel
	Source           RiskSource
	ComputedAt       time.Time
}

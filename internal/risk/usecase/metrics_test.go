package usecase

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDailyReturns(t *testing.T) {
	t.Run("computes simple returns", func(t *testing.T) {
		returns := dailyReturns([]float64{100, 110, 99})
		if len(returns) != 2 {
			t.Fatalf("expected 2 returns, got %d", len(returns))
		}
		if !almostEqual(returns[0], 0.1) {
			t.Errorf("expected first return 0.1, got %f", returns[0])
		}
		if !almostEqual(returns[1], -0.1) {
			t.Errorf("expected second return -0.1, got %f", returns[1])
		}
	})

	t.Run("skips zero predecessors", func(t *testing.T) {
		returns := dailyReturns([]float64{0, 100, 110})
		if len(returns) != 1 {
			t.Fatalf("expected 1 return, got %d", len(returns))
		}
	})

	t.Run("too few samples", func(t *testing.T) {
		if returns := dailyReturns([]float64{100}); returns != nil {
			t.Errorf("expected nil, got %v", returns)
		}
	})
}

func TestAnnualizedVolatility(t *testing.T) {
	t.Run("flat series has zero volatility", func(t *testing.T) {
		returns := dailyReturns([]float64{100, 100, 100, 100})
		if vol := annualizedVolatility(returns); vol != 0 {
			t.Errorf("expected 0, got %f", vol)
		}
	})

	t.Run("scales daily stddev by sqrt of days", func(t *testing.T) {
		returns := []float64{0.01, -0.01, 0.01, -0.01}
		daily := stddev(returns)
		expected := daily * math.Sqrt(tradingDaysPerYear)
		if vol := annualizedVolatility(returns); !almostEqual(vol, expected) {
			t.Errorf("expected %f, got %f", expected, vol)
		}
	})
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"monotonic growth", []float64{100, 110, 120}, 0},
		{"half lost from peak", []float64{100, 200, 100}, 0.5},
		{"recovery does not erase drawdown", []float64{100, 50, 150}, 0.5},
		{"empty series", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := maxDrawdown(tt.values); !almostEqual(got, tt.want) {
				t.Errorf("expected %f, got %f", tt.want, got)
			}
		})
	}
}

func TestSharpeRatio(t *testing.T) {
	t.Run("zero volatility gives zero", func(t *testing.T) {
		if s := sharpeRatio([]float64{0.01, 0.01, 0.01}); s != 0 {
			t.Errorf("expected 0, got %f", s)
		}
	})

	t.Run("positive drift gives positive ratio", func(t *testing.T) {
		returns := []float64{0.02, 0.01, 0.03, 0.01}
		if s := sharpeRatio(returns); s <= 0 {
			t.Errorf("expected positive Sharpe ratio, got %f", s)
		}
	})

	t.Run("negative drift gives negative ratio", func(t *testing.T) {
		returns := []float64{-0.02, -0.01, -0.03, -0.01}
		if s := sharpeRatio(returns); s >= 0 {
			t.Errorf("expected negative Sharpe ratio, got %f", s)
		}
	})
}

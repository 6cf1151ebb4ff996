package usecase

import "math"

// tradingDaysPerYear is used to annualize daily volatility. Crypto markets
// trade every day.
const tradingDaysPerYear = 365

// dailyReturns computes simple returns between consecutive samples. Samples
// with a zero predecessor are skipped.
func dailyReturns(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(values)-1)
	for i := 1; i < len(values); i++ {
		if values[i-1] == 0 {
			continue
		}
		returns = append(returns, values[i]/values[i-1]-1)
	}
	return returns
}

// annualizedVolatility is the sample standard deviation of daily returns
// scaled to a year.
func annualizedVolatility(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	return stddev(returns) * math.Sqrt(tradingDaysPerYear)
}

// maxDrawdown is the largest peak-to-trough loss as a fraction of the peak.
func maxDrawdown(values []float64) float64 {
	var peak, maxDD float64
	for _, v := range values {
		if v > peak {
			peak = v
		}
		if peak > 0 {
			dd := (peak - v) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// sharpeRatio is the annualized mean return over annualized volatility, with
// a zero risk-free rate.
func sharpeRatio(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	vol := annualizedVolatility(returns)
	if vol == 0 {
		return 0
	}
	annualReturn := mean(returns) * tradingDaysPerYear
	return annualReturn / vol
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func stddev(xs []float64) float64 {
	m := mean(xs)
	var sum float64
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}

package stats

import "carbonq-be/internal/models"

const (
	// smoothingFactor is the alpha of the simple exponential smoothing.
	smoothingFactor = 0.35

	// trendThreshold is the absolute smoothed-series delta (in grams)
	// below which the trend counts as stable.
	trendThreshold = 1.0

	// minDaysWithData gates the forecast; fewer active days than this
	// and the estimator refuses to extrapolate.
	minDaysWithData = 7
)

// EstimateTrend applies simple exponential smoothing to a daily carbon
// series (oldest first, zeros for silent days) and forecasts the next
// week's total emissions.
//
// The trend compares the first smoothed value against the last one, which
// damps single-day spikes but will not notice a trend that reverses inside
// the window. That is the intended behavior of this heuristic.
func EstimateTrend(series []float64) models.TrendResult {
	daysWithData := 0
	for _, v := range series {
		if v > 0 {
			daysWithData++
		}
	}

	if daysWithData < minDaysWithData {
		return models.TrendResult{
			Trend:          "stable",
			DaysUsed:       len(series),
			SufficientData: false,
		}
	}

	smoothed := series[0]
	first := smoothed
	for _, v := range series[1:] {
		smoothed = smoothingFactor*v + (1-smoothingFactor)*smoothed
	}

	trend := "stable"
	switch diff := smoothed - first; {
	case diff > trendThreshold:
		trend = "up"
	case diff < -trendThreshold:
		trend = "down"
	}

	return models.TrendResult{
		Trend:                  trend,
		EstimatedTotalNextWeek: round2(7 * smoothed),
		LastSmoothedValue:      round2(smoothed),
		DaysUsed:               len(series),
		SufficientData:         true,
	}
}

// CarbonSeries projects day buckets onto the raw carbon series the
// estimator consumes.
func CarbonSeries(buckets []models.DayBucket) []float64 {
	series := make([]float64, len(buckets))
	for i, b := range buckets {
		series[i] = b.Carbon
	}
	return series
}

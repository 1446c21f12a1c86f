package sentiment

import "mood-report/internal/domain"

// Compute derives the trailing-window statistics for one resolved series.
// It returns nil for an empty series: a failed market is an expected
// outcome, not a fault. A series shorter than a window is counted over the
// points it has; callers must not assume exactly 30 or 60 samples.
func Compute(series domain.SentimentSeries, th domain.Thresholds) *domain.MarketStats {
	if len(series) == 0 {
		return nil
	}

	low30, high30 := countBands(series, 30, th)
	low60, high60 := countBands(series, 60, th)

	current := series[0]
	return &domain.MarketStats{
		CurrentValue:   current.Value,
		CurrentDate:    current.Date,
		Classification: th.Classify(current.Value),
		Low30:          low30,
		High30:         high30,
		Low60:          low60,
		High60:         high60,
	}
}

func countBands(series domain.SentimentSeries, window int, th domain.Thresholds) (low, high int) {
	if window > len(series) {
		window = len(series)
	}
	for _, p := range series[:window] {
		if p.Value < th.Low {
			low++
		} else if p.Value > th.High {
			high++
		}
	}
	return low, high
}

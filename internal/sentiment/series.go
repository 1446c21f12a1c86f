package sentiment

import (
	"sort"
	"time"

	"mood-report/internal/domain"
)

// MaxSeriesPoints bounds every normalized series. It must stay at or above
// 60 so the 60-day window statistics remain valid.
const MaxSeriesPoints = 65

// Finalize brings a parsed series into the canonical shape every consumer
// relies on: sorted newest-first, one point per date, values clamped to
// [0,100], at most MaxSeriesPoints entries.
func Finalize(series domain.SentimentSeries) domain.SentimentSeries {
	sort.SliceStable(series, func(i, j int) bool {
		return series[i].Date.After(series[j].Date)
	})

	out := make(domain.SentimentSeries, 0, len(series))
	var last time.Time
	for _, p := range series {
		if len(out) > 0 && p.Date.Equal(last) {
			continue
		}
		if p.Value < 0 {
			p.Value = 0
		} else if p.Value > 100 {
			p.Value = 100
		}
		out = append(out, p)
		last = p.Date
		if len(out) == MaxSeriesPoints {
			break
		}
	}
	return out
}

// DayUTC truncates a timestamp to its UTC calendar date. Providers report
// timestamps with intraday precision; the series is daily.
func DayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

package sentiment

import (
	"testing"

	"mood-report/internal/domain"
)

// seriesOf builds a newest-first series; values[0] is the current point.
func seriesOf(values ...int) domain.SentimentSeries {
	series := make(domain.SentimentSeries, 0, len(values))
	for i, v := range values {
		series = append(series, domain.SentimentPoint{Date: day(len(values) - i), Value: v})
	}
	return series
}

func TestComputeEmptySeries(t *testing.T) {
	if stats := Compute(nil, domain.Thresholds{Low: 25, High: 75}); stats != nil {
		t.Fatalf("expected nil stats for empty series, got %+v", stats)
	}
}

func TestComputeCurrentAndCounts(t *testing.T) {
	th := domain.Thresholds{Low: 25, High: 75}
	series := seriesOf(80, 20, 50, 25, 75, 90, 10)

	stats := Compute(series, th)
	if stats == nil {
		t.Fatal("expected stats")
	}
	if stats.CurrentValue != 80 {
		t.Fatalf("CurrentValue = %d, want 80", stats.CurrentValue)
	}
	if !stats.CurrentDate.Equal(series[0].Date) {
		t.Fatalf("CurrentDate = %v, want %v", stats.CurrentDate, series[0].Date)
	}
	if stats.Classification != domain.ClassGreed {
		t.Fatalf("Classification = %s, want greed", stats.Classification)
	}
	// 20 and 10 sit under 25; 80 and 90 sit over 75; the two boundary
	// values 25 and 75 count toward neither bucket.
	if stats.Low30 != 2 || stats.High30 != 2 {
		t.Fatalf("30d counts = (%d,%d), want (2,2)", stats.Low30, stats.High30)
	}
	if stats.Low60 != 2 || stats.High60 != 2 {
		t.Fatalf("60d counts = (%d,%d), want (2,2)", stats.Low60, stats.High60)
	}
}

func TestComputeSinglePointNeutral(t *testing.T) {
	th := domain.Thresholds{Low: 25, High: 75}
	stats := Compute(seriesOf(50), th)

	if stats == nil {
		t.Fatal("expected stats")
	}
	if stats.Classification != domain.ClassNeutral {
		t.Fatalf("Classification = %s, want neutral", stats.Classification)
	}
	if stats.Low30 != 0 || stats.High30 != 0 || stats.Low60 != 0 || stats.High60 != 0 {
		t.Fatalf("expected zero counts, got %+v", stats)
	}
}

func TestComputeWindowMonotonicity(t *testing.T) {
	th := domain.Thresholds{Low: 25, High: 75}
	values := make([]int, MaxSeriesPoints)
	for i := range values {
		// Spread values across panic, neutral and greed bands.
		values[i] = (i * 7) % 101
	}
	stats := Compute(seriesOf(values...), th)

	if stats.Low30 > stats.Low60 {
		t.Fatalf("low30 %d > low60 %d", stats.Low30, stats.Low60)
	}
	if stats.High30 > stats.High60 {
		t.Fatalf("high30 %d > high60 %d", stats.High30, stats.High60)
	}
}

func TestComputeShortSeriesUsesAvailableWindow(t *testing.T) {
	th := domain.Thresholds{Low: 25, High: 75}
	stats := Compute(seriesOf(10, 10, 90), th)

	if stats.Low30 != 2 || stats.High30 != 1 {
		t.Fatalf("30d counts = (%d,%d), want (2,1)", stats.Low30, stats.High30)
	}
	if stats.Low60 != 2 || stats.High60 != 1 {
		t.Fatalf("60d counts = (%d,%d), want (2,1)", stats.Low60, stats.High60)
	}
}

package sentiment

import (
	"testing"
	"time"

	"mood-report/internal/domain"
)

func day(offset int) time.Time {
	return time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset)
}

func TestFinalizeSortsNewestFirst(t *testing.T) {
	series := Finalize(domain.SentimentSeries{
		{Date: day(0), Value: 10},
		{Date: day(2), Value: 30},
		{Date: day(1), Value: 20},
	})

	if len(series) != 3 {
		t.Fatalf("expected 3 points, got %d", len(series))
	}
	if !series[0].Date.Equal(day(2)) || series[0].Value != 30 {
		t.Fatalf("unexpected head: %+v", series[0])
	}
	for i := 1; i < len(series); i++ {
		if !series[i].Date.Before(series[i-1].Date) {
			t.Fatalf("series not strictly descending at index %d", i)
		}
	}
}

func TestFinalizeDropsDuplicateDates(t *testing.T) {
	series := Finalize(domain.SentimentSeries{
		{Date: day(1), Value: 20},
		{Date: day(1), Value: 99},
		{Date: day(0), Value: 10},
	})

	if len(series) != 2 {
		t.Fatalf("expected duplicate date dropped, got %d points", len(series))
	}
	if series[0].Value != 20 {
		t.Fatalf("expected first occurrence kept, got %d", series[0].Value)
	}
}

func TestFinalizeCapsAndClamps(t *testing.T) {
	raw := make(domain.SentimentSeries, 0, 90)
	for i := 0; i < 90; i++ {
		raw = append(raw, domain.SentimentPoint{Date: day(i), Value: i * 2})
	}
	raw = append(raw, domain.SentimentPoint{Date: day(90), Value: 300})
	raw = append(raw, domain.SentimentPoint{Date: day(91), Value: -5})

	series := Finalize(raw)
	if len(series) != MaxSeriesPoints {
		t.Fatalf("expected cap at %d, got %d", MaxSeriesPoints, len(series))
	}
	// Newest entries survive the cap.
	if !series[0].Date.Equal(day(91)) {
		t.Fatalf("expected newest point first, got %v", series[0].Date)
	}
	if series[0].Value != 0 || series[1].Value != 100 {
		t.Fatalf("expected values clamped to [0,100], got %d and %d", series[0].Value, series[1].Value)
	}
}

func TestDayUTC(t *testing.T) {
	ts := time.Date(2024, 3, 5, 23, 45, 1, 0, time.FixedZone("X", -3*3600))
	got := DayUTC(ts)
	want := time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DayUTC = %v, want %v", got, want)
	}
}

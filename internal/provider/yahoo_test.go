package provider

import (
	"context"
	"errors"
	"testing"
	"time"

	"mood-report/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

func TestYahooFetchDailyClosesWindowsAndSorts(t *testing.T) {
	origHistory := yahooHistory
	t.Cleanup(func() { yahooHistory = origHistory })

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var gotSymbol string
	var gotStart, gotEnd time.Time
	yahooHistory = func(symbol string, start, end time.Time) ([]domain.PricePoint, error) {
		gotSymbol, gotStart, gotEnd = symbol, start, end
		points := make([]domain.PricePoint, 0, 90)
		// Unsorted on purpose: newest bars first.
		for i := 89; i >= 0; i-- {
			points = append(points, domain.PricePoint{Date: base.AddDate(0, 0, i), Close: float64(1000 + i)})
		}
		return points, nil
	}

	p := NewYahooProvider(trace.NewNoopTracerProvider().Tracer("test"), "^GSPC")
	p.now = func() time.Time { return base.AddDate(0, 0, 100) }

	points, err := p.FetchDailyCloses(context.Background(), 80)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotSymbol != "^GSPC" {
		t.Fatalf("symbol = %s, want ^GSPC", gotSymbol)
	}
	if !gotEnd.After(gotStart) {
		t.Fatal("expected a forward date range")
	}
	// 80 trading days need more than 80 calendar days upstream.
	if gotEnd.Sub(gotStart) < 80*24*time.Hour {
		t.Fatalf("calendar span too small: %v", gotEnd.Sub(gotStart))
	}
	if len(points) != 80 {
		t.Fatalf("expected window of 80 points, got %d", len(points))
	}
	for i := 1; i < len(points); i++ {
		if !points[i-1].Date.Before(points[i].Date) {
			t.Fatalf("points not ascending at index %d", i)
		}
	}
	// The oldest bars fall off the window, the newest survive.
	if points[len(points)-1].Close != 1089 {
		t.Fatalf("unexpected newest close: %f", points[len(points)-1].Close)
	}
	if points[0].Close != 1010 {
		t.Fatalf("unexpected oldest close: %f", points[0].Close)
	}
}

func TestYahooFetchDailyClosesPropagatesError(t *testing.T) {
	origHistory := yahooHistory
	t.Cleanup(func() { yahooHistory = origHistory })

	yahooHistory = func(symbol string, start, end time.Time) ([]domain.PricePoint, error) {
		return nil, domain.ErrTransport
	}

	p := NewYahooProvider(trace.NewNoopTracerProvider().Tracer("test"), "000300.SS")
	_, err := p.FetchDailyCloses(context.Background(), 80)
	if !errors.Is(err, domain.ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

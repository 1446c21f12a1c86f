package sentiment

import (
	"context"
	"fmt"
	"math"
	"sort"

	"mood-report/internal/domain"
	"mood-report/internal/ta"
)

const (
	rsiPeriod = 14

	// closesLookback leaves room for a full 65-point series after the
	// 14-period warm-up, with slack for market holidays.
	closesLookback = 80
)

// ClosesProvider supplies a daily closing-price series for one instrument.
type ClosesProvider interface {
	FetchDailyCloses(ctx context.Context, days int) ([]domain.PricePoint, error)
}

// RSISource derives a sentiment series from raw closing prices, letting a
// plain price feed stand in for a market without a native sentiment index.
type RSISource struct {
	label      string
	provider   ClosesProvider
	thresholds domain.Thresholds
}

func NewRSISource(label string, provider ClosesProvider, thresholds domain.Thresholds) *RSISource {
	return &RSISource{label: label, provider: provider, thresholds: thresholds}
}

func (s *RSISource) Label() string                 { return s.label }
func (s *RSISource) Thresholds() domain.Thresholds { return s.thresholds }

func (s *RSISource) Fetch(ctx context.Context) (domain.SentimentSeries, error) {
	prices, err := s.provider.FetchDailyCloses(ctx, closesLookback)
	if err != nil {
		return nil, err
	}
	if len(prices) < rsiPeriod+1 {
		return nil, fmt.Errorf("%w: %d closes, need %d", domain.ErrInsufficientHistory, len(prices), rsiPeriod+1)
	}

	sort.Slice(prices, func(i, j int) bool {
		return prices[i].Date.Before(prices[j].Date)
	})
	closes := make([]float64, len(prices))
	for i, p := range prices {
		closes[i] = p.Close
	}

	values := ta.RSISeries(closes, rsiPeriod)
	series := make(domain.SentimentSeries, 0, len(values)-rsiPeriod)
	for i := len(values) - 1; i >= rsiPeriod; i-- {
		if math.IsNaN(values[i]) {
			continue
		}
		series = append(series, domain.SentimentPoint{
			Date:  prices[i].Date,
			Value: int(values[i]),
		})
	}
	return Finalize(series), nil
}

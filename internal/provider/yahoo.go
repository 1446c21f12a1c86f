package provider

import (
	"context"
	"fmt"
	"sort"
	"time"

	"mood-report/internal/domain"
	"mood-report/internal/sentiment"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"go.opentelemetry.io/otel/trace"
)

// yahooHistory walks the finance-go chart iterator; a seam for tests.
var yahooHistory = func(symbol string, start, end time.Time) ([]domain.PricePoint, error) {
	params := &chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}

	iter := chart.Get(params)
	var points []domain.PricePoint
	for iter.Next() {
		bar := iter.Bar()
		closeVal, _ := bar.Close.Float64()
		points = append(points, domain.PricePoint{
			Date:  sentiment.DayUTC(time.Unix(int64(bar.Timestamp), 0)),
			Close: closeVal,
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("%w: yahoo chart %s: %v", domain.ErrTransport, symbol, err)
	}
	return points, nil
}

// YahooProvider fetches daily index closes from Yahoo Finance for RSI
// fallback sources.
type YahooProvider struct {
	symbol string
	tracer trace.Tracer
	now    func() time.Time
}

func NewYahooProvider(tracer trace.Tracer, symbol string) *YahooProvider {
	return &YahooProvider{symbol: symbol, tracer: tracer, now: time.Now}
}

// FetchDailyCloses returns the most recent `days` trading days, ascending.
// The calendar span requested upstream is padded because weekends and
// holidays carry no bars.
func (p *YahooProvider) FetchDailyCloses(ctx context.Context, days int) ([]domain.PricePoint, error) {
	_, span := p.tracer.Start(ctx, "yahoo.fetch-daily-closes")
	defer span.End()

	end := p.now()
	start := end.AddDate(0, 0, -(days*3/2 + 10))

	points, err := yahooHistory(p.symbol, start, end)
	if err != nil {
		return nil, err
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	if len(points) > days {
		points = points[len(points)-days:]
	}
	return points, nil
}

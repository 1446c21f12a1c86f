package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"mood-report/internal/domain"
	"mood-report/internal/sentiment"

	"go.opentelemetry.io/otel/trace"
)

const coingeckoBaseURL = "https://api.coingecko.com/api/v3"

// CoinGeckoProvider fetches daily closing prices for one coin from the
// CoinGecko free API, rate limited to stay inside the free tier.
type CoinGeckoProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	limiter *RateLimiter
	coinID  string
}

// NewCoinGeckoProvider creates a provider limited to 8 requests per minute
// (one token every 7.5 seconds).
func NewCoinGeckoProvider(tracer trace.Tracer, coinID string) *CoinGeckoProvider {
	return &CoinGeckoProvider{
		client:  &http.Client{Timeout: 30 * time.Second},
		baseURL: coingeckoBaseURL,
		tracer:  tracer,
		limiter: NewRateLimiter(8, 7500*time.Millisecond),
		coinID:  coinID,
	}
}

// FetchDailyCloses returns one close per UTC day, ascending by date. The
// market_chart feed can carry several samples per day; the last one wins.
func (p *CoinGeckoProvider) FetchDailyCloses(ctx context.Context, days int) ([]domain.PricePoint, error) {
	ctx, span := p.tracer.Start(ctx, "coingecko.fetch-daily-closes")
	defer span.End()

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %v", domain.ErrTransport, err)
	}

	url := fmt.Sprintf("%s/coins/%s/market_chart?vs_currency=usd&days=%d&interval=daily",
		p.baseURL, p.coinID, days)

	body, err := doRequest(ctx, p.client, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch market chart for %s: %w", p.coinID, err)
	}

	var raw struct {
		Prices [][]float64 `json:"prices"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: coingecko market chart for %s: %v", domain.ErrMalformedSource, p.coinID, err)
	}
	if len(raw.Prices) == 0 {
		return nil, fmt.Errorf("%w: coingecko market chart for %s has no rows", domain.ErrMalformedSource, p.coinID)
	}

	sort.Slice(raw.Prices, func(i, j int) bool {
		return raw.Prices[i][0] < raw.Prices[j][0]
	})

	byDay := make(map[time.Time]float64, len(raw.Prices))
	order := make([]time.Time, 0, len(raw.Prices))
	for _, row := range raw.Prices {
		if len(row) < 2 {
			continue
		}
		date := sentiment.DayUTC(time.UnixMilli(int64(row[0])))
		if _, seen := byDay[date]; !seen {
			order = append(order, date)
		}
		byDay[date] = row[1]
	}

	points := make([]domain.PricePoint, 0, len(order))
	for _, date := range order {
		points = append(points, domain.PricePoint{Date: date, Close: byDay[date]})
	}
	return points, nil
}

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"mood-report/internal/domain"
	"mood-report/internal/sentiment"

	"go.opentelemetry.io/otel/trace"
)

const alternativeBaseURL = "https://api.alternative.me"

// AlternativeFNGProvider fetches the Alternative.me crypto fear & greed
// index history.
type AlternativeFNGProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	bands   domain.Thresholds
	limit   int
}

func NewAlternativeFNGProvider(tracer trace.Tracer, bands domain.Thresholds) *AlternativeFNGProvider {
	return &AlternativeFNGProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: alternativeBaseURL,
		tracer:  tracer,
		bands:   bands,
		limit:   sentiment.MaxSeriesPoints,
	}
}

func (p *AlternativeFNGProvider) Label() string                 { return "alternative.me" }
func (p *AlternativeFNGProvider) Thresholds() domain.Thresholds { return p.bands }

func (p *AlternativeFNGProvider) Fetch(ctx context.Context) (domain.SentimentSeries, error) {
	ctx, span := p.tracer.Start(ctx, "altfng.fetch-history")
	defer span.End()

	url := fmt.Sprintf("%s/fng/?limit=%d", p.baseURL, p.limit)
	body, err := doRequest(ctx, p.client, url, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch alternative.me fng: %w", err)
	}
	return p.Normalize(body)
}

func (p *AlternativeFNGProvider) Normalize(body []byte) (domain.SentimentSeries, error) {
	var payload struct {
		Data []struct {
			Value     string `json:"value"`
			Timestamp string `json:"timestamp"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: alternative.me fng: %v", domain.ErrMalformedSource, err)
	}
	if len(payload.Data) == 0 {
		return nil, fmt.Errorf("%w: alternative.me fng has no rows", domain.ErrMalformedSource)
	}

	series := make(domain.SentimentSeries, 0, len(payload.Data))
	for _, row := range payload.Data {
		value, err := strconv.Atoi(strings.TrimSpace(row.Value))
		if err != nil {
			return nil, fmt.Errorf("%w: parse fng value: %v", domain.ErrMalformedSource, err)
		}
		ts, err := strconv.ParseInt(strings.TrimSpace(row.Timestamp), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: parse fng timestamp: %v", domain.ErrMalformedSource, err)
		}
		if ts > 1_000_000_000_000 {
			ts = ts / 1000
		}
		series = append(series, domain.SentimentPoint{
			Date:  sentiment.DayUTC(time.Unix(ts, 0)),
			Value: value,
		})
	}
	return sentiment.Finalize(series), nil
}

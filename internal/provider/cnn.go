package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"mood-report/internal/domain"
	"mood-report/internal/sentiment"

	"go.opentelemetry.io/otel/trace"
)

const cnnBaseURL = "https://production.dataviz.cnn.io"

// CNNFearGreedProvider fetches the CNN fear & greed history for US equities.
type CNNFearGreedProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	bands   domain.Thresholds
}

func NewCNNFearGreedProvider(tracer trace.Tracer, bands domain.Thresholds) *CNNFearGreedProvider {
	return &CNNFearGreedProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: cnnBaseURL,
		tracer:  tracer,
		bands:   bands,
	}
}

func (p *CNNFearGreedProvider) Label() string                 { return "cnn" }
func (p *CNNFearGreedProvider) Thresholds() domain.Thresholds { return p.bands }

func (p *CNNFearGreedProvider) Fetch(ctx context.Context) (domain.SentimentSeries, error) {
	ctx, span := p.tracer.Start(ctx, "cnn.fetch-history")
	defer span.End()

	url := p.baseURL + "/index/fearandgreed/graphdata"
	header := http.Header{}
	header.Set("User-Agent", browserUserAgent)

	body, err := doRequest(ctx, p.client, url, header)
	if err != nil {
		return nil, fmt.Errorf("fetch cnn fear & greed: %w", err)
	}
	return p.Normalize(body)
}

// Normalize maps the graphdata payload to a daily series. CNN reports
// fractional scores; values are truncated to integers, never rounded.
func (p *CNNFearGreedProvider) Normalize(body []byte) (domain.SentimentSeries, error) {
	var payload struct {
		Historical struct {
			Data []struct {
				X float64 `json:"x"`
				Y float64 `json:"y"`
			} `json:"data"`
		} `json:"fear_and_greed_historical"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("%w: cnn fear & greed: %v", domain.ErrMalformedSource, err)
	}
	if len(payload.Historical.Data) == 0 {
		return nil, fmt.Errorf("%w: cnn fear & greed has no rows", domain.ErrMalformedSource)
	}

	series := make(domain.SentimentSeries, 0, len(payload.Historical.Data))
	for _, row := range payload.Historical.Data {
		series = append(series, domain.SentimentPoint{
			Date:  sentiment.DayUTC(time.UnixMilli(int64(row.X))),
			Value: int(row.Y),
		})
	}
	return sentiment.Finalize(series), nil
}

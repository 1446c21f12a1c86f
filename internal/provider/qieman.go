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

const qiemanBaseURL = "https://qieman.com"

// QiemanProvider fetches the Qieman index valuation "temperature" for a
// Chinese index. The feed reports a 0-1 PE percentile per trading day,
// scaled here to the shared 0-100 sentiment range.
type QiemanProvider struct {
	client  *http.Client
	baseURL string
	tracer  trace.Tracer
	bands   domain.Thresholds
	idxCode string
}

func NewQiemanProvider(tracer trace.Tracer, idxCode string, bands domain.Thresholds) *QiemanProvider {
	return &QiemanProvider{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: qiemanBaseURL,
		tracer:  tracer,
		bands:   bands,
		idxCode: idxCode,
	}
}

func (p *QiemanProvider) Label() string                 { return "qieman" }
func (p *QiemanProvider) Thresholds() domain.Thresholds { return p.bands }

func (p *QiemanProvider) Fetch(ctx context.Context) (domain.SentimentSeries, error) {
	ctx, span := p.tracer.Start(ctx, "qieman.fetch-history")
	defer span.End()

	url := fmt.Sprintf("%s/pmdd/data-service/idx-eval/daily-eval?idxCode=%s", p.baseURL, p.idxCode)
	header := http.Header{}
	header.Set("User-Agent", browserUserAgent)

	body, err := doRequest(ctx, p.client, url, header)
	if err != nil {
		return nil, fmt.Errorf("fetch qieman %s: %w", p.idxCode, err)
	}
	return p.Normalize(body)
}

func (p *QiemanProvider) Normalize(body []byte) (domain.SentimentSeries, error) {
	var rows []struct {
		Date         int64   `json:"date"`
		PEPercentile float64 `json:"pePercentile"`
	}
	if err := json.Unmarshal(body, &rows); err != nil {
		return nil, fmt.Errorf("%w: qieman daily-eval: %v", domain.ErrMalformedSource, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: qieman daily-eval has no rows", domain.ErrMalformedSource)
	}

	series := make(domain.SentimentSeries, 0, len(rows))
	for _, row := range rows {
		series = append(series, domain.SentimentPoint{
			Date:  sentiment.DayUTC(time.UnixMilli(row.Date)),
			Value: int(row.PEPercentile * 100),
		})
	}
	return sentiment.Finalize(series), nil
}

package sentiment

import (
	"context"
	"log"
	"time"

	"mood-report/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

// Source is one entry in a market's fallback chain. Fetch covers both the
// network call and normalization; any error, like an empty result, simply
// moves the resolver on to the next source.
type Source interface {
	Label() string
	Thresholds() domain.Thresholds
	Fetch(ctx context.Context) (domain.SentimentSeries, error)
}

// Market is an ordered chain of sources; Sources[0] is the primary.
type Market struct {
	Label      string
	ShortLabel string
	Sources    []Source
}

// Resolution is the outcome of walking one market's chain. A market with no
// usable source yields an empty series and the failed label, never an error.
type Resolution struct {
	Series      domain.SentimentSeries
	SourceLabel string
	Thresholds  domain.Thresholds
}

func (r Resolution) OK() bool { return len(r.Series) > 0 }

type Resolver struct {
	tracer  trace.Tracer
	timeout time.Duration
}

func NewResolver(tracer trace.Tracer, timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Resolver{tracer: tracer, timeout: timeout}
}

// Resolve tries each source exactly once, in order, and returns the first
// non-empty series together with the winning source's label and bands.
func (r *Resolver) Resolve(ctx context.Context, market Market) Resolution {
	ctx, span := r.tracer.Start(ctx, "resolver.resolve")
	defer span.End()

	for _, src := range market.Sources {
		series, err := r.attempt(ctx, src)
		if err != nil {
			log.Printf("%s: source %s failed: %v", market.Label, src.Label(), err)
			continue
		}
		return Resolution{
			Series:      series,
			SourceLabel: src.Label(),
			Thresholds:  src.Thresholds(),
		}
	}
	return Resolution{SourceLabel: domain.FailedSourceLabel}
}

func (r *Resolver) attempt(ctx context.Context, src Source) (domain.SentimentSeries, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	series, err := src.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	if len(series) == 0 {
		return nil, domain.ErrEmptySeries
	}
	return series, nil
}

package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mood-report/internal/domain"
	"mood-report/internal/sentiment"

	"go.opentelemetry.io/otel/trace"
)

const (
	titleSeparator = " | "
	titleTag       = "[daily market mood]"
)

// Resolver walks one market's fallback chain.
type Resolver interface {
	Resolve(ctx context.Context, market sentiment.Market) sentiment.Resolution
}

// Assembler resolves every configured market and builds the day's report.
type Assembler struct {
	tracer        trace.Tracer
	resolver      Resolver
	markets       []sentiment.Market
	alertHighDays int
	now           func() time.Time
}

func NewAssembler(tracer trace.Tracer, resolver Resolver, markets []sentiment.Market, alertHighDays int) *Assembler {
	if alertHighDays <= 0 {
		alertHighDays = 10
	}
	return &Assembler{
		tracer:        tracer,
		resolver:      resolver,
		markets:       markets,
		alertHighDays: alertHighDays,
		now:           time.Now,
	}
}

// Assemble processes markets in configured order. Failed markets still get
// a card but contribute no title fragment; when every market failed there
// is nothing to report and the result is nil.
func (a *Assembler) Assemble(ctx context.Context) *domain.Report {
	ctx, span := a.tracer.Start(ctx, "report.assemble")
	defer span.End()

	date := a.now().UTC()
	fragments := make([]string, 0, len(a.markets))
	cards := make([]domain.MarketCard, 0, len(a.markets))

	for _, market := range a.markets {
		res := a.resolver.Resolve(ctx, market)
		card := domain.MarketCard{
			MarketLabel: market.Label,
			ShortLabel:  market.ShortLabel,
			SourceLabel: res.SourceLabel,
			Thresholds:  res.Thresholds,
		}
		if stats := sentiment.Compute(res.Series, res.Thresholds); stats != nil {
			stats.SourceLabel = res.SourceLabel
			card.Stats = stats
			card.GreedAlert = stats.High30 >= a.alertHighDays
			fragments = append(fragments, fmt.Sprintf("%s:%d", market.ShortLabel, stats.CurrentValue))
		}
		cards = append(cards, card)
	}

	if len(fragments) == 0 {
		return nil
	}
	return &domain.Report{
		Date:  date,
		Title: fmt.Sprintf("%s %s %s", date.Format("2006-01-02"), strings.Join(fragments, titleSeparator), titleTag),
		Cards: cards,
	}
}

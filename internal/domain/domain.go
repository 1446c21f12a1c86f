package domain

import (
	"errors"
	"time"
)

// SentimentPoint is one daily observation on the 0-100 fear/greed scale.
type SentimentPoint struct {
	Date  time.Time `json:"date"`
	Value int       `json:"value"`
}

// SentimentSeries is ordered newest-first with no duplicate dates.
// Producers run their output through sentiment.Finalize to guarantee that.
type SentimentSeries []SentimentPoint

type Classification string

const (
	ClassPanic   Classification = "panic"
	ClassGreed   Classification = "greed"
	ClassNeutral Classification = "neutral"
)

// Thresholds bound the panic and greed bands for one source. RSI-derived
// sources carry wider bands than purpose-built sentiment indices because
// the two distributions differ; the pairing is per source, not global.
type Thresholds struct {
	Low  int
	High int
}

// Classify uses strict inequalities on both sides: a value sitting exactly
// on a threshold is neutral.
func (t Thresholds) Classify(value int) Classification {
	if value < t.Low {
		return ClassPanic
	}
	if value > t.High {
		return ClassGreed
	}
	return ClassNeutral
}

// MarketStats summarizes one market for one run. The 30/60 counters hold
// how many days inside each trailing window closed below Low or above High.
type MarketStats struct {
	CurrentValue   int
	CurrentDate    time.Time
	Classification Classification
	Low30          int
	High30         int
	Low60          int
	High60         int
	SourceLabel    string
}

// MarketCard is one rendered block of the report body. Stats is nil when
// the market's whole fallback chain failed; the card still renders as a
// failure marker.
type MarketCard struct {
	MarketLabel string
	ShortLabel  string
	SourceLabel string
	Thresholds  Thresholds
	Stats       *MarketStats
	GreedAlert  bool
}

// Report is built fresh each run and never merged with prior runs.
type Report struct {
	Date  time.Time
	Title string
	Cards []MarketCard
}

// PricePoint is one daily close used as RSI input.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// Recoverable source failures. The resolver treats every one of them as
// "try the next source"; none aborts a run.
var (
	ErrTransport           = errors.New("transport failure")
	ErrBadStatus           = errors.New("bad status")
	ErrMalformedSource     = errors.New("malformed source payload")
	ErrInsufficientHistory = errors.New("insufficient history")
	ErrEmptySeries         = errors.New("empty series")
)

// FailedSourceLabel marks a market whose entire chain was exhausted.
const FailedSourceLabel = "failed"

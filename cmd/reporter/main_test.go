package main

import (
	"context"
	"os"
	"testing"
	"time"

	"mood-report/internal/config"
	"mood-report/internal/job"
	"mood-report/internal/sentiment"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

func TestMainBootstrap(t *testing.T) {
	restore := stubReporterDeps()
	defer restore()

	done := make(chan struct{})
	go func() {
		main()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("main did not exit")
	}
}

func stubReporterDeps() func() {
	origLoadEnv := loadEnvFunc
	origLoadConfig := loadConfigFunc
	origInitRedis := initRedisFunc
	origInitTracer := initTracerFunc
	origSetupSignal := setupSignalNotify
	origStartJob := startJobFunc

	loadEnvFunc = func(...string) error { return nil }
	loadConfigFunc = func() *config.Config {
		return &config.Config{
			FetchTimeoutSecs: 1,
			AlertHighDays:    10,
			IndexLow:         25, IndexHigh: 75,
			RSILow: 30, RSIHigh: 70,
		}
	}
	initRedisFunc = func(context.Context) {}
	initTracerFunc = func(ctx context.Context) (*sdktrace.TracerProvider, trace.Tracer, error) {
		tp := sdktrace.NewTracerProvider()
		return tp, tp.Tracer("test"), nil
	}
	setupSignalNotify = func(c chan<- os.Signal, sig ...os.Signal) {}
	startJobFunc = func(*job.ReportJob, context.Context) {}

	return func() {
		loadEnvFunc = origLoadEnv
		loadConfigFunc = origLoadConfig
		initRedisFunc = origInitRedis
		initTracerFunc = origInitTracer
		setupSignalNotify = origSetupSignal
		startJobFunc = origStartJob
	}
}

func TestBuildMarkets(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	cfg := &config.Config{IndexLow: 25, IndexHigh: 75, RSILow: 30, RSIHigh: 70}

	var seriesCache sentiment.SeriesCache
	markets := buildMarkets(tp.Tracer("test"), cfg, seriesCache)

	if len(markets) != 3 {
		t.Fatalf("markets = %d, want 3", len(markets))
	}
	for _, m := range markets {
		if len(m.Sources) != 2 {
			t.Errorf("%s has %d sources, want a primary and a fallback", m.Label, len(m.Sources))
		}
	}
	if markets[0].ShortLabel != "US" || markets[1].ShortLabel != "BTC" || markets[2].ShortLabel != "CN" {
		t.Fatalf("unexpected market order: %+v", markets)
	}
}

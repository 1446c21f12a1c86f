package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mood-report/internal/cache"
	"mood-report/internal/config"
	"mood-report/internal/job"
	"mood-report/internal/notify"
	"mood-report/internal/provider"
	"mood-report/internal/report"
	"mood-report/internal/sentiment"
	"mood-report/internal/service"
	"mood-report/pkg/tracing"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/otel/trace"
)

var (
	loadEnvFunc       = godotenv.Load
	loadConfigFunc    = config.Load
	initRedisFunc     = cache.InitRedis
	initTracerFunc    = tracing.InitTracer
	setupSignalNotify = signal.Notify
	startJobFunc      = func(j *job.ReportJob, ctx context.Context) { j.Start(ctx) }
)

func main() {
	printConsole := flag.Bool("print", false, "print the report to stdout")
	flag.Parse()

	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	var seriesCache sentiment.SeriesCache
	if cache.Client != nil {
		seriesCache = cache.NewSeriesCache(cache.Client)
	}

	markets := buildMarkets(tracer, cfg, seriesCache)
	resolver := sentiment.NewResolver(tracer, time.Duration(cfg.FetchTimeoutSecs)*time.Second)
	assembler := report.NewAssembler(tracer, resolver, markets, cfg.AlertHighDays)

	var notifiers []notify.Notifier
	if n := notify.NewPushPlusNotifier(cfg.PushPlusToken, tracer); n != nil {
		notifiers = append(notifiers, n)
	}
	if n := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramChatID); n != nil {
		notifiers = append(notifiers, n)
	}

	var console io.Writer
	if *printConsole {
		console = os.Stdout
	}

	svc := service.NewReportService(tracer, assembler, notifiers, console)
	reportJob := job.NewReportJob(tracer, svc, time.Duration(cfg.ReportIntervalSecs)*time.Second)

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down...")
		cancel()
	}()

	startJobFunc(reportJob, ctx)
	log.Println("Reporter exiting")
}

// buildMarkets wires the three tracked markets, each with a native index
// as primary and an RSI-derived fallback.
func buildMarkets(tracer trace.Tracer, cfg *config.Config, seriesCache sentiment.SeriesCache) []sentiment.Market {
	idx := cfg.IndexThresholds()
	rsi := cfg.RSIThresholds()

	return []sentiment.Market{
		{
			Label:      "US stocks",
			ShortLabel: "US",
			Sources: []sentiment.Source{
				sentiment.WithCache(provider.NewCNNFearGreedProvider(tracer, idx), seriesCache),
				sentiment.WithCache(sentiment.NewRSISource("sp500-rsi", provider.NewYahooProvider(tracer, "^GSPC"), rsi), seriesCache),
			},
		},
		{
			Label:      "Bitcoin",
			ShortLabel: "BTC",
			Sources: []sentiment.Source{
				sentiment.WithCache(provider.NewAlternativeFNGProvider(tracer, idx), seriesCache),
				sentiment.WithCache(sentiment.NewRSISource("btc-rsi", provider.NewCoinGeckoProvider(tracer, "bitcoin"), rsi), seriesCache),
			},
		},
		{
			Label:      "China A-shares",
			ShortLabel: "CN",
			Sources: []sentiment.Source{
				sentiment.WithCache(provider.NewQiemanProvider(tracer, "000300", idx), seriesCache),
				sentiment.WithCache(sentiment.NewRSISource("csi300-rsi", provider.NewYahooProvider(tracer, "000300.SS"), rsi), seriesCache),
			},
		},
	}
}

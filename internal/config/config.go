package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"mood-report/internal/domain"
)

type Config struct {
	PushPlusToken    string
	TelegramBotToken string
	TelegramChatID   string
	RedisURL         string

	FetchTimeoutSecs   int
	ReportIntervalSecs int
	AlertHighDays      int

	IndexLow  int
	IndexHigh int
	RSILow    int
	RSIHigh   int
}

func Load() *Config {
	cfg := &Config{
		PushPlusToken:    os.Getenv("PUSHPLUS_TOKEN"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   os.Getenv("TELEGRAM_CHAT_ID"),
		RedisURL:         os.Getenv("REDIS_URL"),
	}

	if cfg.PushPlusToken == "" {
		log.Println("Warning: PUSHPLUS_TOKEN not set, PushPlus delivery disabled")
	}
	if cfg.TelegramBotToken == "" || cfg.TelegramChatID == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set, Telegram delivery disabled")
	}

	cfg.FetchTimeoutSecs = 15
	if v := strings.TrimSpace(os.Getenv("FETCH_TIMEOUT_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.FetchTimeoutSecs = n
		}
	}

	// Zero means run once and exit.
	cfg.ReportIntervalSecs = 0
	if v := strings.TrimSpace(os.Getenv("REPORT_INTERVAL_SECS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.ReportIntervalSecs = n
		}
	}

	cfg.AlertHighDays = 10
	if v := strings.TrimSpace(os.Getenv("ALERT_HIGH_DAYS")); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.AlertHighDays = n
		}
	}

	cfg.IndexLow, cfg.IndexHigh = 25, 75
	cfg.RSILow, cfg.RSIHigh = 30, 70

	return cfg
}

// IndexThresholds classifies native fear and greed indices.
func (c *Config) IndexThresholds() domain.Thresholds {
	return domain.Thresholds{Low: c.IndexLow, High: c.IndexHigh}
}

// RSIThresholds classifies RSI-derived sentiment fallbacks.
func (c *Config) RSIThresholds() domain.Thresholds {
	return domain.Thresholds{Low: c.RSILow, High: c.RSIHigh}
}

package notify

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"mood-report/internal/domain"
	"mood-report/internal/report"

	tele "gopkg.in/telebot.v3"
)

// telegramSender is the slice of the telebot API the notifier needs,
// kept narrow so tests can substitute a fake.
type telegramSender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// TelegramNotifier delivers the plain-text rendering of a report to a
// single chat.
type TelegramNotifier struct {
	bot    telegramSender
	chatID int64
}

// NewTelegramNotifier returns nil when the token or chat id is missing
// or invalid so the channel is silently skipped.
func NewTelegramNotifier(token, chatID string) *TelegramNotifier {
	if token == "" || chatID == "" {
		log.Println("TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set, skipping Telegram notifier")
		return nil
	}
	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		log.Printf("invalid TELEGRAM_CHAT_ID %q, skipping Telegram notifier", chatID)
		return nil
	}
	bot, err := tele.NewBot(tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
		// Offline keeps NewBot from calling getMe; the first Send
		// surfaces a bad token instead.
		Offline: true,
	})
	if err != nil {
		log.Printf("failed to create Telegram bot: %v", err)
		return nil
	}
	return &TelegramNotifier{bot: bot, chatID: id}
}

func (t *TelegramNotifier) Name() string { return "telegram" }

func (t *TelegramNotifier) Send(ctx context.Context, r *domain.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	msg := fmt.Sprintf("%s\n\n%s", r.Title, report.RenderText(r))
	if _, err := t.bot.Send(tele.ChatID(t.chatID), msg); err != nil {
		return fmt.Errorf("telegram send: %w", err)
	}
	return nil
}

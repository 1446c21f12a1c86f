package report

import (
	"fmt"
	"strings"

	"mood-report/internal/domain"
)

// RenderText produces a plain-text body for channels that cannot display
// the HTML document, like Telegram messages.
func RenderText(r *domain.Report) string {
	var sb strings.Builder
	sb.WriteString(r.Title)
	sb.WriteString("\n")
	for _, card := range r.Cards {
		sb.WriteString("\n")
		sb.WriteString(renderTextCard(card))
	}
	return sb.String()
}

func renderTextCard(card domain.MarketCard) string {
	if card.Stats == nil {
		return fmt.Sprintf("%s: data unavailable\n", card.MarketLabel)
	}
	lines := []string{
		fmt.Sprintf("%s (via %s): %d (%s)", card.MarketLabel, card.SourceLabel, card.Stats.CurrentValue, card.Stats.Classification),
		fmt.Sprintf("  30d: %d panic / %d greed days", card.Stats.Low30, card.Stats.High30),
		fmt.Sprintf("  60d: %d panic / %d greed days", card.Stats.Low60, card.Stats.High60),
	}
	if card.GreedAlert {
		lines = append(lines, fmt.Sprintf("  greed streak: %d of the last 30 days above %d", card.Stats.High30, card.Thresholds.High))
	}
	return strings.Join(lines, "\n") + "\n"
}

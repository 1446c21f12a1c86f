package report

import (
	"fmt"
	"strings"

	"mood-report/internal/domain"

	"github.com/charmbracelet/lipgloss"
)

var (
	consoleTitleStyle = lipgloss.NewStyle().Bold(true)
	consoleCardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	consolePanicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	consoleGreedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	consoleDimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderConsole renders the report for terminal preview runs.
func RenderConsole(r *domain.Report) string {
	if r == nil {
		return "no data: every market failed"
	}
	blocks := make([]string, 0, len(r.Cards)+1)
	blocks = append(blocks, consoleTitleStyle.Render(r.Title))
	for _, card := range r.Cards {
		blocks = append(blocks, consoleCardStyle.Render(renderConsoleCard(card)))
	}
	return strings.Join(blocks, "\n")
}

func renderConsoleCard(card domain.MarketCard) string {
	if card.Stats == nil {
		return fmt.Sprintf("%s\n%s", card.MarketLabel, consoleDimStyle.Render("data unavailable"))
	}

	value := fmt.Sprintf("%d", card.Stats.CurrentValue)
	switch card.Stats.Classification {
	case domain.ClassPanic:
		value = consolePanicStyle.Render(value)
	case domain.ClassGreed:
		value = consoleGreedStyle.Render(value)
	}

	lines := []string{
		fmt.Sprintf("%s %s  %s", card.MarketLabel, consoleDimStyle.Render("via "+card.SourceLabel), value),
		fmt.Sprintf("30d  <%d: %d   >%d: %d", card.Thresholds.Low, card.Stats.Low30, card.Thresholds.High, card.Stats.High30),
		fmt.Sprintf("60d  <%d: %d   >%d: %d", card.Thresholds.Low, card.Stats.Low60, card.Thresholds.High, card.Stats.High60),
	}
	if card.GreedAlert {
		lines = append(lines, consoleGreedStyle.Render(
			fmt.Sprintf("greed streak: %d/30 days above %d", card.Stats.High30, card.Thresholds.High)))
	}
	return strings.Join(lines, "\n")
}

package notify

import (
	"context"
	"log"

	"mood-report/internal/domain"
)

// Notifier delivers a finished report over one push channel.
type Notifier interface {
	Name() string
	Send(ctx context.Context, report *domain.Report) error
}

// SendAll pushes the report through every notifier and returns how many
// deliveries succeeded. A failing channel never blocks the others.
func SendAll(ctx context.Context, notifiers []Notifier, report *domain.Report) int {
	delivered := 0
	for _, n := range notifiers {
		if n == nil {
			continue
		}
		if err := n.Send(ctx, report); err != nil {
			log.Printf("notify: %s delivery failed: %v", n.Name(), err)
			continue
		}
		delivered++
	}
	return delivered
}

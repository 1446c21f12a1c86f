package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"mood-report/internal/domain"
	"mood-report/internal/notify"
	"mood-report/internal/report"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Assembler builds the daily report, nil when every market failed.
type Assembler interface {
	Assemble(ctx context.Context) *domain.Report
}

// ReportService runs one full report cycle: assemble, preview, deliver.
type ReportService struct {
	tracer    trace.Tracer
	assembler Assembler
	notifiers []notify.Notifier
	console   io.Writer
}

func NewReportService(tracer trace.Tracer, assembler Assembler, notifiers []notify.Notifier, console io.Writer) *ReportService {
	return &ReportService{
		tracer:    tracer,
		assembler: assembler,
		notifiers: notifiers,
		console:   console,
	}
}

// Run returns the number of channels the report was delivered to.
func (s *ReportService) Run(ctx context.Context) int {
	ctx, span := s.tracer.Start(ctx, "ReportService.Run")
	defer span.End()

	rep := s.assembler.Assemble(ctx)
	if rep == nil {
		log.Println("every market failed, nothing to deliver")
		if s.console != nil {
			fmt.Fprintln(s.console, report.RenderConsole(nil))
		}
		return 0
	}

	if s.console != nil {
		fmt.Fprintln(s.console, report.RenderConsole(rep))
	}

	delivered := notify.SendAll(ctx, s.notifiers, rep)
	span.SetAttributes(
		attribute.String("report.title", rep.Title),
		attribute.Int("report.delivered", delivered),
	)
	log.Printf("report %q delivered to %d channel(s)", rep.Title, delivered)
	return delivered
}

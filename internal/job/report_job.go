package job

import (
	"context"
	"log"
	"time"

	"go.opentelemetry.io/otel/trace"
)

type ReportRunner interface {
	Run(ctx context.Context) int
}

// ReportJob runs the report cycle once, or on an interval when one is
// configured.
type ReportJob struct {
	tracer   trace.Tracer
	runner   ReportRunner
	interval time.Duration
}

func NewReportJob(tracer trace.Tracer, runner ReportRunner, interval time.Duration) *ReportJob {
	return &ReportJob{tracer: tracer, runner: runner, interval: interval}
}

func (j *ReportJob) Start(ctx context.Context) {
	if j.runner == nil {
		log.Println("Report job disabled: no runner")
		return
	}

	j.runOnce(ctx)
	if j.interval <= 0 {
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *ReportJob) runOnce(ctx context.Context) {
	ctx, span := j.tracer.Start(ctx, "report-job.run-once")
	defer span.End()

	delivered := j.runner.Run(ctx)
	log.Printf("Report cycle complete delivered=%d", delivered)
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"insurhub/internal/core"
)

// SummaryWorker periodically logs the portfolio summary: per-kind record
// counts and the premium total. It gives operators a pulse on the data set
// without anyone having to hit the summary endpoint.
type SummaryWorker struct {
	BaseWorker
	summaries *core.SummaryService
}

func NewSummaryWorker(summaries *core.SummaryService, interval time.Duration, log *slog.Logger) *SummaryWorker {
	return &SummaryWorker{
		BaseWorker: NewBaseWorker("summary_reporter", interval, log),
		summaries:  summaries,
	}
}

func (w *SummaryWorker) Name() string { return w.name }

func (w *SummaryWorker) Start(ctx context.Context) {
	w.Poll(ctx, w.report)
}

func (w *SummaryWorker) report(ctx context.Context) error {
	summary, err := w.summaries.Summary(ctx)
	if err != nil {
		return err
	}
	w.log.Info("portfolio summary",
		"life", summary.LifeInsuranceCount,
		"property", summary.PropertyInsuranceCount,
		"vehicle", summary.VehicleInsuranceCount,
		"total_amount", summary.TotalAmount.String())
	return nil
}

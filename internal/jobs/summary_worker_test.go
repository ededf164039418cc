package jobs

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"insurhub/internal/core"
	"insurhub/internal/store/memory"
)

func TestSummaryWorkerReports(t *testing.T) {
	life := memory.NewRepo[core.LifeInsurance]()
	summaries := core.NewSummaryService(life,
		memory.NewRepo[core.PropertyInsurance](),
		memory.NewRepo[core.VehicleInsurance]())

	_, err := life.Insert(context.Background(), core.LifeInsurance{
		Type: core.TypeLife, Duration: 12,
		PaymentPerMonth: decimal.RequireFromString("10.00"),
	})
	require.NoError(t, err)

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := NewSummaryWorker(summaries, time.Hour, log)

	assert.Equal(t, "summary_reporter", w.Name())
	assert.NoError(t, w.report(context.Background()))
}

func TestSummaryWorkerStopsOnContextCancel(t *testing.T) {
	summaries := core.NewSummaryService(
		memory.NewRepo[core.LifeInsurance](),
		memory.NewRepo[core.PropertyInsurance](),
		memory.NewRepo[core.VehicleInsurance]())

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	w := NewSummaryWorker(summaries, time.Hour, log)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after context cancel")
	}
}

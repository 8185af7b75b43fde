package app

import (
	"context"
	"fmt"
	"time"

	"log/slog"

	"github.com/Growth-8020/free-scripts/config"
	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/dependency"
	"github.com/Growth-8020/free-scripts/internal/entity"
	"github.com/Growth-8020/free-scripts/internal/mail"
	"github.com/Growth-8020/free-scripts/internal/report"
	"github.com/Growth-8020/free-scripts/internal/sheets"
	"github.com/google/uuid"
)

// App wires the clients from config and runs the configured reports once.
type App struct {
	c *config.Config
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{c: c}
}

// Run executes one invocation: resolve the date range, construct the
// collaborators, validate the sink before any query runs, then run the
// reports sequentially.
func (a *App) Run(ctx context.Context) error {
	logger := slog.Default().With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	dr, err := entity.ResolveRange(
		entity.RangeSelector(a.c.Report.DateRange),
		time.Now(),
		a.c.Report.StartDate,
		a.c.Report.EndDate,
	)
	if err != nil {
		return fmt.Errorf("report.date_range: %w", err)
	}

	src, err := ads.New(ctx, &a.c.Ads)
	if err != nil {
		return fmt.Errorf("cannot create ads client: %w", err)
	}

	sink, err := sheets.New(ctx, &a.c.Sheets)
	if err != nil {
		return fmt.Errorf("cannot create sheets sink: %w", err)
	}
	if err := sink.Validate(ctx); err != nil {
		return err
	}

	var notifier dependency.NotificationSink
	if a.c.Report.Notify {
		m, err := mail.New(&a.c.Mailer)
		if err != nil {
			return fmt.Errorf("cannot create mailer: %w", err)
		}
		notifier = m
	}

	logger.InfoContext(ctx, "starting report run",
		slog.String("start", dr.StartString()),
		slog.String("end", dr.EndString()))

	svc := report.New(&a.c.Report, src, sink, notifier)
	if err := svc.RunAll(ctx, dr); err != nil {
		return err
	}

	logger.InfoContext(ctx, "report run finished")
	return nil
}

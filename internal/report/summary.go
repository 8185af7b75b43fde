package report

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/dto"
	"github.com/Growth-8020/free-scripts/internal/entity"
	"github.com/Growth-8020/free-scripts/internal/mail"
)

// Summary emails current-vs-prior-period account totals. The whole workflow
// is best-effort: the tabular export is the primary deliverable, so every
// failure here is logged and swallowed.
func (s *Service) Summary(ctx context.Context, dr entity.DateRange) error {
	if s.notifier == nil || !s.c.Notify || len(s.c.Recipients) == 0 {
		slog.Default().DebugContext(ctx, "summary notification disabled, skipping")
		return nil
	}

	cur, err := s.accountTotals(ctx, dr)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load current period totals",
			slog.String("err", err.Error()))
		return nil
	}
	prior, err := s.accountTotals(ctx, dr.Prior())
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't load prior period totals",
			slog.String("err", err.Error()))
		return nil
	}

	data := dto.BuildAccountSummary(s.c.AccountName, dr, cur, prior)
	html, text, err := mail.RenderAccountSummary(data)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't render summary email",
			slog.String("err", err.Error()))
		return nil
	}

	subject := fmt.Sprintf("%s ads performance %s - %s", s.c.AccountName, dr.StartString(), dr.EndString())
	if err := s.notifier.Send(ctx, s.c.Recipients, subject, html, text); err != nil {
		slog.Default().ErrorContext(ctx, "can't send summary email",
			slog.String("err", err.Error()))
	}
	return nil
}

// accountTotals sums account-level metrics over the range.
func (s *Service) accountTotals(ctx context.Context, dr entity.DateRange) (aggregate.Bucket, error) {
	q := ads.NewQuery("customer", metricFields...).During(dr)

	rows, err := s.src.Search(ctx, q.String())
	if err != nil {
		return aggregate.Bucket{}, err
	}

	res := aggregate.Run(toRecords(rows), func(aggregate.Record) string { return "account" })
	return res.Total, nil
}

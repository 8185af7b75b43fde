package report

import (
	"context"

	"log/slog"

	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/entity"
)

// LandingPage aggregates performance by unexpanded final URL. The whole
// report is optional: a query failure logs a warning and writes nothing
// instead of aborting the invocation.
func (s *Service) LandingPage(ctx context.Context, dr entity.DateRange) error {
	q := ads.NewQuery("landing_page_view", "landing_page_view.unexpanded_final_url").
		Select(metricFields...).
		During(dr)
	s.applyFilters(q)

	rows, err := s.src.Search(ctx, q.String())
	if err != nil {
		slog.Default().WarnContext(ctx, "landing page query failed, skipping report",
			slog.String("err", err.Error()))
		return nil
	}

	res := aggregate.Run(toRecords(rows), func(r aggregate.Record) string {
		return r.Dimensions["landingPageView.unexpandedFinalUrl"]
	})
	res.SortByCostDesc()

	return s.writeAggregated(ctx, sheetName(s.c.Sheets.LandingPage, "Landing pages"), "Landing page", res)
}

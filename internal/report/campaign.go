package report

import (
	"context"
	"fmt"

	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/entity"
)

// Campaign aggregates performance by campaign name, highest cost first.
func (s *Service) Campaign(ctx context.Context, dr entity.DateRange) error {
	q := ads.NewQuery("campaign", "campaign.name").
		Select(metricFields...).
		During(dr)
	s.applyFilters(q)

	rows, err := s.src.Search(ctx, q.String())
	if err != nil {
		return fmt.Errorf("campaign performance query failed: %w", err)
	}

	res := aggregate.Run(toRecords(rows), func(r aggregate.Record) string {
		return r.Dimensions["campaign.name"]
	})
	res.SortByCostDesc()

	return s.writeAggregated(ctx, sheetName(s.c.Sheets.Campaign, "Campaigns"), "Campaign", res)
}

// Daily aggregates performance by calendar date, highest cost first.
func (s *Service) Daily(ctx context.Context, dr entity.DateRange) error {
	q := ads.NewQuery("customer", "segments.date").
		Select(metricFields...).
		During(dr)

	rows, err := s.src.Search(ctx, q.String())
	if err != nil {
		return fmt.Errorf("daily performance query failed: %w", err)
	}

	res := aggregate.Run(toRecords(rows), func(r aggregate.Record) string {
		return r.Dimensions["segments.date"]
	})
	res.SortByCostDesc()

	return s.writeAggregated(ctx, sheetName(s.c.Sheets.Daily, "Daily"), "Date", res)
}

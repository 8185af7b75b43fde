package report

import (
	"context"
	"fmt"
	"strings"

	"log/slog"

	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/entity"
)

// Country aggregates performance by country. Criterion ids resolve to
// display names through a secondary lookup; when that lookup fails or is
// incomplete the row keeps a synthetic "Unknown (<id>)" label.
func (s *Service) Country(ctx context.Context, dr entity.DateRange) error {
	q := ads.NewQuery("geographic_view", "geographic_view.country_criterion_id").
		Select(metricFields...).
		During(dr)
	s.applyFilters(q)

	rows, err := s.src.Search(ctx, q.String())
	if err != nil {
		return fmt.Errorf("country performance query failed: %w", err)
	}

	names := s.countryNames(ctx, rows)

	res := aggregate.Run(toRecords(rows), func(r aggregate.Record) string {
		id := r.Dimensions["geographicView.countryCriterionId"]
		if name := names[id]; name != "" {
			return name
		}
		return fmt.Sprintf("Unknown (%s)", id)
	})
	res.SortByCostDesc()

	return s.writeAggregated(ctx, sheetName(s.c.Sheets.Country, "Country"), "Country", res)
}

// countryNames resolves criterion ids to geo target display names. The
// lookup is best-effort: on failure the caller falls back to id labels.
func (s *Service) countryNames(ctx context.Context, rows []entity.RawRecord) map[string]string {
	seen := make(map[string]bool)
	var ids []string
	for _, r := range rows {
		id := r.Str("geographicView.countryCriterionId")
		if id == "" || seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil
	}

	q := ads.NewQuery("geo_target_constant", "geo_target_constant.id", "geo_target_constant.name").
		Where(fmt.Sprintf("geo_target_constant.id IN (%s)", strings.Join(ids, ", ")))

	lookup, err := s.src.Search(ctx, q.String())
	if err != nil {
		slog.Default().WarnContext(ctx, "country name lookup failed, falling back to criterion ids",
			slog.String("err", err.Error()))
		return nil
	}

	names := make(map[string]string, len(lookup))
	for _, r := range lookup {
		names[r.Str("geoTargetConstant.id")] = r.Str("geoTargetConstant.name")
	}
	return names
}

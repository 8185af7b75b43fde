package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/entity"
	"github.com/Growth-8020/free-scripts/internal/sheets"
)

// adGroupKeySep joins the composite date/campaign/ad-group key. NUL cannot
// appear in any of the parts.
const adGroupKeySep = "\x00"

// AdGroup writes day-level ad group performance. The source orders rows
// reverse-chronologically and that native order is preserved: buckets keep
// first-appearance order and no re-sort happens.
func (s *Service) AdGroup(ctx context.Context, dr entity.DateRange) error {
	q := ads.NewQuery("ad_group", "segments.date", "campaign.name", "ad_group.name").
		Select(metricFields...).
		During(dr).
		OrderBy("segments.date DESC")
	s.applyFilters(q)

	rows, err := s.src.Search(ctx, q.String())
	if err != nil {
		return fmt.Errorf("ad group performance query failed: %w", err)
	}

	res := aggregate.Run(toRecords(rows), func(r aggregate.Record) string {
		return strings.Join([]string{
			r.Dimensions["segments.date"],
			r.Dimensions["campaign.name"],
			r.Dimensions["adGroup.name"],
		}, adGroupKeySep)
	})

	headers := []string{"Date", "Campaign", "Ad group", "Clicks", "Impressions", "CTR", "Cost", "Avg. CPC", "Conversions", "Conv. value", "ROAS"}
	out := make([][]interface{}, 0, len(res.Buckets))
	for _, b := range res.Buckets {
		parts := strings.SplitN(b.Key, adGroupKeySep, 3)
		d := b.Derived()
		out = append(out, []interface{}{
			parts[0], parts[1], parts[2],
			b.Clicks,
			b.Impressions,
			d.CTR.InexactFloat64(),
			b.Cost().InexactFloat64(),
			d.AvgCPC.InexactFloat64(),
			b.Conversions,
			b.ConversionsValue,
			d.ROAS.InexactFloat64(),
		})
	}

	var summary []interface{}
	if len(out) > 0 {
		first, last := 2, len(out)+1
		summary = []interface{}{
			"Total", "", "",
			sheets.SumFormula("D", first, last),
			sheets.SumFormula("E", first, last),
			sheets.GuardedRatioFormula("D", "E", first, last),
			sheets.SumFormula("G", first, last),
			sheets.GuardedRatioFormula("G", "D", first, last),
			sheets.SumFormula("I", first, last),
			sheets.SumFormula("J", first, last),
			sheets.GuardedRatioFormula("J", "G", first, last),
		}
	}

	return s.sink.WriteReport(ctx, sheetName(s.c.Sheets.AdGroup, "Ad groups"), headers, out, summary)
}

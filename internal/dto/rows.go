package dto

import (
	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/sheets"
)

// PerformanceHeaders is the standard column set shared by the dimension
// reports. The first column label is the dimension name.
func PerformanceHeaders(dimension string) []string {
	return []string{dimension, "Clicks", "Impressions", "CTR", "Cost", "Avg. CPC", "Conversions", "Conv. value", "ROAS"}
}

// BucketToRow converts one finalized bucket to a sheet row matching
// PerformanceHeaders. Ratio cells carry the recomputed derived metrics.
func BucketToRow(b *aggregate.Bucket) []interface{} {
	d := b.Derived()
	return []interface{}{
		b.Key,
		b.Clicks,
		b.Impressions,
		d.CTR.InexactFloat64(),
		b.Cost().InexactFloat64(),
		d.AvgCPC.InexactFloat64(),
		b.Conversions,
		b.ConversionsValue,
		d.ROAS.InexactFloat64(),
	}
}

// PerformanceSummaryRow builds the trailing total row for a report with
// numRows data rows. Numeric cells are formulas over the written range, with
// the zero-denominator guard applied to every ratio column.
func PerformanceSummaryRow(numRows int) []interface{} {
	first, last := 2, numRows+1
	return []interface{}{
		"Total",
		sheets.SumFormula("B", first, last),
		sheets.SumFormula("C", first, last),
		sheets.GuardedRatioFormula("B", "C", first, last),
		sheets.SumFormula("E", first, last),
		sheets.GuardedRatioFormula("E", "B", first, last),
		sheets.SumFormula("G", first, last),
		sheets.SumFormula("H", first, last),
		sheets.GuardedRatioFormula("H", "E", first, last),
	}
}

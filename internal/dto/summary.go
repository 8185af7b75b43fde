package dto

import (
	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatCount renders an integer count with thousands separators.
func FormatCount(n int64) string {
	return printer.Sprintf("%d", n)
}

// BuildAccountSummary compares current-period totals against prior-period
// totals and produces the email view model.
func BuildAccountSummary(accountName string, period entity.DateRange, cur, prior aggregate.Bucket) entity.AccountSummary {
	curD, priorD := cur.Derived(), prior.Derived()
	priorRange := period.Prior()

	return entity.AccountSummary{
		AccountName: accountName,
		PeriodStart: period.StartString(),
		PeriodEnd:   period.EndString(),
		PriorStart:  priorRange.StartString(),
		PriorEnd:    priorRange.EndString(),
		Metrics: []entity.MetricDelta{
			countDelta("Clicks", cur.Clicks, prior.Clicks),
			countDelta("Impressions", cur.Impressions, prior.Impressions),
			valueDelta("Cost", cur.Cost(), prior.Cost(), 2),
			valueDelta("Conversions", decimal.NewFromFloat(cur.Conversions), decimal.NewFromFloat(prior.Conversions), 2),
			valueDelta("Conv. value", decimal.NewFromFloat(cur.ConversionsValue), decimal.NewFromFloat(prior.ConversionsValue), 2),
			valueDelta("CTR", curD.CTR.Mul(decimal.NewFromInt(100)), priorD.CTR.Mul(decimal.NewFromInt(100)), 2),
			valueDelta("Avg. CPC", curD.AvgCPC, priorD.AvgCPC, 2),
			valueDelta("ROAS", curD.ROAS, priorD.ROAS, 2),
		},
	}
}

func countDelta(label string, cur, prior int64) entity.MetricDelta {
	md := valueDelta(label, decimal.NewFromInt(cur), decimal.NewFromInt(prior), 0)
	md.Current = FormatCount(cur)
	md.Prior = FormatCount(prior)
	return md
}

func valueDelta(label string, cur, prior decimal.Decimal, places int32) entity.MetricDelta {
	md := entity.MetricDelta{
		Label:   label,
		Current: cur.StringFixed(places),
		Prior:   prior.StringFixed(places),
	}
	switch {
	case prior.IsZero() && cur.IsPositive():
		md.New = true
	case cur.GreaterThan(prior):
		md.Direction = "up"
	case cur.LessThan(prior):
		md.Direction = "down"
	}
	if !prior.IsZero() && md.Direction != "" {
		change := cur.Sub(prior).Div(prior).Mul(decimal.NewFromInt(100)).Abs()
		md.ChangePct = change.StringFixed(1) + "%"
	}
	return md
}

// Package report contains the report workflows: each one queries the
// reporting API, aggregates rows by a dimension, writes the result to the
// tabular sink and, for the account summary, notifies by email.
package report

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/Growth-8020/free-scripts/internal/aggregate"
	"github.com/Growth-8020/free-scripts/internal/ads"
	"github.com/Growth-8020/free-scripts/internal/dependency"
	"github.com/Growth-8020/free-scripts/internal/dto"
	"github.com/Growth-8020/free-scripts/internal/entity"
)

// SheetNames maps each report to its target sheet. Empty entries fall back
// to the defaults below.
type SheetNames struct {
	Country       string `mapstructure:"country"`
	Campaign      string `mapstructure:"campaign"`
	AdGroup       string `mapstructure:"ad_group"`
	Daily         string `mapstructure:"daily"`
	LandingPage   string `mapstructure:"landing_page"`
	SearchQueries string `mapstructure:"search_queries"`
}

// Config is the per-invocation report configuration. It is passed in
// explicitly; workflows hold no process-wide state.
type Config struct {
	AccountName    string     `mapstructure:"account_name"`
	DateRange      string     `mapstructure:"date_range"`
	StartDate      string     `mapstructure:"start_date"`
	EndDate        string     `mapstructure:"end_date"`
	HistoryDays    int        `mapstructure:"history_days"`
	EnabledOnly    bool       `mapstructure:"enabled_campaigns_only"`
	MinImpressions int64      `mapstructure:"min_impressions"`
	Notify         bool       `mapstructure:"notify"`
	Recipients     []string   `mapstructure:"recipients"`
	Reports        []string   `mapstructure:"reports"`
	Sheets         SheetNames `mapstructure:"sheets"`
}

const defaultHistoryDays = 180

var defaultReports = []string{"country", "campaign", "ad_group", "daily", "landing_page", "search_queries", "summary"}

// Service runs report workflows against the injected collaborators.
type Service struct {
	src      dependency.ReportSource
	sink     dependency.TabularSink
	notifier dependency.NotificationSink
	c        *Config
}

// New builds the service. notifier may be nil when notifications are off.
func New(c *Config, src dependency.ReportSource, sink dependency.TabularSink, notifier dependency.NotificationSink) *Service {
	return &Service{src: src, sink: sink, notifier: notifier, c: c}
}

// RunAll executes the configured reports sequentially. The first fatal
// error aborts the remainder; sections already written stay written.
func (s *Service) RunAll(ctx context.Context, dr entity.DateRange) error {
	reports := s.c.Reports
	if len(reports) == 0 {
		reports = defaultReports
	}
	for _, name := range reports {
		slog.Default().InfoContext(ctx, "running report",
			slog.String("report", name),
			slog.String("start", dr.StartString()),
			slog.String("end", dr.EndString()))

		var err error
		switch name {
		case "country":
			err = s.Country(ctx, dr)
		case "campaign":
			err = s.Campaign(ctx, dr)
		case "ad_group":
			err = s.AdGroup(ctx, dr)
		case "daily":
			err = s.Daily(ctx, dr)
		case "landing_page":
			err = s.LandingPage(ctx, dr)
		case "search_queries":
			err = s.SearchQueries(ctx, dr)
		case "summary":
			err = s.Summary(ctx, dr)
		default:
			return fmt.Errorf("unknown report %q", name)
		}
		if err != nil {
			return fmt.Errorf("report %s failed: %w", name, err)
		}
	}
	return nil
}

var metricFields = []string{
	"metrics.clicks",
	"metrics.impressions",
	"metrics.cost_micros",
	"metrics.conversions",
	"metrics.conversions_value",
	"metrics.all_conversions",
}

// toRecord lifts a raw API row into an engine record. The raw field map
// rides along as the dimension source; counters parse leniently to zero.
func toRecord(r entity.RawRecord) aggregate.Record {
	return aggregate.Record{
		Dimensions:       r,
		Clicks:           r.Int64("metrics.clicks"),
		Impressions:      r.Int64("metrics.impressions"),
		CostMicros:       r.Int64("metrics.costMicros"),
		Conversions:      r.Float("metrics.conversions"),
		ConversionsValue: r.Float("metrics.conversionsValue"),
		AllConversions:   r.Float("metrics.allConversions"),
	}
}

func toRecords(rows []entity.RawRecord) []aggregate.Record {
	records := make([]aggregate.Record, len(rows))
	for i, r := range rows {
		records[i] = toRecord(r)
	}
	return records
}

// applyFilters adds the shared status and volume predicates to a query.
func (s *Service) applyFilters(q *ads.Query) *ads.Query {
	if s.c.EnabledOnly {
		q.Where("campaign.status = 'ENABLED'")
	}
	if s.c.MinImpressions > 0 {
		q.Where(fmt.Sprintf("metrics.impressions >= %d", s.c.MinImpressions))
	}
	return q
}

// writeAggregated writes a standard dimension report: per-bucket rows plus
// the formula summary row. With no buckets only the header goes out.
func (s *Service) writeAggregated(ctx context.Context, sheet, dimension string, res *aggregate.Result) error {
	rows := make([][]interface{}, 0, len(res.Buckets))
	for _, b := range res.Buckets {
		rows = append(rows, dto.BucketToRow(b))
	}
	var summary []interface{}
	if len(rows) > 0 {
		summary = dto.PerformanceSummaryRow(len(rows))
	}
	return s.sink.WriteReport(ctx, sheet, dto.PerformanceHeaders(dimension), rows, summary)
}

func sheetName(configured, fallback string) string {
	if configured != "" {
		return configured
	}
	return fallback
}

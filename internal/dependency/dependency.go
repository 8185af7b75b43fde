package dependency

import (
	"context"

	"github.com/Growth-8020/free-scripts/internal/entity"
)

type (
	// ReportSource issues a declarative report query and returns the full
	// finite result set. Numeric fields arrive as strings; cost is always
	// in micro-units.
	ReportSource interface {
		Search(ctx context.Context, query string) ([]entity.RawRecord, error)
	}

	// TabularSink receives one logical report: an ordered header row, data
	// rows matching the header arity, and an optional trailing summary row
	// whose cells may be formulas over the written data range.
	TabularSink interface {
		WriteReport(ctx context.Context, sheet string, headers []string, rows [][]interface{}, summary []interface{}) error
	}

	// NotificationSink delivers the email summary in both HTML and plain
	// text form. Delivery is best-effort from the caller's point of view.
	NotificationSink interface {
		Send(ctx context.Context, recipients []string, subject, html, text string) error
	}
)

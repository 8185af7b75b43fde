package ads

import (
	"fmt"
	"strings"

	"github.com/Growth-8020/free-scripts/internal/entity"
)

// Query builds a GAQL statement for the search endpoint.
type Query struct {
	fields     []string
	from       string
	conditions []string
	orderBy    string
	limit      int
}

// NewQuery starts a query against the given resource or view.
func NewQuery(from string, fields ...string) *Query {
	return &Query{from: from, fields: fields}
}

// Select appends fields to the select list.
func (q *Query) Select(fields ...string) *Query {
	q.fields = append(q.fields, fields...)
	return q
}

// Where appends a raw predicate. Predicates are joined with AND.
func (q *Query) Where(cond string) *Query {
	q.conditions = append(q.conditions, cond)
	return q
}

// During restricts the query to the inclusive date range.
func (q *Query) During(dr entity.DateRange) *Query {
	return q.Where(fmt.Sprintf("segments.date BETWEEN '%s' AND '%s'", dr.StartString(), dr.EndString()))
}

// OrderBy sets the ordering expression, e.g. "metrics.cost_micros DESC".
func (q *Query) OrderBy(expr string) *Query {
	q.orderBy = expr
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	q.limit = n
	return q
}

func (q *Query) String() string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(strings.Join(q.fields, ", "))
	sb.WriteString(" FROM ")
	sb.WriteString(q.from)
	if len(q.conditions) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(q.conditions, " AND "))
	}
	if q.orderBy != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.orderBy)
	}
	if q.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", q.limit)
	}
	return sb.String()
}

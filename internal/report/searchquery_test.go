package report

import (
	"context"
	"testing"

	"github.com/Growth-8020/free-scripts/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func termRow(term, campaign, adGroup, clicks string) entity.RawRecord {
	return entity.RawRecord{
		"searchTermView.searchTerm": term,
		"campaign.name":             campaign,
		"adGroup.name":              adGroup,
		"metrics.clicks":            clicks,
		"metrics.impressions":       "100",
		"metrics.costMicros":        "1000000",
	}
}

// recent query selects ad_group.name, the history query does not.
func queryRules(recent, history []entity.RawRecord) []sourceRule {
	return []sourceRule{
		{match: "ad_group.name", rows: recent},
		{match: "FROM search_term_view", rows: history},
	}
}

func TestSearchQueriesSetDifferenceIsCaseInsensitive(t *testing.T) {
	recent := []entity.RawRecord{
		termRow("Blue Shoes", "A", "ag1", "5"),
		termRow("red boots", "A", "ag1", "3"),
	}
	history := []entity.RawRecord{
		{"searchTermView.searchTerm": "BLUE SHOES "},
	}

	src := &fakeSource{rules: queryRules(recent, history)}
	sink := &fakeSink{}
	svc := New(&Config{}, src, sink, nil)

	require.NoError(t, svc.SearchQueries(context.Background(), testRange()))
	require.Len(t, sink.writes, 1)

	rows := sink.writes[0].rows
	require.Len(t, rows, 1)
	assert.Equal(t, "red boots", rows[0][2])
	assert.Equal(t, 1.0, rows[0][5]) // 1,000,000 micros
}

func TestSearchQueriesCampaignGrouping(t *testing.T) {
	recent := []entity.RawRecord{
		termRow("term one", "A", "ag1", "5"),
		termRow("term two", "A", "ag1", "3"),
		termRow("term three", "B", "ag2", "10"),
	}

	src := &fakeSource{rules: queryRules(recent, nil)}
	sink := &fakeSink{}
	svc := New(&Config{}, src, sink, nil)

	require.NoError(t, svc.SearchQueries(context.Background(), testRange()))
	require.Len(t, sink.writes, 1)

	rows := sink.writes[0].rows
	require.Len(t, rows, 3)
	// campaign totals: B=10, A=8 -> B first; within A clicks descending
	assert.Equal(t, "B", rows[0][0])
	assert.Equal(t, int64(10), rows[0][3])
	assert.Equal(t, "A", rows[1][0])
	assert.Equal(t, int64(5), rows[1][3])
	assert.Equal(t, "A", rows[2][0])
	assert.Equal(t, int64(3), rows[2][3])
}

func TestSearchQueriesCampaignTieBrokenByName(t *testing.T) {
	recent := []entity.RawRecord{
		termRow("t1", "Zeta", "ag", "4"),
		termRow("t2", "Alpha", "ag", "4"),
	}

	src := &fakeSource{rules: queryRules(recent, nil)}
	sink := &fakeSink{}
	svc := New(&Config{}, src, sink, nil)

	require.NoError(t, svc.SearchQueries(context.Background(), testRange()))
	rows := sink.writes[0].rows
	require.Len(t, rows, 2)
	assert.Equal(t, "Alpha", rows[0][0])
	assert.Equal(t, "Zeta", rows[1][0])
}

func TestSearchQueriesEmptyRecentWindowWritesNothing(t *testing.T) {
	src := &fakeSource{}
	sink := &fakeSink{}
	svc := New(&Config{}, src, sink, nil)

	require.NoError(t, svc.SearchQueries(context.Background(), testRange()))
	assert.Empty(t, sink.writes)
	// history query never issued when the recent window is empty
	require.Len(t, src.queries, 1)
}

func TestSearchQueriesNoNewTermsWritesNothing(t *testing.T) {
	recent := []entity.RawRecord{termRow("known term", "A", "ag1", "5")}
	history := []entity.RawRecord{{"searchTermView.searchTerm": "Known Term"}}

	src := &fakeSource{rules: queryRules(recent, history)}
	sink := &fakeSink{}
	svc := New(&Config{}, src, sink, nil)

	require.NoError(t, svc.SearchQueries(context.Background(), testRange()))
	assert.Empty(t, sink.writes)
}

func TestSearchQueriesHistoryWindowInQuery(t *testing.T) {
	recent := []entity.RawRecord{termRow("fresh", "A", "ag1", "1")}

	src := &fakeSource{rules: queryRules(recent, nil)}
	sink := &fakeSink{}
	svc := New(&Config{HistoryDays: 30}, src, sink, nil)

	require.NoError(t, svc.SearchQueries(context.Background(), testRange()))
	require.Len(t, src.queries, 2)
	// recent window is 2026-08-22; 30-day history ends the day before
	assert.Contains(t, src.queries[1], "segments.date BETWEEN '2026-07-23' AND '2026-08-21'")
}

package report

import (
	"context"
	"testing"

	"github.com/Growth-8020/free-scripts/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adGroupRow(date, campaign, adGroup, clicks, impressions, costMicros string) entity.RawRecord {
	return entity.RawRecord{
		"segments.date":       date,
		"campaign.name":       campaign,
		"adGroup.name":        adGroup,
		"metrics.clicks":      clicks,
		"metrics.impressions": impressions,
		"metrics.costMicros":  costMicros,
	}
}

func TestAdGroupReportKeepsSourceOrder(t *testing.T) {
	// reverse-chronological source order with the cheapest row first: a
	// cost re-sort would move it last
	src := &fakeSource{rules: []sourceRule{
		{match: "FROM ad_group", rows: []entity.RawRecord{
			adGroupRow("2026-08-22", "Brand", "ag1", "1", "10", "1000000"),
			adGroupRow("2026-08-22", "Brand", "ag2", "2", "20", "90000000"),
			adGroupRow("2026-08-21", "Brand", "ag1", "3", "30", "50000000"),
		}},
	}}
	sink := &fakeSink{}
	svc := New(&Config{}, src, sink, nil)

	require.NoError(t, svc.AdGroup(context.Background(), testRange()))
	require.Len(t, src.queries, 1)
	assert.Contains(t, src.queries[0], "ORDER BY segments.date DESC")
	require.Len(t, sink.writes, 1)

	w := sink.writes[0]
	assert.Equal(t, "Ad groups", w.sheet)
	require.Len(t, w.rows, 3)
	assert.Equal(t, "2026-08-22", w.rows[0][0])
	assert.Equal(t, "ag1", w.rows[0][2])
	assert.Equal(t, "ag2", w.rows[1][2])
	assert.Equal(t, "2026-08-21", w.rows[2][0])
	assert.Equal(t, 1.0, w.rows[0][6])
}

func TestAdGroupReportMergesSameDayRows(t *testing.T) {
	src := &fakeSource{rules: []sourceRule{
		{match: "FROM ad_group", rows: []entity.RawRecord{
			adGroupRow("2026-08-22", "Brand", "ag1", "1", "10", "1000000"),
			adGroupRow("2026-08-22", "Brand", "ag1", "4", "40", "3000000"),
		}},
	}}
	sink := &fakeSink{}
	svc := New(&Config{}, src, sink, nil)

	require.NoError(t, svc.AdGroup(context.Background(), testRange()))
	require.Len(t, sink.writes, 1)

	w := sink.writes[0]
	require.Len(t, w.rows, 1)
	assert.Equal(t, int64(5), w.rows[0][3])
	assert.Equal(t, int64(50), w.rows[0][4])
	assert.Equal(t, 4.0, w.rows[0][6])
}

func TestAdGroupReportSummaryFormulas(t *testing.T) {
	src := &fakeSource{rules: []sourceRule{
		{match: "FROM ad_group", rows: []entity.RawRecord{
			adGroupRow("2026-08-22", "Brand", "ag1", "1", "10", "1000000"),
			adGroupRow("2026-08-21", "Brand", "ag1", "3", "30", "50000000"),
		}},
	}}
	sink := &fakeSink{}
	svc := New(&Config{}, src, sink, nil)

	require.NoError(t, svc.AdGroup(context.Background(), testRange()))
	require.Len(t, sink.writes, 1)

	w := sink.writes[0]
	require.Len(t, w.summary, len(w.headers))
	assert.Equal(t, "Total", w.summary[0])
	assert.Equal(t, "=SUM(D2:D3)", w.summary[3])
	assert.Equal(t, "=IF(SUM(E2:E3)=0,0,SUM(D2:D3)/SUM(E2:E3))", w.summary[5])
	assert.Equal(t, "=SUM(G2:G3)", w.summary[6])
	assert.Equal(t, "=IF(SUM(D2:D3)=0,0,SUM(G2:G3)/SUM(D2:D3))", w.summary[7])
	assert.Equal(t, "=IF(SUM(G2:G3)=0,0,SUM(J2:J3)/SUM(G2:G3))", w.summary[10])
}

package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 8, 22, 15, 30, 0, 0, time.UTC)

func TestResolveRange(t *testing.T) {
	tests := []struct {
		sel        RangeSelector
		start, end string
	}{
		{RangeToday, "2026-08-22", "2026-08-22"},
		{RangeYesterday, "2026-08-21", "2026-08-21"},
		{RangeLast7Days, "2026-08-15", "2026-08-21"},
		{RangeLast30Days, "2026-07-23", "2026-08-21"},
		{RangeThisMonth, "2026-08-01", "2026-08-22"},
		{RangeLastMonth, "2026-07-01", "2026-07-31"},
	}
	for _, tt := range tests {
		t.Run(string(tt.sel), func(t *testing.T) {
			dr, err := ResolveRange(tt.sel, now, "", "")
			require.NoError(t, err)
			assert.Equal(t, tt.start, dr.StartString())
			assert.Equal(t, tt.end, dr.EndString())
		})
	}
}

func TestResolveRangeCustom(t *testing.T) {
	dr, err := ResolveRange(RangeCustom, now, "2026-06-01", "2026-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2026-06-01", dr.StartString())
	assert.Equal(t, "2026-06-15", dr.EndString())

	_, err = ResolveRange(RangeCustom, now, "2026-06-15", "2026-06-01")
	assert.Error(t, err)

	_, err = ResolveRange(RangeCustom, now, "bad", "2026-06-01")
	assert.Error(t, err)
}

func TestResolveRangeUnknownSelector(t *testing.T) {
	_, err := ResolveRange("fortnight", now, "", "")
	assert.ErrorContains(t, err, "unknown date range selector")
}

func TestPriorPeriod(t *testing.T) {
	dr, err := ResolveRange(RangeLast7Days, now, "", "")
	require.NoError(t, err)

	prior := dr.Prior()
	assert.Equal(t, "2026-08-08", prior.StartString())
	assert.Equal(t, "2026-08-14", prior.EndString())
	assert.Equal(t, dr.Days(), prior.Days())
}

func TestDaysAcrossDSTTransition(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// March 2026 contains the spring-forward transition
	at := time.Date(2026, 4, 1, 9, 0, 0, 0, loc)
	dr, err := ResolveRange(RangeLastMonth, at, "", "")
	require.NoError(t, err)

	assert.Equal(t, "2026-03-01", dr.StartString())
	assert.Equal(t, "2026-03-31", dr.EndString())
	assert.Equal(t, 31, dr.Days())

	prior := dr.Prior()
	assert.Equal(t, "2026-01-29", prior.StartString())
	assert.Equal(t, "2026-02-28", prior.EndString())
	assert.Equal(t, 31, prior.Days())

	hist := dr.Back(60)
	assert.Equal(t, "2025-12-31", hist.StartString())
	assert.Equal(t, "2026-02-28", hist.EndString())
	assert.Equal(t, 60, hist.Days())
}

func TestBackWindow(t *testing.T) {
	dr, err := ResolveRange(RangeYesterday, now, "", "")
	require.NoError(t, err)

	hist := dr.Back(180)
	assert.Equal(t, "2026-08-20", hist.EndString())
	assert.Equal(t, 180, hist.Days())
	assert.Equal(t, "2026-02-22", hist.StartString())
}

func TestRawRecordLenientParsing(t *testing.T) {
	r := RawRecord{
		"metrics.clicks":     " 42 ",
		"metrics.costMicros": "2500000",
		"metrics.bad":        "n/a",
	}
	assert.Equal(t, int64(42), r.Int64("metrics.clicks"))
	assert.Equal(t, int64(2500000), r.Int64("metrics.costMicros"))
	assert.Equal(t, int64(0), r.Int64("metrics.bad"))
	assert.Equal(t, int64(0), r.Int64("metrics.missing"))
	assert.Equal(t, float64(0), r.Float("metrics.bad"))
}

package report

import (
	"context"
	"testing"

	"github.com/Growth-8020/free-scripts/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func totalsRow(clicks, costMicros string) entity.RawRecord {
	return entity.RawRecord{
		"metrics.clicks":      clicks,
		"metrics.impressions": "1000",
		"metrics.costMicros":  costMicros,
	}
}

func TestSummarySendsComparisonEmail(t *testing.T) {
	src := &fakeSource{rules: []sourceRule{
		{match: "BETWEEN '2026-08-22' AND '2026-08-22'", rows: []entity.RawRecord{totalsRow("1250", "80000000")}},
		{match: "BETWEEN '2026-08-21' AND '2026-08-21'", rows: []entity.RawRecord{totalsRow("1000", "95000000")}},
	}}
	notifier := &fakeNotifier{}
	svc := New(&Config{
		AccountName: "Acme",
		Notify:      true,
		Recipients:  []string{"team@example.com"},
	}, src, &fakeSink{}, notifier)

	require.NoError(t, svc.Summary(context.Background(), testRange()))
	require.Len(t, notifier.sent, 1)

	m := notifier.sent[0]
	assert.Equal(t, []string{"team@example.com"}, m.recipients)
	assert.Equal(t, "Acme ads performance 2026-08-22 - 2026-08-22", m.subject)
	assert.Contains(t, m.html, "1,250")
	assert.Contains(t, m.text, "Clicks: 1,250 (was 1,000, up 25.0%)")
}

func TestSummarySkippedWhenNotifyDisabled(t *testing.T) {
	src := &fakeSource{}
	notifier := &fakeNotifier{}
	svc := New(&Config{Notify: false, Recipients: []string{"team@example.com"}}, src, &fakeSink{}, notifier)

	require.NoError(t, svc.Summary(context.Background(), testRange()))
	assert.Empty(t, notifier.sent)
	assert.Empty(t, src.queries)
}

func TestSummaryQueryFailureIsNotFatal(t *testing.T) {
	src := &fakeSource{rules: []sourceRule{
		{match: "FROM customer", err: assert.AnError},
	}}
	notifier := &fakeNotifier{}
	svc := New(&Config{Notify: true, Recipients: []string{"team@example.com"}}, src, &fakeSink{}, notifier)

	assert.NoError(t, svc.Summary(context.Background(), testRange()))
	assert.Empty(t, notifier.sent)
}

func TestSummarySendFailureIsNotFatal(t *testing.T) {
	src := &fakeSource{rules: []sourceRule{
		{match: "FROM customer", rows: []entity.RawRecord{totalsRow("10", "1000000")}},
	}}
	notifier := &fakeNotifier{err: assert.AnError}
	svc := New(&Config{AccountName: "Acme", Notify: true, Recipients: []string{"team@example.com"}}, src, &fakeSink{}, notifier)

	assert.NoError(t, svc.Summary(context.Background(), testRange()))
}

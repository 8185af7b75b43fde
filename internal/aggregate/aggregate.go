// Package aggregate implements the metrics aggregation engine shared by all
// report workflows: single-pass grouping of raw performance records by a
// caller-supplied key, a grand total accumulated in parallel, and derived
// ratio metrics recomputed from the summed raw counters.
package aggregate

import (
	"sort"

	"github.com/shopspring/decimal"
)

// microsPerUnit is the wire scale for monetary fields: 1,000,000 micros
// equal one currency unit.
const microsPerUnit = 6

// MicrosToUnits converts a raw micro-amount to currency units.
func MicrosToUnits(micros int64) decimal.Decimal {
	return decimal.New(micros, -microsPerUnit)
}

// Record is one raw performance row. Dimensions carries the grouping-key
// source values; the counters are already parsed (malformed fields read
// as zero upstream).
type Record struct {
	Dimensions       map[string]string
	Clicks           int64
	Impressions      int64
	CostMicros       int64
	Conversions      float64
	ConversionsValue float64
	AllConversions   float64
}

// KeyFunc extracts the grouping key for a record.
type KeyFunc func(Record) string

// Bucket holds running sums for one grouping key. Counters only grow;
// once Run returns, buckets are not mutated again.
type Bucket struct {
	Key              string
	Clicks           int64
	Impressions      int64
	CostMicros       int64
	Conversions      float64
	ConversionsValue float64
	AllConversions   float64
}

func (b *Bucket) add(r Record) {
	b.Clicks += r.Clicks
	b.Impressions += r.Impressions
	b.CostMicros += r.CostMicros
	b.Conversions += r.Conversions
	b.ConversionsValue += r.ConversionsValue
	b.AllConversions += r.AllConversions
}

// Cost converts the summed micros to currency units.
func (b *Bucket) Cost() decimal.Decimal {
	return MicrosToUnits(b.CostMicros)
}

// Derived holds the ratio metrics computed from a bucket's summed counters.
// Every division is guarded: a zero denominator yields zero, never an error.
type Derived struct {
	CTR               decimal.Decimal
	AvgCPC            decimal.Decimal
	ROAS              decimal.Decimal
	ConversionRate    decimal.Decimal
	CostPerConversion decimal.Decimal
}

// Derived computes the ratio metrics for the bucket. The same computation
// applies to per-key buckets and to the grand total, so the total row's
// ratios come from summed counters rather than averaged per-row ratios.
func (b *Bucket) Derived() Derived {
	var d Derived
	cost := b.Cost()
	if b.Impressions > 0 {
		d.CTR = decimal.NewFromInt(b.Clicks).Div(decimal.NewFromInt(b.Impressions))
	}
	if b.Clicks > 0 {
		d.AvgCPC = cost.Div(decimal.NewFromInt(b.Clicks))
		d.ConversionRate = decimal.NewFromFloat(b.Conversions).Div(decimal.NewFromInt(b.Clicks))
	}
	if cost.IsPositive() {
		d.ROAS = decimal.NewFromFloat(b.ConversionsValue).Div(cost)
	}
	if b.Conversions > 0 {
		d.CostPerConversion = cost.Div(decimal.NewFromFloat(b.Conversions))
	}
	return d
}

// Result is the outcome of one aggregation run: per-key buckets in
// first-appearance order plus the grand total over all records.
type Result struct {
	Buckets []*Bucket
	Total   Bucket

	index map[string]*Bucket
}

// Run groups records by key in a single pass. The grand total accumulates
// every record regardless of key, so the sum of per-key counters always
// equals the total counters.
func Run(records []Record, key KeyFunc) *Result {
	res := &Result{index: make(map[string]*Bucket)}
	for _, r := range records {
		k := key(r)
		b, ok := res.index[k]
		if !ok {
			b = &Bucket{Key: k}
			res.index[k] = b
			res.Buckets = append(res.Buckets, b)
		}
		b.add(r)
		res.Total.add(r)
	}
	return res
}

// Bucket returns the bucket for key, if any.
func (res *Result) Bucket(key string) (*Bucket, bool) {
	b, ok := res.index[key]
	return b, ok
}

// SortByCostDesc orders buckets by descending cost. The sort is stable, so
// ties keep their first-appearance order.
func (res *Result) SortByCostDesc() {
	sort.SliceStable(res.Buckets, func(i, j int) bool {
		return res.Buckets[i].CostMicros > res.Buckets[j].CostMicros
	})
}

package entity

import (
	"strconv"
	"strings"
)

// RawRecord is a single reporting-API row, flattened to field path -> raw
// value ("campaign.name", "metrics.costMicros", ...). Numeric fields arrive
// as strings on the wire and are parsed leniently: a malformed or missing
// value reads as zero, never as an error.
type RawRecord map[string]string

func (r RawRecord) Str(field string) string {
	return r[field]
}

func (r RawRecord) Int64(field string) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(r[field]), 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func (r RawRecord) Float(field string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(r[field]), 64)
	if err != nil {
		return 0
	}
	return v
}

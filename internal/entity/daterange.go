package entity

import (
	"fmt"
	"time"
)

// RangeSelector is the fixed enumeration of supported reporting periods.
type RangeSelector string

const (
	RangeToday      RangeSelector = "today"
	RangeYesterday  RangeSelector = "yesterday"
	RangeLast7Days  RangeSelector = "last_7_days"
	RangeLast30Days RangeSelector = "last_30_days"
	RangeThisMonth  RangeSelector = "this_month"
	RangeLastMonth  RangeSelector = "last_month"
	RangeCustom     RangeSelector = "custom"
)

const dateLayout = "2006-01-02"

// DateRange is an inclusive calendar-date interval.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func (dr DateRange) StartString() string { return dr.Start.Format(dateLayout) }
func (dr DateRange) EndString() string   { return dr.End.Format(dateLayout) }

// Days returns the number of calendar days covered by the range. Both ends
// normalize to UTC dates first so DST transitions inside the range cannot
// skew the count.
func (dr DateRange) Days() int {
	start := time.Date(dr.Start.Year(), dr.Start.Month(), dr.Start.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(dr.End.Year(), dr.End.Month(), dr.End.Day(), 0, 0, 0, 0, time.UTC)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// Prior returns the range of equal length immediately preceding dr,
// used for period-over-period comparison.
func (dr DateRange) Prior() DateRange {
	days := dr.Days()
	return DateRange{
		Start: dr.Start.AddDate(0, 0, -days),
		End:   dr.Start.AddDate(0, 0, -1),
	}
}

// Back returns the range covering the days days ending the day before
// dr starts. Used as the history window for query discovery.
func (dr DateRange) Back(days int) DateRange {
	end := dr.Start.AddDate(0, 0, -1)
	return DateRange{
		Start: end.AddDate(0, 0, -(days - 1)),
		End:   end,
	}
}

// ResolveRange turns a selector into concrete dates relative to now.
// Custom ranges require start and end in YYYY-MM-DD form.
func ResolveRange(sel RangeSelector, now time.Time, start, end string) (DateRange, error) {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch sel {
	case RangeToday:
		return DateRange{Start: day, End: day}, nil
	case RangeYesterday:
		y := day.AddDate(0, 0, -1)
		return DateRange{Start: y, End: y}, nil
	case RangeLast7Days:
		return DateRange{Start: day.AddDate(0, 0, -7), End: day.AddDate(0, 0, -1)}, nil
	case RangeLast30Days:
		return DateRange{Start: day.AddDate(0, 0, -30), End: day.AddDate(0, 0, -1)}, nil
	case RangeThisMonth:
		return DateRange{
			Start: time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()),
			End:   day,
		}, nil
	case RangeLastMonth:
		firstOfThis := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
		return DateRange{
			Start: firstOfThis.AddDate(0, -1, 0),
			End:   firstOfThis.AddDate(0, 0, -1),
		}, nil
	case RangeCustom:
		s, err := time.ParseInLocation(dateLayout, start, now.Location())
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid custom start date %q: %w", start, err)
		}
		e, err := time.ParseInLocation(dateLayout, end, now.Location())
		if err != nil {
			return DateRange{}, fmt.Errorf("invalid custom end date %q: %w", end, err)
		}
		if e.Before(s) {
			return DateRange{}, fmt.Errorf("custom end date %s precedes start date %s", end, start)
		}
		return DateRange{Start: s, End: e}, nil
	default:
		return DateRange{}, fmt.Errorf("unknown date range selector %q", sel)
	}
}

package metrics

import (
	"time"

	"github.com/wattwise/wattwise/internal/domain"
)

// AggregateRange folds the records dated within [start, end] (inclusive)
// into a single Totals. Dates are YYYY-MM-DD strings, so plain string
// comparison orders them correctly. An empty selection yields {0,0,0}.
func AggregateRange(records []domain.DailyUsage, start, end string) Totals {
	var t Totals
	for _, r := range records {
		if r.Date < start || r.Date > end {
			continue
		}
		t.Kwh += r.Kwh
		t.Cost += r.Cost
		t.CO2 += r.CO2
	}
	return t
}

// TodayTotals sums the records logged on the given day.
func TodayTotals(records []domain.DailyUsage, today string) Totals {
	return AggregateRange(records, today, today)
}

// MonthToDateTotals sums from the first of today's month through today.
func MonthToDateTotals(records []domain.DailyUsage, today string) Totals {
	start := today[:8] + "01"
	return AggregateRange(records, start, today)
}

// MonthOverMonthChange returns the signed percent change from prior to
// current consumption. Negative means reduced usage. A zero prior month is
// defined as 0% change rather than letting the division blow up.
func MonthOverMonthChange(currentKwh, priorKwh float64) float64 {
	if priorKwh == 0 {
		return 0
	}
	return (currentKwh - priorKwh) / priorKwh * 100
}

// MonthBounds returns the first and last calendar day of the month the given
// day falls in, as date strings.
func MonthBounds(day time.Time) (string, string) {
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	last := first.AddDate(0, 1, -1)
	return first.Format("2006-01-02"), last.Format("2006-01-02")
}

package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wattwise/wattwise/internal/domain"
)

func usage(date string, kwh float64) domain.DailyUsage {
	return domain.DailyUsage{Date: date, Kwh: kwh, Cost: kwh * DefaultElectricityRate, CO2: kwh * DefaultCO2PerKwh}
}

func TestAggregateRangeEmpty(t *testing.T) {
	got := AggregateRange(nil, "2025-01-01", "2025-12-31")
	assert.Equal(t, Totals{}, got)
}

func TestAggregateRangeInclusiveBounds(t *testing.T) {
	records := []domain.DailyUsage{
		usage("2025-03-01", 1),
		usage("2025-03-15", 2),
		usage("2025-03-31", 4),
		usage("2025-04-01", 8),
	}

	got := AggregateRange(records, "2025-03-01", "2025-03-31")
	assert.Equal(t, 7.0, got.Kwh)
	assert.Equal(t, 56.0, got.Cost)
	assert.Equal(t, 3.5, got.CO2)
}

func TestTodayTotals(t *testing.T) {
	records := []domain.DailyUsage{
		usage("2025-06-10", 2.0),
		usage("2025-06-10", 3.5),
		usage("2025-06-09", 9.0),
	}

	got := TodayTotals(records, "2025-06-10")
	assert.Equal(t, 5.5, got.Kwh)
}

func TestMonthToDateTotals(t *testing.T) {
	records := []domain.DailyUsage{
		usage("2025-05-31", 5),
		usage("2025-06-01", 1),
		usage("2025-06-10", 2),
		usage("2025-06-11", 3),
	}

	got := MonthToDateTotals(records, "2025-06-10")
	assert.Equal(t, 3.0, got.Kwh)
}

func TestMonthOverMonthChange(t *testing.T) {
	assert.Equal(t, 0.0, MonthOverMonthChange(42, 0))
	assert.Equal(t, 0.0, MonthOverMonthChange(0, 0))
	assert.InDelta(t, -10.0, MonthOverMonthChange(90, 100), 1e-9)
	assert.InDelta(t, 25.0, MonthOverMonthChange(125, 100), 1e-9)
}

func TestMonthBounds(t *testing.T) {
	day := time.Date(2025, time.February, 14, 10, 0, 0, 0, time.UTC)
	first, last := MonthBounds(day)
	assert.Equal(t, "2025-02-01", first)
	assert.Equal(t, "2025-02-28", last)
}

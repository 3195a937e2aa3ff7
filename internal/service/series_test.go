package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wattwise/wattwise/internal/metrics"
)

func testSeries() *SeriesService {
	return NewSeriesService(rand.New(rand.NewSource(7)), metrics.DefaultCalculator())
}

func TestUsageSeriesBuckets(t *testing.T) {
	s := testSeries()
	assert.Len(t, s.UsageSeries("daily", "kwh"), 24)
	assert.Len(t, s.UsageSeries("weekly", "kwh"), 7)
	assert.Len(t, s.UsageSeries("monthly", "kwh"), 30)
	assert.Len(t, s.UsageSeries("yearly", "kwh"), 12)
	assert.Empty(t, s.UsageSeries("hourly", "kwh"))
}

func TestUsageSeriesLabels(t *testing.T) {
	s := testSeries()
	daily := s.UsageSeries("daily", "kwh")
	assert.Equal(t, "0:00", daily[0].Time)
	assert.Equal(t, "23:00", daily[23].Time)

	weekly := s.UsageSeries("weekly", "kwh")
	assert.Equal(t, "Sun", weekly[0].Time)
	assert.Equal(t, "Sat", weekly[6].Time)
}

func TestUsageSeriesUnitConversion(t *testing.T) {
	kwh := NewSeriesService(rand.New(rand.NewSource(7)), metrics.DefaultCalculator()).UsageSeries("weekly", "kwh")
	cost := NewSeriesService(rand.New(rand.NewSource(7)), metrics.DefaultCalculator()).UsageSeries("weekly", "cost")
	co2 := NewSeriesService(rand.New(rand.NewSource(7)), metrics.DefaultCalculator()).UsageSeries("weekly", "co2")

	require.Len(t, cost, len(kwh))
	for i := range kwh {
		// Same seed, same raw values; rounding to 2 decimals allows a
		// small tolerance.
		assert.InDelta(t, kwh[i].Value*metrics.DefaultElectricityRate, cost[i].Value, 0.1)
		assert.InDelta(t, kwh[i].Value*metrics.DefaultCO2PerKwh, co2[i].Value, 0.1)
	}
}

func TestUsageSeriesValuesPositive(t *testing.T) {
	for _, period := range []string{"daily", "weekly", "monthly", "yearly"} {
		for _, p := range testSeries().UsageSeries(period, "kwh") {
			assert.Positive(t, p.Value)
		}
	}
}

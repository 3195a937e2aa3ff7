package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplianceMetrics(t *testing.T) {
	c := DefaultCalculator()

	m := c.ApplianceMetrics(1500, 6)
	assert.Equal(t, 9.0, m.DailyKwh)
	assert.Equal(t, 270.0, m.MonthlyKwh)
	assert.Equal(t, 2160.0, m.MonthlyCost)
	assert.Equal(t, 135.0, m.MonthlyCO2)
}

func TestApplianceMetricsZeroInputs(t *testing.T) {
	c := DefaultCalculator()

	for _, tc := range []struct{ w, h float64 }{
		{0, 0},
		{0, 12},
		{1500, 0},
	} {
		m := c.ApplianceMetrics(tc.w, tc.h)
		assert.Zero(t, m.DailyKwh)
		assert.Zero(t, m.MonthlyKwh)
		assert.Zero(t, m.MonthlyCost)
		assert.Zero(t, m.MonthlyCO2)
	}
}

func TestApplianceMetricsFormula(t *testing.T) {
	c := DefaultCalculator()

	cases := []struct{ w, h float64 }{
		{150, 24},
		{500, 1},
		{2000, 0.5},
		{100, 4},
	}
	for _, tc := range cases {
		m := c.ApplianceMetrics(tc.w, tc.h)
		assert.Equal(t, tc.w*tc.h/1000, m.DailyKwh)
		assert.Equal(t, m.DailyKwh*30, m.MonthlyKwh)
	}
}

func TestUsageEventMetrics(t *testing.T) {
	c := DefaultCalculator()

	got := c.UsageEventMetrics(2000, 1.5)
	assert.Equal(t, 3.0, got.Kwh)
	assert.Equal(t, 24.0, got.Cost)
	assert.Equal(t, 1.5, got.CO2)
}

func TestCustomTariff(t *testing.T) {
	c := NewCalculator(10, 0.8)

	got := c.UsageEventMetrics(1000, 2)
	assert.Equal(t, 2.0, got.Kwh)
	assert.Equal(t, 20.0, got.Cost)
	assert.Equal(t, 1.6, got.CO2)
}

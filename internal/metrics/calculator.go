package metrics

// Default tariff constants. Services may override them from config; the
// defaults match the billing assumptions used across the app.
const (
	DefaultElectricityRate = 8.0 // Rs per kWh
	DefaultCO2PerKwh       = 0.5 // kg CO2 per kWh
)

// Totals is a per-event or per-period {kwh, cost, co2} triple. It is never
// persisted as-is; period totals are recomputed on demand.
type Totals struct {
	Kwh  float64 `json:"kwh"`
	Cost float64 `json:"cost"`
	CO2  float64 `json:"co2"`
}

// ApplianceProjection is the projected consumption of an appliance given its
// rated wattage and average daily hours. Monthly figures use a fixed 30-day
// month, not the calendar.
type ApplianceProjection struct {
	DailyKwh    float64 `json:"daily_kwh"`
	MonthlyKwh  float64 `json:"monthly_kwh"`
	MonthlyCost float64 `json:"monthly_cost"`
	MonthlyCO2  float64 `json:"monthly_co2"`
}

// Calculator converts raw wattage/hours figures into energy, cost and
// emission metrics. Zero-valued inputs produce zero-valued outputs; the
// functions are total and never panic. Input validation is the caller's job.
type Calculator struct {
	Rate      float64
	CO2Factor float64
}

func NewCalculator(rate, co2Factor float64) Calculator {
	return Calculator{Rate: rate, CO2Factor: co2Factor}
}

// DefaultCalculator uses the standard tariff constants.
func DefaultCalculator() Calculator {
	return Calculator{Rate: DefaultElectricityRate, CO2Factor: DefaultCO2PerKwh}
}

// ApplianceMetrics projects daily and monthly consumption for an appliance.
func (c Calculator) ApplianceMetrics(wattage, hoursPerDay float64) ApplianceProjection {
	dailyKwh := wattage * hoursPerDay / 1000
	monthlyKwh := dailyKwh * 30
	return ApplianceProjection{
		DailyKwh:    dailyKwh,
		MonthlyKwh:  monthlyKwh,
		MonthlyCost: monthlyKwh * c.Rate,
		MonthlyCO2:  monthlyKwh * c.CO2Factor,
	}
}

// UsageEventMetrics computes the stored figures for a single usage entry.
// No monthly extrapolation.
func (c Calculator) UsageEventMetrics(wattage, hoursUsed float64) Totals {
	kwh := wattage * hoursUsed / 1000
	return Totals{
		Kwh:  kwh,
		Cost: kwh * c.Rate,
		CO2:  kwh * c.CO2Factor,
	}
}

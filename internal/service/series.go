package service

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/wattwise/wattwise/internal/domain"
	"github.com/wattwise/wattwise/internal/metrics"
)

// SeriesService synthesizes the analytics chart series: a plausible load
// curve per period, converted to the requested unit. Stand-in data until a
// real per-hour metering source exists.
type SeriesService struct {
	rnd  *rand.Rand
	calc metrics.Calculator
}

func NewSeriesService(rnd *rand.Rand, calc metrics.Calculator) *SeriesService {
	return &SeriesService{rnd: rnd, calc: calc}
}

// UsageSeries returns chart points for period daily|weekly|monthly|yearly
// and unit kwh|cost|co2. Unknown periods yield an empty series.
func (s *SeriesService) UsageSeries(period, unit string) []domain.SeriesPoint {
	var out []domain.SeriesPoint

	switch period {
	case "daily":
		for hour := 0; hour < 24; hour++ {
			var v float64
			switch {
			case hour >= 6 && hour <= 9: // morning peak
				v = 0.3 + s.rnd.Float64()*0.2
			case hour >= 18 && hour <= 22: // evening peak
				v = 0.5 + s.rnd.Float64()*0.3
			case hour <= 5: // night low
				v = 0.1 + s.rnd.Float64()*0.1
			default:
				v = 0.2 + s.rnd.Float64()*0.2
			}
			out = append(out, s.point(fmt.Sprintf("%d:00", hour), v, unit))
		}
	case "weekly":
		days := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
		for i, day := range days {
			var v float64
			if i == 0 || i == 6 {
				v = 8 + s.rnd.Float64()*2
			} else {
				v = 6 + s.rnd.Float64()*3
			}
			out = append(out, s.point(day, v, unit))
		}
	case "monthly":
		for day := 1; day <= 30; day++ {
			v := 9 - float64(day-1)/30*3 + s.rnd.Float64()*2
			out = append(out, s.point(fmt.Sprint(day), v, unit))
		}
	case "yearly":
		months := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
		for i, month := range months {
			var v float64
			switch {
			case i >= 3 && i <= 6: // summer peak
				v = 240 + s.rnd.Float64()*40
			case i >= 10 || i <= 1: // winter
				v = 180 + s.rnd.Float64()*30
			default:
				v = 150 + s.rnd.Float64()*30
			}
			out = append(out, s.point(month, v, unit))
		}
	}
	return out
}

func (s *SeriesService) point(label string, kwh float64, unit string) domain.SeriesPoint {
	v := kwh
	switch unit {
	case "cost":
		v = kwh * s.calc.Rate
	case "co2":
		v = kwh * s.calc.CO2Factor
	}
	return domain.SeriesPoint{Time: label, Value: math.Round(v*100) / 100}
}

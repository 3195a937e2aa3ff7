package service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wattwise/wattwise/internal/domain"
	"github.com/wattwise/wattwise/internal/metrics"
	"github.com/wattwise/wattwise/internal/repository"
)

type UsageService struct {
	repos *repository.Repos
	calc  metrics.Calculator
}

// MonthlySummary is the analytics screen's month block.
type MonthlySummary struct {
	Total         float64 `json:"total"`
	Cost          float64 `json:"cost"`
	CO2           float64 `json:"co2"`
	PreviousMonth float64 `json:"previous_month"`
	PercentChange float64 `json:"percent_change"`
}

// AddEntry stores one day of usage. The wattage and the derived kwh/cost/co2
// are captured now and never recomputed, so appliance edits cannot rewrite
// history. An empty applianceID means a custom, unlinked entry.
func (s *UsageService) AddEntry(userID, applianceID, date string, hoursUsed, wattage float64) (*domain.DailyUsage, error) {
	if userID == "" {
		return nil, fmt.Errorf("user_id is required")
	}
	if hoursUsed <= 0 || hoursUsed > 24 {
		return nil, fmt.Errorf("hours_used must be in (0, 24]")
	}
	if wattage <= 0 {
		return nil, fmt.Errorf("wattage must be positive")
	}
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		return nil, fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}

	t := s.calc.UsageEventMetrics(wattage, hoursUsed)
	u := &domain.DailyUsage{
		ID:          uuid.NewString(),
		UserID:      userID,
		ApplianceID: sql.NullString{String: applianceID, Valid: applianceID != ""},
		Date:        date,
		HoursUsed:   hoursUsed,
		Wattage:     wattage,
		Kwh:         t.Kwh,
		Cost:        t.Cost,
		CO2:         t.CO2,
	}
	if err := s.repos.InsertUsage(u); err != nil {
		return nil, fmt.Errorf("adding usage entry: %w", err)
	}
	return u, nil
}

func (s *UsageService) ListRange(userID, start, end string) ([]domain.DailyUsage, error) {
	return s.repos.ListUsage(userID, start, end)
}

func (s *UsageService) TodayTotals(userID string) (metrics.Totals, error) {
	today := time.Now().Format("2006-01-02")
	records, err := s.repos.ListUsage(userID, today, today)
	if err != nil {
		return metrics.Totals{}, err
	}
	return metrics.TodayTotals(records, today), nil
}

// Summary aggregates the current month to date and compares it against the
// full prior month.
func (s *UsageService) Summary(userID string) (*MonthlySummary, error) {
	now := time.Now()
	today := now.Format("2006-01-02")
	monthStart, _ := metrics.MonthBounds(now)
	// Step back from the first of the month, not from today: AddDate on a
	// day-31 date would normalize into the same month.
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	priorStart, priorEnd := metrics.MonthBounds(first.AddDate(0, -1, 0))

	records, err := s.repos.ListUsage(userID, priorStart, today)
	if err != nil {
		return nil, err
	}
	current := metrics.AggregateRange(records, monthStart, today)
	prior := metrics.AggregateRange(records, priorStart, priorEnd)

	return &MonthlySummary{
		Total:         current.Kwh,
		Cost:          current.Cost,
		CO2:           current.CO2,
		PreviousMonth: prior.Kwh,
		PercentChange: metrics.MonthOverMonthChange(current.Kwh, prior.Kwh),
	}, nil
}

// FromMQTT ingests one smart-plug telemetry message from the energy/usage
// topic. Same math as a manual entry.
func (s *UsageService) FromMQTT(topic string, payload []byte) error {
	var m struct {
		UserID      string  `json:"user_id"`
		ApplianceID string  `json:"appliance_id"`
		Date        string  `json:"date"`
		HoursUsed   float64 `json:"hours_used"`
		Wattage     float64 `json:"wattage"`
	}
	if err := json.Unmarshal(payload, &m); err != nil {
		return fmt.Errorf("decoding usage payload: %w", err)
	}
	_, err := s.AddEntry(m.UserID, m.ApplianceID, m.Date, m.HoursUsed, m.Wattage)
	return err
}

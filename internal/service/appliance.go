package service

import (
	"fmt"
	"slices"

	"github.com/google/uuid"

	"github.com/wattwise/wattwise/internal/domain"
	"github.com/wattwise/wattwise/internal/metrics"
	"github.com/wattwise/wattwise/internal/repository"
)

type ApplianceService struct {
	repos *repository.Repos
	calc  metrics.Calculator
}

func (s *ApplianceService) List(userID string) ([]domain.Appliance, error) {
	return s.repos.ListAppliances(userID)
}

func (s *ApplianceService) Add(a domain.Appliance) (*domain.Appliance, error) {
	if err := validateAppliance(&a); err != nil {
		return nil, err
	}
	a.ID = uuid.NewString()
	if a.Status == "" {
		a.Status = "active"
	}
	if err := s.repos.InsertAppliance(&a); err != nil {
		return nil, fmt.Errorf("adding appliance: %w", err)
	}
	return &a, nil
}

func (s *ApplianceService) Update(id string, a domain.Appliance) (*domain.Appliance, error) {
	existing, err := s.repos.GetAppliance(id)
	if err != nil {
		return nil, fmt.Errorf("updating appliance: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("appliance %s not found", id)
	}
	if err := validateAppliance(&a); err != nil {
		return nil, err
	}
	a.ID = id
	a.UserID = existing.UserID
	if a.Status == "" {
		a.Status = existing.Status
	}
	if err := s.repos.UpdateAppliance(&a); err != nil {
		return nil, fmt.Errorf("updating appliance: %w", err)
	}
	return &a, nil
}

func (s *ApplianceService) Delete(id string) error {
	return s.repos.DeleteAppliance(id)
}

// Projection returns the daily/monthly consumption figures for the given
// rating, as shown on the appliance detail screen.
func (s *ApplianceService) Projection(wattage, hoursPerDay float64) metrics.ApplianceProjection {
	return s.calc.ApplianceMetrics(wattage, hoursPerDay)
}

func validateAppliance(a *domain.Appliance) error {
	if a.Name == "" {
		return fmt.Errorf("appliance name is required")
	}
	if a.UserID == "" {
		return fmt.Errorf("user_id is required")
	}
	if !slices.Contains(domain.Categories, a.Category) {
		return fmt.Errorf("unknown category %q", a.Category)
	}
	if a.Wattage <= 0 {
		return fmt.Errorf("wattage must be positive")
	}
	if a.HoursPerDay <= 0 || a.HoursPerDay > 24 {
		return fmt.Errorf("hours_per_day must be in (0, 24]")
	}
	if a.Status != "" && a.Status != "active" && a.Status != "inactive" {
		return fmt.Errorf("status must be active or inactive")
	}
	return nil
}

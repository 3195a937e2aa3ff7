package service

import "github.com/wattwise/wattwise/internal/domain"

type TipService struct{}

// SavingsTips returns the fixed, ordered recommendation catalogue. No
// personalization yet; a real recommendation service would slot in here.
func (s *TipService) SavingsTips() []domain.Tip {
	return []domain.Tip{
		{
			ID:               "1",
			Title:            "Optimize AC Temperature",
			Description:      "Increase your AC temperature by 1°C to save up to 6% on your cooling energy costs.",
			PotentialSavings: "₹150/month",
			Category:         "cooling",
		},
		{
			ID:               "2",
			Title:            "Unplug Idle Electronics",
			Description:      "Unplug electronics when not in use to eliminate phantom energy usage.",
			PotentialSavings: "₹80/month",
			Category:         "electronics",
		},
		{
			ID:               "3",
			Title:            "Switch to LED Lighting",
			Description:      "Replace all regular bulbs with LED alternatives to save up to 80% on lighting costs.",
			PotentialSavings: "₹120/month",
			Category:         "lighting",
		},
		{
			ID:               "4",
			Title:            "Wash Full Loads Only",
			Description:      "Only run your washing machine with full loads and use cold water when possible.",
			PotentialSavings: "₹90/month",
			Category:         "laundry",
		},
		{
			ID:               "5",
			Title:            "Use Smart Power Strips",
			Description:      "Group electronics on smart power strips to easily turn everything off when not in use.",
			PotentialSavings: "₹70/month",
			Category:         "electronics",
		},
	}
}

package domain

import (
	"database/sql"
	"time"
)

// Appliance categories accepted by the API.
var Categories = []string{"Cooling", "Kitchen", "Laundry", "Entertainment", "Bathroom", "Lighting", "Other"}

type Appliance struct {
	ID          string  `db:"id" json:"id"`
	UserID      string  `db:"user_id" json:"user_id"`
	Name        string  `db:"name" json:"name"`
	Brand       string  `db:"brand" json:"brand"`
	Model       string  `db:"model" json:"model"`
	Category    string  `db:"category" json:"category"`
	Wattage     float64 `db:"wattage" json:"wattage"`
	HoursPerDay float64 `db:"hours_per_day" json:"hours_per_day"`
	Icon        string  `db:"icon" json:"icon"`
	Status      string  `db:"status" json:"status"` // active | inactive
}

// DailyUsage is one logged day of appliance use. Wattage and the derived
// kwh/cost/co2 figures are captured at entry time; editing the appliance
// later must not rewrite historical records.
type DailyUsage struct {
	ID          string         `db:"id" json:"id"`
	UserID      string         `db:"user_id" json:"user_id"`
	ApplianceID sql.NullString `db:"appliance_id" json:"appliance_id"`
	Date        string         `db:"date" json:"date"` // YYYY-MM-DD
	HoursUsed   float64        `db:"hours_used" json:"hours_used"`
	Wattage     float64        `db:"wattage" json:"wattage"`
	Kwh         float64        `db:"kwh" json:"kwh"`
	Cost        float64        `db:"cost" json:"cost"`
	CO2         float64        `db:"co2" json:"co2"`
}

type Tip struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	PotentialSavings string `json:"potential_savings"`
	Category         string `json:"category"`
}

type RankedUser struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Points int    `json:"points"`
	Avatar string `json:"avatar"`
}

// SeriesPoint is one bucket of the synthetic analytics chart series.
type SeriesPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// ChatMessage is the display-facing transcript entry.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"message"`
	FromBot   bool      `json:"is_bot"`
	Timestamp time.Time `json:"timestamp"`
}

// HistoryItem is the role/content shape sent to the model as context.
// Kept deliberately distinct from ChatMessage.
type HistoryItem struct {
	Role    string `json:"role"` // user | model
	Content string `json:"content"`
}

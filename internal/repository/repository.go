package repository

import (
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wattwise/wattwise/internal/domain"
)

type Repos struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repos { return &Repos{db: db} }

// InitSchema creates the tables if they do not exist yet.
func (r *Repos) InitSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS appliances (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		name TEXT NOT NULL,
		brand TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		category TEXT NOT NULL,
		wattage DOUBLE PRECISION NOT NULL,
		hours_per_day DOUBLE PRECISION NOT NULL,
		icon TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'active'
	);
	CREATE TABLE IF NOT EXISTS daily_usage (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		appliance_id TEXT,
		date TEXT NOT NULL,
		hours_used DOUBLE PRECISION NOT NULL,
		wattage DOUBLE PRECISION NOT NULL,
		kwh DOUBLE PRECISION NOT NULL,
		cost DOUBLE PRECISION NOT NULL,
		co2 DOUBLE PRECISION NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_appliances_user ON appliances(user_id);
	CREATE INDEX IF NOT EXISTS idx_daily_usage_user_date ON daily_usage(user_id, date);
	`
	if _, err := r.db.Exec(schema); err != nil {
		return fmt.Errorf("initializing schema: %w", err)
	}
	return nil
}

func (r *Repos) ListAppliances(userID string) ([]domain.Appliance, error) {
	out := []domain.Appliance{}
	err := r.db.Select(&out, `SELECT id, user_id, name, brand, model, category, wattage, hours_per_day, icon, status
		FROM appliances WHERE user_id = $1 ORDER BY name`, userID)
	return out, err
}

func (r *Repos) GetAppliance(id string) (*domain.Appliance, error) {
	var a domain.Appliance
	err := r.db.Get(&a, `SELECT id, user_id, name, brand, model, category, wattage, hours_per_day, icon, status
		FROM appliances WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *Repos) InsertAppliance(a *domain.Appliance) error {
	_, err := r.db.Exec(`INSERT INTO appliances(id, user_id, name, brand, model, category, wattage, hours_per_day, icon, status)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		a.ID, a.UserID, a.Name, a.Brand, a.Model, a.Category, a.Wattage, a.HoursPerDay, a.Icon, a.Status)
	return err
}

func (r *Repos) UpdateAppliance(a *domain.Appliance) error {
	_, err := r.db.Exec(`UPDATE appliances SET name=$2, brand=$3, model=$4, category=$5, wattage=$6, hours_per_day=$7, icon=$8, status=$9
		WHERE id = $1`,
		a.ID, a.Name, a.Brand, a.Model, a.Category, a.Wattage, a.HoursPerDay, a.Icon, a.Status)
	return err
}

// DeleteAppliance removes the appliance only. Historical usage rows carry
// their own wattage snapshot and stay untouched.
func (r *Repos) DeleteAppliance(id string) error {
	_, err := r.db.Exec(`DELETE FROM appliances WHERE id = $1`, id)
	return err
}

func (r *Repos) ListUsage(userID, start, end string) ([]domain.DailyUsage, error) {
	out := []domain.DailyUsage{}
	err := r.db.Select(&out, `SELECT id, user_id, appliance_id, date, hours_used, wattage, kwh, cost, co2
		FROM daily_usage WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date DESC`,
		userID, start, end)
	return out, err
}

func (r *Repos) InsertUsage(u *domain.DailyUsage) error {
	_, err := r.db.Exec(`INSERT INTO daily_usage(id, user_id, appliance_id, date, hours_used, wattage, kwh, cost, co2)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		u.ID, u.UserID, u.ApplianceID, u.Date, u.HoursUsed, u.Wattage, u.Kwh, u.Cost, u.CO2)
	return err
}

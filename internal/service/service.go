package service

import (
	"math/rand"

	"github.com/jmoiron/sqlx"

	"github.com/wattwise/wattwise/internal/metrics"
	"github.com/wattwise/wattwise/internal/repository"
)

type Services struct {
	Repos       *repository.Repos
	Appliances  *ApplianceService
	Usage       *UsageService
	Tips        *TipService
	Leaderboard *LeaderboardService
	Series      *SeriesService
}

func New(db *sqlx.DB, calc metrics.Calculator, rnd *rand.Rand) *Services {
	repos := repository.New(db)
	return &Services{
		Repos:       repos,
		Appliances:  &ApplianceService{repos: repos, calc: calc},
		Usage:       &UsageService{repos: repos, calc: calc},
		Tips:        &TipService{},
		Leaderboard: &LeaderboardService{rnd: rnd},
		Series:      &SeriesService{rnd: rnd, calc: calc},
	}
}

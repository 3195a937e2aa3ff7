package service

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/wattwise/wattwise/internal/domain"
)

// LeaderboardService produces synthetic rankings. The random source is
// injected so tests can seed it; a real ranking service would replace this.
type LeaderboardService struct {
	rnd *rand.Rand
}

func NewLeaderboardService(rnd *rand.Rand) *LeaderboardService {
	return &LeaderboardService{rnd: rnd}
}

func avatarURL(n int) string {
	return fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2", n, n)
}

func baseUsers() []domain.RankedUser {
	return []domain.RankedUser{
		{ID: "1", Name: "John Doe", Points: 340, Avatar: avatarURL(614810)},
		{ID: "2", Name: "EcoWarrior01", Points: 840, Avatar: avatarURL(774909)},
		{ID: "3", Name: "Green Thumb", Points: 760, Avatar: avatarURL(1181686)},
		{ID: "4", Name: "EnergySaver", Points: 680, Avatar: avatarURL(1382731)},
		{ID: "5", Name: "WattWatcher", Points: 620, Avatar: avatarURL(1851164)},
		{ID: "6", Name: "PowerPro", Points: 580, Avatar: avatarURL(1239288)},
		{ID: "7", Name: "EcoFriendly", Points: 520, Avatar: avatarURL(733872)},
		{ID: "8", Name: "GreenEnergy", Points: 480, Avatar: avatarURL(1043471)},
		{ID: "9", Name: "EcoSaver", Points: 420, Avatar: avatarURL(1542085)},
		{ID: "10", Name: "PowerSaver", Points: 380, Avatar: avatarURL(1499327)},
	}
}

// Leaderboard returns a ranked list for the given scope, sorted descending
// by points. Broader scopes append more synthetic entries.
func (s *LeaderboardService) Leaderboard(scope string) []domain.RankedUser {
	users := baseUsers()

	switch scope {
	case "city":
		for i := 11; i <= 20; i++ {
			users = append(users, domain.RankedUser{
				ID:     fmt.Sprint(i),
				Name:   fmt.Sprintf("CityUser%d", i),
				Points: s.rnd.Intn(300) + 100,
				Avatar: avatarURL(1000000 + i),
			})
		}
	case "global":
		for i := 11; i <= 30; i++ {
			users = append(users, domain.RankedUser{
				ID:     fmt.Sprint(i),
				Name:   fmt.Sprintf("GlobalUser%d", i),
				Points: s.rnd.Intn(500) + 100,
				Avatar: avatarURL(1000000 + i),
			})
		}
	}

	sort.SliceStable(users, func(i, j int) bool { return users[i].Points > users[j].Points })
	return users
}

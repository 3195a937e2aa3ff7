package main

import (
	"encoding/json"
	"math/rand"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/wattwise/wattwise/internal/config"
)

type usageEntry struct {
	UserID      string  `json:"user_id"`
	ApplianceID string  `json:"appliance_id"`
	Date        string  `json:"date"`
	HoursUsed   float64 `json:"hours_used"`
	Wattage     float64 `json:"wattage"`
}

// Typical household appliances with plausible ratings.
var plugs = []struct {
	id      string
	wattage float64
	maxHrs  float64
}{
	{"plug-ac", 1500, 8},
	{"plug-fridge", 150, 24},
	{"plug-washer", 500, 2},
	{"plug-tv", 100, 6},
	{"plug-geyser", 2000, 1.5},
}

func main() {
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	opts := mqtt.NewClientOptions().AddBroker(config.MQTTBroker())
	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		log.Fatal().Err(token.Error()).Msg("mqtt connect")
	}
	defer client.Disconnect(250)

	for i := 0; i < 100; i++ {
		plug := plugs[rnd.Intn(len(plugs))]
		e := usageEntry{
			UserID:      "user-001",
			ApplianceID: plug.id,
			Date:        time.Now().AddDate(0, 0, -rnd.Intn(60)).Format("2006-01-02"),
			HoursUsed:   0.5 + rnd.Float64()*(plug.maxHrs-0.5),
			Wattage:     plug.wattage,
		}
		payload, _ := json.Marshal(e)
		token := client.Publish("energy/usage", 0, false, payload)
		token.Wait()
		time.Sleep(500 * time.Millisecond)
	}
	log.Info().Msg("simulation done")
}

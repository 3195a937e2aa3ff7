package main

import (
	"context"
	"math/rand"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/wattwise/wattwise/internal/assistant"
	"github.com/wattwise/wattwise/internal/chatstore"
	"github.com/wattwise/wattwise/internal/config"
	"github.com/wattwise/wattwise/internal/database"
	httpHandlers "github.com/wattwise/wattwise/internal/http"
	"github.com/wattwise/wattwise/internal/metrics"
	"github.com/wattwise/wattwise/internal/service"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if err := config.Load(); err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}

	db, err := database.Connect()
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	calc := metrics.NewCalculator(config.ElectricityRate(), config.CO2PerKwh())
	rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
	svcs := service.New(db, calc, rnd)

	if err := svcs.Repos.InitSchema(); err != nil {
		log.Fatal().Err(err).Msg("schema init failed")
	}

	chats, err := chatstore.Open(config.ChatDBPath())
	if err != nil {
		log.Fatal().Err(err).Msg("chat store open failed")
	}
	defer chats.Close()

	var gen assistant.Generator
	if key := config.GeminiAPIKey(); key != "" {
		client, err := assistant.NewGeminiClient(context.Background(), key, config.GeminiModel())
		if err != nil {
			log.Fatal().Err(err).Msg("gemini client init failed")
		}
		gen = client
	} else {
		log.Warn().Msg("GEMINI_API_KEY not set, assistant runs on local fallback only")
		gen = assistant.Unavailable{}
	}
	bot := assistant.NewPipeline(gen, chats)

	app := fiber.New()

	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })

	httpHandlers.Register(app, svcs, bot, chats)

	addr := config.APIAddr()
	if addr == "" {
		addr = ":8080"
	}
	log.Info().Str("addr", addr).Msg("api listening")
	log.Fatal().Err(app.Listen(addr)).Msg("server exit")
}

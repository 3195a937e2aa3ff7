package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/wattwise/wattwise/internal/assistant"
	"github.com/wattwise/wattwise/internal/chatstore"
	"github.com/wattwise/wattwise/internal/domain"
	"github.com/wattwise/wattwise/internal/service"
)

func Register(app *fiber.App, svcs *service.Services, bot *assistant.Pipeline, chats *chatstore.Store) {
	registerAppliances(app, svcs)
	registerUsage(app, svcs)
	registerInsights(app, svcs)
	registerAssistant(app, bot, chats)
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

func serverError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}

// requireUserID reads the identity collaborator's user id. The API trusts
// the gateway to have authenticated it.
func requireUserID(c *fiber.Ctx) (string, bool) {
	id := c.Query("user_id")
	return id, id != ""
}

func registerAppliances(app *fiber.App, svcs *service.Services) {
	g := app.Group("/appliances")

	g.Get("/", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return badRequest(c, "user_id is required")
		}
		items, err := svcs.Appliances.List(userID)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(items)
	})

	g.Post("/", func(c *fiber.Ctx) error {
		var a domain.Appliance
		if err := c.BodyParser(&a); err != nil {
			return badRequest(c, "invalid appliance body")
		}
		created, err := svcs.Appliances.Add(a)
		if err != nil {
			return badRequest(c, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	g.Put("/:id", func(c *fiber.Ctx) error {
		var a domain.Appliance
		if err := c.BodyParser(&a); err != nil {
			return badRequest(c, "invalid appliance body")
		}
		updated, err := svcs.Appliances.Update(c.Params("id"), a)
		if err != nil {
			return badRequest(c, err.Error())
		}
		return c.JSON(updated)
	})

	g.Delete("/:id", func(c *fiber.Ctx) error {
		if err := svcs.Appliances.Delete(c.Params("id")); err != nil {
			return serverError(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	g.Get("/projection", func(c *fiber.Ctx) error {
		wattage := c.QueryFloat("wattage")
		hours := c.QueryFloat("hours_per_day")
		return c.JSON(svcs.Appliances.Projection(wattage, hours))
	})
}

func registerUsage(app *fiber.App, svcs *service.Services) {
	g := app.Group("/usage")

	g.Get("/", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return badRequest(c, "user_id is required")
		}
		start, end := c.Query("start"), c.Query("end")
		if start == "" || end == "" {
			return badRequest(c, "start and end are required")
		}
		items, err := svcs.Usage.ListRange(userID, start, end)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(items)
	})

	g.Post("/", func(c *fiber.Ctx) error {
		var body struct {
			UserID      string  `json:"user_id"`
			ApplianceID string  `json:"appliance_id"`
			Date        string  `json:"date"`
			HoursUsed   float64 `json:"hours_used"`
			Wattage     float64 `json:"wattage"`
		}
		if err := c.BodyParser(&body); err != nil {
			return badRequest(c, "invalid usage body")
		}
		created, err := svcs.Usage.AddEntry(body.UserID, body.ApplianceID, body.Date, body.HoursUsed, body.Wattage)
		if err != nil {
			return badRequest(c, err.Error())
		}
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	g.Get("/today", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return badRequest(c, "user_id is required")
		}
		totals, err := svcs.Usage.TodayTotals(userID)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(totals)
	})

	g.Get("/monthly", func(c *fiber.Ctx) error {
		userID, ok := requireUserID(c)
		if !ok {
			return badRequest(c, "user_id is required")
		}
		summary, err := svcs.Usage.Summary(userID)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(summary)
	})

	g.Get("/series", func(c *fiber.Ctx) error {
		period := c.Query("period", "daily")
		unit := c.Query("unit", "kwh")
		return c.JSON(svcs.Series.UsageSeries(period, unit))
	})
}

func registerInsights(app *fiber.App, svcs *service.Services) {
	app.Get("/tips", func(c *fiber.Ctx) error {
		return c.JSON(svcs.Tips.SavingsTips())
	})

	app.Get("/leaderboard", func(c *fiber.Ctx) error {
		scope := c.Query("scope", "friends")
		return c.JSON(svcs.Leaderboard.Leaderboard(scope))
	})
}

func registerAssistant(app *fiber.App, bot *assistant.Pipeline, chats *chatstore.Store) {
	g := app.Group("/assistant")

	g.Post("/chat", func(c *fiber.Ctx) error {
		var body struct {
			Message string `json:"message"`
		}
		if err := c.BodyParser(&body); err != nil || body.Message == "" {
			return badRequest(c, "message is required")
		}

		reply := bot.Respond(c.Context(), body.Message)

		// Mirror the exchange into the display transcript. Best-effort,
		// same as the context history.
		transcript, err := chats.LoadTranscript()
		if err != nil {
			log.Error().Err(err).Msg("loading transcript")
		}
		now := time.Now()
		transcript = append(transcript,
			domain.ChatMessage{ID: uuid.NewString(), Text: body.Message, FromBot: false, Timestamp: now},
			domain.ChatMessage{ID: uuid.NewString(), Text: reply, FromBot: true, Timestamp: now.Add(time.Millisecond)},
		)
		if err := chats.SaveTranscript(transcript); err != nil {
			log.Error().Err(err).Msg("saving transcript")
		}

		return c.JSON(fiber.Map{"reply": reply})
	})

	g.Get("/history", func(c *fiber.Ctx) error {
		transcript, err := chats.LoadTranscript()
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(transcript)
	})

	g.Post("/clear", func(c *fiber.Ctx) error {
		if err := chats.Clear(); err != nil {
			return serverError(c, err)
		}
		return c.JSON(chatstore.WelcomeTranscript(time.Now()))
	})

	g.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"available": bot.Available(c.Context())})
	})
}

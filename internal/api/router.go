package api

import (
	"ghars/internal/api/handlers"

	_ "ghars/docs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
)

func SetupRouter(
	advisoryHandler *handlers.AdvisoryHandler,
	chatHandler *handlers.ChatHandler,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ghars",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(logger.New())

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "active",
			"message": "منصة زراعة الأشجار الذكية - عُمان",
			"endpoints": fiber.Map{
				"predict":         "/api/v1/predict",
				"chat":            "/api/v1/chat",
				"trees":           "/api/v1/trees",
				"governorates":    "/api/v1/governorates",
				"recommendations": "/api/v1/recommendations/{governorate}/{season}",
				"seasonal_advice": "/api/v1/seasonal-advice/{governorate}/{season}",
			},
		})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	v1 := app.Group("/api/v1")

	v1.Post("/predict", advisoryHandler.Predict)
	v1.Post("/predict/batch", advisoryHandler.PredictBatch)
	v1.Get("/trees", advisoryHandler.ListTrees)
	v1.Get("/trees/:name", advisoryHandler.GetTree)
	v1.Get("/governorates", advisoryHandler.ListGovernorates)
	v1.Get("/recommendations/:governorate/:season", advisoryHandler.Recommendations)
	v1.Get("/seasonal-advice/:governorate/:season", advisoryHandler.SeasonalAdvice)
	v1.Get("/climate/:governorate/:season", advisoryHandler.Climate)
	v1.Get("/statistics", advisoryHandler.Statistics)

	v1.Post("/chat", chatHandler.Chat)
	v1.Get("/chat/history", chatHandler.History)

	return app
}

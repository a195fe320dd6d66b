package main

import (
	"os"

	"github.com/arnold/lifehub-api/internal/config"
	"github.com/arnold/lifehub-api/internal/database"
	"github.com/arnold/lifehub-api/internal/logger"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/arnold/lifehub-api/internal/routes"
	"github.com/arnold/lifehub-api/internal/worker"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	if err := logger.Init(os.Getenv("DEBUG") != ""); err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		logger.L.Fatalw("database connection failed", "error", err)
	}
	if err := database.Migrate(); err != nil {
		logger.L.Fatalw("migration failed", "error", err)
	}
	if err := database.SeedThemes(); err != nil {
		logger.L.Fatalw("theme seeding failed", "error", err)
	}

	// Background jobs only run when a broker is configured
	if cfg.RedisURL != "" {
		stopWorker, err := worker.Start(cfg, database.DB)
		if err != nil {
			logger.L.Fatalw("worker start failed", "error", err)
		}
		defer stopWorker()

		stopScheduler, err := worker.StartScheduler(cfg)
		if err != nil {
			logger.L.Fatalw("scheduler start failed", "error", err)
		}
		defer stopScheduler()
	}

	app := fiber.New(fiber.Config{
		AppName: "LifeHub API",
	})

	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	routes.Setup(app)

	logger.L.Infow("listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.L.Fatalw("server stopped", "error", err)
	}
}

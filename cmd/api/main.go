package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/kipkoech12/travelnest/cache"
	config "github.com/kipkoech12/travelnest/configs"
	"github.com/kipkoech12/travelnest/database"
	"github.com/kipkoech12/travelnest/handlers"
	"github.com/kipkoech12/travelnest/jobs"
	"github.com/kipkoech12/travelnest/notifications"
	"github.com/kipkoech12/travelnest/payments"
	"github.com/kipkoech12/travelnest/routes"
	"github.com/kipkoech12/travelnest/services"
	"github.com/robfig/cron/v3"
)

func main() {
	cfg := config.Load()

	database.ConnectDB(cfg.DatabaseURL)
	database.Migrate()
	cache.Init(cfg.RedisAddr)

	store := database.NewStore(database.DB)
	mailer := notifications.NewBrevoService(cfg.BrevoAPIKey, cfg.SenderEmail, cfg.SenderName)
	gateway := payments.NewChapaService(cfg.ChapaBaseURL, cfg.ChapaSecretKey)

	dispatcher := jobs.NewDispatcher(cfg.WorkerCount, cfg.QueueSize, jobs.Backoff{
		MaxAttempts: 3,
		BaseDelay:   2 * time.Second,
	})
	dispatcher.Start(context.Background())
	defer dispatcher.Stop()

	go func() {
		for res := range dispatcher.Results() {
			if res.Err != nil {
				log.Printf("Job result: %s (%s) failed after %d attempt(s) in %s", res.Name, res.JobID, res.Attempts, res.Duration)
			}
		}
	}()

	var m notifications.Mailer
	if mailer != nil {
		m = mailer
	}
	notifier := jobs.NewNotifier(store, m, dispatcher)
	paymentService := services.NewPaymentService(store, gateway, cfg.PaymentCurrency, cfg.DefaultPhone)

	handlers.Init(paymentService, notifier, cfg.CloudinaryURL)

	c := cron.New()
	c.AddFunc("*/30 * * * *", jobs.LogStalePendingPayments)
	go c.Start()
	log.Println("✅ Cron job for stale payment sweep scheduled successfully.")

	app := fiber.New(fiber.Config{
		AppName:       "TravelNest",
		CaseSensitive: true,
		StrictRouting: true,
		ReadTimeout:   15 * time.Second,
		WriteTimeout:  15 * time.Second,
		IdleTimeout:   60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "success",
			"message": "Welcome to TravelNest API",
		})
	})

	routes.ListingRoutes(app)
	routes.BookingRoutes(app)
	routes.PaymentRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "ok",
		})
	})

	log.Printf("✅ Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}

package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"referral-auth/internal/config"
	"referral-auth/internal/database"
	"referral-auth/internal/delivery"
	"referral-auth/internal/logger"
	"referral-auth/internal/repository"
	"referral-auth/internal/service"
)

func main() {
	cfg := config.LoadConfig()

	zlog, err := logger.New(cfg.Development)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync()

	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		zlog.Fatalf("Failed to connect to postgres: %v", err)
	}
	zlog.Info("Connected to PostgreSQL")

	rdb, err := database.ConnectRedis(cfg)
	if err != nil {
		zlog.Fatalf("Failed to connect to redis: %v", err)
	}
	zlog.Info("Connected to Redis")

	users := repository.NewGormUserRepository(db)
	otpStore := service.NewRedisOTPStore(rdb)
	codes := service.NewCodeGenerator(nil)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.TokenTTL)

	var sms service.SMSSender
	if cfg.SMSAccountSID != "" && cfg.SMSAuthToken != "" {
		sms = service.NewTwilioSMSSender(cfg.SMSAccountSID, cfg.SMSAuthToken, cfg.SMSFromNumber)
		zlog.Info("Using Twilio SMS sender")
	} else {
		sms = service.NewLogSMSSender(zlog)
		zlog.Warn("Twilio credentials are not set, sms codes will be written to the log")
	}

	authService := service.NewAuthService(users, otpStore, codes, sms, tokens, zlog, cfg.OTPTTL, cfg.SMSTimeout)
	profileService := service.NewProfileService(users, zlog)

	authHandler := delivery.NewAuthHandler(authService, zlog)
	profileHandler := delivery.NewProfileHandler(profileService, zlog)

	app := fiber.New(fiber.Config{
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

	// Middleware
	app.Use(fiberlogger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	// Авторизация по номеру телефона:
	// 1. POST /api/auth/send_sms   - отправить смс код
	// 2. POST /api/auth/verify_sms - проверить код и получить токен
	app.Post("/api/auth/send_sms", authHandler.SendSMS)
	app.Post("/api/auth/verify_sms", authHandler.VerifySMS)

	// Профиль и реферальная программа (требуют bearer токен)
	profile := app.Group("/api/profile", delivery.AuthRequired(tokens))
	profile.Get("/", profileHandler.GetProfile)
	profile.Patch("/update", profileHandler.UpdateProfile)

	zlog.Infof("Starting server on %s", cfg.HTTPAddr)
	zlog.Fatal(app.Listen(cfg.HTTPAddr))
}

package main

import (
	"os"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/stjohns-golfday/golfday-api/config"
	"github.com/stjohns-golfday/golfday-api/internal/handler"
	"github.com/stjohns-golfday/golfday-api/internal/mailer"
	"github.com/stjohns-golfday/golfday-api/internal/middleware"
	"github.com/stjohns-golfday/golfday-api/internal/repository"
	"github.com/stjohns-golfday/golfday-api/internal/service"
	"github.com/stjohns-golfday/golfday-api/pkg/database"
	"github.com/stjohns-golfday/golfday-api/pkg/rabbitmq"
	"github.com/stjohns-golfday/golfday-api/pkg/validator"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	log.Info().Msg("database connected")

	// Optional: announce created registrations on the bus.
	var publisher service.Publisher
	if cfg.RabbitURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitURL, &log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to RabbitMQ")
		}
		defer p.Close()
		publisher = p
	} else {
		log.Warn().Msg("RABBITMQ_URL not set, registration events disabled")
	}

	// Repositories
	packageRepo := repository.NewPackageRepository(db)
	regRepo := repository.NewRegistrationRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Services
	sender := mailer.NewResendSender(cfg.ResendAPIKey)
	regSvc := service.NewRegistrationService(regRepo, packageRepo, publisher, &log)
	invoiceSvc := service.NewInvoiceService(regRepo, sender, cfg.MailFrom, &log)
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret, &log)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "golfday-api"})
	})

	handler.NewRegistrationHandler(regSvc, invoiceSvc, packageRepo).RegisterRoutes(e)
	handler.NewAuthHandler(authSvc).RegisterRoutes(e)

	log.Info().Msgf("golfday-api starting on :%s", cfg.ServerPort)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

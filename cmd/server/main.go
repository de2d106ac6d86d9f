package main

import (
	"database/sql"
	"net/http"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"communityguestbook/config"
	_ "communityguestbook/docs"
	httpdelivery "communityguestbook/internal/delivery/http"
	"communityguestbook/internal/delivery/http/controllers"
	"communityguestbook/internal/delivery/http/middleware"
	"communityguestbook/migrations"

	"communityguestbook/internal/adapters/auth"
	"communityguestbook/internal/adapters/email"
	"communityguestbook/internal/adapters/permission"
	"communityguestbook/internal/adapters/token"
	"communityguestbook/internal/repository/postgres"
	"communityguestbook/internal/services"
)

// @title Community Guestbook API
// @version 1.0
// @description Guestbook moderation and contact directory service.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to reach database", "err", err)
		os.Exit(1)
	}

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		logger.Error("failed to set migration dialect", "err", err)
		os.Exit(1)
	}
	if err := goose.Up(db, "."); err != nil {
		logger.Error("failed to run migrations", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSSESRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		logger.Error("failed to create mailer", "err", err)
		os.Exit(1)
	}

	guestbookRepo := postgres.NewGuestbookRepository(db)
	rosterRepo := postgres.NewRosterRepository(db)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), cfg.WebmasterEmail, logger)
	guestbookService := services.NewGuestbookService(guestbookRepo, token.NewGenerator(), emailService, cfg.BaseURL, logger)
	contactService := services.NewContactService(rosterRepo, emailService)

	guestbookController := controllers.NewGuestbookController(logger, guestbookService, permission.NewStaticCheck(cfg.CreateScopes))
	contactController := controllers.NewContactController(logger, contactService)

	router := httpdelivery.NewRouter(guestbookController, contactController, auth.NewJWTVerifier(cfg.JWTSecret))
	handler := middleware.LoggingMiddleware(logger, middleware.CORS(cfg.CORSAllowedOrigins, router))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
	if err := server.ListenAndServe(); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

package main

import (
	"github.com/joho/godotenv"
	"gorm.io/gorm/logger"

	"github.com/coopfed/portal/config"
	applog "github.com/coopfed/portal/internal/logger"

	"github.com/coopfed/portal/internal/app"
	"github.com/coopfed/portal/internal/auth"
	"github.com/coopfed/portal/internal/db"
	"github.com/coopfed/portal/internal/mail"
	"github.com/coopfed/portal/internal/storage"
)

func main() {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	applog.InitializeAndConfigure()

	cfg, err := config.Load()
	if err != nil {
		applog.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.SessionSecret == "" {
		applog.Fatal("SESSION_SECRET must be set")
	}

	database, err := db.New(db.Options{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		LogLevel: logger.Warn,
	})
	if err != nil {
		applog.Fatalf("Failed to connect to database: %v", err)
	}

	store, err := storage.NewDisk(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		applog.Fatalf("Failed to initialize blob store: %v", err)
	}

	mailer, err := mail.NewSMTP(mail.SMTPOptions{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
		To:       cfg.MailTo,
	})
	if err != nil {
		applog.Fatalf("Failed to initialize mailer: %v", err)
	}

	server := app.New(app.Options{
		DB:       database,
		Store:    store,
		Mailer:   mailer,
		Verifier: auth.NewVerifier([]byte(cfg.SessionSecret)),
	})

	applog.Infof("Listening on %s", cfg.ListenAddr)
	if err := server.Listen(cfg.ListenAddr); err != nil {
		applog.Fatalf("Server stopped: %v", err)
	}
}

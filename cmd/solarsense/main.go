package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"

	"github.com/solarsense-dev/solarsense/db"
	"github.com/solarsense-dev/solarsense/internal/auth"
	"github.com/solarsense-dev/solarsense/internal/config"
	"github.com/solarsense-dev/solarsense/internal/handlers"
	"github.com/solarsense-dev/solarsense/internal/mailer"
	"github.com/solarsense-dev/solarsense/internal/report"
	"github.com/solarsense-dev/solarsense/internal/router"
	"github.com/solarsense-dev/solarsense/internal/scheduler"
	"github.com/solarsense-dev/solarsense/internal/services"
	"github.com/solarsense-dev/solarsense/internal/weatherbit"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	cfg, err := config.Load()

	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if err := auth.Init(cfg.JWTSecret, cfg.JWTExpiresIn); err != nil {
		log.Fatalf("Error initializing auth: %v", err)
	}

	if err := db.ConnectDatabase(cfg.DatabaseDSN); err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	clock := clockwork.NewRealClock()

	weather := weatherbit.NewClient(cfg.WeatherAPIKey, cfg.WeatherBaseURL, cfg.WeatherTimeout)
	files := report.NewBuilder(cfg.ReportsDir)
	mail := mailer.New(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPassword, cfg.MailUser)

	reports := services.NewReportService(weather, files, mail, clock, cfg.FetchDelay)
	reports.SetNotifier(handlers.BroadcastProjectRefresh)
	handlers.SetReportService(reports)

	daily := scheduler.New(func(ctx context.Context, now time.Time) {
		if err := reports.RunDaily(ctx, now); err != nil {
			log.Printf("Daily update finished with errors: %v", err)
		}
	}, clock)

	daily.Start()
	defer daily.Stop()

	r := router.NewRouter()

	go func() {
		if err := r.Run(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
}

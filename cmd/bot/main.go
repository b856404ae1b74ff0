package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"rideform/internal/bot"
	"rideform/internal/config"
	"rideform/internal/repositories/mongodb"
	"rideform/pkg/database"
	"rideform/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Telegram.BotToken == "" {
		log.Fatal("Set TELEGRAM_BOT_TOKEN or BOT_TOKEN")
	}

	appLogger, err := logger.NewLogger(&logger.Config{Level: cfg.App.LogLevel})
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Close()

	repo := mongodb.NewRideRequestRepository(db.Collection(cfg.Database.Collection))

	// The default client has no timeout, which long polling needs.
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		appLogger.Fatalf("Failed to init telegram bot: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	router := bot.NewRouter(api, repo, cfg.Security.AllowedIDs, cfg.Telegram.PollTimeout, appLogger)
	router.Run(ctx)
}

package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/aliskhannn/cranial-nerves-bot/internal/config"
	"github.com/aliskhannn/cranial-nerves-bot/internal/delivery/telegram"
	"github.com/aliskhannn/cranial-nerves-bot/internal/infra/postgres"
	"github.com/aliskhannn/cranial-nerves-bot/internal/logger"
	"github.com/aliskhannn/cranial-nerves-bot/internal/repository"
	"github.com/aliskhannn/cranial-nerves-bot/internal/service"
	"github.com/aliskhannn/cranial-nerves-bot/internal/storage"
)

func main() {
	// A missing .env file is fine; the environment may already be set.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	lg, err := logger.New(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repositories and services.
	entryRepo, err := repository.NewEntryRepository(cfg.DatasetPath)
	if err != nil {
		lg.Fatal("failed to load study guide", zap.Error(err))
	}
	lg.Info("study guide loaded", zap.String("source", entryRepo.Source()))

	studyService := service.NewStudyService(entryRepo, service.NewRoundBuilder(nil))

	// History is optional. Leave the repository a nil interface when the
	// database is not configured so the service runs as a no-op.
	var historyRepo service.HistoryRepository
	if cfg.DB.Enabled() {
		dsn, _ := cfg.DB.DSN()
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			lg.Fatal("failed to connect to database", zap.Error(err))
		}
		defer pool.Close()

		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool, lg); err != nil {
				lg.Fatal("failed to apply migrations", zap.Error(err))
			}
		}

		historyRepo = repository.NewHistoryRepository(pool, postgres.NewTransactor(pool))
		lg.Info("study history enabled")
	} else {
		lg.Info("DATABASE_URL is not set, study history disabled")
	}
	historyService := service.NewHistoryService(historyRepo)

	if cfg.DatasetReload != "" {
		if !entryRepo.Reloadable() {
			lg.Warn("dataset_reload ignored for the embedded study guide")
		} else {
			reloadService, err := service.NewReloadService(entryRepo, cfg.DatasetReload, lg)
			if err != nil {
				lg.Fatal("invalid dataset_reload", zap.Error(err))
			}
			go reloadService.Start(ctx)
		}
	}

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		lg.Fatal("failed to create telegram bot", zap.Error(err))
	}
	bot.Debug = cfg.Debug

	// Set commands.
	_, err = bot.Request(tgbotapi.NewSetMyCommands(telegram.BotCommands(historyService.Enabled())...))
	if err != nil {
		lg.Warn("failed to set bot commands", zap.Error(err))
	}

	lg.Info("authorized on account", zap.String("username", bot.Self.UserName))

	handler := telegram.NewHandler(
		bot,
		lg,
		studyService,
		historyService,
		storage.NewPlayStorage(),
	)
	if err := handler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		lg.Error("handler stopped with error", zap.Error(err))
	}

	bot.StopReceivingUpdates()
	lg.Info("shutdown signal received")
}

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"vacaybot/internal/api"
	"vacaybot/internal/config"
	"vacaybot/internal/flow"
	"vacaybot/internal/handler"
	"vacaybot/internal/service"
	"vacaybot/internal/store"
	"vacaybot/pkg/telegram"
)

func main() {
	logrus.Info("Initializing config...")
	cfg := config.GetConfig()
	logrus.Info("Config initialized...")

	// Открываем хранилище явно: один хэндл на процесс, закрывается при выходе
	st, err := store.Open(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to open store:", err)
	}
	defer st.Close()

	collections, err := service.NewCollections(st)
	if err != nil {
		logrus.Fatal("Failed to create collections:", err)
	}

	logger := logrus.New()

	absenceService := service.NewAbsenceService(collections, logger)
	userService := service.NewUserService(collections, logger)
	roleService := service.NewRoleService(collections, logger)

	// Демо-данные для пустой базы
	if cfg.SeedDemoData {
		if err := service.SeedDemoData(collections, logger); err != nil {
			logrus.Infof("Warning: Failed to seed demo data: %v", err)
		}
	}

	controller := flow.NewController(absenceService, logger)

	// HTTP API
	server := api.NewServer(absenceService, userService, roleService, logger)
	go func() {
		logrus.Infof("HTTP API listening on %s", cfg.HTTPAddr)
		if err := server.Listen(cfg.HTTPAddr); err != nil {
			logrus.Fatal("HTTP server failed:", err)
		}
	}()

	// Telegram клиент
	client, err := telegram.NewClient(cfg.TelegramToken)
	if err != nil {
		logrus.Fatal("Failed to create Telegram client:", err)
	}

	logrus.Infof("Authorized on account %s", client.Bot.Self.UserName)

	botHandler := handler.NewHandler(client, controller, absenceService, userService, cfg)

	updates := client.Bot.GetUpdatesChan(client.UpdateConfig)

	// Обработка сигналов для graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go botHandler.HandleUpdates(updates)

	logrus.Info("Bot started. Press Ctrl+C to stop.")
	<-stop

	if err := server.Shutdown(); err != nil {
		logrus.Infof("Error stopping HTTP server: %v", err)
	}

	if err := st.Close(); err != nil {
		logrus.Infof("Error closing store: %v", err)
	}

	logrus.Info("Bot stopped gracefully")
}

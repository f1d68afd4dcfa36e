package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/mealtrail/internal/api"
	"github.com/terraincognita07/mealtrail/internal/config"
	"github.com/terraincognita07/mealtrail/internal/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config load failed: %v", err)
	}

	appLogger := newLogger(cfg)

	database, err := db.OpenSQLite(cfg.DatabasePath, appLogger)
	if err != nil {
		appLogger.Fatalf("database init failed: %v", err)
	}

	handler := api.NewHandler(database, api.SessionCookieSettings{
		Name:   cfg.CookieName,
		Secure: cfg.CookieSecure,
		TTL:    cfg.SessionTTL,
	}, appLogger)

	app := fiber.New(fiber.Config{
		AppName:               "Mealtrail",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Errorf("server shutdown failed: %v", err)
		}
	}()

	appLogger.WithFields(logrus.Fields{
		"port": cfg.ServerPort,
		"db":   cfg.DatabasePath,
	}).Info("mealtrail listening")

	if err := app.Listen(":" + cfg.ServerPort); err != nil {
		appLogger.Fatalf("server exited: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func newLogger(cfg config.Config) *logrus.Logger {
	appLogger := logrus.New()
	appLogger.SetOutput(os.Stdout)

	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		appLogger.SetLevel(level)
	}

	if cfg.LogFormat == "json" {
		appLogger.SetFormatter(&logrus.JSONFormatter{})
		return appLogger
	}
	appLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return appLogger
}

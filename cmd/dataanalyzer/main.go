package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"

	"dataanalyzer/internal/app"
	"dataanalyzer/internal/fonts"
	u "dataanalyzer/internal/utils"
)

func main() {
	cfg := u.LoadConfig()
	// Allow common container env var to override the font source.
	if v := os.Getenv("FONT_SOURCE_URL"); v != "" {
		cfg.Fonts.SourceURL = v
		u.AppConfig = cfg
	}
	u.InitLogger(
		cfg.Logger.File,
		cfg.Logger.MaxSizeMB,
		cfg.Logger.MaxBackups,
		cfg.Logger.MaxAgeDays,
		cfg.Logger.Compress,
		cfg.Logger.Level,
	)
	u.SetLogLevel(cfg.Logger.Level)

	// The font face is the one required style dependency. Without it the
	// server must not come up; there is no fallback face.
	resolveCtx, resolveCancel := context.WithTimeout(context.Background(), 30*time.Second)
	face, err := fonts.Resolve(resolveCtx, cfg)
	resolveCancel()
	if err != nil {
		u.Error("Failed to resolve font face", "error", err)
		os.Exit(1)
	}

	var redisClient *redis.Client
	if cfg.Cache.PageCacheEnabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr: cfg.Cache.RedisHost,
			DB:   cfg.Cache.PageCacheDB,
		})
	}

	idleConnsClosed := make(chan struct{})

	app := app.SetupApp(cfg, redisClient, face)

	startServer(app, cfg, idleConnsClosed)
	<-idleConnsClosed
}

// startServer starts the Fiber app and listens for shutdown signals
func startServer(app *fiber.App, cfg u.Config, idleConnsClosed chan struct{}) {
	go func() {
		if err := app.Listen(cfg.Server.Host + cfg.Server.Port); err != nil {
			u.Error("Server error", "error", err)
		}
	}()

	// Listen for OS termination signals
	sigint := make(chan os.Signal, 1)
	signal.Notify(sigint, syscall.SIGINT, syscall.SIGTERM)
	<-sigint

	u.Warn("Shutdown signal received, closing server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		u.Error("Server forced to shutdown", "error", err)
	}

	close(idleConnsClosed)
	u.Info("Server stopped cleanly")
}

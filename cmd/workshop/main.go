// Package main starts the workshop order-management HTTP server.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/mmeshcher/workshop-system/internal/auth"
	"github.com/mmeshcher/workshop-system/internal/config"
	"github.com/mmeshcher/workshop-system/internal/handler"
	"github.com/mmeshcher/workshop-system/internal/i18n"
	"github.com/mmeshcher/workshop-system/internal/middleware"
	"github.com/mmeshcher/workshop-system/internal/repository"
	"github.com/mmeshcher/workshop-system/internal/service"
	"github.com/mmeshcher/workshop-system/internal/sms"
	"github.com/mmeshcher/workshop-system/internal/storage"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	sugar := logger.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	var store storage.Store
	if cfg.RedisAddress != "" {
		redisStore, err := storage.NewRedisStore(cfg.RedisAddress, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			sugar.Fatalw("storage initialization error", "error", err.Error())
		}
		store = redisStore
	} else {
		sugar.Info("no redis address configured, using in-memory storage")
		store = storage.NewMemoryStore()
	}
	defer store.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := repository.NewDB(store, logger)
	if !db.TestConnection(ctx) {
		sugar.Fatalw("storage connection probe failed")
	}
	if err := db.InitializeDatabase(ctx); err != nil {
		sugar.Fatalw("database initialization error", "error", err.Error())
	}
	if err := db.SeedDatabaseIfEmpty(ctx); err != nil {
		sugar.Fatalw("database seeding error", "error", err.Error())
	}

	authStore := auth.NewStore(ctx, store, logger)

	smsProvider, err := sms.NewProvider(sms.Config{
		Provider:         cfg.SmsProvider,
		TwilioAccountSID: cfg.TwilioSID,
		TwilioAuthToken:  cfg.TwilioToken,
		TwilioFromNumber: cfg.TwilioFrom,
	}, logger)
	if err != nil {
		sugar.Fatalw("sms provider error", "error", err.Error())
	}
	sugar.Infow("sms provider selected", "provider", smsProvider.Name())

	translator, err := i18n.NewTranslator()
	if err != nil {
		sugar.Fatalw("translations error", "error", err.Error())
	}

	svc := service.NewService(db, smsProvider, store, logger, cfg.DefaultLanguage)

	authMiddleware := middleware.NewAuthMiddleware(authStore)
	h := handler.NewHandler(svc, authStore, translator, logger, authMiddleware)

	server := &http.Server{
		Addr:    cfg.RunAddress,
		Handler: h.SetupRouter(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("starting workshop server", "addr", cfg.RunAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		sugar.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		sugar.Info("server stopped gracefully")
		return nil
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("application terminated with error", "error", err)
	}
}

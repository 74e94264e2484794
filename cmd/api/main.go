package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pix-bank/config"
	httpHandler "pix-bank/internal/adapter/http/handler"
	"pix-bank/internal/adapter/report"
	"pix-bank/internal/adapter/storage/memory"
	pgStorage "pix-bank/internal/adapter/storage/postgres"
	redisStorage "pix-bank/internal/adapter/storage/redis"
	"pix-bank/internal/core/ports"
	"pix-bank/internal/service"
	"pix-bank/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	configPath := flag.String("config", "", "path to a config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Bool("journal_sink", cfg.Database.Enabled).
		Bool("redis", cfg.Redis.Enabled).
		Msg("Starting PIX Bank")

	ctx := context.Background()
	var healthCheckers []ports.HealthChecker

	// Audit journal: always logs, persists to PostgreSQL when enabled.
	var journalStore ports.JournalStore
	if cfg.Database.Enabled {
		pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
		}
		defer pool.Close()
		journalStore = pgStorage.NewJournalStore(pool)
		healthCheckers = append(healthCheckers, pgStorage.NewHealthCheck(pool))
	}
	journal := service.NewJournalService(journalStore, logger.Component(log, "journal"))

	// Ledger
	accountRepo := memory.NewAccountRepo(journal, logger.Component(log, "accounts"))
	investmentRepo := memory.NewInvestmentRepo(accountRepo, logger.Component(log, "investments"))

	deps := httpHandler.RouterDeps{
		Accounts:        accountRepo,
		Investments:     investmentRepo,
		Renderer:        report.NewStatementRenderer("PIX Bank"),
		Journal:         journal,
		IdempotencyTTL:  cfg.Ledger.IdempotencyTTL,
		JournalPageSize: cfg.Ledger.JournalPageSize,
		Logger:          log,
	}

	if cfg.Redis.Enabled {
		rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer rdb.Close()

		deps.IdempotencyCache = redisStorage.NewIdempotencyCache(rdb)
		if cfg.Ledger.RateLimitEnabled {
			deps.RateLimitStore = redisStorage.NewRateLimitStore(rdb)
		}
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}
	deps.HealthCheckers = healthCheckers

	router := httpHandler.SetupRouter(deps)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
	if err := journal.Close(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Pending journal writes abandoned")
	}

	log.Info().Msg("Server exited")
}

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
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/internal/api/handler"
	"jadwal-guru/internal/api/router"
	"jadwal-guru/internal/fixture"
	"jadwal-guru/internal/repository"
	"jadwal-guru/internal/service"
	"jadwal-guru/internal/session"
	"jadwal-guru/pkg/database"
	applogger "jadwal-guru/pkg/logger"
	"jadwal-guru/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	// 1. .env is optional
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}

	// 2. config
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 3. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("fixtures", cfg.Fixtures.Source),
		zap.String("log_level", cfg.Log.Level),
	)

	// 4. fixtures, read once
	ds, err := loadFixtures(cfg, logger)
	if err != nil {
		logger.Fatal("failed to load fixtures", zap.Error(err))
	}
	logger.Info("fixtures loaded", zap.Any("rows", ds.Counts()))

	// 5. redis is optional unless it holds the durable session scope
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			if cfg.Session.DurableStore == config.SessionStoreRedis {
				logger.Fatal("redis unavailable for the session store", zap.Error(err))
			}
			logger.Warn("redis unavailable, login rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	}

	provider, err := session.NewProvider(&cfg.Session, rdb, logger)
	if err != nil {
		logger.Fatal("failed to init sessions", zap.Error(err))
	}

	// 6. Repository → Service → Handler
	repo := repository.NewRepository(ds)
	svc := service.NewService(cfg, repo, logger)
	h := handler.NewHandler(svc)

	// 7. router
	engine := router.Setup(cfg, h, provider, rdb, logger)

	// 8. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}

// loadFixtures reads the dataset from the configured source
func loadFixtures(cfg *config.Config, logger *zap.Logger) (*fixture.Dataset, error) {
	if cfg.Fixtures.Source != config.FixtureSourcePostgres {
		return fixture.LoadDir(cfg.Fixtures.Dir)
	}

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// tables are copied into memory, the connection is not needed afterwards
	defer sqlDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return fixture.LoadDB(ctx, db)
}

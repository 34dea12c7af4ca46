// Command seed creates the fixture tables in PostgreSQL and fills them from
// the JSON fixture directory. Tables that already hold users are left alone
// unless -reset drops them first.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"jadwal-guru/config"
	"jadwal-guru/internal/fixture"
	"jadwal-guru/pkg/database"
	applogger "jadwal-guru/pkg/logger"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	dir := flag.String("dir", "", "fixture directory (defaults to fixtures.dir)")
	reset := flag.Bool("reset", false, "drop the fixture tables before seeding")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "failed to read .env: %v\n", err)
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if *dir == "" {
		*dir = cfg.Fixtures.Dir
	}
	ds, err := fixture.LoadDir(*dir)
	if err != nil {
		logger.Fatal("failed to read fixtures", zap.String("dir", *dir), zap.Error(err))
	}

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}
	defer sqlDB.Close()

	if *reset {
		if err := database.DropFixtureTables(sqlDB, logger); err != nil {
			logger.Fatal("reset failed", zap.Error(err))
		}
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeded, err := fixture.Seed(ctx, db, ds)
	if err != nil {
		logger.Fatal("seeding failed", zap.Error(err))
	}
	if !seeded {
		logger.Info("users table is not empty, nothing seeded")
		return
	}
	logger.Info("fixtures seeded", zap.Any("rows", ds.Counts()))
}

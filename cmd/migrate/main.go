package main

import (
	"context"
	"flag"
	"log"

	"example/cosmic-api/app"
	"example/cosmic-api/app/config"
	"example/cosmic-api/app/logging"
	"example/cosmic-api/migrations"

	"go.uber.org/zap"
)

func main() {
	down := flag.Bool("down", false, "roll back the most recent migration instead of applying pending ones")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := logging.New(cfg.Logs)
	defer logger.Sync()

	db, err := app.OpenDB(context.Background(), cfg.DB)
	if err != nil {
		logger.Fatal("failed to connect", zap.Error(err))
	}
	defer db.Close()

	m, err := migrations.New(db, logger)
	if err != nil {
		logger.Fatal("failed to prepare migrations", zap.Error(err))
	}

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}
	if err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
}

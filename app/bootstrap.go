package app

import (
	"context"
	"database/sql"
	"fmt"

	"example/cosmic-api/app/config"
	"example/cosmic-api/app/llm"
	"example/cosmic-api/app/mailer"
	"example/cosmic-api/app/report"
	"example/cosmic-api/migrations"

	"go.uber.org/zap"
)

// Bootstrap opens the database and builds every collaborator from cfg.
// The caller owns the returned *sql.DB.
func Bootstrap(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Server, *sql.DB, error) {
	db, err := OpenDB(ctx, cfg.DB)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("connected to postgres")

	if cfg.Server.MigrateOnStart {
		m, err := migrations.New(db, logger)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		if err := m.Up(); err != nil {
			db.Close()
			return nil, nil, err
		}
	}

	completer, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("llm: %w", err)
	}
	if _, ok := completer.(llm.Unconfigured); ok {
		logger.Warn("LLM_API_KEY not set; report generation will fail")
	}

	m, err := mailer.New(ctx, cfg.Email)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("mailer: %w", err)
	}
	if _, ok := m.(mailer.Unconfigured); ok {
		logger.Warn("email provider not configured; report emails will fail")
	}

	if cfg.Stripe.SecretKey == "" {
		logger.Warn("STRIPE_SECRET_KEY not set; checkout will fail")
	}

	srv := NewServer(Deps{
		Store:     NewStore(db),
		Config:    cfg,
		Logger:    logger,
		Completer: completer,
		Extractor: report.NewPrefixExtractor(),
		Mailer:    m,
		Checkout:  NewStripeGateway(cfg.Stripe.SecretKey),
	})
	return srv, db, nil
}

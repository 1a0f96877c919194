// Package app holds the HTTP handlers and Postgres queries for the report service.
package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"example/cosmic-api/app/models"
)

// Credits returns the user's balance. A user with no ledger row has 0.
func (s *Store) Credits(ctx context.Context, userID int64) (int, error) {
	var credits int
	err := s.db.QueryRowContext(ctx, `
		SELECT credits_available
		FROM user_report_credits
		WHERE user_id = $1;
	`, userID).Scan(&credits)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("select credits: %w", err)
	}
	return credits, nil
}

// SaveReportWithCredit spends one credit and stores the report in a single
// transaction. If no credit is left it returns ErrInsufficientCredits and
// nothing is written. On success r.ID and r.CreatedAt are filled in.
func (s *Store) SaveReportWithCredit(ctx context.Context, r *models.Report) (int, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var remaining int
	err = tx.QueryRowContext(ctx, `
		UPDATE user_report_credits
		SET credits_available = credits_available - 1, updated_at = now()
		WHERE user_id = $1 AND credits_available > 0
		RETURNING credits_available;
	`, r.UserID).Scan(&remaining)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, ErrInsufficientCredits
		}
		return 0, fmt.Errorf("decrement credits: %w", err)
	}

	if err := insertReport(ctx, tx, r); err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit report: %w", err)
	}
	return remaining, nil
}

// CreditGrant is one verified, paid checkout session.
type CreditGrant struct {
	EventID    string
	EventType  string
	UserID     int64
	CustomerID string
	Credits    int
}

// GrantCredits records the event id and adds the credits in one transaction.
// A replayed event id returns ErrDuplicateEvent and changes nothing.
func (s *Store) GrantCredits(ctx context.Context, g CreditGrant) (int, error) {
	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO processed_stripe_events (event_id, event_type)
		VALUES ($1, $2)
		ON CONFLICT (event_id) DO NOTHING;
	`, g.EventID, g.EventType)
	if err != nil {
		return 0, fmt.Errorf("record stripe event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return 0, ErrDuplicateEvent
	}

	if g.CustomerID != "" {
		_, err = tx.ExecContext(ctx, `
			UPDATE users
			SET stripe_customer_id = $1
			WHERE id = $2 AND stripe_customer_id IS DISTINCT FROM $1;
		`, g.CustomerID, g.UserID)
		if err != nil {
			return 0, fmt.Errorf("update stripe customer: %w", err)
		}
	}

	var balance int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO user_report_credits (user_id, credits_available, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE
		SET credits_available = user_report_credits.credits_available + EXCLUDED.credits_available,
			updated_at = now()
		RETURNING credits_available;
	`, g.UserID, g.Credits).Scan(&balance)
	if err != nil {
		if pqCode(err) == pqForeignKeyViolation {
			return 0, ErrUserNotFound
		}
		return 0, fmt.Errorf("grant credits: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit grant: %w", err)
	}
	return balance, nil
}

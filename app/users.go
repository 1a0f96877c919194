package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"example/cosmic-api/app/models"
)

// normalizeEmail is applied before every insert and lookup.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// CreateUser inserts a new account. A taken email gives ErrDuplicateEmail.
func (s *Store) CreateUser(ctx context.Context, email, passwordHash string) (models.User, error) {
	user := models.User{Email: email, PasswordHash: passwordHash}
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id, created_at;
	`, email, passwordHash).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		if pqCode(err) == pqUniqueViolation {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.getUser(ctx, `
		SELECT id, email, password_hash, stripe_customer_id, created_at
		FROM users
		WHERE email = $1;
	`, email)
}

func (s *Store) GetUserByID(ctx context.Context, id int64) (models.User, error) {
	return s.getUser(ctx, `
		SELECT id, email, password_hash, stripe_customer_id, created_at
		FROM users
		WHERE id = $1;
	`, id)
}

func (s *Store) getUser(ctx context.Context, q string, arg any) (models.User, error) {
	var (
		user     models.User
		stripeID sql.NullString
	)
	err := s.db.QueryRowContext(ctx, q, arg).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&stripeID,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("select user: %w", err)
	}
	user.StripeCustomerID = stripeID.String
	return user, nil
}

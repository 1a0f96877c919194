package app

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"example/cosmic-api/app/models"
)

const (
	shareTokenBytes    = 24
	shareTokenAttempts = 3
)

// newShareToken returns 48 hex characters from crypto/rand.
func newShareToken() (string, error) {
	b := make([]byte, shareTokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertReport(ctx context.Context, q queryRower, r *models.Report) error {
	err := q.QueryRowContext(ctx, `
		INSERT INTO reports (
			user_id, report_title,
			input_name, input_birth_date, input_birth_time, input_birth_place,
			sun_sign,
			slide1_title, slide1_content,
			slide2_title, slide2_content,
			slide3_title, slide3_content,
			slide4_title, slide4_content,
			slide5_title, slide5_content
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id, created_at;
	`,
		r.UserID, r.Title,
		r.Input.Name, r.Input.BirthDate, r.Input.BirthTime, r.Input.BirthPlace,
		nullIfEmpty(r.SunSign),
		r.Slides[0].Title, r.Slides[0].Content,
		r.Slides[1].Title, r.Slides[1].Content,
		r.Slides[2].Title, r.Slides[2].Content,
		r.Slides[3].Title, r.Slides[3].Content,
		r.Slides[4].Title, r.Slides[4].Content,
	).Scan(&r.ID, &r.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

// ListReports returns the user's report summaries, newest first.
func (s *Store) ListReports(ctx context.Context, userID int64) ([]models.ReportSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT
			id,
			user_id,
			report_title,
			created_at,
			input_name,
			input_birth_date,
			input_birth_time,
			input_birth_place,
			is_shared,
			share_token
		FROM reports
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()

	var out []models.ReportSummary
	for rows.Next() {
		var (
			r     models.ReportSummary
			token sql.NullString
		)
		if err := rows.Scan(
			&r.ID,
			&r.UserID,
			&r.ReportTitle,
			&r.CreatedAt,
			&r.InputName,
			&r.InputBirthDate,
			&r.InputBirthTime,
			&r.InputBirthPlace,
			&r.IsShared,
			&token,
		); err != nil {
			return nil, err
		}
		if token.Valid {
			r.ShareToken = &token.String
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

const reportColumns = `
	id, user_id, report_title,
	input_name, input_birth_date, input_birth_time, input_birth_place,
	sun_sign,
	slide1_title, slide1_content,
	slide2_title, slide2_content,
	slide3_title, slide3_content,
	slide4_title, slide4_content,
	slide5_title, slide5_content,
	is_shared, share_token, share_token_generated_at, created_at`

func scanReport(row *sql.Row) (models.Report, error) {
	var (
		r           models.Report
		sunSign     sql.NullString
		token       sql.NullString
		generatedAt sql.NullTime
	)
	err := row.Scan(
		&r.ID, &r.UserID, &r.Title,
		&r.Input.Name, &r.Input.BirthDate, &r.Input.BirthTime, &r.Input.BirthPlace,
		&sunSign,
		&r.Slides[0].Title, &r.Slides[0].Content,
		&r.Slides[1].Title, &r.Slides[1].Content,
		&r.Slides[2].Title, &r.Slides[2].Content,
		&r.Slides[3].Title, &r.Slides[3].Content,
		&r.Slides[4].Title, &r.Slides[4].Content,
		&r.IsShared, &token, &generatedAt, &r.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Report{}, ErrReportNotFound
		}
		return models.Report{}, fmt.Errorf("select report: %w", err)
	}
	r.SunSign = sunSign.String
	r.ShareToken = token.String
	if generatedAt.Valid {
		t := generatedAt.Time
		r.ShareTokenGeneratedAt = &t
	}
	return r, nil
}

func (s *Store) GetReport(ctx context.Context, id int64) (models.Report, error) {
	return scanReport(s.db.QueryRowContext(ctx, `SELECT `+reportColumns+`
		FROM reports
		WHERE id = $1;
	`, id))
}

// GetSharedReport only matches tokens that are currently shared.
func (s *Store) GetSharedReport(ctx context.Context, token string) (models.Report, error) {
	return scanReport(s.db.QueryRowContext(ctx, `SELECT `+reportColumns+`
		FROM reports
		WHERE share_token = $1 AND is_shared = true;
	`, token))
}

// ShareReport stores a fresh token on the report, retrying on the rare
// token collision.
func (s *Store) ShareReport(ctx context.Context, reportID int64) (string, error) {
	for attempt := 0; attempt < shareTokenAttempts; attempt++ {
		token, err := newShareToken()
		if err != nil {
			return "", fmt.Errorf("generate share token: %w", err)
		}

		res, err := s.db.ExecContext(ctx, `
			UPDATE reports
			SET share_token = $1, is_shared = true, share_token_generated_at = $2
			WHERE id = $3;
		`, token, time.Now().UTC(), reportID)
		if err != nil {
			if pqCode(err) == pqUniqueViolation {
				continue
			}
			return "", fmt.Errorf("share report: %w", err)
		}
		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return "", ErrReportNotFound
		}
		return token, nil
	}
	return "", errors.New("share report: could not allocate a unique token")
}

func (s *Store) StopSharing(ctx context.Context, reportID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE reports
		SET share_token = NULL, is_shared = false
		WHERE id = $1;
	`, reportID)
	if err != nil {
		return fmt.Errorf("stop sharing: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrReportNotFound
	}
	return nil
}

package app

import (
	"errors"
	"net/http"
	"testing"

	"example/cosmic-api/app/mailer"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailReport(t *testing.T) {
	t.Run("defaults to owner email", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("FROM reports").WithArgs(int64(5)).WillReturnRows(reportRows(5, 7, false, nil))
		env.mock.ExpectQuery("FROM users").WithArgs(int64(7)).WillReturnRows(userRows(7, "ada@example.com", "hash", nil))

		w := env.do(http.MethodPost, "/api/reports/5/email", map[string]any{"userId": 7})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Len(t, env.mailer.sent, 1)
		msg := env.mailer.sent[0]
		assert.Equal(t, "ada@example.com", msg.To)
		assert.Contains(t, msg.Subject, "Natal Chart Analysis for Ada")
		assert.Contains(t, msg.HTML, "2. Career and Vocational Strengths")
	})

	t.Run("explicit recipient", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("FROM reports").WithArgs(int64(5)).WillReturnRows(reportRows(5, 7, false, nil))

		w := env.do(http.MethodPost, "/api/reports/5/email", map[string]any{"userId": 7, "recipientEmail": "friend@example.com"})
		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, env.mailer.sent, 1)
		assert.Equal(t, "friend@example.com", env.mailer.sent[0].To)
	})

	t.Run("invalid recipient", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("FROM reports").WithArgs(int64(5)).WillReturnRows(reportRows(5, 7, false, nil))

		w := env.do(http.MethodPost, "/api/reports/5/email", map[string]any{"userId": 7, "recipientEmail": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, env.mailer.sent)
	})

	t.Run("missing user", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(http.MethodPost, "/api/reports/5/email", map[string]any{})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("someone else's report looks missing", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("FROM reports").WithArgs(int64(5)).WillReturnRows(reportRows(5, 8, false, nil))

		w := env.do(http.MethodPost, "/api/reports/5/email", map[string]any{"userId": 7})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown report", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("FROM reports").WithArgs(int64(5)).WillReturnRows(sqlmock.NewRows(reportColumnNames))

		w := env.do(http.MethodPost, "/api/reports/5/email", map[string]any{"userId": 7})
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("provider not configured", func(t *testing.T) {
		env := newTestEnv(t)
		env.mailer.err = mailer.ErrNotConfigured
		env.mock.ExpectQuery("FROM reports").WithArgs(int64(5)).WillReturnRows(reportRows(5, 7, false, nil))
		env.mock.ExpectQuery("FROM users").WithArgs(int64(7)).WillReturnRows(userRows(7, "ada@example.com", "hash", nil))

		w := env.do(http.MethodPost, "/api/reports/5/email", map[string]any{"userId": 7})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Email service is not configured.", decode(t, w)["message"])
	})

	t.Run("provider failure is generic", func(t *testing.T) {
		env := newTestEnv(t)
		env.mailer.err = errors.New("sendgrid: 401 bad api key")
		env.mock.ExpectQuery("FROM reports").WithArgs(int64(5)).WillReturnRows(reportRows(5, 7, false, nil))
		env.mock.ExpectQuery("FROM users").WithArgs(int64(7)).WillReturnRows(userRows(7, "ada@example.com", "hash", nil))

		w := env.do(http.MethodPost, "/api/reports/5/email", map[string]any{"userId": 7})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "api key")
	})
}

package app

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRegister(t *testing.T) {
	t.Run("creates user", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("INSERT INTO users").
			WithArgs("ada@example.com", sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(7), time.Now()))

		w := env.do(http.MethodPost, "/api/auth/register", map[string]string{"email": "  Ada@Example.com ", "password": "s3cret"})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		body := decode(t, w)
		assert.Equal(t, float64(7), body["userId"])
		assert.Equal(t, "ada@example.com", body["email"])
		assert.NotEmpty(t, body["createdAt"])
	})

	t.Run("missing fields", func(t *testing.T) {
		env := newTestEnv(t)
		for _, req := range []map[string]string{
			{"email": "ada@example.com"},
			{"password": "x"},
			{"email": "   ", "password": "x"},
		} {
			w := env.do(http.MethodPost, "/api/auth/register", req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		}
	})

	t.Run("duplicate email", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("INSERT INTO users").
			WillReturnError(&pq.Error{Code: pqUniqueViolation})

		w := env.do(http.MethodPost, "/api/auth/register", map[string]string{"email": "ada@example.com", "password": "s3cret"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User with this email already exists.", decode(t, w)["message"])
	})

	t.Run("db failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("connection reset"))

		w := env.do(http.MethodPost, "/api/auth/register", map[string]string{"email": "ada@example.com", "password": "s3cret"})
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
	})
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("FROM users").
			WithArgs("ada@example.com").
			WillReturnRows(userRows(7, "ada@example.com", string(hash), nil))

		w := env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ADA@example.com", "password": "s3cret"})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		body := decode(t, w)
		assert.Equal(t, float64(7), body["userId"])
		assert.Equal(t, "ada@example.com", body["email"])
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("FROM users").
			WithArgs("ada@example.com").
			WillReturnRows(userRows(7, "ada@example.com", string(hash), nil))

		w := env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com", "password": "nope"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		env := newTestEnv(t)
		env.mock.ExpectQuery("FROM users").
			WithArgs("ghost@example.com").
			WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password_hash", "stripe_customer_id", "created_at"}))

		w := env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ghost@example.com", "password": "s3cret"})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials.", decode(t, w)["message"])
	})

	t.Run("missing fields", func(t *testing.T) {
		env := newTestEnv(t)
		w := env.do(http.MethodPost, "/api/auth/login", map[string]string{"email": "ada@example.com"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

package app

import (
	"context"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return NewStore(db), mock
}

func TestNewShareToken(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		tok, err := newShareToken()
		require.NoError(t, err)
		assert.Len(t, tok, 48)
		_, err = hex.DecodeString(tok)
		assert.NoError(t, err)
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}

func TestGrantCreditsWithoutCustomer(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO processed_stripe_events").
		WithArgs("evt_1", "checkout.session.async_payment_succeeded").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("INSERT INTO user_report_credits").
		WithArgs(int64(7), 1).
		WillReturnRows(sqlmock.NewRows([]string{"credits_available"}).AddRow(4))
	mock.ExpectCommit()

	balance, err := store.GrantCredits(context.Background(), CreditGrant{
		EventID:   "evt_1",
		EventType: "checkout.session.async_payment_succeeded",
		UserID:    7,
		Credits:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, balance)
}

func TestCreateUserDuplicate(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{Code: pqUniqueViolation})

	_, err := store.CreateUser(context.Background(), "Ada@Example.com", "hash")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestShareReportGivesUpAfterCollisions(t *testing.T) {
	store, mock := newMockStore(t)
	for i := 0; i < 3; i++ {
		mock.ExpectExec("UPDATE reports").WillReturnError(&pq.Error{Code: pqUniqueViolation})
	}

	_, err := store.ShareReport(context.Background(), 5)
	assert.Error(t, err)
}

func TestStopSharingMissingReport(t *testing.T) {
	store, mock := newMockStore(t)
	mock.ExpectExec("SET share_token = NULL").WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.StopSharing(context.Background(), 5)
	assert.True(t, errors.Is(err, ErrReportNotFound))
}

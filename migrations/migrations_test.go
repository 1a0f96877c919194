package migrations

import (
	"io"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	src, err := iofs.New(files, ".")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, _, err := src.ReadUp(first)
	require.NoError(t, err)
	defer up.Close()
	body, err := io.ReadAll(up)
	require.NoError(t, err)

	schema := string(body)
	for _, table := range []string{"users", "user_report_credits", "reports", "processed_stripe_events"} {
		assert.True(t, strings.Contains(schema, "CREATE TABLE IF NOT EXISTS "+table+" "), table)
	}
	assert.Contains(t, schema, "CHECK (credits_available >= 0)")
	assert.Contains(t, schema, "share_token              TEXT UNIQUE")

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	down.Close()
}

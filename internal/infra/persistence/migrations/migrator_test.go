package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"testing"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbedsInitialSchema(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	assert.Equal(t, "00001_init.sql", files[0])

	content, err := fs.ReadFile(Migrations, files[0])
	require.NoError(t, err)
	assert.Contains(t, string(content), "-- +goose Up")
	assert.Contains(t, string(content), "idx_authenticated_records_fingerprint_id")
}

func TestMigrations_NonceWalletIsUnique(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.Contains(t, files, "00002_unique_nonce_wallet.sql")

	content, err := fs.ReadFile(Migrations, "00002_unique_nonce_wallet.sql")
	require.NoError(t, err)
	assert.Contains(t, string(content), "CREATE UNIQUE INDEX IF NOT EXISTS idx_nonces_wallet_address ON nonces (wallet_address)")
	assert.Contains(t, string(content), "-- +goose Down")
}

func TestUp_PropagatesGooseError(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	gooseUpContext = func(_ context.Context, _ *sql.DB, dir string, _ ...goose.OptionsFunc) error {
		assert.Equal(t, ".", dir)

		return errors.New("boom")
	}

	err := Up(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestUp_Success(t *testing.T) {
	orig := gooseUpContext
	t.Cleanup(func() { gooseUpContext = orig })

	called := false
	gooseUpContext = func(_ context.Context, _ *sql.DB, _ string, _ ...goose.OptionsFunc) error {
		called = true

		return nil
	}

	require.NoError(t, Up(context.Background(), nil))
	assert.True(t, called)
}

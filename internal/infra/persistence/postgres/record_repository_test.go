package postgres

import (
	"context"
	"testing"
	"time"

	"provenance/internal/domain/entity"
	"provenance/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, mock.ExpectationsWereMet()) })

	return db, mock
}

const (
	claimMintSQL = `UPDATE "authenticated_records" SET "pending_action"=\$1,"pending_since"=\$2,"updated_at"=\$3 ` +
		`WHERE id = \$4 AND status IN \(\$5,\$6\) ` +
		`AND \(+pending_action = '' OR pending_since IS NULL OR pending_since < \$7\)+ ` +
		`AND token_id = ''`
	claimSoftListSQL = `UPDATE "authenticated_records" SET "pending_action"=\$1,"pending_since"=\$2,"updated_at"=\$3 ` +
		`WHERE id = \$4 AND status IN \(\$5,\$6\) ` +
		`AND \(+pending_action = '' OR pending_since IS NULL OR pending_since < \$7\)+ ` +
		`AND \(token_id <> '' AND listing_id = ''\)`
	selectRecordSQL = `SELECT \* FROM "authenticated_records" WHERE id = \$1`
)

func TestRecordRepository_Claim(t *testing.T) {
	t.Run("mint claims an uploaded record", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		id := uuid.New()

		mock.ExpectExec(claimMintSQL).
			WithArgs("mint", sqlmock.AnyArg(), sqlmock.AnyArg(), id, "uploaded", "error", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectRecordSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "pending_action", "fingerprint_id"}).
				AddRow(id.String(), "uploaded", "mint", "fp-1"))

		record, err := repo.Claim(context.Background(), id, entity.ActionMint, 2*time.Minute)
		require.NoError(t, err)
		assert.Equal(t, id, record.ID)
		assert.Equal(t, entity.ActionMint, record.PendingAction)
	})

	t.Run("soft-list requires a token and no listing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		id := uuid.New()

		mock.ExpectExec(claimSoftListSQL).
			WithArgs("soft-list", sqlmock.AnyArg(), sqlmock.AnyArg(), id, "minted", "error", sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectQuery(selectRecordSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status", "pending_action", "token_id"}).
				AddRow(id.String(), "minted", "soft-list", "token-1"))

		record, err := repo.Claim(context.Background(), id, entity.ActionSoftList, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, "token-1", record.Ledger.TokenID)
	})

	t.Run("no row updated is a rejected claim", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		id := uuid.New()

		mock.ExpectExec(claimMintSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		_, err := repo.Claim(context.Background(), id, entity.ActionMint, 2*time.Minute)
		assert.ErrorIs(t, err, repository.ErrClaimRejected)
	})

	t.Run("unknown action never reaches the store", func(t *testing.T) {
		db, _ := newMockDB(t)
		repo := NewRecordRepository(db)

		_, err := repo.Claim(context.Background(), uuid.New(), "burn", time.Minute)
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrClaimRejected)
	})

	t.Run("store failure", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)

		mock.ExpectExec(claimMintSQL).WillReturnError(errors.New("connection reset"))

		_, err := repo.Claim(context.Background(), uuid.New(), entity.ActionMint, time.Minute)
		require.Error(t, err)
		assert.NotErrorIs(t, err, repository.ErrClaimRejected)
	})
}

func TestRecordRepository_MarkFailed(t *testing.T) {
	const markFailedSQL = `UPDATE "authenticated_records" SET "failed_action"=\$1,"last_error"=\$2,"pending_action"=\$3,` +
		`"pending_since"=\$4,"status"=\$5,"updated_at"=\$6 WHERE id = \$7 AND pending_action = \$8`

	t.Run("releases the claim", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		id := uuid.New()

		mock.ExpectExec(markFailedSQL).
			WithArgs("mint", "ledger down", "", nil, "error", sqlmock.AnyArg(), id, "mint").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.MarkFailed(context.Background(), id, entity.ActionMint, "ledger down"))
	})

	t.Run("claim already released", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)

		mock.ExpectExec(markFailedSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.MarkFailed(context.Background(), uuid.New(), entity.ActionMint, "ledger down")
		assert.ErrorIs(t, err, repository.ErrClaimRejected)
	})
}

func TestRecordRepository_CompleteMint(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRecordRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "authenticated_records" SET "failed_action"=\$1,"last_error"=\$2,"metadata_ref"=\$3,`+
		`"pending_action"=\$4,"pending_since"=\$5,"status"=\$6,"token_id"=\$7,"tx_hash"=\$8,"updated_at"=\$9 `+
		`WHERE id = \$10 AND pending_action = \$11`).
		WithArgs("", "", "metadata/m.json", "", nil, "minted", "token-1", "sig-1", sqlmock.AnyArg(), id, "mint").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.CompleteMint(context.Background(), id, repository.MintResult{TxHash: "sig-1", TokenID: "token-1", MetadataRef: "metadata/m.json"})
	require.NoError(t, err)
}

func TestRecordRepository_Confirm(t *testing.T) {
	const confirmSQL = `UPDATE "authenticated_records" SET "status"=\$1,"updated_at"=\$2 ` +
		`WHERE id = \$3 AND owner_id = \$4 AND status = \$5 AND pending_action = ''`

	t.Run("owner confirms a soft listing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		id, owner := uuid.New(), uuid.New()

		mock.ExpectExec(confirmSQL).
			WithArgs("listed", sqlmock.AnyArg(), id, owner, "soft-listed").
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Confirm(context.Background(), id, owner))
	})

	t.Run("wrong owner or status", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)

		mock.ExpectExec(confirmSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Confirm(context.Background(), uuid.New(), uuid.New())
		assert.ErrorIs(t, err, repository.ErrClaimRejected)
	})
}

func TestRecordRepository_FingerprintBackupSweep(t *testing.T) {
	const (
		missingSQL = `SELECT \* FROM "authenticated_records" ` +
			`WHERE token_id <> '' AND fingerprint_id <> '' AND fingerprint_blob_ref = '' ORDER BY updated_at ASC LIMIT \$1`
		setRefSQL = `UPDATE "authenticated_records" SET "fingerprint_blob_ref"=\$1.* WHERE id = \$\d+ AND fingerprint_blob_ref = ''`
	)

	t.Run("first run writes the reference", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)
		id := uuid.New()

		mock.ExpectQuery(missingSQL).
			WillReturnRows(sqlmock.NewRows([]string{"id", "token_id", "fingerprint_id", "status"}).
				AddRow(id.String(), "token-1", "fp-1", "minted"))
		mock.ExpectExec(setRefSQL).WillReturnResult(sqlmock.NewResult(0, 1))

		records, err := repo.FindMissingFingerprintBackup(context.Background(), 10)
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].NeedsFingerprintBackup())

		written, err := repo.SetFingerprintBlobRef(context.Background(), id, "fingerprints/fp-1.json")
		require.NoError(t, err)
		assert.True(t, written)
	})

	t.Run("second run finds nothing and writes nothing", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)

		mock.ExpectQuery(missingSQL).WillReturnRows(sqlmock.NewRows([]string{"id"}))

		records, err := repo.FindMissingFingerprintBackup(context.Background(), 10)
		require.NoError(t, err)
		assert.Empty(t, records)
	})

	t.Run("reference already stored is a no-op", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewRecordRepository(db)

		mock.ExpectExec(setRefSQL).WillReturnResult(sqlmock.NewResult(0, 0))

		written, err := repo.SetFingerprintBlobRef(context.Background(), uuid.New(), "fingerprints/late.json")
		require.NoError(t, err)
		assert.False(t, written)
	})
}

func TestVerificationRepository_Create_UnknownRecord(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewVerificationRepository(db)

	mock.ExpectQuery(`INSERT INTO "verifications"`).
		WillReturnError(errors.New(`ERROR: insert or update on table "verifications" violates foreign key constraint (SQLSTATE 23503)`))

	err := repo.Create(context.Background(), &entity.Verification{ID: uuid.New(), ImageID: uuid.New(), Score: 0.9, CreatedAt: time.Now()})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
}

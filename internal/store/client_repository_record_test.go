package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/validators"
	"github.com/MKhiriev/go-medi-vault/models"
)

func newMockedRecordRepo(t *testing.T) (RecordRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewLocalRecordRepository(&DB{DB: db, logger: logger.Nop()}, validators.NewEntityValidator()), mock
}

func TestLocalRecordRepository_SaveRecord_ExecError(t *testing.T) {
	repo, mock := newMockedRecordRepo(t)

	mock.ExpectExec("INSERT INTO records").WillReturnError(errors.New("disk I/O error"))

	_, err := repo.SaveRecord(context.Background(), sampleRecord("BloodTest", "2024-01-01"))
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRecordRepository_SaveRecord_InvalidSkipsDB(t *testing.T) {
	repo, mock := newMockedRecordRepo(t)

	rec := sampleRecord("", "2024-01-01")
	_, err := repo.SaveRecord(context.Background(), rec)

	assert.ErrorIs(t, err, validators.ErrEmptyName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalRecordRepository_ListRecords_QueryError(t *testing.T) {
	repo, mock := newMockedRecordRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM records").WillReturnError(errors.New("database is locked"))

	_, err := repo.ListRecords(context.Background())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestLocalRecordRepository_ListRecords_ScanError(t *testing.T) {
	repo, mock := newMockedRecordRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM records").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1)) // wrong shape

	_, err := repo.ListRecords(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestLocalRecordRepository_DeleteRecord_NotFound(t *testing.T) {
	repo, mock := newMockedRecordRepo(t)

	mock.ExpectExec("DELETE FROM records").WithArgs(int64(7)).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteRecord(context.Background(), 7), ErrRecordNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSettingsRepository_SaveCredential_RollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLocalSettingsRepository(&DB{DB: db, logger: logger.Nop()})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO settings").WithArgs(models.SettingPasscode, "hash").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO settings").WithArgs(models.SettingRecoveryKey, "KEY").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = repo.SaveCredential(context.Background(), models.Credential{PasscodeHash: "hash", RecoveryKey: "KEY"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocalSettingsRepository_SaveCredential_ExistingPasscode(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLocalSettingsRepository(&DB{DB: db, logger: logger.Nop()})

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO settings").WithArgs(models.SettingPasscode, "hash").
		WillReturnError(sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey})
	mock.ExpectRollback()

	err = repo.SaveCredential(context.Background(), models.Credential{PasscodeHash: "hash", RecoveryKey: "KEY"})
	assert.ErrorIs(t, err, ErrCredentialExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

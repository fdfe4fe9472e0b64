package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/models"
)

var userColumns = []string{"user_id", "email", "password_hash", "created_at"}

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	repo := NewUserRepository(&DB{DB: db, logger: logger.Nop(), errorClassificator: NewPostgresErrorClassifier()}, logger.Nop())
	return repo.(*userRepository), mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

// ─────────────────────────────────────────────
// CreateUser
// ─────────────────────────────────────────────

func TestCreateUser(t *testing.T) {
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	user := models.User{Email: "patient@example.com", PasswordHash: "$2a$10$hash"}

	tests := []struct {
		name    string
		result  func(*sqlmock.ExpectedQuery)
		want    models.User
		wantErr error
	}{
		{
			name: "created",
			result: func(q *sqlmock.ExpectedQuery) {
				q.WillReturnRows(sqlmock.NewRows(userColumns).AddRow(1, user.Email, user.PasswordHash, createdAt))
			},
			want: models.User{UserID: 1, Email: user.Email, PasswordHash: user.PasswordHash, CreatedAt: createdAt},
		},
		{
			name: "email taken",
			result: func(q *sqlmock.ExpectedQuery) {
				q.WillReturnError(pgError(pgerrcode.UniqueViolation))
			},
			wantErr: ErrEmailAlreadyExists,
		},
		{
			name: "connection lost",
			result: func(q *sqlmock.ExpectedQuery) {
				q.WillReturnError(pgError(pgerrcode.ConnectionFailure))
			},
			wantErr: &pgconn.PgError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestUserRepo(t)
			tt.result(mock.ExpectQuery("INSERT INTO users").WithArgs(user.Email, user.PasswordHash))

			got, err := repo.CreateUser(context.Background(), user)

			switch target := tt.wantErr.(type) {
			case nil:
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			case *pgconn.PgError:
				assert.ErrorAs(t, err, &target)
				assert.NotErrorIs(t, err, ErrEmailAlreadyExists)
				assert.Equal(t, models.User{}, got)
			default:
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, models.User{}, got)
			}
		})
	}
}

// ─────────────────────────────────────────────
// FindUserByEmail
// ─────────────────────────────────────────────

func TestFindUserByEmail(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("patient@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns).AddRow(5, "patient@example.com", "$2a$10$hash", time.Now()))

	found, err := repo.FindUserByEmail(context.Background(), "patient@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(5), found.UserID)
	assert.Equal(t, "$2a$10$hash", found.PasswordHash)
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("ghost@example.com").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByEmail(context.Background(), "ghost@example.com")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestFindUserByEmail_DBError(t *testing.T) {
	repo, mock := newTestUserRepo(t)
	mock.ExpectQuery("SELECT (.+) FROM users").
		WithArgs("patient@example.com").
		WillReturnError(errors.New("network down"))

	_, err := repo.FindUserByEmail(context.Background(), "patient@example.com")

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoUserWasFound)
	assert.Contains(t, err.Error(), "network down")
}

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-medi-vault/internal/config"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/mock"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

func newTestAuthService(t *testing.T) (*authService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	users := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(users, config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "medi-vault",
		TokenDuration: time.Hour,
	}, logger.Nop()).(*authService)
	svc.bcryptCost = bcrypt.MinCost

	return svc, users
}

// ─────────────────────────────────────────────
// RegisterUser
// ─────────────────────────────────────────────

func TestRegisterUser_HashesPassword(t *testing.T) {
	svc, users := newTestAuthService(t)

	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "owner@example.com", u.Email)
			assert.NotEqual(t, "correct-horse", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("correct-horse")))
			u.UserID = 11
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), models.Credentials{Email: " Owner@Example.com ", Password: "correct-horse"})

	require.NoError(t, err)
	assert.Equal(t, int64(11), user.UserID)
}

func TestRegisterUser_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds models.Credentials
	}{
		{"empty email", models.Credentials{Password: "correct-horse"}},
		{"malformed email", models.Credentials{Email: "owner", Password: "correct-horse"}},
		{"short password", models.Credentials{Email: "owner@example.com", Password: "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestAuthService(t)

			_, err := svc.RegisterUser(context.Background(), tt.creds)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestRegisterUser_EmailTaken(t *testing.T) {
	svc, users := newTestAuthService(t)
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.Credentials{Email: "owner@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ─────────────────────────────────────────────
// Login
// ─────────────────────────────────────────────

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := models.User{UserID: 11, Email: "owner@example.com", PasswordHash: string(hash)}

	t.Run("success", func(t *testing.T) {
		svc, users := newTestAuthService(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), "owner@example.com").Return(stored, nil)

		user, err := svc.Login(context.Background(), models.Credentials{Email: "OWNER@example.com", Password: "correct-horse"})
		require.NoError(t, err)
		assert.Equal(t, int64(11), user.UserID)
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, users := newTestAuthService(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), "owner@example.com").Return(stored, nil)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "owner@example.com", Password: "battery-staple"})
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("unknown email looks the same", func(t *testing.T) {
		svc, users := newTestAuthService(t)
		users.EXPECT().FindUserByEmail(gomock.Any(), "ghost@example.com").Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "ghost@example.com", Password: "correct-horse"})
		assert.ErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("storage failure", func(t *testing.T) {
		svc, users := newTestAuthService(t)
		dbErr := errors.New("connection refused")
		users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

		_, err := svc.Login(context.Background(), models.Credentials{Email: "owner@example.com", Password: "correct-horse"})
		assert.ErrorIs(t, err, dbErr)
		assert.NotErrorIs(t, err, ErrWrongCredentials)
	})

	t.Run("empty credentials", func(t *testing.T) {
		svc, _ := newTestAuthService(t)

		_, err := svc.Login(context.Background(), models.Credentials{})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

// ─────────────────────────────────────────────
// tokens
// ─────────────────────────────────────────────

func TestCreateAndParseToken(t *testing.T) {
	svc, _ := newTestAuthService(t)

	token, err := svc.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
}

func TestParseToken_Invalid(t *testing.T) {
	svc, _ := newTestAuthService(t)

	other := NewAuthService(nil, config.App{
		TokenSignKey:  "another-key",
		TokenIssuer:   "medi-vault",
		TokenDuration: time.Hour,
	}, logger.Nop())
	foreign, err := other.CreateToken(context.Background(), models.User{UserID: 42})
	require.NoError(t, err)

	for _, raw := range []string{"", "not-a-jwt", foreign.SignedString} {
		_, err := svc.ParseToken(context.Background(), raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
	}
}

func TestCreateToken_Misconfigured(t *testing.T) {
	svc := NewAuthService(nil, config.App{TokenIssuer: "medi-vault", TokenDuration: time.Hour}, logger.Nop())

	_, err := svc.CreateToken(context.Background(), models.User{UserID: 1})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

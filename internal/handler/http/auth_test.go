package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/internal/store"
	"github.com/MKhiriev/go-medi-vault/models"
)

const credentialsBody = `{"email":"alice@example.com","password":"s3cret-pass"}`

var aliceCreds = models.Credentials{Email: "alice@example.com", Password: "s3cret-pass"}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	h, m := newTestHandler(t)
	user := models.User{UserID: 7, Email: "alice@example.com"}

	gomock.InOrder(
		m.auth.EXPECT().RegisterUser(gomock.Any(), aliceCreds).Return(user, nil),
		m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "signed.jwt.token", UserID: 7}, nil),
	)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(credentialsBody))
	rec := httptest.NewRecorder()
	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer signed.jwt.token", rec.Header().Get("Authorization"))
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var session models.AccountSession
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &session))
	assert.Equal(t, models.AccountSession{UserID: 7, Email: "alice@example.com", Token: "signed.jwt.token"}, session)
}

func TestRegister_Failures(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setup      func(m testServices)
		wantStatus int
	}{
		{
			name:       "malformed JSON",
			body:       `{"email":`,
			setup:      func(testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown field",
			body:       `{"email":"a@b.c","password":"p","login":"x"}`,
			setup:      func(testServices) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "invalid credentials",
			body: credentialsBody,
			setup: func(m testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("%w: short password", service.ErrInvalidDataProvided))
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "email taken",
			body: credentialsBody,
			setup: func(m testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).
					Return(models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrEmailAlreadyExists))
			},
			wantStatus: http.StatusConflict,
		},
		{
			name: "token creation fails",
			body: credentialsBody,
			setup: func(m testServices) {
				m.auth.EXPECT().RegisterUser(gomock.Any(), gomock.Any()).Return(models.User{UserID: 1}, nil)
				m.auth.EXPECT().CreateToken(gomock.Any(), gomock.Any()).Return(models.Token{}, service.ErrTokenCreationFailed)
			},
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			tt.setup(m)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.register(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Authorization"))
		})
	}
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	h, m := newTestHandler(t)
	user := models.User{UserID: 3, Email: "alice@example.com", PasswordHash: "$2a$10$hash"}

	m.auth.EXPECT().Login(gomock.Any(), aliceCreds).Return(user, nil)
	m.auth.EXPECT().CreateToken(gomock.Any(), user).Return(models.Token{SignedString: "tok", UserID: 3}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credentialsBody))
	rec := httptest.NewRecorder()
	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Bearer tok", rec.Header().Get("Authorization"))
	assert.JSONEq(t, `{"id":3,"email":"alice@example.com","token":"tok"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "$2a$10$hash")
}

func TestLogin_Failures(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "wrong credentials", err: service.ErrWrongCredentials, wantStatus: http.StatusUnauthorized},
		{name: "empty fields", err: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "database down", err: fmt.Errorf("user search by email failed: %w", errors.New("conn refused")), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, tt.err)

			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(credentialsBody))
			rec := httptest.NewRecorder()
			h.login(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.NotContains(t, rec.Body.String(), "conn refused")
		})
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

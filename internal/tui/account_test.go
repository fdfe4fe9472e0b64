package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-medi-vault/internal/mock"
	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/models"
)

func newTestAccountModel(t *testing.T) (*AccountModel, *mock.MockAccountService) {
	t.Helper()
	account := mock.NewMockAccountService(gomock.NewController(t))
	return NewAccountModel(context.Background(), account), account
}

func fillCredentials(t *testing.T, m *AccountModel, email, password string) {
	t.Helper()
	typeText(t, m, email)
	m.Update(keyType(tea.KeyTab))
	typeText(t, m, password)
}

func TestAccountModel_Login(t *testing.T) {
	m, account := newTestAccountModel(t)

	creds := models.Credentials{Email: "jane@example.com", Password: "s3cret!"}
	session := models.AccountSession{UserID: 7, Email: creds.Email, Token: "token"}
	pulled := models.SyncReport{Direction: models.SyncPull, Applied: []models.SyncItem{{Kind: models.KindRecord}}}
	account.EXPECT().Login(gomock.Any(), creds).Return(session, pulled, nil)

	fillCredentials(t, m, " jane@example.com ", "s3cret!")
	_, cmd := m.Update(keyType(tea.KeyEnter))
	require.True(t, m.submitting)

	msg := runCmd(t, cmd)
	_, cmd = m.Update(msg)
	nav := navigation(t, cmd)

	assert.Equal(t, pageDashboard, nav.Page)
	done, ok := nav.Payload.(accountDoneMsg)
	require.True(t, ok)
	assert.Equal(t, session, done.session)
	assert.Len(t, done.pulled.Applied, 1)
	assert.Empty(t, m.inputs[1].Value(), "password field is cleared")
}

func TestAccountModel_Register(t *testing.T) {
	m, account := newTestAccountModel(t)

	creds := models.Credentials{Email: "jane@example.com", Password: "s3cret!"}
	account.EXPECT().Register(gomock.Any(), creds).Return(models.AccountSession{Email: creds.Email}, nil)

	fillCredentials(t, m, creds.Email, creds.Password)
	_, cmd := m.Update(keyType(tea.KeyCtrlR))

	msg := runCmd(t, cmd)
	assert.Equal(t, accountDoneMsg{session: models.AccountSession{Email: creds.Email}}, msg)
}

func TestAccountModel_Errors(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		loginErr error
		wantErr  string
	}{
		{name: "empty fields", wantErr: "Email and password are required."},
		{name: "no password", email: "jane@example.com", wantErr: "Email and password are required."},
		{name: "wrong credentials", email: "jane@example.com", password: "nope", loginErr: service.ErrWrongCredentials, wantErr: "Wrong email or password."},
		{name: "server down", email: "jane@example.com", password: "nope", loginErr: service.ErrRemoteUnavailable, wantErr: "No network or the sync server is unavailable."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, account := newTestAccountModel(t)
			if tt.loginErr != nil {
				account.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.AccountSession{}, models.SyncReport{}, tt.loginErr)
			}

			fillCredentials(t, m, tt.email, tt.password)
			_, cmd := m.Update(keyType(tea.KeyEnter))
			if cmd != nil {
				_, cmd = m.Update(runCmd(t, cmd))
				assert.Nil(t, cmd)
			}

			assert.False(t, m.submitting)
			assert.Contains(t, m.View(), tt.wantErr)
		})
	}
}

func TestAccountModel_EscReturnsToDashboard(t *testing.T) {
	m, _ := newTestAccountModel(t)
	typeText(t, m, "jane")

	_, cmd := m.Update(keyType(tea.KeyEsc))
	nav := navigation(t, cmd)

	assert.Equal(t, pageDashboard, nav.Page)
	assert.Equal(t, dashboardReloadMsg{}, nav.Payload)
	assert.Empty(t, m.inputs[0].Value())
}

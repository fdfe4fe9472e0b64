package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/models"
)

// AccountModel is the sign-in screen of the optional sync account. enter
// signs in with an existing account, ctrl+r registers a new one. Both lead
// back to the dashboard.
type AccountModel struct {
	ctx     context.Context
	account service.AccountService

	inputs     []textinput.Model
	focus      int
	submitting bool
	errMsg     string
}

func NewAccountModel(ctx context.Context, account service.AccountService) *AccountModel {
	m := &AccountModel{
		ctx:     ctx,
		account: account,
	}
	m.reset()
	return m
}

func (m *AccountModel) reset() {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Width = 40
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 256
	password.Width = 40
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '*'

	m.inputs = []textinput.Model{email, password}
	m.focus = 0
	m.submitting = false
	m.errMsg = ""
}

func (m *AccountModel) Init() tea.Cmd {
	m.reset()
	return textinput.Blink
}

// CapturesText is always true: every key on this page is form input.
func (m *AccountModel) CapturesText() bool {
	return true
}

func (m *AccountModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(accountDoneMsg); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = humanizeError(result.err)
			return m, nil
		}
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard, Payload: result} }
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.reset()
			return m, func() tea.Msg { return NavigateTo{Page: pageDashboard, Payload: dashboardReloadMsg{}} }
		case key.Matches(keyMsg, keys.tab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.enter), key.Matches(keyMsg, keys.register):
			if m.submitting {
				return m, nil
			}

			creds := models.Credentials{
				Email:    strings.TrimSpace(m.inputs[0].Value()),
				Password: m.inputs[1].Value(),
			}
			if creds.Email == "" || creds.Password == "" {
				m.errMsg = "Email and password are required."
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			if key.Matches(keyMsg, keys.register) {
				return m, m.cmdRegister(creds)
			}
			return m, m.cmdLogin(creds)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *AccountModel) View() string {
	var b strings.Builder
	b.WriteString("Sign in to back up encrypted records to the sync server.\n")
	b.WriteString("Documents stay encrypted with your passcode on the server.\n\n")
	b.WriteString("Email    │ ")
	b.WriteString(m.inputs[0].View())
	b.WriteString("\n")
	b.WriteString("Password │ ")
	b.WriteString(m.inputs[1].View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nSigning in...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("ACCOUNT", strings.TrimRight(b.String(), "\n"), "enter: sign in │ ctrl+r: register │ tab: next field │ esc: back")
}

func (m *AccountModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *AccountModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx, account := m.ctx, m.account
	return func() tea.Msg {
		session, pulled, err := account.Login(ctx, creds)
		return accountDoneMsg{session: session, pulled: pulled, err: err}
	}
}

// cmdRegister creates the account. A fresh account has nothing to pull.
func (m *AccountModel) cmdRegister(creds models.Credentials) tea.Cmd {
	ctx, account := m.ctx, m.account
	return func() tea.Msg {
		session, err := account.Register(ctx, creds)
		return accountDoneMsg{session: session, err: err}
	}
}

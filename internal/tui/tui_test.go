package tui

import (
	"context"
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-medi-vault/internal/vault"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// fakeVault records the calls the lock screen and dashboard make.
type fakeVault struct {
	mu sync.Mutex

	state       vault.State
	statusErr   error
	recoveryKey string
	setupErr    error
	unlockErr   error

	setupPasscode  string
	unlockPasscode string
	acknowledged   bool
	locked         int
}

func (f *fakeVault) Status(context.Context) (vault.State, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state, f.statusErr
}

func (f *fakeVault) Setup(_ context.Context, passcode []byte) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setupPasscode = string(passcode)
	if f.setupErr != nil {
		return "", f.setupErr
	}
	f.state = vault.StateAwaitingConfirmation
	return f.recoveryKey, nil
}

func (f *fakeVault) AcknowledgeRecoveryKey() (*vault.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.acknowledged = true
	f.state = vault.StateUnlocked
	return vault.NewSession([]byte(f.setupPasscode))
}

func (f *fakeVault) Unlock(_ context.Context, passcode []byte) (*vault.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unlockPasscode = string(passcode)
	if f.unlockErr != nil {
		return nil, f.unlockErr
	}
	f.state = vault.StateUnlocked
	return vault.NewSession(passcode)
}

func (f *fakeVault) Lock() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.locked++
	f.state = vault.StateLocked
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// typeText feeds s to m one rune at a time.
func typeText(t *testing.T, m tea.Model, s string) tea.Model {
	t.Helper()
	for _, r := range s {
		m, _ = m.Update(keyRunes(string(r)))
	}
	return m
}

// runCmd executes cmd and returns its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// navigation asserts that cmd navigates and returns the target.
func navigation(t *testing.T, cmd tea.Cmd) NavigateTo {
	t.Helper()
	msg := runCmd(t, cmd)
	nav, ok := msg.(NavigateTo)
	require.Truef(t, ok, "expected NavigateTo, got %T", msg)
	return nav
}

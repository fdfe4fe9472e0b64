package tui

import (
	"github.com/MKhiriev/go-medi-vault/internal/vault"
	"github.com/MKhiriev/go-medi-vault/models"
)

// NavigateTo switches the active page of [RootModel]. A non-nil Payload is
// delivered to the new page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

const (
	pageLock      = "lock"
	pageDashboard = "dashboard"
	pageAccount   = "account"
)

// vaultStatusMsg reports the vault state resolved from the settings table.
type vaultStatusMsg struct {
	state vault.State
	err   error
}

// setupDoneMsg carries the one-time recovery key produced by Setup.
type setupDoneMsg struct {
	recoveryKey string
	err         error
}

// unlockedMsg is sent once a session is open. It is the payload that moves
// the root model from the lock screen to the dashboard.
type unlockedMsg struct {
	session *vault.Session
}

// unlockFailedMsg reports a rejected passcode or a storage failure.
type unlockFailedMsg struct {
	err error
}

type iceLoadedMsg struct {
	card models.ICEData
	err  error
}

type dashboardLoadedMsg struct {
	records   []models.Record
	vitals    int
	reminders int
	account   models.AccountSession
	signedIn  bool
	err       error
}

type syncDoneMsg struct {
	push models.SyncReport
	pull models.SyncReport
}

type documentOpenedMsg struct {
	document models.Document
	err      error
}

type accountDoneMsg struct {
	session models.AccountSession
	pulled  models.SyncReport
	err     error
}

type copiedMsg struct {
	err error
}

type lockedMsg struct{}

type loggedOutMsg struct {
	err error
}

// dashboardReloadMsg asks the dashboard to refresh without changing its
// session.
type dashboardReloadMsg struct{}

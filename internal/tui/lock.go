// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/internal/vault"
	"github.com/MKhiriev/go-medi-vault/models"
)

type lockStage int

const (
	lockStageLoading lockStage = iota
	lockStageSetup
	lockStageRecovery
	lockStageUnlock
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// LockModel is the lock screen. A fresh device goes through setup, confirm
// and the recovery key; a configured device asks for the passcode.
//
// ctrl+e shows the emergency card, which stays readable while locked.
type LockModel struct {
	ctx       context.Context
	vault     Vault
	emergency service.EmergencyService
	logger    *logger.Logger

	stage  lockStage
	inputs []textinput.Model
	focus  int

	recoveryKey string
	copied      bool
	submitting  bool
	errMsg      string

	showICE bool
	ice     models.ICEData
}

func NewLockModel(ctx context.Context, v Vault, emergency service.EmergencyService, logger *logger.Logger) *LockModel {
	return &LockModel{
		ctx:       ctx,
		vault:     v,
		emergency: emergency,
		logger:    logger,
		stage:     lockStageLoading,
	}
}

func newPasscodeInput(placeholder string) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 128
	in.Width = 32
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	return in
}

// Init implements [tea.Model]. It resolves whether the device is already
// configured.
func (m *LockModel) Init() tea.Cmd {
	return m.cmdStatus()
}

// CapturesText reports whether typed letters belong to a passcode field.
func (m *LockModel) CapturesText() bool {
	if m.stage != lockStageSetup && m.stage != lockStageUnlock {
		return false
	}
	return m.inputs[m.focus].Value() != ""
}

func (m *LockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case vaultStatusMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		if msg.state == vault.StateUninitialized {
			m.enterSetup()
		} else {
			m.enterUnlock()
		}
		return m, textinput.Blink
	case setupDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.stage = lockStageRecovery
		m.recoveryKey = msg.recoveryKey
		m.copied = false
		m.errMsg = ""
		return m, nil
	case unlockedMsg:
		m.submitting = false
		m.recoveryKey = ""
		m.errMsg = ""
		m.resetInputs()
		return m, func() tea.Msg { return NavigateTo{Page: pageDashboard, Payload: msg} }
	case unlockFailedMsg:
		m.submitting = false
		m.errMsg = humanizeError(msg.err)
		m.resetInputs()
		return m, nil
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Could not copy to the clipboard. Write the key down instead."
			return m, nil
		}
		m.copied = true
		m.errMsg = ""
		return m, nil
	case iceLoadedMsg:
		m.ice = msg.card
		m.showICE = true
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
		}
		return m, nil
	case lockedMsg:
		m.showICE = false
		m.errMsg = ""
		m.stage = lockStageLoading
		return m, m.cmdStatus()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateInputs(msg)
	}

	if m.showICE {
		if key.Matches(keyMsg, keys.esc) || keyMsg.String() == "ctrl+e" {
			m.showICE = false
		}
		return m, nil
	}
	if keyMsg.String() == "ctrl+e" {
		return m, m.cmdLoadICE()
	}

	switch m.stage {
	case lockStageSetup:
		return m.updateSetup(keyMsg)
	case lockStageRecovery:
		return m.updateRecovery(keyMsg)
	case lockStageUnlock:
		return m.updateUnlock(keyMsg)
	}

	return m, nil
}

func (m *LockModel) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		m.focusNext()
		return m, nil
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		if m.focus == 0 {
			m.focusNext()
			return m, nil
		}

		passcode := []byte(m.inputs[0].Value())
		confirmation := []byte(m.inputs[1].Value())
		if err := vault.ConfirmPasscode(passcode, confirmation); err != nil {
			m.errMsg = humanizeError(err)
			m.resetInputs()
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		m.resetInputs()
		return m, m.cmdSetup(passcode)
	}

	return m.updateInputs(msg)
}

func (m *LockModel) updateRecovery(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.copy):
		return m, cmdCopy(m.recoveryKey)
	case key.Matches(msg, keys.enter):
		if m.submitting {
			return m, nil
		}
		m.submitting = true
		return m, m.cmdAcknowledge()
	}
	return m, nil
}

func (m *LockModel) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.enter) {
		if m.submitting {
			return m, nil
		}
		passcode := []byte(m.inputs[0].Value())
		if len(passcode) == 0 {
			m.errMsg = "Enter your passcode."
			return m, nil
		}

		m.errMsg = ""
		m.submitting = true
		m.resetInputs()
		return m, m.cmdUnlock(passcode)
	}

	return m.updateInputs(msg)
}

func (m *LockModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *LockModel) View() string {
	if m.showICE {
		return renderICE(m.ice)
	}

	var b strings.Builder
	var title, hotKeys string

	switch m.stage {
	case lockStageLoading:
		title = "MEDIVAULT"
		b.WriteString("Opening vault...\n")
	case lockStageSetup:
		title = "SET UP YOUR VAULT"
		b.WriteString("Choose a passcode of at least 4 characters.\n")
		b.WriteString("It encrypts every document on this device.\n\n")
		b.WriteString("Passcode │ ")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\nConfirm  │ ")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")
		hotKeys = "tab: next field │ enter: continue │ ctrl+e: emergency card"
	case lockStageRecovery:
		title = "RECOVERY KEY"
		b.WriteString("Save this key somewhere safe. It is shown only once.\n\n")
		b.WriteString(recoveryStyle.Render(m.recoveryKey))
		b.WriteString("\n")
		if m.copied {
			b.WriteString("\n")
			b.WriteString(okStyle.Render("Copied to the clipboard."))
			b.WriteString("\n")
		}
		hotKeys = "c: copy │ enter: I saved it"
	case lockStageUnlock:
		title = "VAULT LOCKED"
		b.WriteString("Passcode │ ")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")
		hotKeys = "enter: unlock │ ctrl+e: emergency card │ v: version"
	}

	if m.submitting {
		b.WriteString("\nWorking...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *LockModel) enterSetup() {
	m.stage = lockStageSetup
	m.inputs = []textinput.Model{newPasscodeInput("passcode"), newPasscodeInput("repeat passcode")}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *LockModel) enterUnlock() {
	m.stage = lockStageUnlock
	m.inputs = []textinput.Model{newPasscodeInput("passcode")}
	m.focus = 0
	m.inputs[0].Focus()
}

func (m *LockModel) resetInputs() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
	if len(m.inputs) > 0 && m.focus != 0 {
		m.inputs[m.focus].Blur()
		m.focus = 0
		m.inputs[0].Focus()
	}
}

func (m *LockModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *LockModel) cmdStatus() tea.Cmd {
	ctx, v := m.ctx, m.vault
	return func() tea.Msg {
		state, err := v.Status(ctx)
		return vaultStatusMsg{state: state, err: err}
	}
}

func (m *LockModel) cmdSetup(passcode []byte) tea.Cmd {
	ctx, v := m.ctx, m.vault
	return func() tea.Msg {
		recoveryKey, err := v.Setup(ctx, passcode)
		return setupDoneMsg{recoveryKey: recoveryKey, err: err}
	}
}

func (m *LockModel) cmdAcknowledge() tea.Cmd {
	v := m.vault
	return func() tea.Msg {
		session, err := v.AcknowledgeRecoveryKey()
		if err != nil {
			return unlockFailedMsg{err: err}
		}
		return unlockedMsg{session: session}
	}
}

func (m *LockModel) cmdUnlock(passcode []byte) tea.Cmd {
	ctx, v, log := m.ctx, m.vault, m.logger
	return func() tea.Msg {
		session, err := v.Unlock(ctx, passcode)
		if err != nil {
			log.Warn().Err(err).Str("func", "LockModel.cmdUnlock").Msg("unlock rejected")
			return unlockFailedMsg{err: err}
		}
		return unlockedMsg{session: session}
	}
}

func (m *LockModel) cmdLoadICE() tea.Cmd {
	ctx, emergency := m.ctx, m.emergency
	return func() tea.Msg {
		card, err := emergency.Get(ctx)
		return iceLoadedMsg{card: card, err: err}
	}
}

func cmdCopy(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func renderICE(card models.ICEData) string {
	var b strings.Builder
	b.WriteString("Name           │ " + valueOrDash(card.Name) + "\n")
	b.WriteString("Blood group    │ " + valueOrDash(card.BloodGroup) + "\n")
	b.WriteString("Allergies      │ " + valueOrDash(card.Allergies) + "\n")
	b.WriteString("Conditions     │ " + valueOrDash(card.Conditions) + "\n")
	b.WriteString("Contact        │ " + valueOrDash(card.ContactName) + "\n")
	b.WriteString("Contact number │ " + valueOrDash(card.ContactNumber))

	return renderPage("IN CASE OF EMERGENCY", overlayBoxStyle.Render(b.String()), "esc: back")
}

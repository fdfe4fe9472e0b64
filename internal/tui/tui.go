// Package tui implements the terminal interface of the medi-vault client: the
// lock screen that sets up and unlocks the device vault, the dashboard, and
// the remote account form.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/internal/vault"
	"github.com/MKhiriev/go-medi-vault/models"
)

// Vault is the part of [vault.Vault] the lock screen drives.
type Vault interface {
	Status(ctx context.Context) (vault.State, error)
	Setup(ctx context.Context, passcode []byte) (string, error)
	AcknowledgeRecoveryKey() (*vault.Session, error)
	Unlock(ctx context.Context, passcode []byte) (*vault.Session, error)
	Lock()
}

type TUI struct {
	vault     Vault
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(v Vault, services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		vault:     v,
		services:  services,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the lock screen and blocks until the user quits. The vault is
// locked on every exit path.
func (t *TUI) Run(ctx context.Context) error {
	defer t.vault.Lock()

	root := t.newRootModel(ctx)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

func (t *TUI) newRootModel(ctx context.Context) RootModel {
	pages := map[string]tea.Model{
		pageLock:      NewLockModel(ctx, t.vault, t.services.Emergency, t.logger),
		pageDashboard: NewDashboardModel(ctx, t.vault, t.services, t.logger),
		pageAccount:   NewAccountModel(ctx, t.services.Account),
	}

	return NewRootModel(pages, pageLock, t.buildInfo)
}

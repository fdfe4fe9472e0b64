package service

import (
	"github.com/MKhiriev/go-medi-vault/internal/adapter"
	"github.com/MKhiriev/go-medi-vault/internal/crypto"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/store"
)

type ClientServices struct {
	Documents DocumentService
	Vitals    VitalService
	Reminders ReminderService
	Emergency EmergencyService
	Account   AccountService
	Sync      SyncService
}

func NewClientServices(storages *store.ClientStorages, remote adapter.RemoteStore, logger *logger.Logger) *ClientServices {
	syncSvc := NewClientSyncService(storages, remote, logger)

	return &ClientServices{
		Documents: NewClientDocumentService(storages.Records, crypto.NewCipher(), logger),
		Vitals:    NewClientVitalService(storages.Vitals, logger),
		Reminders: NewClientReminderService(storages.Reminders, logger),
		Emergency: NewClientEmergencyService(storages.Settings, logger),
		Account:   NewClientAccountService(remote, storages.Tokens, syncSvc, logger),
		Sync:      syncSvc,
	}
}

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/config"
	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/service"
)

type scheduledWorker struct {
	worker   Worker
	interval time.Duration
}

type Workers struct {
	workers []scheduledWorker

	Sync *SyncWorker
}

// NewWorkers builds the client's background workers from cfg.
func NewWorkers(syncService service.SyncService, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	syncWorker := NewSyncWorker(syncService, logger)

	return &Workers{
		workers: []scheduledWorker{
			{worker: syncWorker, interval: cfg.SyncInterval},
		},
		Sync: syncWorker,
	}
}

// Run starts every worker with its configured interval.
func (w *Workers) Run(ctx context.Context) {
	for _, s := range w.workers {
		s.worker.Start(ctx, s.interval)
	}
}

// Stop stops every worker and waits for them to exit.
func (w *Workers) Stop() {
	for _, s := range w.workers {
		s.worker.Stop()
	}
}

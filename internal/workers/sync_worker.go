package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-medi-vault/internal/logger"
	"github.com/MKhiriev/go-medi-vault/internal/service"
	"github.com/MKhiriev/go-medi-vault/models"
)

// DefaultSyncInterval is used when Start is given a non-positive interval.
const DefaultSyncInterval = 5 * time.Minute

// SyncWorker pushes local changes to the remote store on a ticker.
type SyncWorker struct {
	syncService service.SyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	last    models.SyncReport
	hasLast bool
}

// NewSyncWorker creates a SyncWorker that calls syncService.SyncToCloud on a
// ticker. The worker is idle until Start is called.
func NewSyncWorker(syncService service.SyncService, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{
		syncService: syncService,
		logger:      logger,
	}
}

// Start implements Worker. It stops any previously running loop, then
// launches a background goroutine that calls SyncToCloud every interval.
func (w *SyncWorker) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultSyncInterval
	}

	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Str("func", "SyncWorker.Start").Dur("interval", interval).Msg("sync worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				w.record(w.syncService.SyncToCloud(jobCtx))
			}
		}
	}()
}

// Stop implements Worker. It cancels the loop and blocks until it has
// exited. Safe to call when the worker is not running.
func (w *SyncWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

// LastReport returns the report of the most recent background pass.
func (w *SyncWorker) LastReport() (models.SyncReport, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last, w.hasLast
}

func (w *SyncWorker) record(report models.SyncReport) {
	w.mu.Lock()
	w.last, w.hasLast = report, true
	w.mu.Unlock()

	event := w.logger.Info()
	if len(report.Failed) > 0 {
		event = w.logger.Warn()
	}
	event.Str("func", "SyncWorker.record").
		Bool("skipped", report.Skipped).
		Int("applied", len(report.Applied)).
		Int("failed", len(report.Failed)).
		Msg("background sync pass")
}

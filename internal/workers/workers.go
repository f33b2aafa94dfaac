package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewClientWorkers builds the background workers of the client: currently
// the periodic sync driven by interval.
func NewClientWorkers(ctx context.Context, services *service.ClientServices, interval time.Duration, logger *logger.Logger) *Workers {
	return &Workers{workers: []Worker{
		NewSyncWorker(ctx, service.NewClientSyncJob(services.SyncService, logger), interval, logger),
	}}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}

// Stop halts the workers in reverse start order.
func (w *Workers) Stop() {
	for i := len(w.workers) - 1; i >= 0; i-- {
		w.workers[i].Stop()
	}
}

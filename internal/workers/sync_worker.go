// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
)

// SyncWorker runs a ClientSyncJob for the lifetime of ctx.
type SyncWorker struct {
	ctx      context.Context
	job      service.ClientSyncJob
	interval time.Duration
	logger   *logger.Logger
}

func NewSyncWorker(ctx context.Context, job service.ClientSyncJob, interval time.Duration, logger *logger.Logger) *SyncWorker {
	return &SyncWorker{ctx: ctx, job: job, interval: interval, logger: logger}
}

func (w *SyncWorker) Run() {
	w.logger.Info().Str("func", "SyncWorker.Run").Dur("interval", w.interval).Msg("periodic sync started")
	w.job.Start(w.ctx, w.interval)
}

func (w *SyncWorker) Stop() {
	w.job.Stop()
	w.logger.Info().Str("func", "SyncWorker.Stop").Msg("periodic sync stopped")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bookmark-sync/internal/logger"
	"github.com/MKhiriev/go-bookmark-sync/internal/mock"
	"github.com/MKhiriev/go-bookmark-sync/internal/service"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run and Stop were called.
type mockWorker struct {
	runCount  int
	stopCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func (m *mockWorker) Stop() {
	m.stopCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		if w.runCount != 1 {
			t.Errorf("worker[%d]: expected runCount=1, got %d", i, w.runCount)
		}
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{workers: []Worker{}}

	// Should not panic on empty workers list
	ws.Run()
	ws.Stop()
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Run()
	ws.Stop()
}

func TestWorkers_Order(t *testing.T) {
	var order []string

	ws := &Workers{workers: []Worker{
		&orderWorker{id: "a", order: &order},
		&orderWorker{id: "b", order: &order},
	}}
	ws.Run()
	ws.Stop()

	expected := []string{"run a", "run b", "stop b", "stop a"}
	if len(order) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, order)
	}
	for i, v := range expected {
		if order[i] != v {
			t.Errorf("expected order[%d]=%s, got %s", i, v, order[i])
		}
	}
}

func TestSyncWorker_DrivesJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	job := mock.NewMockClientSyncJob(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		job.EXPECT().Start(ctx, time.Minute),
		job.EXPECT().Stop(),
	)

	w := NewSyncWorker(ctx, job, time.Minute, logger.Nop())
	w.Run()
	w.Stop()
}

func TestNewClientWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	syncService := mock.NewMockClientSyncService(ctrl)

	ws := NewClientWorkers(context.Background(), &service.ClientServices{SyncService: syncService}, time.Hour, logger.Nop())
	if len(ws.workers) != 1 {
		t.Fatalf("expected one worker, got %d", len(ws.workers))
	}

	// интервал в час: за время теста Sync не вызывается
	ws.Run()
	ws.Stop()
}

// orderWorker is a helper that records its calls into a shared slice.
type orderWorker struct {
	id    string
	order *[]string
}

func (o *orderWorker) Run() {
	*o.order = append(*o.order, "run "+o.id)
}

func (o *orderWorker) Stop() {
	*o.order = append(*o.order, "stop "+o.id)
}

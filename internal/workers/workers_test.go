// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/mock"
	"github.com/MKhiriev/shintya-qr/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// countingWorker records Start and Stop calls in a shared order log.
type countingWorker struct {
	id    int
	order *[]int
	start int
	stop  int
}

func (w *countingWorker) Start(context.Context) {
	w.start++
	*w.order = append(*w.order, w.id)
}

func (w *countingWorker) Stop() {
	w.stop++
	*w.order = append(*w.order, -w.id)
}

// ─── Workers ─────────────────────────────────────────────────────────────────

func TestWorkers_StartStopOrder(t *testing.T) {
	var order []int
	w1 := &countingWorker{id: 1, order: &order}
	w2 := &countingWorker{id: 2, order: &order}

	ws := &Workers{workers: []Worker{w1, w2}}
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []int{1, 2, -2, -1}, order)
	assert.Equal(t, 1, w1.start)
	assert.Equal(t, 1, w2.stop)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestNewWorkers(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := &store.Storages{ScanRepository: mock.NewMockScanRepository(ctrl)}

	ws := NewWorkers(storages, config.Workers{PruneInterval: time.Minute, Retention: time.Hour}, logger.Nop())

	require.Len(t, ws.workers, 1)
	pruner, ok := ws.workers[0].(*ScanPruner)
	require.True(t, ok)
	assert.Equal(t, time.Minute, pruner.interval)
	assert.Equal(t, time.Hour, pruner.retention)
}

// ─── ScanPruner ──────────────────────────────────────────────────────────────

func TestNewScanPruner_Defaults(t *testing.T) {
	p := NewScanPruner(nil, config.Workers{}, logger.Nop())

	assert.Equal(t, defaultPruneInterval, p.interval)
	assert.Equal(t, defaultRetention, p.retention)
}

func TestScanPruner_PruneUsesRetention(t *testing.T) {
	ctrl := gomock.NewController(t)
	scans := mock.NewMockScanRepository(ctrl)

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := NewScanPruner(scans, config.Workers{Retention: 2 * time.Hour}, logger.Nop())
	p.now = func() time.Time { return now }

	scans.EXPECT().DeleteScansBefore(gomock.Any(), now.Add(-2*time.Hour)).Return(int64(3), nil)

	p.prune(context.Background())
}

func TestScanPruner_PruneErrorIsLogged(t *testing.T) {
	ctrl := gomock.NewController(t)
	scans := mock.NewMockScanRepository(ctrl)
	p := NewScanPruner(scans, config.Workers{}, logger.Nop())

	scans.EXPECT().DeleteScansBefore(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("locked"))

	// must not panic or stop the pruner
	p.prune(context.Background())
}

func TestScanPruner_StartRunsImmediatelyAndOnTicks(t *testing.T) {
	ctrl := gomock.NewController(t)
	scans := mock.NewMockScanRepository(ctrl)
	p := NewScanPruner(scans, config.Workers{PruneInterval: 10 * time.Millisecond}, logger.Nop())

	var calls atomic.Int32
	scans.EXPECT().DeleteScansBefore(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, time.Time) (int64, error) {
			calls.Add(1)
			return 0, nil
		}).MinTimes(2)

	p.Start(context.Background())
	require.Eventually(t, func() bool { return calls.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	p.Stop()

	after := calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, calls.Load(), "no prune after Stop")
}

func TestScanPruner_StopsWithContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	scans := mock.NewMockScanRepository(ctrl)
	p := NewScanPruner(scans, config.Workers{PruneInterval: time.Hour}, logger.Nop())

	scans.EXPECT().DeleteScansBefore(gomock.Any(), gomock.Any()).Return(int64(0), nil).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("pruner did not exit after cancel")
	}
}

func TestScanPruner_StopWithoutStart(t *testing.T) {
	p := NewScanPruner(nil, config.Workers{}, logger.Nop())
	p.Stop()
}

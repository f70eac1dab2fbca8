// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/store"
)

const (
	defaultPruneInterval = time.Hour
	defaultRetention     = 24 * time.Hour
)

// ScanPruner deletes scan rows older than the retention period. Replay
// protection only needs rows younger than the freshness window, so older
// rows are dead weight.
type ScanPruner struct {
	scans     store.ScanRepository
	interval  time.Duration
	retention time.Duration
	now       func() time.Time

	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewScanPruner creates a pruner for scans. Non-positive durations in cfg fall
// back to one hour and 24 hours.
func NewScanPruner(scans store.ScanRepository, cfg config.Workers, logger *logger.Logger) *ScanPruner {
	interval, retention := cfg.PruneInterval, cfg.Retention
	if interval <= 0 {
		interval = defaultPruneInterval
	}
	if retention <= 0 {
		retention = defaultRetention
	}

	return &ScanPruner{
		scans:     scans,
		interval:  interval,
		retention: retention,
		now:       time.Now,
		logger:    logger,
	}
}

// Start prunes once right away and then every interval until ctx is
// cancelled or Stop is called.
func (p *ScanPruner) Start(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		p.prune(jobCtx)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.prune(jobCtx)
			}
		}
	}()
}

// Stop cancels the pruning goroutine and waits for it to exit.
func (p *ScanPruner) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}

func (p *ScanPruner) prune(ctx context.Context) {
	before := p.now().Add(-p.retention)

	deleted, err := p.scans.DeleteScansBefore(ctx, before)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Err(err).Msg("error pruning scans")
		}
		return
	}
	if deleted > 0 {
		p.logger.Info().Int64("deleted", deleted).Time("before", before).Msg("old scans pruned")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
)

// JournalPruner periodically removes decision records older than the
// retention period.
type JournalPruner struct {
	pruner    HistoryPruner
	retention time.Duration
	interval  time.Duration
	now       func() time.Time
	logger    *logger.Logger
}

func NewJournalPruner(pruner HistoryPruner, retention, interval time.Duration, logger *logger.Logger) *JournalPruner {
	return &JournalPruner{
		pruner:    pruner,
		retention: retention,
		interval:  interval,
		now:       time.Now,
		logger:    logger.WithComponent("journal-pruner"),
	}
}

// Run prunes once right away and then on every tick until ctx is cancelled.
// A non-positive retention or interval disables the pruner.
func (p *JournalPruner) Run(ctx context.Context) {
	if p.retention <= 0 || p.interval <= 0 {
		p.logger.Info().
			Dur("retention", p.retention).
			Dur("interval", p.interval).
			Msg("journal pruning is disabled")
		return
	}

	p.prune(ctx)

	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			p.prune(ctx)
		}
	}
}

func (p *JournalPruner) prune(ctx context.Context) {
	before := p.now().Add(-p.retention).UTC()

	removed, err := p.pruner.PruneHistory(ctx, before)
	if err != nil {
		p.logger.Err(err).Time("before", before).Msg("error pruning decision journal")
		return
	}

	p.logger.Debug().Int64("removed", removed).Time("before", before).Msg("decision journal pruned")
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the server's background jobs.
package workers

import (
	"context"
	"time"
)

// Worker is a background job. Run blocks until ctx is cancelled or the job
// has nothing left to do.
type Worker interface {
	Run(ctx context.Context)
}

// HistoryPruner drops journal records created before a given instant.
// service.VerifierService satisfies it.
type HistoryPruner interface {
	PruneHistory(ctx context.Context, before time.Time) (int64, error)
}

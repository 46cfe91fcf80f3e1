// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyRepository persists key triples by identifier.
type KeyRepository interface {
	// LoadKeys returns the triple stored under id or [ErrKeysNotFound].
	LoadKeys(ctx context.Context, id string) (models.KeyTriple, error)
	// SaveKeys creates or replaces the triple stored under id.
	SaveKeys(ctx context.Context, id string, keys models.KeyTriple) error
	// DeleteKeys removes the triple stored under id. Deleting a missing id
	// is not an error.
	DeleteKeys(ctx context.Context, id string) error
}

// DecisionRepository is the append-only decision journal.
type DecisionRepository interface {
	// SaveDecision appends a record.
	SaveDecision(ctx context.Context, record models.DecisionRecord) error
	// ListDecisions returns up to limit records, newest first. A zero limit
	// returns every record.
	ListDecisions(ctx context.Context, limit uint64) ([]models.DecisionRecord, error)
	// PruneDecisions removes records created before the given instant and
	// reports how many were removed.
	PruneDecisions(ctx context.Context, before time.Time) (int64, error)
}

// ErrorClassificator decides whether a failed database operation may be
// retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification tells the retry loop in [DB] what to do with a failed
// statement.
type ErrorClassification int

const (
	// NonRetryable is the zero value, so unknown errors are never retried.
	NonRetryable ErrorClassification = iota
	Retryable
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/go-rsa-verifier/models"
)

// Verifier is everything the terminal UI needs from a verifier, whether it
// runs in-process or behind an HTTP server.
type Verifier interface {
	GetKeys(ctx context.Context) (models.KeyTriple, error)
	SaveKeys(ctx context.Context, keys models.KeyTriple) (models.KeyTriple, error)
	ResetKeys(ctx context.Context) (models.KeyTriple, error)

	Ingest(ctx context.Context, ciphertext string) (models.PendingDecision, error)
	Resolve(ctx context.Context, grant bool) (models.DecisionResult, error)
	Dismiss(ctx context.Context) error
	Status(ctx context.Context) (models.DecisionStatus, error)

	Challenge(ctx context.Context, plaintext string) (models.ChallengeResponse, error)
	History(ctx context.Context, limit uint64) ([]models.DecisionRecord, error)
}

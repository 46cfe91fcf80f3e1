// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=KeyServiceWrapper

// KeyService manages the persisted key triple.
type KeyService interface {
	// GetKeys returns the persisted triple, or the default key when nothing
	// is persisted.
	GetKeys(ctx context.Context) (models.KeyTriple, error)
	// SaveKeys persists keys and returns what was stored.
	SaveKeys(ctx context.Context, keys models.KeyTriple) (models.KeyTriple, error)
	// ResetKeys removes the persisted triple and returns the default key.
	ResetKeys(ctx context.Context) (models.KeyTriple, error)
}

// KeyServiceWrapper decorates a KeyService with additional behavior such as
// validation.
type KeyServiceWrapper interface {
	Wrap(KeyService) KeyService
}

// VerifierService runs the decrypt, approve and re-sign cycle.
type VerifierService interface {
	// Ingest decrypts ciphertext and makes the plaintext the pending
	// decision value.
	Ingest(ctx context.Context, ciphertext string) (models.PendingDecision, error)
	// Resolve grants or denies the pending decision value.
	Resolve(ctx context.Context, grant bool) (models.DecisionResult, error)
	// Dismiss discards the pending value without output.
	Dismiss(ctx context.Context) error
	// Status returns the current state, pending value and last output.
	Status(ctx context.Context) models.DecisionStatus
	// Challenge encrypts a decimal plaintext with (e, n).
	Challenge(ctx context.Context, plaintext string) (models.ChallengeResponse, error)
	// History returns up to limit journal records, newest first.
	History(ctx context.Context, limit uint64) ([]models.DecisionRecord, error)
	// PruneHistory drops journal records created before the given instant.
	PruneHistory(ctx context.Context, before time.Time) (int64, error)
}

// AuthService authenticates the operator.
type AuthService interface {
	Login(ctx context.Context, req models.LoginRequest) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// AppInfoService exposes application metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter lets the terminal client talk to a remote verifier server.
//
// [ServerAdapter] mirrors the verifier and key operations of the service
// layer over the REST API. HTTP failures are mapped back onto the service
// sentinels where the server's status code identifies one, so callers handle
// local and remote errors alike with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-rsa-verifier/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client side of the verifier REST API.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to operator requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before the first login.
	Token() string

	// Login exchanges the operator password for a bearer token and stores it.
	Login(ctx context.Context, password string) error

	// GetVersion returns the server's application version.
	GetVersion(ctx context.Context) (string, error)

	Ingest(ctx context.Context, ciphertext string) (models.PendingDecision, error)
	Resolve(ctx context.Context, grant bool) (models.DecisionResult, error)
	Dismiss(ctx context.Context) error
	Status(ctx context.Context) (models.DecisionStatus, error)

	GetKeys(ctx context.Context) (models.KeyTriple, error)
	SaveKeys(ctx context.Context, keys models.KeyTriple) (models.KeyTriple, error)
	ResetKeys(ctx context.Context) (models.KeyTriple, error)

	Challenge(ctx context.Context, plaintext string) (models.ChallengeResponse, error)
	History(ctx context.Context, limit uint64) ([]models.DecisionRecord, error)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-rsa-verifier/internal/verifier"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrInvalidPlaintext = errors.New("invalid plaintext")
)

// Verifier errors are shared with the orchestrator so that [errors.Is] works
// across layers.
var (
	ErrMalformedCiphertext = verifier.ErrMalformedCiphertext
	ErrNoPendingDecision   = verifier.ErrNoPendingDecision
	ErrInvalidKeys         = verifier.ErrInvalidKeys
)

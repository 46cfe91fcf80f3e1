// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package verifier

import "errors"

var (
	// ErrMalformedCiphertext is returned by Ingest when the ciphertext or the
	// private key fields cannot be decoded, or decryption fails.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrNoPendingDecision is returned by Resolve and Dismiss when nothing
	// awaits a decision.
	ErrNoPendingDecision = errors.New("no pending decision")

	// ErrInvalidKeys is returned by Resolve when the current key triple no
	// longer decodes on grant.
	ErrInvalidKeys = errors.New("invalid keys")
)

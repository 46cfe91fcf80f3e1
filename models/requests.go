// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VerifyRequest carries an incoming ciphertext in L-format.
type VerifyRequest struct {
	Verify string `json:"verify"`
}

// DecisionRequest carries the operator decision for the pending value.
type DecisionRequest struct {
	Grant bool `json:"grant"`
}

// ChallengeRequest asks the verifier to encrypt a decimal plaintext with the
// public exponent.
type ChallengeRequest struct {
	Plaintext string `json:"plaintext"`
}

// ChallengeResponse holds an encrypted challenge ready to be ingested.
type ChallengeResponse struct {
	// Verify is the ciphertext in L-format.
	Verify string `json:"verify"`
	// Path is a relative URL that ingests Verify when requested.
	Path string `json:"path"`
}

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Password string `json:"password"`
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Fixed user-facing outputs of the verification flow.
const (
	// OutputDenied is emitted when the operator denies a request.
	OutputDenied = "授权已拒绝。"

	// OutputParseError is emitted when an incoming verify value cannot be
	// decrypted.
	OutputParseError = "错误：无法解析 verify 参数，请检查格式。"
)

// VerifyState is the state of one decrypt/approve/encrypt cycle.
type VerifyState string

const (
	// StateIdle means no ciphertext is being handled.
	StateIdle VerifyState = "idle"
	// StateAwaitingDecision means a decrypted value waits for grant or deny.
	StateAwaitingDecision VerifyState = "awaiting_decision"
	// StateResolved means the last cycle ended with a grant or a deny.
	StateResolved VerifyState = "resolved"
)

// PendingDecision describes the decrypted value shown to the operator.
type PendingDecision struct {
	// Ciphertext is the L-format value that was ingested.
	Ciphertext string `json:"ciphertext"`
	// Plaintext is the decrypted value in decimal.
	Plaintext string `json:"plaintext"`
}

// DecisionStatus is a snapshot of the verifier state.
type DecisionStatus struct {
	State      VerifyState      `json:"state"`
	Pending    *PendingDecision `json:"pending,omitempty"`
	LastOutput string           `json:"last_output,omitempty"`
}

// DecisionResult is the output of a resolved cycle.
type DecisionResult struct {
	Granted bool   `json:"granted"`
	Output  string `json:"output"`
}

// DecisionRecord is one entry of the decision journal.
type DecisionRecord struct {
	ID         string    `json:"id"`
	Ciphertext string    `json:"ciphertext"`
	Plaintext  string    `json:"plaintext"`
	Granted    bool      `json:"granted"`
	Failed     bool      `json:"failed"`
	Output     string    `json:"output"`
	CreatedAt  time.Time `json:"created_at"`
}

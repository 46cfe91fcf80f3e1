// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package verifier holds the decrypt, approve and re-sign cycle.
//
// An [Orchestrator] moves between three states:
//
//	Idle ──Ingest──▶ AwaitingDecision ──Resolve──▶ Resolved
//	  ▲                    │
//	  └──────Dismiss───────┘
//
// Ingest decrypts a ciphertext with (d, n) and keeps the plaintext pending.
// Resolve either denies the request with a fixed message or adds one to the
// pending value and signs it with (d, n). The orchestrator is not safe for
// concurrent use; hosts serialize calls.
package verifier

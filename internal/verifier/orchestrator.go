// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package verifier

import (
	"fmt"
	"math/big"

	"github.com/MKhiriev/go-rsa-verifier/internal/bigdigits"
	"github.com/MKhiriev/go-rsa-verifier/internal/crypto"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

var one = big.NewInt(1)

// Orchestrator owns the pending decision value of one verifier.
type Orchestrator struct {
	codec bigdigits.Codec

	state      models.VerifyState
	ciphertext string
	pending    *big.Int
	lastOutput string
}

// New returns an idle orchestrator decoding with codec.
func New(codec bigdigits.Codec) *Orchestrator {
	return &Orchestrator{codec: codec, state: models.StateIdle}
}

// Ingest decrypts ciphertext with the d and n fields of keys and makes the
// plaintext the pending decision value, replacing any earlier one.
//
// On failure the orchestrator returns to Idle with nothing pending, the last
// output becomes [models.OutputParseError] and the error wraps
// [ErrMalformedCiphertext].
func (o *Orchestrator) Ingest(ciphertext string, keys models.KeyTriple) (models.PendingDecision, error) {
	plaintext, err := o.decrypt(ciphertext, keys)
	if err != nil {
		o.reset(models.StateIdle)
		o.lastOutput = models.OutputParseError
		return models.PendingDecision{}, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}

	o.state = models.StateAwaitingDecision
	o.ciphertext = ciphertext
	o.pending = plaintext
	o.lastOutput = ""

	return o.pendingDecision(), nil
}

func (o *Orchestrator) decrypt(ciphertext string, keys models.KeyTriple) (*big.Int, error) {
	c, err := o.codec.Parse(ciphertext)
	if err != nil {
		return nil, fmt.Errorf("ciphertext: %w", err)
	}

	key, err := o.privateKey(keys)
	if err != nil {
		return nil, err
	}

	return key.Decrypt(c)
}

// Resolve ends the cycle. A deny produces [models.OutputDenied] without any
// arithmetic. A grant signs pending+1 with the current (d, n) and renders the
// result in display format.
//
// If the keys fail to decode on grant, Resolve returns an error wrapping
// [ErrInvalidKeys] and keeps the pending value so the grant can be retried.
func (o *Orchestrator) Resolve(grant bool, keys models.KeyTriple) (models.DecisionResult, error) {
	if o.pending == nil {
		return models.DecisionResult{}, ErrNoPendingDecision
	}

	if !grant {
		o.reset(models.StateResolved)
		o.lastOutput = models.OutputDenied
		return models.DecisionResult{Output: models.OutputDenied}, nil
	}

	key, err := o.privateKey(keys)
	if err != nil {
		return models.DecisionResult{}, fmt.Errorf("%w: %w", ErrInvalidKeys, err)
	}

	adjusted := new(big.Int).Add(o.pending, one)
	signed, err := key.Sign(adjusted)
	if err != nil {
		return models.DecisionResult{}, fmt.Errorf("%w: %w", ErrInvalidKeys, err)
	}

	output := bigdigits.ToDisplayFormat(bigdigits.ToDigits(signed))

	o.reset(models.StateResolved)
	o.lastOutput = output

	return models.DecisionResult{Granted: true, Output: output}, nil
}

// Dismiss discards the pending value without producing output and returns to
// Idle. It fails with [ErrNoPendingDecision] when nothing is pending.
func (o *Orchestrator) Dismiss() error {
	if o.pending == nil {
		return ErrNoPendingDecision
	}

	o.reset(models.StateIdle)
	return nil
}

// Pending returns the value awaiting a decision.
func (o *Orchestrator) Pending() (models.PendingDecision, bool) {
	if o.pending == nil {
		return models.PendingDecision{}, false
	}
	return o.pendingDecision(), true
}

func (o *Orchestrator) State() models.VerifyState {
	return o.state
}

// LastOutput returns the output of the last resolved or failed cycle.
func (o *Orchestrator) LastOutput() string {
	return o.lastOutput
}

// Status returns a snapshot of the orchestrator.
func (o *Orchestrator) Status() models.DecisionStatus {
	status := models.DecisionStatus{State: o.state, LastOutput: o.lastOutput}
	if pending, ok := o.Pending(); ok {
		status.Pending = &pending
	}
	return status
}

func (o *Orchestrator) pendingDecision() models.PendingDecision {
	return models.PendingDecision{Ciphertext: o.ciphertext, Plaintext: o.pending.String()}
}

func (o *Orchestrator) reset(state models.VerifyState) {
	o.state = state
	o.ciphertext = ""
	o.pending = nil
}

// privateKey decodes only the fields the private-key operation needs.
func (o *Orchestrator) privateKey(keys models.KeyTriple) (crypto.Key, error) {
	d, err := o.codec.Parse(keys.D)
	if err != nil {
		return crypto.Key{}, fmt.Errorf("%w: field d: %w", crypto.ErrInvalidKey, err)
	}

	n, err := o.codec.Parse(keys.N)
	if err != nil {
		return crypto.Key{}, fmt.Errorf("%w: field n: %w", crypto.ErrInvalidKey, err)
	}

	return crypto.Key{D: d, N: n}, nil
}

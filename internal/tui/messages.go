// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-rsa-verifier/models"
)

type statusLoadedMsg struct {
	status models.DecisionStatus
	err    error
}

type ingestedMsg struct {
	pending models.PendingDecision
	err     error
}

type resolvedMsg struct {
	result models.DecisionResult
	err    error
}

type dismissedMsg struct {
	err error
}

type keysLoadedMsg struct {
	keys models.KeyTriple
	err  error
}

type keysSavedMsg struct {
	keys  models.KeyTriple
	reset bool
	err   error
}

type challengeDoneMsg struct {
	challenge models.ChallengeResponse
	err       error
}

type historyLoadedMsg struct {
	records []models.DecisionRecord
	err     error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

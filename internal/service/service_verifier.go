// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/MKhiriev/go-rsa-verifier/internal/bigdigits"
	"github.com/MKhiriev/go-rsa-verifier/internal/crypto"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/metrics"
	"github.com/MKhiriev/go-rsa-verifier/internal/store"
	"github.com/MKhiriev/go-rsa-verifier/internal/utils"
	"github.com/MKhiriev/go-rsa-verifier/internal/validators"
	"github.com/MKhiriev/go-rsa-verifier/internal/verifier"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// VerifyPath is the relative URL that ingests a ciphertext passed in the
// verify query parameter.
const VerifyPath = "/api/verify"

// verifierService guards one [verifier.Orchestrator] with a mutex, loads the
// current keys for every transition and journals each outcome.
type verifierService struct {
	mu           sync.Mutex
	orchestrator *verifier.Orchestrator

	codec      bigdigits.Codec
	keyService KeyService
	journal    store.DecisionRepository
	ids        *utils.UUIDGenerator
	recorder   metrics.Recorder
	now        func() time.Time

	logger *logger.Logger
}

// NewVerifierService builds a [VerifierService]. journal and recorder may be
// nil, in which case outcomes are neither journaled nor counted.
func NewVerifierService(
	keyService KeyService,
	journal store.DecisionRepository,
	codec bigdigits.Codec,
	recorder metrics.Recorder,
	logger *logger.Logger,
) VerifierService {
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	return &verifierService{
		orchestrator: verifier.New(codec),
		codec:        codec,
		keyService:   keyService,
		journal:      journal,
		ids:          utils.NewUUIDGenerator(),
		recorder:     recorder,
		now:          time.Now,
		logger:       logger,
	}
}

// Ingest implements [VerifierService]. A failure to decode or decrypt returns
// an error wrapping [ErrMalformedCiphertext]; the verifier then reports
// [models.OutputParseError] as its last output.
func (s *verifierService) Ingest(ctx context.Context, ciphertext string) (models.PendingDecision, error) {
	log := logger.FromContext(ctx)

	keys, err := s.keyService.GetKeys(ctx)
	if err != nil {
		return models.PendingDecision{}, fmt.Errorf("error loading keys for ingest: %w", err)
	}

	s.mu.Lock()
	start := time.Now()
	pending, err := s.orchestrator.Ingest(ciphertext, keys)
	s.recorder.ObserveModPow(metrics.LabelOperationDecrypt, time.Since(start))
	s.mu.Unlock()

	if err != nil {
		log.Warn().Err(err).Str("ciphertext", ciphertext).Msg("ciphertext rejected")
		s.recorder.IncIngest(metrics.LabelStatusFail)
		s.record(ctx, models.DecisionRecord{
			Ciphertext: ciphertext,
			Failed:     true,
			Output:     models.OutputParseError,
		})
		return models.PendingDecision{}, err
	}

	log.Debug().Str("ciphertext", ciphertext).Msg("ciphertext ingested")
	s.recorder.IncIngest(metrics.LabelStatusSuccess)
	return pending, nil
}

// Resolve implements [VerifierService]. Keys are loaded only for a grant.
func (s *verifierService) Resolve(ctx context.Context, grant bool) (models.DecisionResult, error) {
	log := logger.FromContext(ctx)

	decision := metrics.LabelDecisionDenied
	var keys models.KeyTriple
	if grant {
		decision = metrics.LabelDecisionGranted

		var err error
		if keys, err = s.keyService.GetKeys(ctx); err != nil {
			s.recorder.IncDecision(decision, metrics.LabelStatusFail)
			return models.DecisionResult{}, fmt.Errorf("error loading keys for grant: %w", err)
		}
	}

	s.mu.Lock()
	pending, _ := s.orchestrator.Pending()
	start := time.Now()
	result, err := s.orchestrator.Resolve(grant, keys)
	if grant {
		s.recorder.ObserveModPow(metrics.LabelOperationSign, time.Since(start))
	}
	s.mu.Unlock()

	if err != nil {
		log.Err(err).Bool("grant", grant).Msg("error resolving decision")
		s.recorder.IncDecision(decision, metrics.LabelStatusFail)
		return models.DecisionResult{}, err
	}

	log.Info().Bool("grant", grant).Str("output", result.Output).Msg("decision resolved")
	s.recorder.IncDecision(decision, metrics.LabelStatusSuccess)
	s.record(ctx, models.DecisionRecord{
		Ciphertext: pending.Ciphertext,
		Plaintext:  pending.Plaintext,
		Granted:    result.Granted,
		Output:     result.Output,
	})

	return result, nil
}

func (s *verifierService) Dismiss(ctx context.Context) error {
	s.mu.Lock()
	err := s.orchestrator.Dismiss()
	s.mu.Unlock()

	if err != nil {
		s.recorder.IncDecision(metrics.LabelDecisionDismiss, metrics.LabelStatusFail)
		return err
	}

	logger.FromContext(ctx).Debug().Msg("pending decision dismissed")
	s.recorder.IncDecision(metrics.LabelDecisionDismiss, metrics.LabelStatusSuccess)
	return nil
}

func (s *verifierService) Status(_ context.Context) models.DecisionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.orchestrator.Status()
}

// Challenge implements [VerifierService]. It leaves the pending decision
// untouched.
func (s *verifierService) Challenge(ctx context.Context, plaintext string) (models.ChallengeResponse, error) {
	m, err := validators.ParseDecimal(plaintext)
	if err != nil {
		return models.ChallengeResponse{}, fmt.Errorf("%w: %w", ErrInvalidPlaintext, err)
	}

	keys, err := s.keyService.GetKeys(ctx)
	if err != nil {
		return models.ChallengeResponse{}, fmt.Errorf("error loading keys for challenge: %w", err)
	}

	key, err := crypto.ParseKey(s.codec, keys)
	if err != nil {
		return models.ChallengeResponse{}, fmt.Errorf("%w: %w", ErrInvalidKeys, err)
	}

	start := time.Now()
	c, err := key.Encrypt(m)
	s.recorder.ObserveModPow(metrics.LabelOperationEncrypt, time.Since(start))
	if err != nil {
		return models.ChallengeResponse{}, fmt.Errorf("%w: %w", ErrInvalidKeys, err)
	}

	verify, err := bigdigits.Encode(c)
	if err != nil {
		return models.ChallengeResponse{}, fmt.Errorf("error encoding challenge: %w", err)
	}

	return models.ChallengeResponse{
		Verify: verify,
		Path:   VerifyPath + "?verify=" + url.QueryEscape(verify),
	}, nil
}

func (s *verifierService) History(ctx context.Context, limit uint64) ([]models.DecisionRecord, error) {
	if s.journal == nil {
		return []models.DecisionRecord{}, nil
	}

	records, err := s.journal.ListDecisions(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("error listing decisions: %w", err)
	}

	return records, nil
}

func (s *verifierService) PruneHistory(ctx context.Context, before time.Time) (int64, error) {
	if s.journal == nil {
		return 0, nil
	}

	removed, err := s.journal.PruneDecisions(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("error pruning decisions: %w", err)
	}

	return removed, nil
}

// record appends rec to the journal. Failures are logged and dropped.
func (s *verifierService) record(ctx context.Context, rec models.DecisionRecord) {
	if s.journal == nil {
		return
	}

	rec.ID = s.ids.Generate()
	rec.CreatedAt = s.now().UTC()

	if err := s.journal.SaveDecision(ctx, rec); err != nil {
		s.logger.Err(err).Str("func", "verifierService.record").Str("id", rec.ID).Msg("error journaling decision")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-rsa-verifier/internal/crypto"
	"github.com/MKhiriev/go-rsa-verifier/internal/logger"
	"github.com/MKhiriev/go-rsa-verifier/internal/store"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// keyService stores the key triple under a fixed identifier.
type keyService struct {
	keyRepository store.KeyRepository
	keyID         string

	logger *logger.Logger
}

// NewKeyService returns a [KeyService] persisting under keyID. An empty keyID
// falls back to [models.DefaultKeyID].
func NewKeyService(keyRepository store.KeyRepository, keyID string, logger *logger.Logger) KeyService {
	if keyID == "" {
		keyID = models.DefaultKeyID
	}

	return &keyService{
		keyRepository: keyRepository,
		keyID:         keyID,
		logger:        logger,
	}
}

func (s *keyService) GetKeys(ctx context.Context) (models.KeyTriple, error) {
	keys, err := s.keyRepository.LoadKeys(ctx, s.keyID)
	if errors.Is(err, store.ErrKeysNotFound) {
		return crypto.DefaultKeyTriple(), nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("key_id", s.keyID).Msg("error loading keys")
		return models.KeyTriple{}, fmt.Errorf("error loading keys: %w", err)
	}

	return keys, nil
}

func (s *keyService) SaveKeys(ctx context.Context, keys models.KeyTriple) (models.KeyTriple, error) {
	if err := s.keyRepository.SaveKeys(ctx, s.keyID, keys); err != nil {
		logger.FromContext(ctx).Err(err).Str("key_id", s.keyID).Msg("error saving keys")
		return models.KeyTriple{}, fmt.Errorf("error saving keys: %w", err)
	}

	s.logger.Info().Str("key_id", s.keyID).Msg("keys saved")
	return keys, nil
}

func (s *keyService) ResetKeys(ctx context.Context) (models.KeyTriple, error) {
	if err := s.keyRepository.DeleteKeys(ctx, s.keyID); err != nil {
		logger.FromContext(ctx).Err(err).Str("key_id", s.keyID).Msg("error deleting keys")
		return models.KeyTriple{}, fmt.Errorf("error resetting keys: %w", err)
	}

	s.logger.Info().Str("key_id", s.keyID).Msg("keys reset to defaults")
	return crypto.DefaultKeyTriple(), nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-rsa-verifier/internal/validators"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// KeyValidationService rejects key triples that do not decode before they
// reach the wrapped [KeyService].
type KeyValidationService struct {
	inner     KeyService
	validator validators.Validator
}

func NewKeyValidationService(validator validators.Validator) KeyServiceWrapper {
	return &KeyValidationService{validator: validator}
}

func (v *KeyValidationService) GetKeys(ctx context.Context) (models.KeyTriple, error) {
	return v.inner.GetKeys(ctx)
}

func (v *KeyValidationService) SaveKeys(ctx context.Context, keys models.KeyTriple) (models.KeyTriple, error) {
	if err := v.validator.Validate(ctx, keys); err != nil {
		return models.KeyTriple{}, fmt.Errorf("%w: %w", ErrInvalidKeys, err)
	}

	return v.inner.SaveKeys(ctx, keys)
}

func (v *KeyValidationService) ResetKeys(ctx context.Context) (models.KeyTriple, error) {
	return v.inner.ResetKeys(ctx)
}

func (v *KeyValidationService) Wrap(inner KeyService) KeyService {
	v.inner = inner
	return v
}

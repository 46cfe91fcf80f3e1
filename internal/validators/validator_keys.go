// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"math/big"

	"github.com/MKhiriev/go-rsa-verifier/internal/bigdigits"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// Field name constants accepted by [KeyTripleValidator.Validate].
const (
	FieldE         = "e"
	FieldD         = "d"
	FieldN         = "n"
	FieldVerify    = "verify"
	FieldPlaintext = "plaintext"
)

// KeyTripleValidator validates key triples, verify requests and challenge
// requests using the configured L-format codec.
type KeyTripleValidator struct {
	codec bigdigits.Codec
}

// NewKeyTripleValidator returns a [Validator] parsing with codec.
func NewKeyTripleValidator(codec bigdigits.Codec) Validator {
	return &KeyTripleValidator{codec: codec}
}

func (v *KeyTripleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.KeyTriple:
		return v.validateKeyTriple(ctx, value, fields...)
	case *models.KeyTriple:
		return v.validateKeyTriple(ctx, *value, fields...)

	case models.VerifyRequest:
		return v.validateVerifyRequest(ctx, value, fields...)
	case *models.VerifyRequest:
		return v.validateVerifyRequest(ctx, *value, fields...)

	case models.ChallengeRequest:
		return v.validateChallengeRequest(ctx, value, fields...)
	case *models.ChallengeRequest:
		return v.validateChallengeRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *KeyTripleValidator) validateKeyTriple(_ context.Context, triple models.KeyTriple, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldE, FieldD, FieldN}
	}

	for _, f := range fields {
		switch f {
		case FieldE:
			if _, err := v.codec.Parse(triple.E); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidPublicExponent, err)
			}
		case FieldD:
			if _, err := v.codec.Parse(triple.D); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidPrivateExponent, err)
			}
		case FieldN:
			n, err := v.codec.Parse(triple.N)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidModulus, err)
			}
			if n.Sign() <= 0 {
				return ErrModulusTooSmall
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *KeyTripleValidator) validateVerifyRequest(_ context.Context, request models.VerifyRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVerify}
	}

	for _, f := range fields {
		switch f {
		case FieldVerify:
			if request.Verify == "" {
				return ErrEmptyVerify
			}
			if _, err := v.codec.Parse(request.Verify); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidVerify, err)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *KeyTripleValidator) validateChallengeRequest(_ context.Context, request models.ChallengeRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldPlaintext}
	}

	for _, f := range fields {
		switch f {
		case FieldPlaintext:
			if _, err := ParseDecimal(request.Plaintext); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ParseDecimal parses a non-negative base-10 integer without sign or
// whitespace.
func ParseDecimal(s string) (*big.Int, error) {
	if s == "" {
		return nil, ErrInvalidPlaintext
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return nil, ErrInvalidPlaintext
		}
	}

	value, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, ErrInvalidPlaintext
	}
	return value, nil
}

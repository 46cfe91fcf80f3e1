// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPublicExponent  = errors.New("invalid public exponent e")
	ErrInvalidPrivateExponent = errors.New("invalid private exponent d")
	ErrInvalidModulus         = errors.New("invalid modulus n")
	ErrModulusTooSmall        = errors.New("modulus n must be at least 1")
	ErrEmptyVerify            = errors.New("verify value is required")
	ErrInvalidVerify          = errors.New("invalid verify value")
	ErrInvalidPlaintext       = errors.New("plaintext must be a non-negative decimal integer")
)

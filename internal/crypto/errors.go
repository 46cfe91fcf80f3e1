// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrNilOperand is returned when any ModPow operand is nil.
	ErrNilOperand = errors.New("nil operand")

	// ErrInvalidModulus is returned when the modulus is below 1.
	ErrInvalidModulus = errors.New("modulus must be at least 1")

	// ErrNegativeExponent is returned for an exponent below 0.
	ErrNegativeExponent = errors.New("exponent must not be negative")

	// ErrInvalidKey is returned by ParseKey when any field of the key triple
	// cannot be decoded.
	ErrInvalidKey = errors.New("invalid key")
)

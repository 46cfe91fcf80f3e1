// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bigdigits

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned by the parse functions for an empty string.
	ErrInvalidInput = errors.New("invalid input: empty digit string")

	// ErrMalformedFragment is returned when a delimiter-separated fragment is
	// not an unsigned decimal integer.
	ErrMalformedFragment = errors.New("malformed digit fragment")

	// ErrFragmentOutOfRange is returned by strict parsing when a fragment is
	// outside [0, 9999]. It also matches ErrMalformedFragment.
	ErrFragmentOutOfRange = fmt.Errorf("%w: value out of range [0, %d]", ErrMalformedFragment, MaxDigit)

	// ErrNegativeValue is returned when a negative integer is encoded.
	ErrNegativeValue = errors.New("negative values cannot be encoded")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the transport layer. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header cannot be split into a scheme and a token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header carries a
	// scheme but an empty token.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")

	ErrMissingHashHeader    = errors.New("missing `HashSHA256` header")
	ErrIntegrityCheckFailed = errors.New("integrity check failed")

	// ErrInvalidLimit is returned when the journal listing limit is not a
	// positive integer.
	ErrInvalidLimit = errors.New("limit must be a positive integer")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers shared by the verifier
// binaries: typed context keys, HMAC hashing, JSON response writing, the
// HTTP client wrapper, UUID generation and operator JWT handling.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// OperatorCtxKey is the key the auth middleware stores the authenticated
// operator name under.
//
//	ctx := context.WithValue(ctx, utils.OperatorCtxKey, "operator")
var OperatorCtxKey = contextKey("operator")

// GetOperatorFromContext retrieves the operator name from the context.
// ok is false when the value is missing, has an unexpected type or is empty.
func GetOperatorFromContext(ctx context.Context) (string, bool) {
	operator, ok := ctx.Value(OperatorCtxKey).(string)
	if !ok || operator == "" {
		return "", false
	}
	return operator, true
}

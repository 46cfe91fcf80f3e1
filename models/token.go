// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an operator JWT.
//
// SignedString holds the compact serialized form that travels in the
// Authorization header. Operator is the "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	Operator string `json:"-"`
}

// GetOperator returns the subject claim of the token.
func (t *Token) GetOperator() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting operator from token: %w", err)
	}
	if sub == "" {
		return "", fmt.Errorf("error extracting operator from token: empty subject")
	}

	return sub, nil
}

// String implements [fmt.Stringer].
func (t *Token) String() string {
	return t.SignedString
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultKeyID is the identifier the key triple is persisted under.
const DefaultKeyID = "rsa-keys"

// KeyTriple is the textual key material of the verifier: public exponent e,
// private exponent d and modulus n, each an L-format string.
//
// The fields are opaque text until parsed; nothing checks that they form a
// real RSA key pair.
type KeyTriple struct {
	E string `json:"e"`
	D string `json:"d"`
	N string `json:"n"`
}

// IsEmpty reports whether all three fields are empty.
func (k KeyTriple) IsEmpty() bool {
	return k.E == "" && k.D == "" && k.N == ""
}

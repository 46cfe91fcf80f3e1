// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"math/big"

	"github.com/MKhiriev/go-rsa-verifier/models"
)

// Default key material seeded when nothing is persisted. The modulus does not
// fit in 64 bits.
const (
	DefaultE = "65537"
	DefaultD = "869759359060353473"
	DefaultN = "16864325190094293761"
)

// DefaultKey returns the parsed default key.
func DefaultKey() Key {
	return Key{
		E: mustDecimal(DefaultE),
		D: mustDecimal(DefaultD),
		N: mustDecimal(DefaultN),
	}
}

// DefaultKeyTriple returns the default key in L-format.
func DefaultKeyTriple() models.KeyTriple {
	// the constants are non-negative, Triple cannot fail
	triple, _ := DefaultKey().Triple()
	return triple
}

func mustDecimal(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("crypto: bad decimal constant " + s)
	}
	return v
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"fmt"
	"math/big"

	"github.com/MKhiriev/go-rsa-verifier/internal/bigdigits"
	"github.com/MKhiriev/go-rsa-verifier/models"
)

// Key is a parsed key triple.
type Key struct {
	E *big.Int
	D *big.Int
	N *big.Int
}

// ParseKey decodes every field of triple with codec. The returned error wraps
// [ErrInvalidKey] and names the field that failed.
func ParseKey(codec bigdigits.Codec, triple models.KeyTriple) (Key, error) {
	e, err := codec.Parse(triple.E)
	if err != nil {
		return Key{}, fmt.Errorf("%w: field e: %w", ErrInvalidKey, err)
	}

	d, err := codec.Parse(triple.D)
	if err != nil {
		return Key{}, fmt.Errorf("%w: field d: %w", ErrInvalidKey, err)
	}

	n, err := codec.Parse(triple.N)
	if err != nil {
		return Key{}, fmt.Errorf("%w: field n: %w", ErrInvalidKey, err)
	}

	return Key{E: e, D: d, N: n}, nil
}

// Triple encodes k back to L-format.
func (k Key) Triple() (models.KeyTriple, error) {
	e, err := bigdigits.Encode(k.E)
	if err != nil {
		return models.KeyTriple{}, fmt.Errorf("encode e: %w", err)
	}
	d, err := bigdigits.Encode(k.D)
	if err != nil {
		return models.KeyTriple{}, fmt.Errorf("encode d: %w", err)
	}
	n, err := bigdigits.Encode(k.N)
	if err != nil {
		return models.KeyTriple{}, fmt.Errorf("encode n: %w", err)
	}

	return models.KeyTriple{E: e, D: d, N: n}, nil
}

// Encrypt computes m^e mod n.
func (k Key) Encrypt(m *big.Int) (*big.Int, error) {
	return ModPow(m, k.E, k.N)
}

// Decrypt computes c^d mod n.
func (k Key) Decrypt(c *big.Int) (*big.Int, error) {
	return ModPow(c, k.D, k.N)
}

// Sign computes m^d mod n, the private-key operation applied to an outgoing
// value.
func (k Key) Sign(m *big.Int) (*big.Int, error) {
	return ModPow(m, k.D, k.N)
}

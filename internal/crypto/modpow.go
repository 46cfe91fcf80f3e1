// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the modular arithmetic behind the RSA-style
// verification flow: binary modular exponentiation over arbitrary-precision
// integers and the key operations built on top of it.
//
// Nothing here generates keys or checks that e, d and n belong together; the
// key triple is trusted as supplied.
package crypto

import "math/big"

var one = big.NewInt(1)

// ModPow computes base^exponent mod modulus by square-and-multiply, scanning
// the exponent from the least significant bit.
//
// The modulus must be at least 1 and the exponent non-negative. A modulus of 1
// always yields 0. The result lies in [0, modulus) for any base, including
// negative ones. None of the operands is modified.
func ModPow(base, exponent, modulus *big.Int) (*big.Int, error) {
	if base == nil || exponent == nil || modulus == nil {
		return nil, ErrNilOperand
	}
	if modulus.Sign() <= 0 {
		return nil, ErrInvalidModulus
	}
	if exponent.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	if modulus.Cmp(one) == 0 {
		return new(big.Int), nil
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}

	return result, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bigdigits

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

const (
	// Delimiter terminates every digit group of an L-format string.
	Delimiter = 'L'

	// Base is the radix of a digit sequence.
	Base = 10000

	// MaxDigit is the largest value a single digit may hold.
	MaxDigit = Base - 1
)

var (
	bigBase     = big.NewInt(Base)
	bigMaxDigit = big.NewInt(MaxDigit)
)

// Digits is a base-10000 digit sequence, least-significant digit first.
type Digits []uint16

// Codec parses L-format strings. A strict codec rejects fragments outside
// [0, MaxDigit]; a lenient one weights every fragment positionally no matter
// its size.
type Codec struct {
	Strict bool
}

// NewCodec returns a [Codec] with the given strictness.
func NewCodec(strict bool) Codec {
	return Codec{Strict: strict}
}

// Parse decodes text according to the codec strictness.
func (c Codec) Parse(text string) (*big.Int, error) {
	return parse(text, c.Strict)
}

// Encode returns the L-format of x.
func (c Codec) Encode(x *big.Int) (string, error) {
	return Encode(x)
}

// Parse decodes an L-format string into an integer, rejecting fragments
// outside [0, MaxDigit].
//
// Empty fragments are skipped, so a trailing delimiter is allowed. An empty
// text fails with [ErrInvalidInput]; a non-empty text without any fragment
// (for example "L") decodes to zero.
func Parse(text string) (*big.Int, error) {
	return parse(text, true)
}

// ParseLenient is like [Parse] but does not range-check fragments. A fragment
// above MaxDigit produces a value that does not encode back to the same text.
func ParseLenient(text string) (*big.Int, error) {
	return parse(text, false)
}

func parse(text string, strict bool) (*big.Int, error) {
	if text == "" {
		return nil, ErrInvalidInput
	}

	fragments := strings.FieldsFunc(text, func(r rune) bool {
		return r == Delimiter
	})

	result := new(big.Int)
	power := big.NewInt(1)
	term := new(big.Int)

	for i, fragment := range fragments {
		value, err := parseFragment(fragment, strict)
		if err != nil {
			return nil, fmt.Errorf("fragment %d (%q): %w", i, fragment, err)
		}

		term.Mul(value, power)
		result.Add(result, term)
		power.Mul(power, bigBase)
	}

	return result, nil
}

func parseFragment(fragment string, strict bool) (*big.Int, error) {
	trimmed := strings.TrimSpace(fragment)
	if trimmed == "" {
		return nil, ErrMalformedFragment
	}

	for _, r := range trimmed {
		if r < '0' || r > '9' {
			return nil, ErrMalformedFragment
		}
	}

	value, ok := new(big.Int).SetString(trimmed, 10)
	if !ok {
		return nil, ErrMalformedFragment
	}

	if strict && value.Cmp(bigMaxDigit) > 0 {
		return nil, ErrFragmentOutOfRange
	}

	return value, nil
}

// ToDigits splits x into base-10000 digits, least significant first.
//
// Zero (and nil) yields the singleton [0]. The result never ends with a zero
// digit otherwise. Negative values have no digit sequence and yield nil.
func ToDigits(x *big.Int) Digits {
	if x == nil || x.Sign() == 0 {
		return Digits{0}
	}
	if x.Sign() < 0 {
		return nil
	}

	n := new(big.Int).Set(x)
	rem := new(big.Int)
	digits := make(Digits, 0, n.BitLen()/13+1)

	for n.Sign() > 0 {
		n.QuoRem(n, bigBase, rem)
		digits = append(digits, uint16(rem.Uint64()))
	}

	return digits
}

// ToLFormat joins digits with the delimiter and appends a trailing one.
func ToLFormat(digits Digits) string {
	if len(digits) == 0 {
		return string(Delimiter)
	}

	var sb strings.Builder
	sb.Grow(len(digits) * 5)
	for _, d := range digits {
		sb.WriteString(strconv.FormatUint(uint64(d), 10))
		sb.WriteByte(Delimiter)
	}

	return sb.String()
}

// ToDisplayFormat renders digits as "[d0,d1,...,dn]".
func ToDisplayFormat(digits Digits) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = strconv.FormatUint(uint64(d), 10)
	}

	return "[" + strings.Join(parts, ",") + "]"
}

// Encode returns the L-format of x. Negative values fail with
// [ErrNegativeValue].
func Encode(x *big.Int) (string, error) {
	if x != nil && x.Sign() < 0 {
		return "", ErrNegativeValue
	}

	return ToLFormat(ToDigits(x)), nil
}

// LFormat is shorthand for [ToLFormat].
func (d Digits) LFormat() string {
	return ToLFormat(d)
}

// String implements [fmt.Stringer] using the display format.
func (d Digits) String() string {
	return ToDisplayFormat(d)
}

// Int rebuilds the integer represented by d.
func (d Digits) Int() *big.Int {
	result := new(big.Int)
	for i := len(d) - 1; i >= 0; i-- {
		result.Mul(result, bigBase)
		result.Add(result, big.NewInt(int64(d[i])))
	}

	return result
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package verifier

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/MKhiriev/go-rsa-verifier/internal/bigdigits"
	"github.com/MKhiriev/go-rsa-verifier/internal/crypto"
	"github.com/MKhiriev/go-rsa-verifier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var toyKeys = models.KeyTriple{E: "17L", D: "2753L", N: "3233L"}

func newStrict() *Orchestrator {
	return New(bigdigits.NewCodec(true))
}

func TestOrchestrator_StartsIdle(t *testing.T) {
	o := newStrict()

	assert.Equal(t, models.StateIdle, o.State())
	_, ok := o.Pending()
	assert.False(t, ok)
	assert.Empty(t, o.LastOutput())
}

func TestOrchestrator_Ingest(t *testing.T) {
	o := newStrict()

	pending, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	assert.Equal(t, "65", pending.Plaintext)
	assert.Equal(t, "2790L", pending.Ciphertext)
	assert.Equal(t, models.StateAwaitingDecision, o.State())

	got, ok := o.Pending()
	require.True(t, ok)
	assert.Equal(t, pending, got)
}

// TestOrchestrator_GrantToyKey signs 65+1 with d=2753, n=3233.
func TestOrchestrator_GrantToyKey(t *testing.T) {
	o := newStrict()
	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	result, err := o.Resolve(true, toyKeys)
	require.NoError(t, err)

	assert.True(t, result.Granted)
	assert.Equal(t, "[2215]", result.Output)
	assert.Equal(t, models.StateResolved, o.State())
	assert.Equal(t, "[2215]", o.LastOutput())
	_, ok := o.Pending()
	assert.False(t, ok)
}

func TestOrchestrator_GrantMatchesModPow(t *testing.T) {
	key := crypto.DefaultKey()
	keys := crypto.DefaultKeyTriple()
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 20; i++ {
		c := new(big.Int).Rand(r, key.N)
		ciphertext, err := bigdigits.Encode(c)
		require.NoError(t, err)

		o := newStrict()
		pending, err := o.Ingest(ciphertext, keys)
		require.NoError(t, err)

		p, ok := new(big.Int).SetString(pending.Plaintext, 10)
		require.True(t, ok)
		require.Equal(t, 0, new(big.Int).Exp(c, key.D, key.N).Cmp(p))

		result, err := o.Resolve(true, keys)
		require.NoError(t, err)

		want := new(big.Int).Exp(new(big.Int).Add(p, big.NewInt(1)), key.D, key.N)
		assert.Equal(t, bigdigits.ToDisplayFormat(bigdigits.ToDigits(want)), result.Output)
	}
}

func TestOrchestrator_GrantZeroPending(t *testing.T) {
	o := newStrict()
	pending, err := o.Ingest("0L", toyKeys)
	require.NoError(t, err)
	assert.Equal(t, "0", pending.Plaintext)

	result, err := o.Resolve(true, toyKeys)
	require.NoError(t, err)
	assert.Equal(t, "[1]", result.Output)
}

func TestOrchestrator_Deny(t *testing.T) {
	for _, ciphertext := range []string{"2790L", "0L", "1L"} {
		o := newStrict()
		_, err := o.Ingest(ciphertext, toyKeys)
		require.NoError(t, err)

		result, err := o.Resolve(false, toyKeys)
		require.NoError(t, err)

		assert.False(t, result.Granted)
		assert.Equal(t, models.OutputDenied, result.Output)
		assert.Equal(t, models.StateResolved, o.State())
		_, ok := o.Pending()
		assert.False(t, ok)
	}
}

// TestOrchestrator_DenyIgnoresKeys verifies that deny does no arithmetic.
func TestOrchestrator_DenyIgnoresKeys(t *testing.T) {
	o := newStrict()
	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	result, err := o.Resolve(false, models.KeyTriple{})
	require.NoError(t, err)
	assert.Equal(t, models.OutputDenied, result.Output)
}

func TestOrchestrator_IngestEmpty(t *testing.T) {
	o := newStrict()

	_, err := o.Ingest("", toyKeys)
	require.Error(t, err)

	assert.ErrorIs(t, err, ErrMalformedCiphertext)
	assert.ErrorIs(t, err, bigdigits.ErrInvalidInput)
	assert.Equal(t, models.StateIdle, o.State())
	assert.Equal(t, models.OutputParseError, o.LastOutput())
	_, ok := o.Pending()
	assert.False(t, ok)
}

func TestOrchestrator_IngestFailures(t *testing.T) {
	tests := []struct {
		name       string
		ciphertext string
		keys       models.KeyTriple
		cause      error
	}{
		{name: "malformed fragment", ciphertext: "27x0L", keys: toyKeys, cause: bigdigits.ErrMalformedFragment},
		{name: "whitespace fragment", ciphertext: " L", keys: toyKeys, cause: bigdigits.ErrMalformedFragment},
		{name: "out of range fragment", ciphertext: "27900L", keys: toyKeys, cause: bigdigits.ErrFragmentOutOfRange},
		{name: "broken d", ciphertext: "2790L", keys: models.KeyTriple{D: "", N: "3233L"}, cause: crypto.ErrInvalidKey},
		{name: "broken n", ciphertext: "2790L", keys: models.KeyTriple{D: "2753L", N: "n"}, cause: crypto.ErrInvalidKey},
		{name: "zero modulus", ciphertext: "2790L", keys: models.KeyTriple{D: "2753L", N: "0L"}, cause: crypto.ErrInvalidModulus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newStrict()

			_, err := o.Ingest(tt.ciphertext, tt.keys)
			assert.ErrorIs(t, err, ErrMalformedCiphertext)
			assert.ErrorIs(t, err, tt.cause)
			assert.Equal(t, models.StateIdle, o.State())
			assert.Equal(t, models.OutputParseError, o.LastOutput())
		})
	}
}

// TestOrchestrator_IngestIgnoresPublicExponent verifies that only d and n are
// needed to decrypt.
func TestOrchestrator_IngestIgnoresPublicExponent(t *testing.T) {
	o := newStrict()
	keys := toyKeys
	keys.E = "not a number"

	pending, err := o.Ingest("2790L", keys)
	require.NoError(t, err)
	assert.Equal(t, "65", pending.Plaintext)
}

func TestOrchestrator_LenientCodec(t *testing.T) {
	o := New(bigdigits.NewCodec(false))

	// a most-significant zero digit does not change the value
	pending, err := o.Ingest("2790L0L", toyKeys)
	require.NoError(t, err)
	assert.Equal(t, "65", pending.Plaintext)

	// an oversized fragment is weighted positionally
	_, err = o.Ingest("12790L", toyKeys)
	assert.NoError(t, err)
}

func TestOrchestrator_FailedIngestClearsPending(t *testing.T) {
	o := newStrict()
	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	_, err = o.Ingest("", toyKeys)
	require.ErrorIs(t, err, ErrMalformedCiphertext)

	_, ok := o.Pending()
	assert.False(t, ok)
	_, err = o.Resolve(true, toyKeys)
	assert.ErrorIs(t, err, ErrNoPendingDecision)
}

func TestOrchestrator_NewIngestReplacesPending(t *testing.T) {
	o := newStrict()
	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	pending, err := o.Ingest("1L", toyKeys)
	require.NoError(t, err)
	assert.Equal(t, "1", pending.Plaintext)
	assert.Equal(t, models.StateAwaitingDecision, o.State())
}

func TestOrchestrator_IngestAfterResolve(t *testing.T) {
	o := newStrict()
	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)
	_, err = o.Resolve(false, toyKeys)
	require.NoError(t, err)

	_, err = o.Ingest("2790L", toyKeys)
	require.NoError(t, err)
	assert.Equal(t, models.StateAwaitingDecision, o.State())
	assert.Empty(t, o.LastOutput())
}

func TestOrchestrator_ResolveWithoutPending(t *testing.T) {
	o := newStrict()

	_, err := o.Resolve(true, toyKeys)
	assert.ErrorIs(t, err, ErrNoPendingDecision)

	_, err = o.Resolve(false, toyKeys)
	assert.ErrorIs(t, err, ErrNoPendingDecision)
	assert.Equal(t, models.StateIdle, o.State())
}

func TestOrchestrator_ResolveTwice(t *testing.T) {
	o := newStrict()
	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)
	_, err = o.Resolve(true, toyKeys)
	require.NoError(t, err)

	_, err = o.Resolve(true, toyKeys)
	assert.ErrorIs(t, err, ErrNoPendingDecision)
	assert.Equal(t, "[2215]", o.LastOutput())
}

func TestOrchestrator_GrantWithBrokenKeysKeepsPending(t *testing.T) {
	o := newStrict()
	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	broken := toyKeys
	broken.N = "x"
	_, err = o.Resolve(true, broken)
	assert.ErrorIs(t, err, ErrInvalidKeys)
	assert.Equal(t, models.StateAwaitingDecision, o.State())

	pending, ok := o.Pending()
	require.True(t, ok)
	assert.Equal(t, "65", pending.Plaintext)

	// fixing the keys lets the grant go through
	result, err := o.Resolve(true, toyKeys)
	require.NoError(t, err)
	assert.Equal(t, "[2215]", result.Output)
}

func TestOrchestrator_GrantWithZeroModulus(t *testing.T) {
	o := newStrict()
	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	_, err = o.Resolve(true, models.KeyTriple{D: "2753L", N: "0L"})
	assert.ErrorIs(t, err, ErrInvalidKeys)
	assert.ErrorIs(t, err, crypto.ErrInvalidModulus)
}

func TestOrchestrator_Dismiss(t *testing.T) {
	o := newStrict()
	assert.ErrorIs(t, o.Dismiss(), ErrNoPendingDecision)

	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	require.NoError(t, o.Dismiss())
	assert.Equal(t, models.StateIdle, o.State())
	assert.Empty(t, o.LastOutput())
	_, ok := o.Pending()
	assert.False(t, ok)
}

func TestOrchestrator_Status(t *testing.T) {
	o := newStrict()
	assert.Equal(t, models.DecisionStatus{State: models.StateIdle}, o.Status())

	_, err := o.Ingest("2790L", toyKeys)
	require.NoError(t, err)

	status := o.Status()
	assert.Equal(t, models.StateAwaitingDecision, status.State)
	require.NotNil(t, status.Pending)
	assert.Equal(t, "65", status.Pending.Plaintext)

	_, err = o.Resolve(false, toyKeys)
	require.NoError(t, err)
	status = o.Status()
	assert.Nil(t, status.Pending)
	assert.Equal(t, models.OutputDenied, status.LastOutput)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bigdigits converts non-negative arbitrary-precision integers to and
// from base-10000 digit sequences.
//
// A digit sequence is stored least-significant digit first. Two textual forms
// are supported:
//   - L-format, the transport encoding: every digit is followed by the
//     delimiter 'L' (for example 100050006 is "6L5L1L");
//   - display format, a bracketed comma-separated list used for output only
//     (for example "[6,5,1]"). Display strings are not parsed back.
package bigdigits

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// verifier server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidDataProvided is returned when the decoded request fails basic
	// validation (e.g. an empty password).
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidPassword is returned when the operator password does not
	// match the configured hash.
	MsgInvalidPassword = "invalid password"

	// MsgUnauthorized is returned when a bearer token cannot be verified.
	MsgUnauthorized = "Unauthorized"

	// MsgLoginFailed is logged when the login handler encounters an
	// unexpected error that prevents issuing a token.
	MsgLoginFailed = "login failed"

	// MsgInvalidKeys is logged when a submitted key triple is rejected.
	MsgInvalidKeys = "invalid keys provided"

	// MsgLoadKeysFailed, MsgSaveKeysFailed and MsgResetKeysFailed are logged
	// when the key store cannot complete the operation.
	MsgLoadKeysFailed  = "loading keys failed"
	MsgSaveKeysFailed  = "saving keys failed"
	MsgResetKeysFailed = "resetting keys failed"

	// MsgListDecisionsFailed is logged when the decision journal cannot be
	// read.
	MsgListDecisionsFailed = "listing decisions failed"
)

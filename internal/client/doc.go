// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal client runtime.
//
// It picks local or remote mode from the configuration, wires the verifier
// behind the terminal UI, and runs the UI until the operator quits or the
// process is interrupted.
package client

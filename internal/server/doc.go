// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the verifier's HTTP transport, including start-up and
// graceful shutdown once the run context is cancelled.
package server

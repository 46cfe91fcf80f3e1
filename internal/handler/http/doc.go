// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the verifier server.
//
// It exposes route wiring, request handlers and middleware for the REST API.
// Tracing, access logging, operator authentication and the HashSHA256
// integrity check are handled here before requests reach the service layer.
package http

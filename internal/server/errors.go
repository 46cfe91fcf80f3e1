// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNoServersAreCreated = errors.New("no servers are created")

	// errNoHTTPHandler and errNoListenAddress say why nothing was created.
	errNoHTTPHandler   = errors.New("http handler is not configured")
	errNoListenAddress = errors.New("listen address is not configured")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/MKhiriev/go-rsa-verifier/internal/adapter"
)

const msgServerUnavailable = "Отсутствует сеть или Сервер недоступен"

// humanizeServerUnavailableError turns transport failures into one message
// the operator can act on. Other errors keep their text.
func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, adapter.ErrBadGateway),
		errors.As(err, &netErr):
		return msgServerUnavailable
	}

	// resty flattens some dial errors into plain text
	s := strings.ToLower(err.Error())
	for _, marker := range []string{"connection refused", "dial tcp", "no such host", "network is unreachable", "i/o timeout"} {
		if strings.Contains(s, marker) {
			return msgServerUnavailable
		}
	}

	return err.Error()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-rsa-verifier/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Название приложения", "go-rsa-verifier"},
		{"Версия", info.BuildVersion()},
		{"Дата", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s: %s", row[0], valueOrNA(row[1])))
	}

	return renderPage("ИНФОРМАЦИЯ О ПРОГРАММЕ", strings.Join(lines, "\n"), "esc: назад")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return "N/A"
}

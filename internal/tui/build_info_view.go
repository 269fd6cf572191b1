// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/passport-api/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo) string {
	body := renderTable(
		fieldHeader,
		[]string{"Application", "Version", "Date", "Commit"},
		[]string{"passport-cli", valueOrNA(info.BuildVersion()), valueOrNA(info.BuildDate()), valueOrNA(info.BuildCommit())},
	)

	return renderPage("BUILD INFO", overlayStyle.Render(strings.TrimRight(body, "\n")), "esc: back")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

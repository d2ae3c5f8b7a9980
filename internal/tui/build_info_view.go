// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-profile-editor/models"
)

// renderAbout is the f1 page: which editor build is talking to the server.
func renderAbout(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Application", "Profile Editor"},
		{"Version", info.BuildVersion()},
		{"Built", info.BuildDate()},
		{"Commit", info.BuildCommit()},
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, label(row[0])+valueOrNA(row[1]))
	}

	return renderPage("ABOUT", strings.Join(lines, "\n"), "esc / f1: back")
}

func valueOrNA(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return "N/A"
}
